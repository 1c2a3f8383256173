package planttribes

import (
	"fmt"
	"os/exec"
)

// Cmd running GenomeTools sequniq to collapse exact duplicate sequences,
// keeping one representative per distinct sequence.
func SeqUniq(in, out string) error {
	cmd := exec.Command("gt", "sequniq", "-seqit", "-force", "-o", out, in)
	run(cmd)

	if !nonEmptyFile(out) {
		return fmt.Errorf("gt sequniq produced no output for %s", in)
	}
	return nil
}
