package planttribes

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Cmd running mafft --add to insert new sequences into a reference
// alignment. Reference columns are preserved; the combined alignment is
// written to out.
func MafftAdd(newSeqs, refAln, out string, ncpu int) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}

	cmd := exec.Command("mafft",
		"--add", newSeqs,
		"--thread", strconv.Itoa(ncpu),
		refAln)
	cmd.Stdout = f
	run(cmd)
	f.Close()

	if !nonEmptyFile(out) {
		return fmt.Errorf("mafft produced no alignment for %s", newSeqs)
	}
	return nil
}
