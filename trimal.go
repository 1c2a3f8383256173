package planttribes

import (
	"fmt"
	"os/exec"
	"strconv"
)

// Cmd running trimAl to remove low-occupancy alignment columns below the
// given gap threshold.
func Trimal(in, out string, gapThreshold float64) error {
	cmd := exec.Command("trimal",
		"-in", in,
		"-out", out,
		"-gt", strconv.FormatFloat(gapThreshold, 'g', -1, 64))
	run(cmd)

	if !nonEmptyFile(out) {
		return fmt.Errorf("trimal produced no trimmed alignment for %s", in)
	}
	return nil
}
