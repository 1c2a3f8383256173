package planttribes

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// Cmd running ESTScan to predict coding regions in an assembly, using the
// given score matrix. Returns the paths of the CDS and protein outputs.
// ESTScan annotates minus-strand hits with a "minus strand" note in the
// header and marks record ids with a trailing ';'.
func EstScan(transcripts, outDir, matrix string) (cds, pep string, err error) {
	cds = filepath.Join(outDir, filepath.Base(transcripts)+".estscan.cds")
	pep = filepath.Join(outDir, filepath.Base(transcripts)+".estscan.pep")

	cmd := exec.Command("estscan", "-M", matrix, "-t", pep, "-o", cds, transcripts)
	run(cmd)

	if !nonEmptyFile(cds) || !nonEmptyFile(pep) {
		return "", "", fmt.Errorf("estscan found no coding regions in %s", transcripts)
	}
	return cds, pep, nil
}
