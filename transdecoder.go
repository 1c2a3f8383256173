package planttribes

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// Cmd running the two-step TransDecoder prediction inside workDir. With
// stranded set, only the top strand is scanned for ORFs. TransDecoder
// appends an ORF suffix "|m.<n>" to record ids and a "(+)"/"(-)" strand
// token to the header. Returns the paths of the CDS and protein outputs.
func TransDecoder(transcripts, workDir string, stranded bool) (cds, pep string, err error) {
	abs, err := filepath.Abs(transcripts)
	if err != nil {
		return "", "", err
	}

	args := []string{"-t", abs}
	if stranded {
		args = append(args, "-S")
	}
	cmd := exec.Command("TransDecoder.LongOrfs", args...)
	cmd.Dir = workDir
	run(cmd)

	cmd = exec.Command("TransDecoder.Predict", "-t", abs)
	cmd.Dir = workDir
	run(cmd)

	base := filepath.Base(transcripts)
	cds = filepath.Join(workDir, base+".transdecoder.cds")
	pep = filepath.Join(workDir, base+".transdecoder.pep")
	if !nonEmptyFile(cds) || !nonEmptyFile(pep) {
		return "", "", fmt.Errorf("TransDecoder found no coding regions in %s", transcripts)
	}
	return cds, pep, nil
}
