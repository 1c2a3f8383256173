package planttribes

import (
	"fmt"
	"os/exec"
	"strconv"
)

// Cmd running the CAP3 overlap assembler on a contig FASTA. CAP3 writes its
// outputs next to the input file; assembled contigs land in .cap.contigs and
// sequences left unassembled in .cap.singlets. Either file may legitimately
// be empty, but not both.
func Cap3(fasta string, overlap, identity int) (contigs, singlets string, err error) {
	cmd := exec.Command("cap3", fasta,
		"-o", strconv.Itoa(overlap),
		"-p", strconv.Itoa(identity))
	run(cmd)

	contigs = fasta + ".cap.contigs"
	singlets = fasta + ".cap.singlets"
	if !nonEmptyFile(contigs) && !nonEmptyFile(singlets) {
		return "", "", fmt.Errorf("cap3 produced no assembly for %s", fasta)
	}
	return contigs, singlets, nil
}
