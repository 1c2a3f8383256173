package targeted

import (
	"errors"
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"

	"github.com/ChunceGuo/PlantTribes/seqs"
)

// renameAssembly reads the assembler's contig and singleton outputs and
// renames every sequence to <scaffold>_<method>_<orthogroup>_<index>.
// Contigs are numbered before singletons and the index keeps increasing
// across both, so a name identifies one sequence of the orthogroup's
// assembly regardless of its origin.
func renameAssembly(cfg Config, og Orthogroup, contigsF, singletsF string) ([]seqs.Record, error) {
	var renamed []seqs.Record
	index := 0
	for _, path := range []string{contigsF, singletsF} {
		records, err := readIfPresent(path)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			index++
			renamed = append(renamed, seqs.Record{
				ID:  fmt.Sprintf("%s_%s_%s_%d", cfg.Scaffold, cfg.Method, og.ID, index),
				Seq: r.Seq,
			})
		}
	}
	if len(renamed) == 0 {
		return nil, errors.New("assembler produced no sequences")
	}
	return renamed, nil
}

// readIfPresent reads a FASTA file that the assembler may have left absent
// or empty.
func readIfPresent(path string) ([]seqs.Record, error) {
	fi, err := os.Stat(path)
	if err != nil || fi.Size() == 0 {
		return nil, nil
	}
	return seqs.Read(path, alphabet.DNAredundant)
}
