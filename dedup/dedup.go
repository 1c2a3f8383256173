// Package dedup removes sequence-identical records from paired CDS/PEP
// sets. The exact-duplicate collapse itself is delegated to an external
// tool; this package rebuilds the protein side so that the two outputs
// always carry the same ids.
package dedup

import (
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"

	planttribes "github.com/ChunceGuo/PlantTribes"
	"github.com/ChunceGuo/PlantTribes/seqs"
)

// runDedup collapses a FASTA file to one representative per distinct
// sequence. A variable so tests can substitute the external tool.
var runDedup = planttribes.SeqUniq

// NonRedundant reduces cds to a non-redundant set and intersects pep with
// the surviving ids. Both returned slices keep the original records and
// their relative order, and are guaranteed id-parity. workDir holds the
// temporary dedup files and must exist.
func NonRedundant(cds, pep []seqs.Record, workDir string) ([]seqs.Record, []seqs.Record, error) {
	in := filepath.Join(workDir, "dedup.in.fasta")
	out := filepath.Join(workDir, "dedup.out.fasta")
	defer os.Remove(in)
	defer os.Remove(out)

	if err := seqs.Write(in, cds); err != nil {
		return nil, nil, err
	}
	if err := runDedup(in, out); err != nil {
		return nil, nil, err
	}
	survivors, err := seqs.Read(out, alphabet.DNAredundant)
	if err != nil {
		return nil, nil, err
	}

	keep := seqs.IDSet(survivors)
	var nrCDS, nrPEP []seqs.Record
	for _, r := range cds {
		if keep[r.ID] {
			nrCDS = append(nrCDS, r)
		}
	}
	for _, r := range pep {
		if keep[r.ID] {
			nrPEP = append(nrPEP, r)
		}
	}
	planttribes.Info.Printf("deduplication kept %d of %d coding sequences\n", len(nrCDS), len(cds))
	return nrCDS, nrPEP, nil
}
