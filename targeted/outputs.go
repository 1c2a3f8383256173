package targeted

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	planttribes "github.com/ChunceGuo/PlantTribes"
	"github.com/ChunceGuo/PlantTribes/seqs"
)

// writeOutputs emits the curated per-orthogroup files: protein, CDS and
// raw-contig FASTA of the ranked candidates, each header annotated with the
// candidate's own coverage and length next to the backbone baseline, plus
// the tab-separated statistics table.
func writeOutputs(dir string, og Orthogroup, ranked []CoverageRecord, sum Summary,
	pep, cds, raw map[string]seqs.Record) error {

	statsName := og.ID + ".contigs.fasta.stats"
	annotate := func(r CoverageRecord) string {
		return fmt.Sprintf("cov=%s avg_cov=%s sd_cov=%s len=%d avg_len=%s sd_len=%s [details in %s]",
			fmtCov(r.Coverage), fmtCovNA(sum.AvgCov, sum.Defined), fmtCovNA(sum.SdCov, sum.Defined),
			r.Length, fmtIntNA(sum.AvgLen, sum.Defined), fmtIntNA(sum.SdLen, sum.Defined), statsName)
	}

	pick := func(m map[string]seqs.Record) []seqs.Record {
		var out []seqs.Record
		for _, r := range ranked {
			s, ok := m[r.ID]
			if !ok {
				continue
			}
			s.Desc = annotate(r)
			out = append(out, s)
		}
		return out
	}

	if err := seqs.Write(filepath.Join(dir, og.ID+".pep.fasta"), pick(pep)); err != nil {
		return err
	}
	if err := seqs.Write(filepath.Join(dir, og.ID+".cds.fasta"), pick(cds)); err != nil {
		return err
	}
	if err := seqs.Write(filepath.Join(dir, og.ID+".contigs.fasta"), pick(raw)); err != nil {
		return err
	}
	if err := writeStats(filepath.Join(dir, statsName), og, ranked, sum); err != nil {
		return err
	}
	planttribes.Info.Printf("orthogroup %s: %d candidate sequences written\n", og.ID, len(ranked))
	return nil
}

// writeStats writes the candidate coverage table for one orthogroup.
func writeStats(path string, og Orthogroup, ranked []CoverageRecord, sum Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# orthogroup %s: coverage of candidate sequences against the backbone alignment\n", og.ID)
	fmt.Fprintf(w, "# seq_id\tcov\tavg_cov\tsd_cov\tlen\tavg_len\tsd_len\n")
	for _, r := range ranked {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, fmtCov(r.Coverage),
			fmtCovNA(sum.AvgCov, sum.Defined), fmtCovNA(sum.SdCov, sum.Defined),
			r.Length, fmtIntNA(sum.AvgLen, sum.Defined), fmtIntNA(sum.SdLen, sum.Defined))
	}
	return w.Flush()
}

func fmtCov(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func fmtCovNA(x float64, defined bool) string {
	if !defined {
		return "NA"
	}
	return fmtCov(x)
}

func fmtIntNA(x int, defined bool) string {
	if !defined {
		return "NA"
	}
	return strconv.Itoa(x)
}
