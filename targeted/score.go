package targeted

import (
	"sort"

	"github.com/ChunceGuo/PlantTribes/seqs"
	"github.com/ChunceGuo/PlantTribes/stat"
)

// CoverageRecord is the per-sequence outcome of scoring a trimmed
// alignment. Coverage is the fraction of alignment columns the sequence
// spans with non-gap residues, Length its ungapped residue count. Backbone
// sequences come from the reference alignment rather than the new
// candidate set.
type CoverageRecord struct {
	ID       string
	Coverage float64
	Length   int
	Backbone bool
}

// Summary is the backbone baseline of one orthogroup: mean and population
// standard deviation of coverage and of conserved length. With no backbone
// sequences in the trimmed alignment the baseline is undefined.
type Summary struct {
	AvgCov  float64
	SdCov   float64
	AvgLen  int
	SdLen   int
	Defined bool
}

// Score computes coverage and conserved length for every sequence of a
// trimmed alignment, in alignment order. Sequences absent from candidates
// are backbone.
func Score(aln []seqs.Record, candidates map[string]bool) []CoverageRecord {
	var records []CoverageRecord
	for _, r := range aln {
		n := seqs.Ungapped(r.Seq)
		cov := 0.0
		if len(r.Seq) > 0 {
			cov = stat.Round2(float64(n) / float64(len(r.Seq)))
		}
		records = append(records, CoverageRecord{
			ID:       r.ID,
			Coverage: cov,
			Length:   n,
			Backbone: !candidates[r.ID],
		})
	}
	return records
}

// Stats computes the backbone baseline from scored records. Candidate
// sequences are excluded from the baseline; length statistics are rounded
// half-up to whole residues.
func Stats(records []CoverageRecord) Summary {
	var covs, lens []float64
	for _, r := range records {
		if r.Backbone {
			covs = append(covs, r.Coverage)
			lens = append(lens, float64(r.Length))
		}
	}

	avgCov, err := stat.Average(covs)
	if err != nil {
		return Summary{}
	}
	sdCov, _ := stat.StdDeviation(covs, avgCov)
	avgLen, _ := stat.Average(lens)
	sdLen, _ := stat.StdDeviation(lens, avgLen)
	return Summary{
		AvgCov:  avgCov,
		SdCov:   sdCov,
		AvgLen:  stat.RoundInt(avgLen),
		SdLen:   stat.RoundInt(sdLen),
		Defined: true,
	}
}

// Rank returns the candidate records ordered by descending coverage. The
// sort is stable, so ties keep their alignment order.
func Rank(records []CoverageRecord) []CoverageRecord {
	var candidates []CoverageRecord
	for _, r := range records {
		if !r.Backbone {
			candidates = append(candidates, r)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Coverage > candidates[j].Coverage
	})
	return candidates
}
