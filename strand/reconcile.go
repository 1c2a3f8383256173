package strand

import (
	"errors"

	planttribes "github.com/ChunceGuo/PlantTribes"
	"github.com/ChunceGuo/PlantTribes/seqs"
)

// ErrAmbiguousStrand reports an unresolvable strand vote: plus and minus
// predictions cover the same number of transcripts.
var ErrAmbiguousStrand = errors.New("strand: equal plus and minus strand support, cannot pick a winner")

// Pair couples the surviving CDS and PEP sequences of one transcript.
type Pair struct {
	CDS string
	PEP string
}

// Reconcile merges raw per-strand CDS and PEP predictions into one pair per
// canonical transcript id. Without strand information every id keeps its
// longest prediction. With stranded set, the strand holding predictions for
// more transcripts wins and the other strand is discarded for the whole
// run; an even split returns ErrAmbiguousStrand. Ids present on only one
// side are dropped with a diagnostic.
func Reconcile(cds, pep []seqs.Record, stranded bool) (map[string]Pair, error) {
	var keep func(Prediction) bool
	if stranded {
		winner, err := vote(cds)
		if err != nil {
			return nil, err
		}
		planttribes.Info.Printf("keeping %s strand predictions\n", winner)
		keep = func(p Prediction) bool { return p.Strand == winner }
	}

	cdsKeep := longest(cds, keep)
	pepKeep := longest(pep, keep)

	pairs := make(map[string]Pair)
	for id, c := range cdsKeep {
		p, ok := pepKeep[id]
		if !ok {
			planttribes.Warn.Printf("%s has no protein translation, dropped\n", id)
			continue
		}
		pairs[id] = Pair{CDS: c, PEP: p}
	}
	for id := range pepKeep {
		if _, ok := cdsKeep[id]; !ok {
			planttribes.Warn.Printf("%s has no coding sequence, dropped\n", id)
		}
	}
	return pairs, nil
}

// vote partitions predictions into strand buckets by header annotation and
// picks the strand covering more distinct transcripts. A losing bucket
// holding over a quarter of the records draws a warning, since a truly
// strand-specific library should be close to one-sided.
func vote(records []seqs.Record) (Strand, error) {
	plus := make(map[string]bool)
	minus := make(map[string]bool)
	for _, r := range records {
		p := Parse(r.ID, r.Desc)
		if p.Strand == Minus {
			minus[p.ID] = true
		} else {
			plus[p.ID] = true
		}
	}

	if len(plus) == len(minus) {
		return None, ErrAmbiguousStrand
	}
	winner := Plus
	major, minor := len(plus), len(minus)
	if minor > major {
		winner = Minus
		major, minor = minor, major
	}
	if 4*minor > major+minor {
		planttribes.Warn.Printf("%d of %d transcripts predicted on the losing %s strand; assembly may not be strand-specific\n",
			minor, major+minor, winner.other())
	}
	return winner, nil
}

func (s Strand) other() Strand {
	if s == Plus {
		return Minus
	}
	return Plus
}

// longest keeps one sequence per canonical id, a strictly longer duplicate
// replacing an earlier one. keep restricts records by parsed header; nil
// keeps all.
func longest(records []seqs.Record, keep func(Prediction) bool) map[string]string {
	kept := make(map[string]string)
	for _, r := range records {
		p := Parse(r.ID, r.Desc)
		if keep != nil && !keep(p) {
			continue
		}
		if cur, ok := kept[p.ID]; ok && len(cur) >= len(r.Seq) {
			continue
		}
		kept[p.ID] = r.Seq
	}
	return kept
}
