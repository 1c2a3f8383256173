// Package translate checks codon to amino-acid correspondence of predicted
// coding sequences, truncating records at their stop codon.
package translate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	planttribes "github.com/ChunceGuo/PlantTribes"
	"github.com/ChunceGuo/PlantTribes/strand"
)

// Stop codons of the standard genetic code.
var stopCodons = map[string]bool{
	"TAA": true,
	"TAG": true,
	"TGA": true,
}

// isStopMarker reports whether a protein symbol marks a translation stop.
// ESTScan writes 'X', TransDecoder '*'.
func isStopMarker(aa byte) bool {
	return aa == '*' || aa == 'X'
}

// Validate walks pep against the codon triplets of cds and returns the
// validated pair. The walk ends successfully at a stop codon aligned with a
// stop marker; trailing codons past the last residue are dropped. A stop
// codon aligned with an ordinary residue fails the whole record, as do a
// CDS length not divisible by three and a CDS too short to cover every
// residue. The returned CDS is always exactly three times the returned PEP.
func Validate(cds, pep string) (string, string, error) {
	if cds == "" || pep == "" {
		return "", "", errors.New("missing sequence")
	}
	if len(cds)%3 != 0 {
		return "", "", fmt.Errorf("CDS length %d is not a multiple of 3", len(cds))
	}
	if len(cds)/3 < len(pep) {
		return "", "", fmt.Errorf("%d codons cannot cover %d residues", len(cds)/3, len(pep))
	}

	var vc, vp strings.Builder
	for i := 0; i < len(pep); i++ {
		codon := cds[3*i : 3*i+3]
		aa := pep[i]
		if stopCodons[strings.ToUpper(codon)] {
			if !isStopMarker(aa) {
				return "", "", fmt.Errorf("internal stop codon %s at codon %d", codon, i+1)
			}
			vc.WriteString(codon)
			vp.WriteByte(aa)
			break
		}
		vc.WriteString(codon)
		vp.WriteByte(aa)
	}
	return vc.String(), vp.String(), nil
}

// ValidateAll validates every pair, dropping records that fail with a
// diagnostic.
func ValidateAll(pairs map[string]strand.Pair) map[string]strand.Pair {
	ids := make([]string, 0, len(pairs))
	for id := range pairs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	valid := make(map[string]strand.Pair)
	for _, id := range ids {
		pair := pairs[id]
		cds, pep, err := Validate(pair.CDS, pair.PEP)
		if err != nil {
			planttribes.Warn.Printf("%s failed translation check: %v\n", id, err)
			continue
		}
		valid[id] = strand.Pair{CDS: cds, PEP: pep}
	}
	return valid
}
