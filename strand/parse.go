// Package strand merges raw per-strand coding predictions into one CDS/PEP
// pair per transcript, resolving which strand's predictions to keep.
package strand

import (
	"regexp"
	"strings"
)

// Strand of a prediction relative to the input contig.
type Strand int

const (
	None Strand = iota
	Plus
	Minus
)

func (s Strand) String() string {
	switch s {
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	}
	return "none"
}

// Variant identifies the predictor convention a header was written in.
type Variant int

const (
	VariantUnknown Variant = iota
	VariantESTScan
	VariantTransDecoder
)

// Prediction is a parsed prediction header: the canonical transcript id
// with the predictor suffix stripped, the predicted strand and the header
// convention it was recognized by.
type Prediction struct {
	ID      string
	Strand  Strand
	Variant Variant
}

var (
	orfSuffix  = regexp.MustCompile(`\|m\.\d+$`)
	strandMark = regexp.MustCompile(`\(([+-])\)`)
)

// Parse recovers the canonical transcript id and strand from a prediction
// header. ESTScan marks ids with a trailing ';' and minus-strand hits with
// a "minus strand" note in the description; TransDecoder appends an ORF
// suffix "|m.<n>" to the id and a "(+)" or "(-)" token to the description.
// Headers matching neither convention pass through unchanged on the plus
// strand.
func Parse(id, desc string) Prediction {
	switch {
	case strings.HasSuffix(id, ";"):
		p := Prediction{ID: strings.TrimSuffix(id, ";"), Strand: Plus, Variant: VariantESTScan}
		if strings.Contains(desc, "minus strand") {
			p.Strand = Minus
		}
		return p
	case orfSuffix.MatchString(id):
		p := Prediction{ID: orfSuffix.ReplaceAllString(id, ""), Strand: Plus, Variant: VariantTransDecoder}
		if m := strandMark.FindStringSubmatch(desc); m != nil && m[1] == "-" {
			p.Strand = Minus
		}
		return p
	}
	return Prediction{ID: id, Strand: Plus, Variant: VariantUnknown}
}
