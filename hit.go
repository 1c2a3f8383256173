package planttribes

import (
	"math"
	"strconv"
	"strings"
)

// Container for one hmmsearch --tblout row.
type Hit struct {
	TargetID string  // sequence id of the hit
	QueryID  string  // profile name
	EValue   float64 // full sequence E-value
	Score    float64 // full sequence bit score
}

// Parse and return a Hit struct from the whitespace-separated columns of a
// tblout row.
func parseHit(fields []string) Hit {
	h := Hit{}
	h.TargetID = fields[0]
	h.QueryID = fields[2]
	h.EValue = atof(fields[4])
	h.Score = atof(fields[5])

	return h
}

// String to float64 helper.
func atof(s string) float64 {
	if s == "*" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		panic(err)
	}
	return f
}
