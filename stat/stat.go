// Package stat provides the coverage and length statistics used to rank
// targeted assembly candidates against their orthogroup backbone.
package stat

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrNoValues reports a statistic requested over an empty value set. The
// caller decides how an undefined baseline is presented.
var ErrNoValues = errors.New("stat: no values")

// Round2 rounds to two decimals, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// RoundInt rounds to the nearest integer, halves up.
func RoundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Average returns the arithmetic mean of values rounded to two decimals.
func Average(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}
	return Round2(stat.Mean(values, nil)), nil
}

// StdDeviation returns the population standard deviation of values around
// the given mean, rounded to two decimals. The mean is taken as an argument
// because it is the already-rounded value from Average that enters the
// calculation.
func StdDeviation(values []float64, mean float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return Round2(math.Sqrt(ss / float64(len(values)))), nil
}
