// Package keys parses and formats the numeric keys stored by the heap and
// binary search tree packages.
package keys

import (
	"math"
	"strconv"
	"strings"
)

// Parse reads a finite number from tok, ignoring surrounding whitespace.
// NaN, infinities and anything strconv rejects report false.
func Parse(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseAll returns the finite numbers in toks, in order, dropping the rest.
func ParseAll(toks []string) []float64 {
	out := make([]float64, 0, len(toks))
	for _, tok := range toks {
		if v, ok := Parse(tok); ok {
			out = append(out, v)
		}
	}
	return out
}

// Format renders a key for labels and step logs: integral values without a
// decimal point, everything else in shortest round-trip form.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
