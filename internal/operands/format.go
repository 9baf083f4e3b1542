package operands

import (
	"math"
	"strconv"
)

// Format renders whole values as integers and everything else with one
// fixed decimal. Ties round half to even on the exact binary value, so
// -2.25 renders as "-2.2".
func Format(value float64) string {
	if s, ok := nonFinite(value); ok {
		return s
	}
	if value == 0 {
		return "0"
	}
	if math.Trunc(value) == value {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', 1, 64)
}

// FormatResult renders a calculated value the way a default C-style
// stream prints a double: six significant digits, trailing zeros dropped,
// and inf, -inf or nan for non-finite values.
func FormatResult(value float64) string {
	if s, ok := nonFinite(value); ok {
		return s
	}
	return strconv.FormatFloat(value, 'g', 6, 64)
}

// nonFinite spells infinities and NaN the way C stream output does
func nonFinite(value float64) (string, bool) {
	switch {
	case math.IsNaN(value):
		return "nan", true
	case math.IsInf(value, 1):
		return "inf", true
	case math.IsInf(value, -1):
		return "-inf", true
	}
	return "", false
}

// Term renders an operand for an expression, parenthesizing negatives
func Term(value float64) string {
	if value < 0 {
		return "(" + Format(value) + ")"
	}
	return Format(value)
}
