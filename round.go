package calculator

import (
	"math"
	"strconv"
)

// Round rounds x to the given number of decimal places. The decimal digits
// are those of the exact binary value of x, so no value is ever exactly
// halfway at five places. Negative places leaves x as it is.
func Round(x float64, places int) float64 {
	if places < 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		// FormatFloat always produces a parseable finite number here.
		panic("calculator: cannot round " + ftoa(x) + ": " + err.Error())
	}
	if r == 0 {
		// Rounding small negative numbers produces -0.
		return 0
	}
	return r
}

// FormatResult formats a result for display: the shortest decimal that
// round-trips, with no exponent and no fractional part for integers.
func FormatResult(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
