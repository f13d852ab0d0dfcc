package align

import (
	"math"
	"strconv"
)

// roundTo rounds x to the given number of decimal places, correctly rounded
// from its exact binary value: 2.675 becomes 2.67 and 0.0625 becomes 0.062.
func roundTo(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}
