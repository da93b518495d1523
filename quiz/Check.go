package quiz

import "math"

//Within reports whether answer is accepted for expected under the relative tolerance.
//
//The answer has to lie strictly between expected*(1-tolerance) and
//expected*(1+tolerance). For negative expectations the bounds swap. When
//expected is zero there is no relative band, so the answer has to be closer
//to zero than tolerance.
func Within(expected, answer, tolerance float64) bool {
	if math.IsNaN(answer) || math.IsInf(answer, 0) {
		return false
	}
	if expected == 0 {
		return math.Abs(answer) < tolerance
	}
	lo := expected * (1 - tolerance)
	hi := expected * (1 + tolerance)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo < answer && answer < hi
}
