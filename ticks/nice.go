package ticks

import "math"

// NiceNumber rounds x to a value of the form {1, 2, 5, 10} × 10^k.
//
// With round == false the fraction is rounded up (the result is never
// smaller than x). With round == true it is rounded to the nearest nice
// fraction. x must be positive.
func NiceNumber(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}

// Interval returns the major tick spacing Compute uses for the range
// [min, max] divided into majors ticks. It returns 0 when no ticks would be
// produced.
func Interval(min, max float64, majors int) float64 {
	span := max - min
	if majors < 2 || !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	nice := NiceNumber(span, false)
	return NiceNumber(nice/float64(majors-1), true)
}
