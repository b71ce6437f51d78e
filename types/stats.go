package types

import "math"

// StrengthFunc extracts the comparable value a rule uses for a student.
//
// The boolean result is false when the student has no usable value for the
// rule's attribute, which is always the case for phantoms. Such records are
// excluded from means and deviations.
type StrengthFunc func(*Student) (float64, bool)

// Mean returns the mean strength over the students that have one, together
// with the count of contributing records. A zero count yields a zero mean.
func Mean(students []*Student, strength StrengthFunc) (float64, int) {
	sum := 0.0
	n := 0
	for _, s := range students {
		v, ok := strength(s)
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, 0
	}

	return sum / float64(n), n
}

// StdDev returns the population standard deviation of the strength over the
// students that have one, together with the count of contributing records.
func StdDev(students []*Student, strength StrengthFunc) (float64, int) {
	mean, n := Mean(students, strength)
	if n == 0 {
		return 0, 0
	}
	sumSq := 0.0
	for _, s := range students {
		v, ok := strength(s)
		if !ok {
			continue
		}
		d := v - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(n)), n
}

// MeanFloat64 returns the mean of the values, or zero for an empty slice.
func MeanFloat64(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// StdDevFloat64 returns the population standard deviation of the values, or
// zero for an empty slice.
func StdDevFloat64(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := MeanFloat64(xs)
	sumSq := 0.0
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(xs)))
}
