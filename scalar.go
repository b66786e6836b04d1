package geom

import "sort"

// Clamp returns f limited to the range [min,max]. The upper bound is checked first.
func Clamp(f, min, max float64) float64 {
	if max <= f {
		return max
	} else if f <= min {
		return min
	}
	return f
}

// Lerp linearly interpolates between a and b by t, which is clamped to [0,1].
func Lerp(a, b, t float64) float64 {
	t = Clamp(t, 0.0, 1.0)
	if t == 0.0 {
		return a
	} else if t == 1.0 {
		return b
	}
	return (1.0-t)*a + t*b
}

// Median returns the median of fs, or zero when fs is empty. The values are sorted first, so the result does not depend on their order, and the input is not modified.
func Median(fs []float64) float64 {
	if len(fs) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(fs))
	copy(sorted, fs)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0
}
