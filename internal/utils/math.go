// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// ClampInt ограничивает v диапазоном [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ratio returns part/whole clamped to [0, 1]; a non-positive whole gives 0.
func Ratio(part, whole int) float32 {
	if whole <= 0 {
		return 0
	}
	r := float32(part) / float32(whole)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
