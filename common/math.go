package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snap rounds v down to the nearest multiple of TileSize.
func Snap(v int) int {
	return (v / TileSize) * TileSize
}
