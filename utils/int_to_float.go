package utils

// IntToFloat32 scales a signed sample of a stream whose largest magnitude
// is maxAmplitude into [-1, 1].
func IntToFloat32(v, maxAmplitude int) float32 {
	if maxAmplitude <= 0 {
		return 0
	}

	// Clamp and scale
	x := float32(float64(v) / float64(maxAmplitude))
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return x
}
