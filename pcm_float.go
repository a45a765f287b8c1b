package wavy

import "math"

const (
	floatPCM8Center = 127.5
	scalePCMInt8    = 127.5
)

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// normalizePCMInt maps a signed sample of the given bit depth to [-1, 1).
// 8 bit samples are unsigned and centred on 127.5.
func normalizePCMInt(sample int64, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32((float64(sample) - floatPCM8Center) / scalePCMInt8)
	case 16, 24, 32, 48, 64:
		return float32(float64(sample) / math.Exp2(float64(bitDepth-1)))
	default:
		return 0
	}
}
