package wavy

import (
	"strings"
	"time"
)

// trimNulls drops the trailing null padding of INFO IDs and values.
func trimNulls(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}

func durationFromFrames(frames, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second))
}
