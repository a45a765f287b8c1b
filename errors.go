package wavy

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotSupported is returned when the container is well formed but uses a
	// feature this package does not read: a foreign header, a non-WAVE form,
	// an unsupported format code or sample width, or an unusable source.
	ErrNotSupported = errors.New("wave file not supported")
	// ErrCorrupted is returned when the container contradicts itself or ends
	// before it should.
	ErrCorrupted = errors.New("wave file is corrupted")
	// ErrValue is returned by NewFile when the supplied values are invalid.
	ErrValue = errors.New("invalid wave file value")
)

func notSupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotSupported}, args...)...)
}

func corruptedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorrupted}, args...)...)
}

// readErr maps a short read to ErrCorrupted. Other I/O errors are wrapped
// as they are.
func readErr(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return corruptedf("reached end of file prematurely while reading %s", what)
	}

	return fmt.Errorf("failed to read %s: %w", what, err)
}
