package wavy

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read decodes a WAVE file. src is either a path or an io.Reader. Read owns
// src for the duration of the call: a path is opened and closed, and a
// reader that is also an io.Closer is closed before Read returns.
func Read(src any) (*File, error) {
	rc, err := openSource(src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Decode(rc)
}

// ReadInfo is like Read but stops at the data chunk header.
func ReadInfo(src any) (*Info, error) {
	rc, err := openSource(src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return DecodeInfo(rc)
}

// Decode decodes a WAVE stream read from r's current position. r is not
// closed.
func Decode(r io.Reader) (*File, error) {
	d, err := decodeStream(r, true)
	if err != nil {
		return nil, err
	}

	return NewFile(int(d.format.BitsPerSample), int(d.format.SampleRate), d.data, d.tags)
}

// DecodeInfo reads the format and tags of a WAVE stream. The data chunk body
// is not read.
func DecodeInfo(r io.Reader) (*Info, error) {
	d, err := decodeStream(r, false)
	if err != nil {
		return nil, err
	}

	return newInfo(d), nil
}

type bufferedFile struct {
	*bufio.Reader
	io.Closer
}

func openSource(src any) (io.ReadCloser, error) {
	switch s := src.(type) {
	case string:
		f, err := os.Open(s)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", s, err)
		}

		return bufferedFile{Reader: bufio.NewReader(f), Closer: f}, nil
	case io.ReadCloser:
		return s, nil
	case io.Reader:
		return io.NopCloser(s), nil
	default:
		return nil, notSupportedf("'file' argument must be a string or io.Reader instance, %T given instead", src)
	}
}
