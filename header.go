package wavy

import (
	"io"

	"github.com/go-audio/riff"
)

var (
	// CIDRifx is the ID of a big-endian RIFF container.
	CIDRifx = [4]byte{'R', 'I', 'F', 'X'}
	// CIDWave is the form type of WAVE files.
	CIDWave = [4]byte{'W', 'A', 'V', 'E'}
)

// readContainerHeader consumes the RIFF/RIFX header and the WAVE form type
// and returns the Codec for the rest of the file. The declared container
// size is not checked against the stream length.
func readContainerHeader(r io.Reader) (Codec, error) {
	id, _, err := readChunkHeader(r, "container header")
	if err != nil {
		return nil, err
	}

	var codec Codec

	switch id {
	case riff.RiffID:
		codec = LittleEndian
	case CIDRifx:
		codec = BigEndian
	default:
		return nil, notSupportedf("file does not start with RIFF ID: unsupported header for file '%s'", id)
	}

	var form [4]byte

	_, err = io.ReadFull(r, form[:])
	if err != nil {
		return nil, readErr(err, "form type")
	}

	if form != CIDWave {
		return nil, notSupportedf("file does not appear to be a WAVE file")
	}

	return codec, nil
}
