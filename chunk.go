package wavy

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var (
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDInfo is the list type of an INFO LIST chunk.
	CIDInfo = [4]byte{'I', 'N', 'F', 'O'}
)

type chunkKind int

const (
	chunkOther chunkKind = iota
	chunkFmt
	chunkData
	chunkList
)

func kindOf(id [4]byte) chunkKind {
	switch id {
	case riff.FmtID:
		return chunkFmt
	case riff.DataFormatID:
		return chunkData
	case CIDList:
		return chunkList
	default:
		return chunkOther
	}
}

// chunk is a cursor over a single RIFF chunk. The body reader is limited to
// the declared size plus the pad byte that follows odd-sized bodies.
type chunk struct {
	body   *riff.Chunk
	src    io.Reader
	pos    int
	padded int64
}

// readChunkHeader reads an 8 byte ID and size header. Sizes are
// little-endian in both RIFF and RIFX files.
func readChunkHeader(r io.Reader, what string) ([4]byte, uint32, error) {
	var header [8]byte

	_, err := io.ReadFull(r, header[:])
	if err != nil {
		return [4]byte{}, 0, readErr(err, what)
	}

	return [4]byte(header[:4]), binary.LittleEndian.Uint32(header[4:]), nil
}

// openChunk reads the chunk header at the current position of r.
func openChunk(r io.Reader) (*chunk, error) {
	id, size, err := readChunkHeader(r, "chunk header")
	if err != nil {
		return nil, err
	}

	padded := int64(size) + int64(size%2)

	return &chunk{
		body: &riff.Chunk{
			ID:   id,
			Size: int(size),
			R:    io.LimitReader(r, padded),
		},
		src:    r,
		padded: padded,
	}, nil
}

func (c *chunk) name() [4]byte {
	return c.body.ID
}

func (c *chunk) kind() chunkKind {
	return kindOf(c.body.ID)
}

// size returns the declared body length, without the pad byte.
func (c *chunk) size() int {
	return c.body.Size
}

// reader exposes the remaining body for bulk reads.
func (c *chunk) reader() io.Reader {
	return c.body.R
}

// read returns exactly n bytes of the chunk body.
func (c *chunk) read(n int) ([]byte, error) {
	if n < 0 || c.pos+n > c.size() {
		return nil, corruptedf("read of %d bytes at offset %d overruns %q chunk of %d bytes", n, c.pos, c.name(), c.size())
	}

	buf := make([]byte, n)

	_, err := io.ReadFull(c.body.R, buf)
	if err != nil {
		return nil, readErr(err, fmt.Sprintf("%q chunk", c.name()))
	}

	c.pos += n

	return buf, nil
}

// seek moves to an absolute offset within the chunk body. Moving backwards
// requires the source to be an io.Seeker.
func (c *chunk) seek(offset int) error {
	if offset < 0 || offset > c.size() {
		return corruptedf("offset %d is outside of %q chunk of %d bytes", offset, c.name(), c.size())
	}

	if offset >= c.pos {
		n, err := io.CopyN(io.Discard, c.body.R, int64(offset-c.pos))
		c.pos += int(n)

		if err != nil {
			return readErr(err, fmt.Sprintf("%q chunk", c.name()))
		}

		return nil
	}

	seeker, ok := c.src.(io.Seeker)
	if !ok {
		return notSupportedf("cannot seek backwards in %q chunk of a non-seekable stream", c.name())
	}

	_, err := seeker.Seek(int64(offset-c.pos), io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("failed to seek within %q chunk: %w", c.name(), err)
	}

	c.pos = offset
	c.body.R = io.LimitReader(c.src, c.padded-int64(offset))

	return nil
}

// skip moves past the rest of the body and its pad byte. A missing pad byte
// at the very end of the stream is tolerated.
func (c *chunk) skip() error {
	remaining := c.padded - int64(c.pos)
	c.pos = c.size()

	if remaining <= 0 {
		return nil
	}

	n, err := io.Copy(io.Discard, c.body.R)
	if err != nil {
		return readErr(err, fmt.Sprintf("%q chunk", c.name()))
	}

	if n == remaining || (n == remaining-1 && c.padded != int64(c.size())) {
		return nil
	}

	return corruptedf("reached end of file prematurely while skipping %q chunk", c.name())
}
