package wavy

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

type testChunk struct {
	id   string
	data []byte
}

// buildWav assembles a container with the given 4 byte header ID. Chunk
// sizes are little-endian and odd bodies get a pad byte.
func buildWav(header string, chunks ...testChunk) []byte {
	var body bytes.Buffer

	body.WriteString("WAVE")

	for _, ch := range chunks {
		body.Write(chunkBytes(ch))
	}

	out := bytes.NewBufferString(header)
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func chunkBytes(ch testChunk) []byte {
	var buf bytes.Buffer

	buf.WriteString(ch.id)
	binary.Write(&buf, binary.LittleEndian, uint32(len(ch.data)))
	buf.Write(ch.data)

	if len(ch.data)%2 == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

type fmtFields struct {
	tag        uint16
	channels   uint16
	rate       uint32
	byteRate   uint32
	blockAlign uint16
	bits       uint16
}

// consistentFmt returns fields that pass validateFormat for two channels.
func consistentFmt(tag uint16, bits uint16) fmtFields {
	blockAlign := bits / 4

	return fmtFields{
		tag:        tag,
		channels:   2,
		rate:       8000,
		byteRate:   8000 * uint32(blockAlign),
		blockAlign: blockAlign,
		bits:       bits,
	}
}

func (f fmtFields) bytes(order binary.ByteOrder) []byte {
	var buf bytes.Buffer

	binary.Write(&buf, order, f.tag)
	binary.Write(&buf, order, f.channels)
	binary.Write(&buf, order, f.rate)
	binary.Write(&buf, order, f.byteRate)
	binary.Write(&buf, order, f.blockAlign)
	binary.Write(&buf, order, f.bits)

	return buf.Bytes()
}

// fmtChunkOfSize pads the canonical record with zeros up to size bytes.
func fmtChunkOfSize(order binary.ByteOrder, f fmtFields, size int) testChunk {
	data := f.bytes(order)
	data = append(data, make([]byte, size-len(data))...)

	return testChunk{id: "fmt ", data: data}
}

func fmtChunk(order binary.ByteOrder, f fmtFields) testChunk {
	return fmtChunkOfSize(order, f, 16)
}

// extensibleFmtChunk builds a 40 byte WAVE_FORMAT_EXTENSIBLE fmt chunk.
func extensibleFmtChunk(order binary.ByteOrder, f fmtFields, subFormat uint16) testChunk {
	f.tag = 0xFFFE
	data := f.bytes(order)

	var ext bytes.Buffer

	binary.Write(&ext, order, uint16(22))
	binary.Write(&ext, order, f.bits)
	binary.Write(&ext, order, uint32(0x3))
	binary.Write(&ext, order, subFormat)
	ext.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71})

	return testChunk{id: "fmt ", data: append(data, ext.Bytes()...)}
}

// infoChunk builds a LIST/INFO chunk; values are null terminated and padded
// to an even length.
func infoChunk(entries ...[2]string) testChunk {
	data := []byte("INFO")

	for _, e := range entries {
		value := append([]byte(e[1]), 0)
		if len(value)%2 == 1 {
			value = append(value, 0)
		}

		data = append(data, chunkBytes(testChunk{id: e[0], data: value})...)
	}

	return testChunk{id: "LIST", data: data}
}

func dataChunk(data []byte) testChunk {
	return testChunk{id: "data", data: data}
}

func int16Bytes(order binary.ByteOrder, values ...int16) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, order, values)

	return buf.Bytes()
}

func float32Bytes(order binary.ByteOrder, values ...float32) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, order, values)

	return buf.Bytes()
}

// stereo16 is a well formed two channel 16 bit file with two frames.
func stereo16(t *testing.T, extra ...testChunk) []byte {
	t.Helper()

	chunks := []testChunk{fmtChunk(binary.LittleEndian, consistentFmt(1, 16))}
	chunks = append(chunks, extra...)
	chunks = append(chunks, dataChunk(int16Bytes(binary.LittleEndian, 1, 2, 3, 4)))

	return buildWav("RIFF", chunks...)
}

// nonSeeker hides any Seek method of the wrapped reader.
type nonSeeker struct {
	r *bytes.Reader
}

func (n nonSeeker) Read(p []byte) (int, error) {
	return n.r.Read(p)
}

func float32ApproxEqual(value, expected, epsilon float32) bool {
	return math.Abs(float64(value-expected)) <= float64(epsilon)
}

func samplesOf[T Sample](t *testing.T, buf Buffer) *Samples[T] {
	t.Helper()

	s, ok := buf.(*Samples[T])
	if !ok {
		t.Fatalf("unexpected buffer type %T", buf)
	}

	return s
}
