package wavy

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Codec decodes payload fields and sample runs in the byte order selected by
// the container header. RIFF files use LittleEndian, RIFX files BigEndian.
type Codec interface {
	// ByteOrder returns the payload byte order.
	ByteOrder() binary.ByteOrder
	// DecodeFields decodes b into the fixed-size values pointed to by dst,
	// in order.
	DecodeFields(b []byte, dst ...any) error
	// DecodeSamples reads total bytes of samples of bytesPerSample bytes each
	// from r into a flat buffer.
	DecodeSamples(r io.Reader, total, bytesPerSample int, isFloat bool) (Buffer, error)

	// widen writes raw into dst, filling the remaining high-order bytes with
	// zeros. len(dst) is 4 or 8.
	widen(dst, raw []byte)
}

var (
	// LittleEndian is the Codec for RIFF files.
	LittleEndian Codec = littleEndianCodec{}
	// BigEndian is the Codec for RIFX files.
	BigEndian Codec = bigEndianCodec{}
)

type littleEndianCodec struct{}

func (littleEndianCodec) ByteOrder() binary.ByteOrder { return binary.LittleEndian }

func (c littleEndianCodec) DecodeFields(b []byte, dst ...any) error {
	return decodeFields(c, b, dst)
}

func (c littleEndianCodec) DecodeSamples(r io.Reader, total, bytesPerSample int, isFloat bool) (Buffer, error) {
	return decodeSamples(c, r, total, bytesPerSample, isFloat)
}

// Padding goes after the raw bytes.
func (littleEndianCodec) widen(dst, raw []byte) {
	n := copy(dst, raw)
	clear(dst[n:])
}

type bigEndianCodec struct{}

func (bigEndianCodec) ByteOrder() binary.ByteOrder { return binary.BigEndian }

func (c bigEndianCodec) DecodeFields(b []byte, dst ...any) error {
	return decodeFields(c, b, dst)
}

func (c bigEndianCodec) DecodeSamples(r io.Reader, total, bytesPerSample int, isFloat bool) (Buffer, error) {
	return decodeSamples(c, r, total, bytesPerSample, isFloat)
}

// Padding goes before the raw bytes.
func (bigEndianCodec) widen(dst, raw []byte) {
	pad := len(dst) - len(raw)
	clear(dst[:pad])
	copy(dst[pad:], raw)
}

func decodeFields(c Codec, b []byte, dst []any) error {
	r := bytes.NewReader(b)

	for _, d := range dst {
		err := binary.Read(r, c.ByteOrder(), d)
		if err != nil {
			return readErr(err, "fields")
		}
	}

	return nil
}

func decodeSamples(c Codec, r io.Reader, total, bytesPerSample int, isFloat bool) (Buffer, error) {
	if bytesPerSample <= 0 || total < 0 || total%bytesPerSample != 0 {
		return nil, corruptedf("%d bytes of data do not hold whole samples of %d bytes", total, bytesPerSample)
	}

	n := total / bytesPerSample

	// The declared size is untrusted; read what is there before allocating
	// the typed buffer.
	raw, err := io.ReadAll(io.LimitReader(r, int64(total)))
	if err != nil {
		return nil, readErr(err, "sample data")
	}

	if len(raw) < total {
		return nil, readErr(io.ErrUnexpectedEOF, "sample data")
	}

	r = bytes.NewReader(raw)

	if isFloat {
		switch bytesPerSample {
		case 4:
			return readBulk[float32](c, r, n, KindFloat32)
		case 8:
			return readBulk[float64](c, r, n, KindFloat64)
		default:
			return nil, notSupportedf("float samples of %d bytes", bytesPerSample)
		}
	}

	switch bytesPerSample {
	case 1:
		// 8 bit samples are unsigned
		return readBulk[uint8](c, r, n, KindUint8)
	case 2:
		return readBulk[int16](c, r, n, KindInt16)
	case 3:
		return readWidened[int32](c, r, n, bytesPerSample, KindInt24)
	case 4:
		return readBulk[int32](c, r, n, KindInt32)
	case 6:
		return readWidened[int64](c, r, n, bytesPerSample, KindInt48)
	case 8:
		return readBulk[int64](c, r, n, KindInt64)
	default:
		return nil, notSupportedf("integer samples of %d bytes", bytesPerSample)
	}
}

func readBulk[T Sample](c Codec, r io.Reader, n int, kind SampleKind) (Buffer, error) {
	data := make([]T, n)

	err := binary.Read(r, c.ByteOrder(), data)
	if err != nil {
		return nil, readErr(err, "sample data")
	}

	return &Samples[T]{Data: data, kind: kind, channels: 1}, nil
}

// readWidened decodes samples whose width has no native type. Each sample is
// padded with 4-width%4 zero bytes on its high-order end and read as the
// next wider integer, so a 3 byte sample becomes an int32 and a 6 byte
// sample an int64. No sign extension takes place: 0xFFFFFF reads as
// 16777215.
func readWidened[T int32 | int64](c Codec, r io.Reader, n, width int, kind SampleKind) (Buffer, error) {
	raw := make([]byte, width)
	wide := make([]byte, width+4-width%4)
	order := c.ByteOrder()
	data := make([]T, n)

	for i := range data {
		_, err := io.ReadFull(r, raw)
		if err != nil {
			return nil, readErr(err, "sample data")
		}

		c.widen(wide, raw)

		if len(wide) == 4 {
			data[i] = T(int32(order.Uint32(wide)))
		} else {
			data[i] = T(int64(order.Uint64(wide)))
		}
	}

	return &Samples[T]{Data: data, kind: kind, channels: 1}, nil
}
