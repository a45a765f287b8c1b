package wavy

import (
	"fmt"

	"github.com/go-audio/audio"
)

// SampleKind identifies the element type of a Buffer together with the
// sample width it was decoded from.
type SampleKind int

const (
	KindInvalid SampleKind = iota
	KindUint8
	KindInt16
	// KindInt24 samples are stored as int32.
	KindInt24
	KindInt32
	// KindInt48 samples are stored as int64.
	KindInt48
	KindInt64
	KindFloat32
	KindFloat64
)

var kindNames = map[SampleKind]string{
	KindUint8:   "uint8",
	KindInt16:   "int16",
	KindInt24:   "int24",
	KindInt32:   "int32",
	KindInt48:   "int48",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String returns the element type name, such as "int24".
func (k SampleKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("SampleKind(%d)", int(k))
}

// Valid reports whether k is a known kind.
func (k SampleKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// BitDepth returns the number of bits of the source samples.
func (k SampleKind) BitDepth() int {
	switch k {
	case KindUint8:
		return 8
	case KindInt16:
		return 16
	case KindInt24:
		return 24
	case KindInt32, KindFloat32:
		return 32
	case KindInt48:
		return 48
	case KindInt64, KindFloat64:
		return 64
	default:
		return 0
	}
}

// ElemSize returns the size in bytes of one stored element.
func (k SampleKind) ElemSize() int {
	switch k {
	case KindUint8:
		return 1
	case KindInt16:
		return 2
	case KindInt24, KindInt32, KindFloat32:
		return 4
	case KindInt48, KindInt64, KindFloat64:
		return 8
	default:
		return 0
	}
}

// toSigned reads a zero padded 24 or 48 bit value as a two's complement
// number of that width, the convention go-audio buffers use.
func (k SampleKind) toSigned(v int64) int64 {
	switch k {
	case KindInt24, KindInt48:
		shift := 64 - k.BitDepth()
		return v << shift >> shift
	default:
		return v
	}
}

// IsFloat reports whether k holds IEEE float samples.
func (k SampleKind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Sample is the set of element types a Buffer can hold.
type Sample interface {
	~uint8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Buffer is decoded sample data. Its concrete type is *Samples[T]; use a
// type switch to reach the typed data.
type Buffer interface {
	Kind() SampleKind
	// Len returns the total number of samples across all channels.
	Len() int
	NumChannels() int
	NumFrames() int
	// Shape is [frames] for a single channel and [frames, channels]
	// otherwise.
	Shape() []int
	// IntBuffer copies the samples into a go-audio integer buffer. Float
	// samples are truncated and 24/48 bit samples are read as two's
	// complement of their width.
	IntBuffer(sampleRate int) *audio.IntBuffer
	// Float32Buffer copies the samples into a go-audio float buffer, with
	// integer samples normalised to [-1, 1].
	Float32Buffer(sampleRate int) *audio.Float32Buffer

	reshape(channels int) error
}

// Samples holds interleaved samples in row-major frame order: element
// f*channels+c is channel c of frame f.
type Samples[T Sample] struct {
	Data     []T
	kind     SampleKind
	channels int
}

// NewSamples wraps data laid out as frames of the given number of channels.
// The kind is derived from T.
func NewSamples[T Sample](data []T, channels int) (*Samples[T], error) {
	s := &Samples[T]{Data: data, kind: kindFor[T](), channels: 1}
	if err := s.reshape(channels); err != nil {
		return nil, err
	}

	return s, nil
}

func kindFor[T Sample]() SampleKind {
	var zero T

	switch any(zero).(type) {
	case uint8:
		return KindUint8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}

// Kind returns the element type and source width of the samples.
func (s *Samples[T]) Kind() SampleKind { return s.kind }

// Len returns the number of samples across all channels.
func (s *Samples[T]) Len() int { return len(s.Data) }

// NumChannels returns the number of samples per frame.
func (s *Samples[T]) NumChannels() int { return s.channels }

// NumFrames returns the number of frames.
func (s *Samples[T]) NumFrames() int {
	if s.channels == 0 {
		return 0
	}

	return len(s.Data) / s.channels
}

// Shape returns [frames] for a single channel and [frames, channels]
// otherwise.
func (s *Samples[T]) Shape() []int {
	if s.channels <= 1 {
		return []int{len(s.Data)}
	}

	return []int{s.NumFrames(), s.channels}
}

// Frame returns the samples of frame i, one per channel. The slice aliases
// Data.
func (s *Samples[T]) Frame(i int) []T {
	return s.Data[i*s.channels : (i+1)*s.channels]
}

// At returns the sample of channel ch in frame i.
func (s *Samples[T]) At(i, ch int) T {
	return s.Data[i*s.channels+ch]
}

func (s *Samples[T]) reshape(channels int) error {
	if channels < 1 {
		return corruptedf("invalid channel count %d", channels)
	}

	if len(s.Data)%channels != 0 {
		return corruptedf("%d samples cannot be split into frames of %d channels", len(s.Data), channels)
	}

	s.channels = channels

	return nil
}

func (s *Samples[T]) format(sampleRate int) *audio.Format {
	return &audio.Format{NumChannels: s.channels, SampleRate: sampleRate}
}

// IntBuffer implements Buffer.
func (s *Samples[T]) IntBuffer(sampleRate int) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Format:         s.format(sampleRate),
		Data:           make([]int, len(s.Data)),
		SourceBitDepth: s.kind.BitDepth(),
	}

	for i, v := range s.Data {
		if s.kind.IsFloat() {
			buf.Data[i] = int(v)
			continue
		}

		buf.Data[i] = int(s.kind.toSigned(int64(v)))
	}

	return buf
}

// Float32Buffer implements Buffer.
func (s *Samples[T]) Float32Buffer(sampleRate int) *audio.Float32Buffer {
	buf := &audio.Float32Buffer{
		Format:         s.format(sampleRate),
		Data:           make([]float32, len(s.Data)),
		SourceBitDepth: s.kind.BitDepth(),
	}

	for i, v := range s.Data {
		if s.kind.IsFloat() {
			buf.Data[i] = clampFloat32(float32(v), -1, 1)
			continue
		}

		buf.Data[i] = normalizePCMInt(s.kind.toSigned(int64(v)), s.kind.BitDepth())
	}

	return buf
}
