package wavy

import (
	"fmt"
	"io"
	"slices"
)

// FormatCode is the wFormatTag of a fmt chunk.
type FormatCode uint16

const (
	// FormatPCM is integer PCM, 8 bit unsigned or 16, 24 and 32 bit signed.
	FormatPCM FormatCode = 0x0001
	// FormatIEEEFloat is 32 or 64 bit IEEE float.
	FormatIEEEFloat FormatCode = 0x0003

	formatExtensible FormatCode = 0xFFFE
)

// String returns a readable name for the format code.
func (c FormatCode) String() string {
	switch c {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case formatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("format 0x%04X", uint16(c))
	}
}

// supportedBitDepths lists the sample widths readable for each format code.
var supportedBitDepths = map[FormatCode][]uint16{
	FormatPCM:       {8, 16, 24, 32},
	FormatIEEEFloat: {32, 64},
}

const (
	fmtChunkSize           = 16
	fmtChunkSizeEx         = 18
	fmtChunkSizeExtensible = 40
	subFormatOffset        = 24
)

// Format is the parsed fmt chunk.
type Format struct {
	// Code is the resolved format; for WAVE_FORMAT_EXTENSIBLE files it is
	// the sub-format.
	Code FormatCode
	// FormatTag is the tag as declared in the chunk.
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	Extensible     *FmtExtensible
}

// FmtExtensible stores the WAVE_FORMAT_EXTENSIBLE fields.
type FmtExtensible struct {
	ValidBitsPerSample uint16
	ChannelMask        uint32
	SubFormat          FormatCode
}

// BytesPerSample returns the width of one sample of one channel.
func (f *Format) BytesPerSample() int {
	return int(f.BitsPerSample) / 8
}

// readFormatChunk finds and parses the fmt chunk. Chunks before it are
// skipped, but a data chunk before it is an error.
func readFormatChunk(r io.Reader, codec Codec) (*Format, error) {
	ch, err := findFormatChunk(r)
	if err != nil {
		return nil, err
	}

	switch ch.size() {
	case fmtChunkSize, fmtChunkSizeEx, fmtChunkSizeExtensible:
	default:
		return nil, corruptedf("format chunk is of unexpected size: %d", ch.size())
	}

	head, err := ch.read(fmtChunkSize)
	if err != nil {
		return nil, err
	}

	f := &Format{}

	err = codec.DecodeFields(head,
		&f.FormatTag,
		&f.NumChannels,
		&f.SampleRate,
		&f.AvgBytesPerSec,
		&f.BlockAlign,
		&f.BitsPerSample,
	)
	if err != nil {
		return nil, err
	}

	f.Code = FormatCode(f.FormatTag)

	if f.Code == formatExtensible && ch.size() == fmtChunkSizeExtensible {
		f.Extensible, err = readExtensible(ch, codec)
		if err != nil {
			return nil, err
		}

		f.Code = f.Extensible.SubFormat
	}

	depths, ok := supportedBitDepths[f.Code]
	if !ok {
		return nil, notSupportedf("the wave format is not of supported type (%s)", f.Code)
	}

	if !slices.Contains(depths, f.BitsPerSample) {
		return nil, notSupportedf("sample width of '%d' is not supported for %s", f.BitsPerSample, f.Code)
	}

	err = ch.skip()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func findFormatChunk(r io.Reader) (*chunk, error) {
	for {
		ch, err := openChunk(r)
		if err != nil {
			return nil, err
		}

		switch ch.kind() {
		case chunkFmt:
			return ch, nil
		case chunkData:
			return nil, corruptedf("found data chunk before fmt chunk")
		case chunkList, chunkOther:
			err = ch.skip()
			if err != nil {
				return nil, err
			}
		}
	}
}

// readExtensible reads the extension of a 40 byte fmt chunk positioned right
// after the canonical 16 bytes. The sub-format code is the first two bytes
// of the sub-format GUID at offset 24.
func readExtensible(ch *chunk, codec Codec) (*FmtExtensible, error) {
	ext, err := ch.read(8)
	if err != nil {
		return nil, err
	}

	var (
		cbSize uint16
		out    FmtExtensible
	)

	err = codec.DecodeFields(ext, &cbSize, &out.ValidBitsPerSample, &out.ChannelMask)
	if err != nil {
		return nil, err
	}

	err = ch.seek(subFormatOffset)
	if err != nil {
		return nil, err
	}

	sub, err := ch.read(2)
	if err != nil {
		return nil, err
	}

	err = codec.DecodeFields(sub, (*uint16)(&out.SubFormat))
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// validateFormat checks the fmt chunk fields against each other.
//
// The expected block align is BitsPerSample/4, which equals
// NumChannels*BitsPerSample/8 only for two channels. Files that declare the
// usual value for any other channel count are rejected.
func validateFormat(f *Format) error {
	blockAlign := int(f.BitsPerSample) / 4
	if blockAlign != int(f.BlockAlign) {
		return corruptedf("block align is incorrect for %d bits. expected: %d, actual: %d",
			f.BitsPerSample, blockAlign, f.BlockAlign)
	}

	avgBytesPerSec := uint64(f.SampleRate) * uint64(f.BlockAlign)
	if avgBytesPerSec != uint64(f.AvgBytesPerSec) {
		return corruptedf("avg. bytes per sec. is incorrect. expected: %d, actual: %d",
			avgBytesPerSec, f.AvgBytesPerSec)
	}

	return nil
}
