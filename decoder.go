package wavy

import "io"

// decoded is the outcome of one pass over a WAVE stream.
type decoded struct {
	format   *Format
	tags     *Tags
	dataSize int
	// data is nil when samples were not requested.
	data Buffer
}

// decodeStream reads a WAVE stream front to back. Without readData it stops
// at the data chunk header and only records the declared data size.
func decodeStream(r io.Reader, readData bool) (*decoded, error) {
	codec, err := readContainerHeader(r)
	if err != nil {
		return nil, err
	}

	format, err := readFormatChunk(r, codec)
	if err != nil {
		return nil, err
	}

	err = validateFormat(format)
	if err != nil {
		return nil, err
	}

	dataChunk, tags, err := readMetadata(r)
	if err != nil {
		return nil, err
	}

	out := &decoded{format: format, tags: tags, dataSize: dataChunk.size()}
	if !readData {
		return out, nil
	}

	out.data, err = readSamples(dataChunk, format, codec)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// readSamples decodes the body of the data chunk. Multi-channel data is
// shaped into frames.
func readSamples(ch *chunk, f *Format, codec Codec) (Buffer, error) {
	total := ch.size()

	if f.BlockAlign == 0 || total%int(f.BlockAlign) != 0 {
		return nil, corruptedf("data size does not match frame size of %d bits", f.BitsPerSample)
	}

	buf, err := codec.DecodeSamples(ch.reader(), total, f.BytesPerSample(), f.Code == FormatIEEEFloat)
	if err != nil {
		return nil, err
	}

	if f.NumChannels > 1 {
		err = buf.reshape(int(f.NumChannels))
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}
