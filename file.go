package wavy

import (
	"fmt"
	"time"
)

// File is a decoded WAVE file. It is immutable once constructed.
type File struct {
	sampleWidth int
	framerate   int
	data        Buffer
	tags        *Tags
}

// NewFile validates its arguments and builds a File. sampleWidth is in bits,
// framerate in frames per second. tags may be nil.
func NewFile(sampleWidth, framerate int, data Buffer, tags *Tags) (*File, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: argument 'data' must be a sample buffer", ErrValue)
	}

	if !data.Kind().Valid() {
		return nil, fmt.Errorf("%w: data of kind %s is not supported", ErrValue, data.Kind())
	}

	if data.Len() == 0 {
		return nil, fmt.Errorf("%w: data array cannot be empty", ErrValue)
	}

	if sampleWidth <= 0 {
		return nil, fmt.Errorf("%w: sample width must be positive, got %d", ErrValue, sampleWidth)
	}

	if framerate <= 0 {
		return nil, fmt.Errorf("%w: framerate must be positive, got %d", ErrValue, framerate)
	}

	return &File{
		sampleWidth: sampleWidth,
		framerate:   framerate,
		data:        data,
		tags:        tags,
	}, nil
}

// SampleWidth returns the number of bits per sample.
func (f *File) SampleWidth() int { return f.sampleWidth }

// Framerate returns the number of frames per second.
func (f *File) Framerate() int { return f.framerate }

// NumChannels returns the number of samples per frame.
func (f *File) NumChannels() int { return f.data.NumChannels() }

// NumFrames returns the number of frames.
func (f *File) NumFrames() int { return f.data.NumFrames() }

// Data returns the samples. Callers must not modify them.
func (f *File) Data() Buffer { return f.data }

// Tags returns the INFO tags, or nil if the file has none.
func (f *File) Tags() *Tags { return f.tags }

// Duration returns the playing time of the samples.
func (f *File) Duration() time.Duration {
	return durationFromFrames(f.NumFrames(), f.framerate)
}

func (f *File) String() string {
	return fmt.Sprintf("File(sample_width=%d, framerate=%d, n_channels=%d, n_frames=%d)",
		f.sampleWidth, f.framerate, f.NumChannels(), f.NumFrames())
}

// Info returns the description of f without its samples.
func (f *File) Info() *Info {
	return &Info{
		SampleWidth: f.sampleWidth,
		Framerate:   f.framerate,
		NumChannels: f.NumChannels(),
		NumFrames:   f.NumFrames(),
		Tags:        f.tags,
	}
}

// Info describes a WAVE file without its samples.
type Info struct {
	SampleWidth int
	Framerate   int
	NumChannels int
	NumFrames   int
	Tags        *Tags
}

// Duration returns the playing time of the described samples.
func (i *Info) Duration() time.Duration {
	return durationFromFrames(i.NumFrames, i.Framerate)
}

func newInfo(d *decoded) *Info {
	return &Info{
		SampleWidth: int(d.format.BitsPerSample),
		Framerate:   int(d.format.SampleRate),
		NumChannels: int(d.format.NumChannels),
		NumFrames:   d.dataSize / int(d.format.BlockAlign),
		Tags:        d.tags,
	}
}
