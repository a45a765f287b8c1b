// Package wavy reads RIFF and RIFX WAVE files.
//
// Read and Decode return a File holding the format, the optional LIST/INFO
// tags and the samples; ReadInfo and DecodeInfo stop at the data chunk
// header and report the frame count instead.
//
// Supported encodings are PCM with 8 (unsigned), 16, 24 and 32 bit samples
// and IEEE float with 32 and 64 bit samples, either declared directly or
// wrapped in WAVE_FORMAT_EXTENSIBLE. Samples are returned as a Buffer whose
// concrete type is *Samples[T]:
//
//	switch s := file.Data().(type) {
//	case *wavy.Samples[int16]:
//		left := s.At(0, 0)
//	}
//
// 24 bit samples are stored as int32 with kind KindInt24. They are zero
// padded, not sign-extended, so 0xFFFFFF reads as 16777215; IntBuffer and
// Float32Buffer interpret them as signed.
//
// Errors wrap ErrNotSupported for valid files using features this package
// does not read, ErrCorrupted for inconsistent or truncated files and
// ErrValue for invalid NewFile arguments.
package wavy
