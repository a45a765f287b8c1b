package wavy

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadContainerHeader(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    Codec
		wantErr error
		msg     string
	}{
		{name: "riff", in: []byte("RIFF\x04\x00\x00\x00WAVE"), want: LittleEndian},
		{name: "rifx", in: []byte("RIFX\x04\x00\x00\x00WAVE"), want: BigEndian},
		{name: "container size ignored", in: []byte("RIFF\xff\xff\xff\xffWAVE"), want: LittleEndian},
		{name: "foreign header", in: []byte("FOOL\x04\x00\x00\x00WAVE"), wantErr: ErrNotSupported, msg: "does not start with RIFF ID"},
		{name: "not wave", in: []byte("RIFF\x04\x00\x00\x00BARB"), wantErr: ErrNotSupported, msg: "does not appear to be a WAVE file"},
		{name: "empty", in: nil, wantErr: ErrCorrupted, msg: "reached end of file prematurely"},
		{name: "short header", in: []byte("RIFF\x04\x00"), wantErr: ErrCorrupted, msg: "reached end of file prematurely"},
		{name: "missing form type", in: []byte("RIFF\x04\x00\x00\x00WA"), wantErr: ErrCorrupted, msg: "reached end of file prematurely"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readContainerHeader(bytes.NewReader(tt.in))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error=%v, want %v", err, tt.wantErr)
				}

				if !strings.Contains(err.Error(), tt.msg) {
					t.Fatalf("error %q does not contain %q", err, tt.msg)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Fatalf("codec=%T, want %T", got, tt.want)
			}
		})
	}
}

func TestReadContainerHeaderNamesForeignID(t *testing.T) {
	_, err := readContainerHeader(bytes.NewReader([]byte("FOOL\x04\x00\x00\x00WAVE")))
	if err == nil || !strings.Contains(err.Error(), "'FOOL'") {
		t.Fatalf("expected the header ID in the error, got %v", err)
	}
}
