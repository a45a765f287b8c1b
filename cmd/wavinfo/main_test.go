package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/wavy"
)

// writeWav writes a stereo 16 bit file with three frames and an optional
// INFO artist entry.
func writeWav(t *testing.T, artist string) string {
	t.Helper()

	var list bytes.Buffer
	if artist != "" {
		value := append([]byte(artist), 0)
		if len(value)%2 == 1 {
			value = append(value, 0)
		}

		list.WriteString("LISTxxxxINFOIART")
		binary.Write(&list, binary.LittleEndian, uint32(len(value)))
		list.Write(value)
		binary.LittleEndian.PutUint32(list.Bytes()[4:8], uint32(list.Len()-8))
	}

	var body bytes.Buffer

	body.WriteString("WAVEfmt ")
	binary.Write(&body, binary.LittleEndian, uint32(16))
	binary.Write(&body, binary.LittleEndian, []uint16{1, 2})
	binary.Write(&body, binary.LittleEndian, []uint32{8000, 32000})
	binary.Write(&body, binary.LittleEndian, []uint16{4, 16})
	body.Write(list.Bytes())
	body.WriteString("data")
	binary.Write(&body, binary.LittleEndian, uint32(12))
	binary.Write(&body, binary.LittleEndian, []int16{1, 2, 3, 4, 5, 6})

	var file bytes.Buffer

	file.WriteString("RIFF")
	binary.Write(&file, binary.LittleEndian, uint32(body.Len()))
	file.Write(body.Bytes())

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, file.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunPrintsInfo(t *testing.T) {
	path := writeWav(t, "artist")

	var out bytes.Buffer
	if err := run(&cli{Files: []string{path}}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	checks := []string{"16 bits", "8000 Hz", "Frames:", "375µs", "artist:", "artist"}
	for _, c := range checks {
		if !strings.Contains(out.String(), c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out.String())
		}
	}

	if strings.Contains(out.String(), "Shape:") {
		t.Fatal("shape should only be printed with --samples")
	}
}

func TestRunNoMetadata(t *testing.T) {
	var out bytes.Buffer
	if err := run(&cli{Files: []string{writeWav(t, "")}}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(out.String(), "No metadata present") {
		t.Fatalf("expected 'No metadata present' in output, got:\n%s", out.String())
	}
}

func TestRunSamples(t *testing.T) {
	var out bytes.Buffer
	if err := run(&cli{Files: []string{writeWav(t, "artist")}, Samples: true}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	checks := []string{"int16", "(3, 2)", "375µs", "16 bits", "artist"}
	for _, c := range checks {
		if !strings.Contains(out.String(), c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out.String())
		}
	}
}

func TestRunInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("FORM\x04\x00\x00\x00AIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := run(&cli{Files: []string{path}}, &bytes.Buffer{})
	if !errors.Is(err, wavy.ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}

	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestParseRequiresFile(t *testing.T) {
	var c cli

	parser, err := kong.New(&c, kong.Name("wavinfo"), kong.Exit(func(int) {}))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(nil); err == nil {
		t.Fatal("expected error without file argument")
	}

	path := writeWav(t, "")
	if _, err := parser.Parse([]string{"--samples", path}); err != nil {
		t.Fatal(err)
	}

	if !c.Samples || len(c.Files) != 1 || c.Files[0] != path {
		t.Fatalf("unexpected parse result %+v", c)
	}
}
