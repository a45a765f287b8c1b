// This tool converts a wav file into an aiff file with the same samples and
// stores it next to the source unless --out is given.
package main

import (
	"fmt"
	"math"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/wavy"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

// floatBitDepth is the integer depth float files are exported with.
const floatBitDepth = 24

type cli struct {
	Path string `required:"" help:"The path to the wav file to convert to aiff"`
	Out  string `help:"The output path, defaults to the source path with an .aif extension"`
}

func main() {
	var c cli

	kong.Parse(&c,
		kong.Name("wavtoaiff"),
		kong.Description("Convert a wav file to aiff."),
		kong.UsageOnError(),
	)

	outPath, err := convert(expandHome(c.Path), c.Out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	usr, err := user.Current()
	if err != nil {
		return path
	}

	return filepath.Join(usr.HomeDir, path[2:])
}

func convert(sourcePath, outPath string) (string, error) {
	file, err := wavy.Read(sourcePath)
	if err != nil {
		return "", fmt.Errorf("invalid WAV file %s: %w", sourcePath, err)
	}

	if outPath == "" {
		outPath = sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"
	}

	buf := toIntBuffer(file)

	outFile, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, file.Framerate(), buf.SourceBitDepth, file.NumChannels())

	err = encoder.Write(buf)
	if err != nil {
		return "", err
	}

	err = encoder.Close()
	if err != nil {
		return "", err
	}

	return outPath, nil
}

// toIntBuffer converts the samples to signed integers as AIFF stores them.
func toIntBuffer(file *wavy.File) *audio.IntBuffer {
	data := file.Data()

	switch {
	case data.Kind().IsFloat():
		f := data.Float32Buffer(file.Framerate())
		return float32ToIntBuffer(f.Data, f.Format, floatBitDepth)
	case data.Kind() == wavy.KindUint8:
		buf := data.IntBuffer(file.Framerate())
		for i, v := range buf.Data {
			buf.Data[i] = v - 128
		}

		return buf
	default:
		return data.IntBuffer(file.Framerate())
	}
}

func float32ToIntBuffer(data []float32, format *audio.Format, bitDepth int) *audio.IntBuffer {
	intBuf := &audio.IntBuffer{
		Format:         format,
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(data)),
	}
	for i, v := range data {
		intBuf.Data[i] = float32ToPCMInt(v, bitDepth)
	}

	return intBuf
}

func float32ToPCMInt(value float32, bitDepth int) int {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 16:
		return int(clampScaledPCM(value, 32768.0, 32767))
	case 24:
		return int(clampScaledPCM(value, 8388608.0, 8388607))
	case 32:
		return int(clampScaledPCM(value, 2147483648.0, 2147483647))
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64, max int64) int32 {
	sample := min(int64(math.Round(float64(value)*scale)), max)

	min := int64(-scale)
	if sample < min {
		sample = min
	}

	return int32(sample)
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
