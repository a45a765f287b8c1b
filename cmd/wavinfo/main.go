// This tool prints the format and LIST/INFO tags of the passed wav files.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/cwbudde/wavy"
)

type cli struct {
	Files   []string `arg:"" name:"file" help:"WAV files to inspect"`
	Samples bool     `help:"Decode the sample data and report its kind and shape"`
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A40000"))
	labelStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

func main() {
	var c cli

	kong.Parse(&c,
		kong.Name("wavinfo"),
		kong.Description("Print the format and tags of wav files."),
		kong.UsageOnError(),
	)

	err := run(&c, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func run(c *cli, out io.Writer) error {
	for i, path := range c.Files {
		if i > 0 {
			fmt.Fprintln(out)
		}

		err := describe(path, c.Samples, out)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

func describe(path string, samples bool, out io.Writer) error {
	var (
		info *wavy.Info
		data wavy.Buffer
	)

	if samples {
		f, err := wavy.Read(path)
		if err != nil {
			return err
		}

		info, data = f.Info(), f.Data()
	} else {
		var err error

		info, err = wavy.ReadInfo(path)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, titleStyle.Render(path))
	field(out, "Sample width", fmt.Sprintf("%d bits", info.SampleWidth))
	field(out, "Framerate", fmt.Sprintf("%d Hz", info.Framerate))
	field(out, "Channels", fmt.Sprint(info.NumChannels))
	field(out, "Frames", fmt.Sprint(info.NumFrames))
	field(out, "Duration", info.Duration().String())

	if data != nil {
		field(out, "Sample kind", data.Kind().String())
		field(out, "Shape", shape(data.Shape()))
	}

	if info.Tags == nil {
		fmt.Fprintln(out, labelStyle.Render("No metadata present"))
		return nil
	}

	for _, t := range info.Tags.Fields() {
		if t.Value == "" {
			continue
		}

		field(out, t.Name, t.Value)
	}

	return nil
}

func field(out io.Writer, label, value string) {
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render(label+":"), value)
}

func shape(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprint(d)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
