package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/haivivi/wavescale/pkg/audio/notes"
	"github.com/haivivi/wavescale/pkg/audio/pcm"
	"github.com/haivivi/wavescale/pkg/audio/plot"
	"github.com/haivivi/wavescale/pkg/audio/tone"
	"github.com/haivivi/wavescale/pkg/audio/wavfile"
	"github.com/haivivi/wavescale/pkg/cli"
)

var (
	plotFreq     string
	plotDuration float64
	plotWidth    int
	plotHeight   int
	plotFile     string
	plotPlain    bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw a waveform as a terminal chart",
	Long: `Draw a time/amplitude chart of a synthesized tone, or of a rendered
.wav or .pcm file with --file. Raw .pcm files are read at the profile's
sample rate.

Examples:
  wavescale plot --shape square --freq 440
  wavescale plot --shape triangle --freq 110 --duration 0.05 --width 100
  wavescale plot --file 440.0_major_scale.wav`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	f := plotCmd.Flags()
	f.StringVar(&plotFreq, "freq", "440", "frequency in Hz or note name")
	f.Float64Var(&plotDuration, "duration", 0.01, "seconds to plot")
	f.IntVar(&plotWidth, "width", plot.DefaultWidth, "chart columns")
	f.IntVar(&plotHeight, "height", plot.DefaultHeight, "chart rows")
	f.StringVar(&plotFile, "file", "", "plot a .wav or .pcm file instead of a synthesized tone")
	f.BoolVar(&plotPlain, "plain", false, "print the chart without a frame")
	f.Int("sample-rate", builtinProfile.SampleRate, "samples per second")
	f.Int("amplitude", builtinProfile.Amplitude, "peak sample magnitude")
	f.String("shape", builtinProfile.Shape, "waveform shape (sine, square, triangle, sawtooth)")
}

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	var (
		samples  []int16
		duration float64
		title    string
	)
	if plotFile != "" {
		samples, duration, err = loadSamples(plotFile, s.SampleRate)
		if err != nil {
			return err
		}
		title = filepath.Base(plotFile)
	} else {
		freq, err := parseFrequency(plotFreq)
		if err != nil {
			return err
		}
		p := s.params(freq)
		p.Duration = plotDuration
		if err := p.Validate(); err != nil {
			return err
		}
		samples = tone.Generate(s.Shape, p)
		duration = plotDuration
		title = fmt.Sprintf("%s %s Hz", s.Shape, notes.FormatHz(freq))
	}
	if len(samples) == 0 {
		return fmt.Errorf("nothing to plot: no samples")
	}

	lines := plot.Render(samples, duration, plot.Options{Width: plotWidth, Height: plotHeight})
	if plotPlain {
		fmt.Println(strings.Join(lines, "\n"))
		return nil
	}

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	frame := cli.Frame{
		Styles: cli.DefaultStyles,
		Title:  "wavescale",
		Status: title,
		Sections: []cli.Section{
			{Label: "Waveform", Content: cli.Static(lines)},
		},
		Help: fmt.Sprintf("%d samples, %s", len(samples), cli.FormatDuration(cli.Seconds(duration))),
	}
	fmt.Println(frame.Fit(width + 4))
	return nil
}

// loadSamples reads a WAV file, or a headerless L16 file at sampleRate.
func loadSamples(path string, sampleRate int) ([]int16, float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".pcm") {
		samples, err := pcm.ReadFile(path)
		if err != nil {
			return nil, 0, err
		}
		format := pcm.L16Mono(sampleRate)
		return samples, format.Duration(int64(len(samples)) * 2).Seconds(), nil
	}
	f, err := wavfile.Read(path)
	if err != nil {
		return nil, 0, err
	}
	return f.Samples, f.Duration(), nil
}
