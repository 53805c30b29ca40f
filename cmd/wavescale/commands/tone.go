package commands

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/haivivi/wavescale/pkg/audio/notes"
	"github.com/haivivi/wavescale/pkg/audio/tone"
	"github.com/haivivi/wavescale/pkg/cli"
)

var (
	toneFreq       string
	toneOutputFile string
	toneInputFile  string
)

// ToneRequest is a tone described in a YAML or JSON file (-f). Flags given
// on the command line take precedence over the file.
type ToneRequest struct {
	Shape      string  `yaml:"shape" json:"shape"`
	Frequency  float64 `yaml:"frequency" json:"frequency"`
	Note       string  `yaml:"note" json:"note"`
	Duration   float64 `yaml:"duration" json:"duration"`
	Amplitude  int     `yaml:"amplitude" json:"amplitude"`
	SampleRate int     `yaml:"sample_rate" json:"sample_rate"`
	Output     string  `yaml:"output" json:"output"`
}

func (r ToneRequest) profile() cli.Profile {
	return cli.Profile{
		SampleRate: r.SampleRate,
		Duration:   r.Duration,
		Amplitude:  r.Amplitude,
		Shape:      r.Shape,
	}
}

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Render a single waveform",
	Long: `Render one tone of the given shape and frequency. The frequency may be
any positive number of Hz or a note name.

Examples:
  wavescale tone --shape square --freq 440
  wavescale tone --shape sawtooth --freq C4 --duration 0.5 -o saw.wav
  wavescale tone -f tone.yaml`,
	Args: cobra.NoArgs,
	RunE: runTone,
}

func init() {
	toneCmd.Flags().StringVar(&toneFreq, "freq", "", "frequency in Hz or note name, e.g. 440 or A4")
	toneCmd.Flags().StringVarP(&toneOutputFile, "output", "o", "", "output file (default: <out>/<freq>_<shape>.wav)")
	toneCmd.Flags().StringVarP(&toneInputFile, "file", "f", "", "tone request file (YAML or JSON)")
	addRenderFlags(toneCmd)
}

func runTone(cmd *cobra.Command, args []string) error {
	var req ToneRequest
	if toneInputFile != "" {
		if err := cli.LoadRequest(toneInputFile, &req); err != nil {
			return err
		}
	}

	s, err := resolveSettings(cmd, req.profile())
	if err != nil {
		return err
	}

	freq, err := toneFrequency(req)
	if err != nil {
		return err
	}

	p := s.params(freq)
	if err := p.Validate(); err != nil {
		return err
	}
	var samples []int16
	if s.CheckOverflow {
		if samples, err = tone.GenerateChecked(s.Shape, p); err != nil {
			return err
		}
	} else {
		samples = tone.Generate(s.Shape, p)
		if peak := tone.Peak(s.Shape, p); peak > math.MaxInt16 {
			slog.Warn("samples wrap around the 16-bit range", "shape", s.Shape, "peak", peak, "amplitude", p.Amplitude)
		}
	}

	path := toneOutputFile
	if path == "" {
		path = req.Output
	}
	if path == "" {
		path = filepath.Join(s.OutputDir, fmt.Sprintf("%s_%s%s", notes.FormatHz(freq), s.Shape, s.ext()))
	}
	size, err := writeAudio(path, s.Format, s.SampleRate, samples)
	if err != nil {
		return err
	}

	out := writtenFile{
		Path:     path,
		Format:   s.Format,
		Samples:  len(samples),
		Duration: float64(len(samples)) / float64(s.SampleRate),
		Bytes:    size,
	}
	if outputJSON {
		return outputResult(out)
	}
	cli.PrintSuccess("%s %s Hz -> %s", s.Shape, notes.FormatHz(freq), out.summary())
	return nil
}

func toneFrequency(req ToneRequest) (float64, error) {
	switch {
	case toneFreq != "":
		return parseFrequency(toneFreq)
	case req.Note != "":
		return parseFrequency(req.Note)
	case req.Frequency != 0:
		return req.Frequency, nil
	default:
		return 0, fmt.Errorf("frequency is required (use --freq or a request file)")
	}
}
