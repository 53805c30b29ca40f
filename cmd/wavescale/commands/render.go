package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/wavescale/pkg/audio/notes"
	"github.com/haivivi/wavescale/pkg/audio/pcm"
	"github.com/haivivi/wavescale/pkg/audio/scale"
	"github.com/haivivi/wavescale/pkg/audio/tone"
	"github.com/haivivi/wavescale/pkg/audio/wavfile"
	"github.com/haivivi/wavescale/pkg/cli"
)

// Output container names accepted by --format.
const (
	formatWAV = "wav"
	formatRaw = "raw"
)

// builtinProfile holds the defaults every profile and flag is layered onto.
var builtinProfile = cli.Profile{
	SampleRate: scale.DefaultSampleRate,
	Duration:   scale.DefaultDuration,
	Amplitude:  tone.DefaultAmplitude,
	Shape:      tone.ShapeSine.String(),
	Format:     formatWAV,
	OutputDir:  ".",
}

// settings are the effective render options of one command run.
type settings struct {
	SampleRate    int
	Duration      float64
	Amplitude     int
	Shape         tone.Shape
	Format        string
	OutputDir     string
	CheckOverflow bool
}

func (s settings) scaleOptions() scale.Options {
	return scale.Options{
		SampleRate:    s.SampleRate,
		Duration:      s.Duration,
		Amplitude:     s.Amplitude,
		Shape:         s.Shape,
		CheckOverflow: s.CheckOverflow,
	}
}

func (s settings) params(freq float64) tone.Params {
	return tone.Params{
		SampleRate: s.SampleRate,
		Frequency:  freq,
		Duration:   s.Duration,
		Amplitude:  s.Amplitude,
	}
}

// ext returns the file extension of the output format.
func (s settings) ext() string {
	if s.Format == formatRaw {
		return ".pcm"
	}
	return ".wav"
}

// addRenderFlags registers the flags that override profile settings.
func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("sample-rate", builtinProfile.SampleRate, "samples per second")
	f.Float64("duration", builtinProfile.Duration, "seconds per note")
	f.Int("amplitude", builtinProfile.Amplitude, "peak sample magnitude")
	f.String("shape", builtinProfile.Shape, "waveform shape (sine, square, triangle, sawtooth)")
	f.String("format", builtinProfile.Format, "output format (wav, raw)")
	f.String("out", builtinProfile.OutputDir, "output directory")
	f.Bool("check-overflow", false, "fail instead of wrapping samples outside the 16-bit range")
}

// applyFlags assigns every render flag set explicitly on the command line
// to p, zero values and false included.
func applyFlags(cmd *cobra.Command, p *cli.Profile) {
	f := cmd.Flags()
	if f.Changed("sample-rate") {
		p.SampleRate, _ = f.GetInt("sample-rate")
	}
	if f.Changed("duration") {
		p.Duration, _ = f.GetFloat64("duration")
	}
	if f.Changed("amplitude") {
		p.Amplitude, _ = f.GetInt("amplitude")
	}
	if f.Changed("shape") {
		p.Shape, _ = f.GetString("shape")
	}
	if f.Changed("format") {
		p.Format, _ = f.GetString("format")
	}
	if f.Changed("out") {
		p.OutputDir, _ = f.GetString("out")
	}
	if f.Changed("check-overflow") {
		p.CheckOverflow, _ = f.GetBool("check-overflow")
	}
}

// flagProfile collects the render flags set explicitly on the command line.
func flagProfile(cmd *cobra.Command) cli.Profile {
	var p cli.Profile
	applyFlags(cmd, &p)
	return p
}

// resolveSettings layers built-in defaults, the selected profile and any
// extra layers, then applies the explicit flags of cmd on top.
func resolveSettings(cmd *cobra.Command, layers ...cli.Profile) (settings, error) {
	eff := builtinProfile
	if cfg, err := getConfig(); err == nil {
		p, err := cfg.ResolveProfile(profileName)
		if err != nil {
			return settings{}, err
		}
		eff = eff.Merge(*p)
	} else if profileName != "" {
		return settings{}, err
	}
	for _, l := range layers {
		eff = eff.Merge(l)
	}
	applyFlags(cmd, &eff)
	return toSettings(eff)
}

func toSettings(p cli.Profile) (settings, error) {
	switch {
	case p.SampleRate <= 0:
		return settings{}, fmt.Errorf("sample rate %d: %w", p.SampleRate, tone.ErrInvalidParams)
	case !(p.Duration > 0):
		return settings{}, fmt.Errorf("duration %v: %w", p.Duration, tone.ErrInvalidParams)
	case p.Amplitude <= 0:
		return settings{}, fmt.Errorf("amplitude %d: %w", p.Amplitude, tone.ErrInvalidParams)
	}
	shape, err := tone.ParseShape(p.Shape)
	if err != nil {
		return settings{}, err
	}
	if err := checkFormat(p.Format); err != nil {
		return settings{}, err
	}
	s := settings{
		SampleRate:    p.SampleRate,
		Duration:      p.Duration,
		Amplitude:     p.Amplitude,
		Shape:         shape,
		Format:        strings.ToLower(p.Format),
		OutputDir:     p.OutputDir,
		CheckOverflow: p.CheckOverflow,
	}
	slog.Debug("render settings",
		"sample_rate", s.SampleRate,
		"duration", s.Duration,
		"amplitude", s.Amplitude,
		"shape", s.Shape,
		"format", s.Format,
		"out", s.OutputDir,
		"check_overflow", s.CheckOverflow,
	)
	return s, nil
}

func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case formatWAV, formatRaw:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want wav or raw)", format)
	}
}

// parseFrequency accepts a number of Hz or a note name such as "A4".
func parseFrequency(s string) (float64, error) {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f, nil
	}
	i, err := notes.Lookup(s)
	if err != nil {
		return 0, fmt.Errorf("frequency %q is neither a number nor a note name", s)
	}
	return notes.Frequencies[i], nil
}

// writeAudio writes samples to path as WAV or headerless L16 and returns the
// file size.
func writeAudio(path, format string, sampleRate int, samples []int16) (int64, error) {
	if err := cli.EnsureDir(filepath.Dir(path)); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}
	var err error
	switch format {
	case formatRaw:
		err = pcm.WriteFile(path, pcm.L16Mono(sampleRate).SampleChunk(samples))
	default:
		err = wavfile.Write(path, sampleRate, samples)
	}
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	slog.Debug("wrote file", "path", path, "format", format, "samples", len(samples), "bytes", info.Size())
	return info.Size(), nil
}

// writtenFile describes one rendered output file.
type writtenFile struct {
	Path     string  `json:"path" yaml:"path"`
	Format   string  `json:"format" yaml:"format"`
	Samples  int     `json:"samples" yaml:"samples"`
	Duration float64 `json:"duration" yaml:"duration"`
	Bytes    int64   `json:"bytes" yaml:"bytes"`
}

func (f writtenFile) summary() string {
	return fmt.Sprintf("%s (%d samples, %s, %s)", f.Path, f.Samples,
		cli.FormatDuration(cli.Seconds(f.Duration)), cli.FormatBytes(f.Bytes))
}
