package commands

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/wavescale/pkg/audio/notes"
	"github.com/haivivi/wavescale/pkg/audio/scale"
	"github.com/haivivi/wavescale/pkg/cli"
)

var (
	scaleStart string
	scaleSeed  int64
	scaleTypes string
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Render scales from a start note",
	Long: `Render one file per scale, starting from --start or a random note of the
88-key table. Files are named <start>_<scale>_scale.wav (or .pcm with
--format raw) and written to --out.

Scales starting near the top of the keyboard stop at C8 and contain fewer
than eight notes.

Examples:
  wavescale scale
  wavescale scale --seed 42
  wavescale scale --start 440.0 --scales major
  wavescale scale --start C4 --shape triangle --format raw --out renders/`,
	Args: cobra.NoArgs,
	RunE: runScale,
}

func init() {
	scaleCmd.Flags().StringVar(&scaleStart, "start", "", "start note as Hz (must be in the table) or name, e.g. 440.0 or A4 (default: random)")
	scaleCmd.Flags().Int64Var(&scaleSeed, "seed", 0, "seed for the random start note")
	scaleCmd.Flags().StringVar(&scaleTypes, "scales", "major,minor", "comma-separated scales to render ("+strings.Join(notes.ScaleNames(), ", ")+")")
	addRenderFlags(scaleCmd)
}

// scaleResult is the --json report of a scale run.
type scaleResult struct {
	Start     float64       `json:"start_hz" yaml:"start_hz"`
	StartNote string        `json:"start_note" yaml:"start_note"`
	Scales    []scaleOutput `json:"scales" yaml:"scales"`
}

type scaleOutput struct {
	*scale.Waveform
	File writtenFile `json:"file" yaml:"file"`
}

func runScale(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	idx, err := startIndex(cmd)
	if err != nil {
		return err
	}
	start := notes.Frequencies[idx]

	names := splitList(scaleTypes)
	if len(names) == 0 {
		return fmt.Errorf("no scales given")
	}

	if !outputJSON {
		fmt.Printf("Start freq: %s\n", notes.FormatHz(start))
	}
	slog.Info("composing scales", "start_hz", start, "start_note", notes.Name(idx), "scales", names)

	waves, err := scale.ComposeAll(start, names, s.scaleOptions())
	if err != nil {
		return err
	}

	result := scaleResult{Start: start, StartNote: notes.Name(idx)}
	for _, w := range waves {
		path := filepath.Join(s.OutputDir, scaleFileName(start, w.Scale, s.ext()))
		size, err := writeAudio(path, s.Format, w.SampleRate, w.Samples)
		if err != nil {
			return err
		}
		out := scaleOutput{
			Waveform: w,
			File: writtenFile{
				Path:     path,
				Format:   s.Format,
				Samples:  len(w.Samples),
				Duration: w.Duration(),
				Bytes:    size,
			},
		}
		result.Scales = append(result.Scales, out)
		slog.Info("wrote scale", "scale", w.Scale, "notes", len(w.Notes), "path", path)
		if !outputJSON {
			cli.PrintSuccess("%s scale: %d notes -> %s", w.Scale, len(w.Notes), out.File.summary())
		}
	}

	if outputJSON {
		return outputResult(result)
	}
	return nil
}

// startIndex picks the table index of the first note: --start if given,
// otherwise a random key, reproducible with --seed.
func startIndex(cmd *cobra.Command) (int, error) {
	if scaleStart != "" {
		idx, err := notes.Resolve(scaleStart)
		if err != nil {
			return 0, fmt.Errorf("start note: %w", err)
		}
		return idx, nil
	}
	if cmd.Flags().Changed("seed") {
		seed := uint64(scaleSeed)
		rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
		return rng.IntN(notes.Len), nil
	}
	return rand.IntN(notes.Len), nil
}

// scaleFileName names a rendered scale after its start frequency, e.g.
// "440.0_major_scale.wav".
func scaleFileName(start float64, scaleType, ext string) string {
	return fmt.Sprintf("%s_%s_scale%s", notes.FormatHz(start), scaleType, ext)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
