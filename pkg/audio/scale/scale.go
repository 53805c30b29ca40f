// Package scale renders musical scales by walking the note table with a
// step pattern and concatenating one tone per degree.
package scale

import (
	"fmt"
	"sync"

	"github.com/haivivi/wavescale/pkg/audio/notes"
	"github.com/haivivi/wavescale/pkg/audio/tone"
)

// Defaults used by ComposeScale.
const (
	DefaultSampleRate = 44100
	DefaultDuration   = 1.0
	DefaultAmplitude  = tone.DefaultAmplitude
)

// Options configures composition.
type Options struct {
	SampleRate int        // samples per second (default: 44100)
	Duration   float64    // seconds per note (default: 1.0)
	Amplitude  int        // peak magnitude (default: 25000)
	Shape      tone.Shape // waveform per note (default: Sine)

	// CheckOverflow fails composition with tone.ErrAmplitudeOverflow instead
	// of letting samples wrap.
	CheckOverflow bool
}

// DefaultOptions returns the options ComposeScale uses.
func DefaultOptions() Options {
	return Options{
		SampleRate: DefaultSampleRate,
		Duration:   DefaultDuration,
		Amplitude:  DefaultAmplitude,
		Shape:      tone.ShapeSine,
	}
}

func (o Options) withDefaults() Options {
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Duration == 0 {
		o.Duration = DefaultDuration
	}
	if o.Amplitude == 0 {
		o.Amplitude = DefaultAmplitude
	}
	return o
}

// Waveform is a rendered scale.
type Waveform struct {
	Scale          string    `json:"scale" yaml:"scale"`
	Start          float64   `json:"start_hz" yaml:"start_hz"`
	Notes          []float64 `json:"notes_hz" yaml:"notes_hz"`
	SampleRate     int       `json:"sample_rate" yaml:"sample_rate"`
	SamplesPerNote int       `json:"samples_per_note" yaml:"samples_per_note"`
	Samples        []int16   `json:"-" yaml:"-"`
}

// Duration returns the waveform length in seconds.
func (w *Waveform) Duration() float64 {
	if w.SampleRate == 0 {
		return 0
	}
	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// ComposeScale renders scaleType from start with the default options:
// 44.1 kHz, one second per note, amplitude 25000, sine tones.
func ComposeScale(start float64, scaleType string) (*Waveform, error) {
	return Compose(start, scaleType, DefaultOptions())
}

// Compose renders scaleType starting at the table frequency start.
//
// The walk reads the note at the current index, renders it, then advances by
// the next step. It stops early, without error, once the index passes the
// top of the table, so scales starting in the last octave yield fewer notes.
// start must equal a table entry exactly. Zero option fields take their
// defaults; negative ones fail with tone.ErrInvalidParams.
func Compose(start float64, scaleType string, opts Options) (*Waveform, error) {
	idx, err := notes.Index(start)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	pattern, err := notes.Pattern(scaleType)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	opts = opts.withDefaults()

	p := tone.Params{
		SampleRate: opts.SampleRate,
		Frequency:  start,
		Duration:   opts.Duration,
		Amplitude:  opts.Amplitude,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	wf := &Waveform{
		Scale:          scaleType,
		Start:          start,
		SampleRate:     opts.SampleRate,
		SamplesPerNote: p.SampleCount(),
	}
	wf.Samples = make([]int16, 0, len(pattern)*wf.SamplesPerNote)

	for _, step := range pattern {
		if idx >= notes.Len {
			break
		}
		p.Frequency = notes.Frequencies[idx]
		samples, err := render(opts, p)
		if err != nil {
			return nil, fmt.Errorf("scale: %s from %s Hz: %w", scaleType, notes.FormatHz(start), err)
		}
		wf.Notes = append(wf.Notes, p.Frequency)
		wf.Samples = append(wf.Samples, samples...)
		idx += step
	}
	return wf, nil
}

func render(opts Options, p tone.Params) ([]int16, error) {
	if opts.CheckOverflow {
		return tone.GenerateChecked(opts.Shape, p)
	}
	return tone.Generate(opts.Shape, p), nil
}

// ComposeAll renders each scale type from the same start concurrently. The
// result is in the order of scaleTypes. The first error, in that order, is
// returned.
func ComposeAll(start float64, scaleTypes []string, opts Options) ([]*Waveform, error) {
	out := make([]*Waveform, len(scaleTypes))
	errs := make([]error, len(scaleTypes))

	var wg sync.WaitGroup
	for i, st := range scaleTypes {
		wg.Add(1)
		go func(i int, st string) {
			defer wg.Done()
			out[i], errs[i] = Compose(start, st, opts)
		}(i, st)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
