// Package tone synthesizes periodic waveforms as 16-bit PCM samples.
//
// Square, triangle and sawtooth waves are additive Fourier approximations
// truncated below harmonic 300, so they ripple near their edges (Gibbs
// phenomenon). All four generators are pure functions of Params.
//
// Samples are narrowed to int16 by truncating toward zero and wrapping, with
// no clamping: a peak above 32767 folds over to negative values. Use
// GenerateChecked to turn that into an error. DefaultAmplitude leaves enough
// headroom for every shape.
package tone

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultAmplitude is the peak sample magnitude that stays inside int16 for
// every shape, including the square wave's overshoot.
const DefaultAmplitude = 25000

// HarmonicLimit bounds every Fourier series: harmonic orders stay below it.
const HarmonicLimit = 300

var (
	// ErrInvalidParams is returned by Params.Validate.
	ErrInvalidParams = errors.New("invalid tone parameters")
	// ErrAmplitudeOverflow is wrapped by OverflowError.
	ErrAmplitudeOverflow = errors.New("amplitude overflows 16-bit range")
	// ErrUnknownShape is returned by ParseShape.
	ErrUnknownShape = errors.New("unknown waveform shape")
)

// Params describes one tone.
type Params struct {
	SampleRate int     // samples per second
	Frequency  float64 // Hz
	Duration   float64 // seconds
	Amplitude  int     // peak sample magnitude
}

// SampleCount returns floor(SampleRate * Duration).
func (p Params) SampleCount() int {
	n := int(float64(p.SampleRate) * p.Duration)
	if n < 0 {
		return 0
	}
	return n
}

// Validate reports whether every field is positive.
func (p Params) Validate() error {
	switch {
	case p.SampleRate <= 0:
		return fmt.Errorf("tone: sample rate %d: %w", p.SampleRate, ErrInvalidParams)
	case !(p.Frequency > 0) || math.IsInf(p.Frequency, 0):
		return fmt.Errorf("tone: frequency %v: %w", p.Frequency, ErrInvalidParams)
	case !(p.Duration > 0) || math.IsInf(p.Duration, 0):
		return fmt.Errorf("tone: duration %v: %w", p.Duration, ErrInvalidParams)
	case p.Amplitude <= 0:
		return fmt.Errorf("tone: amplitude %d: %w", p.Amplitude, ErrInvalidParams)
	}
	return nil
}

// Shape selects a waveform generator.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeSquare
	ShapeTriangle
	ShapeSawtooth
)

var shapeNames = [...]string{
	ShapeSine:     "sine",
	ShapeSquare:   "square",
	ShapeTriangle: "triangle",
	ShapeSawtooth: "sawtooth",
}

// String returns the lower-case shape name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape parses a shape name. "saw" is accepted for sawtooth.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "saw" {
		return ShapeSawtooth, nil
	}
	for i, s := range shapeNames {
		if s == n {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("tone: shape %q: %w", name, ErrUnknownShape)
}

// Shapes returns every shape in declaration order.
func Shapes() []Shape {
	return []Shape{ShapeSine, ShapeSquare, ShapeTriangle, ShapeSawtooth}
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// OverflowError reports the first sample whose value left the int16 range
// before narrowing.
type OverflowError struct {
	Shape  Shape
	Index  int
	Value  float64
	Params Params
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("tone: %s %v Hz amplitude %d: sample %d = %.1f: %v",
		e.Shape, e.Params.Frequency, e.Params.Amplitude, e.Index, e.Value, ErrAmplitudeOverflow)
}

func (e *OverflowError) Unwrap() error {
	return ErrAmplitudeOverflow
}
