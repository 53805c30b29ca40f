package tone

import (
	"fmt"
	"math"
)

// Narrow converts an accumulated sample to int16: truncate toward zero, then
// keep the low 16 bits. 32768.9 becomes -32768, -32769.0 becomes 32767.
func Narrow(v float64) int16 {
	return int16(int64(v))
}

// fits reports whether v survives Narrow unchanged apart from truncation.
func fits(v float64) bool {
	t := math.Trunc(v)
	return t >= math.MinInt16 && t <= math.MaxInt16
}

// Gains are evaluated in float64 at run time, not as exact constants.
// Series terms are wrapped in float64() so the compiler may not fuse them
// into the accumulation; output is bit-reproducible across architectures.
var (
	pi           = math.Pi
	squareGain   = 4 / pi
	triangleGain = 8 / (pi * pi)
	sawtoothGain = -2 / pi
)

// sampleFunc returns the unnarrowed value of sample n.
type sampleFunc func(p Params, n int) float64

// sineAt is a*sin(2*pi*f*n/sr).
func sineAt(p Params, n int) float64 {
	return float64(p.Amplitude) * math.Sin(2*pi*p.Frequency*float64(n)/float64(p.SampleRate))
}

// squareAt sums the odd harmonics 1, 3, ... 299:
// a * 4/pi * sum(sin(k*w*t) / k).
func squareAt(p Params, n int) float64 {
	w := 2 * pi * p.Frequency
	t := float64(n) / float64(p.SampleRate)
	sum := 0.0
	for k := 1; k < HarmonicLimit; k += 2 {
		sum += float64((1 / float64(k)) * math.Sin(float64(k)*w*t))
	}
	return float64(p.Amplitude) * squareGain * sum
}

// triangleAt sums k = 1 .. 299 using odd order 2k-1 and sign (-1)^k:
// -a * 8/pi^2 * sum((-1)^k / (2k-1)^2 * sin((2k-1)*w*t)).
func triangleAt(p Params, n int) float64 {
	w := 2 * pi * p.Frequency
	t := float64(n) / float64(p.SampleRate)
	sum := 0.0
	for k := 1; k < HarmonicLimit; k++ {
		order := float64(2*k - 1)
		sum += float64((alternate(k) / (order * order)) * math.Sin(order*w*t))
	}
	return float64(p.Amplitude) * -1 * triangleGain * sum
}

// sawtoothAt sums every harmonic k = 1 .. 299 with sign (-1)^k:
// a * -2/pi * sum((-1)^k / k * sin(k*w*t)).
func sawtoothAt(p Params, n int) float64 {
	w := 2 * pi * p.Frequency
	t := float64(n) / float64(p.SampleRate)
	sum := 0.0
	for k := 1; k < HarmonicLimit; k++ {
		sum += float64((alternate(k) / float64(k)) * math.Sin(w*float64(k)*t))
	}
	return float64(p.Amplitude) * sawtoothGain * sum
}

// alternate returns (-1)^k.
func alternate(k int) float64 {
	if k%2 == 0 {
		return 1
	}
	return -1
}

// sampler returns the generator for shape, or false for an undeclared shape.
func sampler(shape Shape) (sampleFunc, bool) {
	switch shape {
	case ShapeSine:
		return sineAt, true
	case ShapeSquare:
		return squareAt, true
	case ShapeTriangle:
		return triangleAt, true
	case ShapeSawtooth:
		return sawtoothAt, true
	default:
		return sineAt, false
	}
}

func render(p Params, f sampleFunc) []int16 {
	out := make([]int16, p.SampleCount())
	for n := range out {
		out[n] = Narrow(f(p, n))
	}
	return out
}

// Sine generates a pure sine tone.
func Sine(p Params) []int16 { return render(p, sineAt) }

// Square generates a band-limited square wave from 150 odd harmonics.
func Square(p Params) []int16 { return render(p, squareAt) }

// Triangle generates a band-limited triangle wave.
func Triangle(p Params) []int16 { return render(p, triangleAt) }

// Sawtooth generates a band-limited sawtooth wave from 299 harmonics.
func Sawtooth(p Params) []int16 { return render(p, sawtoothAt) }

// Generate dispatches to the generator for shape. Undeclared shapes render
// as Sine; GenerateChecked rejects them.
func Generate(shape Shape, p Params) []int16 {
	f, _ := sampler(shape)
	return render(p, f)
}

// GenerateChecked is Generate plus validation: it fails with ErrUnknownShape
// for an undeclared shape, with ErrInvalidParams for non-positive parameters
// and with an *OverflowError when any sample would wrap.
func GenerateChecked(shape Shape, p Params) ([]int16, error) {
	f, ok := sampler(shape)
	if !ok {
		return nil, fmt.Errorf("tone: %s: %w", shape, ErrUnknownShape)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]int16, p.SampleCount())
	for n := range out {
		v := f(p, n)
		if !fits(v) {
			return nil, &OverflowError{Shape: shape, Index: n, Value: v, Params: p}
		}
		out[n] = Narrow(v)
	}
	return out, nil
}

// Peak returns the largest absolute unnarrowed value shape reaches for p.
func Peak(shape Shape, p Params) float64 {
	f, _ := sampler(shape)
	peak := 0.0
	for n, count := 0, p.SampleCount(); n < count; n++ {
		peak = math.Max(peak, math.Abs(f(p, n)))
	}
	return peak
}
