// Package plot renders sample sequences as terminal time/amplitude charts.
//
// Each column covers an equal slice of the input and is drawn as the span
// between that slice's minimum and maximum, so dense waveforms render as an
// envelope and sparse ones as a line.
package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Defaults for Options.
const (
	DefaultWidth  = 72
	DefaultHeight = 15
)

const (
	markFill = '█'
	markZero = '─'
	markNone = ' '
)

// Number is a sample type the plotter accepts.
type Number interface {
	~int | ~int16 | ~int32 | ~float32 | ~float64
}

// Options sizes the chart area, not counting axis labels.
type Options struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Height < 3 {
		o.Height = 3
	}
	return o
}

// Render draws samples spanning duration seconds. It returns Height chart
// rows followed by an x-axis and a time-label row. Empty input yields nil.
func Render[T Number](samples []T, duration float64, opts Options) []string {
	if len(samples) == 0 {
		return nil
	}
	opts = opts.withDefaults()
	w, h := opts.Width, opts.Height

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(float64(s)))
	}
	if peak == 0 {
		peak = 1
	}

	grid := make([][]rune, h)
	zero := rowOf(0, peak, h)
	for r := range grid {
		grid[r] = make([]rune, w)
		fill := markNone
		if r == zero {
			fill = markZero
		}
		for c := range grid[r] {
			grid[r][c] = fill
		}
	}

	for c := 0; c < w; c++ {
		lo, hi, ok := bucket(samples, c, w)
		if !ok {
			continue
		}
		top, bottom := rowOf(hi, peak, h), rowOf(lo, peak, h)
		for r := top; r <= bottom; r++ {
			grid[r][c] = markFill
		}
	}

	labels := make([]string, h)
	labels[0] = formatAmp(peak)
	labels[zero] = "0"
	labels[h-1] = formatAmp(-peak)
	pad := 0
	for _, l := range labels {
		pad = max(pad, len(l))
	}

	lines := make([]string, 0, h+2)
	for r := range grid {
		lines = append(lines, fmt.Sprintf("%*s ┤%s", pad, labels[r], string(grid[r])))
	}
	lines = append(lines, strings.Repeat(" ", pad)+" └"+strings.Repeat("─", w))

	start, end := "0s", formatSeconds(duration)
	gap := max(1, w-len(start)-len(end))
	lines = append(lines, strings.Repeat(" ", pad+2)+start+strings.Repeat(" ", gap)+end)
	return lines
}

// bucket returns the min and max of the samples that map to column c.
func bucket[T Number](samples []T, c, w int) (lo, hi float64, ok bool) {
	n := len(samples)
	from := c * n / w
	to := (c + 1) * n / w
	if to <= from {
		// Fewer samples than columns: repeat the nearest sample.
		if from >= n {
			return 0, 0, false
		}
		to = from + 1
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range samples[from:to] {
		v := float64(s)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, true
}

// rowOf maps v in [-peak, peak] to a row, 0 at the top.
func rowOf(v, peak float64, h int) int {
	r := int(math.Round((peak - v) / (2 * peak) * float64(h-1)))
	return min(max(r, 0), h-1)
}

func formatAmp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatSeconds(d float64) string {
	return strconv.FormatFloat(d, 'g', 4, 64) + "s"
}
