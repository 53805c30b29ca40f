// Package notes holds the fixed 88-key equal-tempered note table (A0..C8)
// and the step patterns used to walk it as major and minor scales.
//
// The table and the patterns are package-level constants in spirit: they are
// never mutated after initialization and are safe for concurrent use.
package notes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	// ErrNoteNotFound is returned when a frequency or name is not in the table.
	ErrNoteNotFound = errors.New("note not found")
	// ErrUnknownScale is returned for an unrecognized scale name.
	ErrUnknownScale = errors.New("unknown scale")
)

// Len is the number of notes in the table.
const Len = 88

// Frequencies are the piano key frequencies in Hz, A0 (index 0) through C8
// (index 87), rounded to two decimals. Index 48 is A4 = 440 Hz.
var Frequencies = [Len]float64{
	27.50, 29.14, 30.87,
	32.70, 34.65, 36.71,
	38.89, 41.20, 43.65,
	46.25, 49.00, 51.91,
	55.00, 58.27, 61.74,
	65.41, 69.30, 73.42,
	77.78, 82.41, 87.31,
	92.50, 98.00, 103.83,
	110.00, 116.54, 123.47,
	130.81, 138.59, 146.83,
	155.56, 164.81, 174.61,
	185.00, 196.00, 207.65,
	220.00, 233.08, 246.94,
	261.63, 277.18, 293.66,
	311.13, 329.63, 349.23,
	369.99, 392.00, 415.30,
	440.00, 466.16, 493.88,
	523.25, 554.37, 587.33,
	622.25, 659.25, 698.46,
	739.99, 783.99, 830.61,
	880.00, 932.33, 987.77,
	1046.50, 1108.73, 1174.66,
	1244.51, 1318.51, 1396.91,
	1479.98, 1567.98, 1661.22,
	1760.00, 1864.66, 1975.53,
	2093.00, 2217.46, 2349.32,
	2489.02, 2637.02, 2793.83,
	2959.96, 3135.96, 3322.44,
	3520.00, 3729.31, 3951.07,
	4186.01,
}

// pitchClasses starts at A because the table does.
var pitchClasses = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// At returns the frequency at index i.
func At(i int) (float64, error) {
	if i < 0 || i >= Len {
		return 0, fmt.Errorf("notes: index %d out of range [0, %d): %w", i, Len, ErrNoteNotFound)
	}
	return Frequencies[i], nil
}

// Index returns the table index of freq. The match is exact; values that
// differ from a table entry by any amount are not found.
func Index(freq float64) (int, error) {
	for i, f := range Frequencies {
		if f == freq {
			return i, nil
		}
	}
	return -1, fmt.Errorf("notes: frequency %s Hz not in table: %w", FormatHz(freq), ErrNoteNotFound)
}

// Name returns the scientific pitch name for index i, e.g. "A0", "C#4", "C8".
// Octave numbers change at C.
func Name(i int) string {
	if i < 0 || i >= Len {
		return ""
	}
	// Index 3 is C1; shifting by 9 makes octaves start at C.
	octave := (i + 9) / 12
	return pitchClasses[i%12] + strconv.Itoa(octave)
}

// Lookup resolves a pitch name ("A4", "c#4") to its table index.
// Flats are accepted and mapped to the enharmonic sharp ("Bb3" -> "A#3").
func Lookup(name string) (int, error) {
	want := normalizeName(name)
	for i := 0; i < Len; i++ {
		if Name(i) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("notes: name %q not in table: %w", name, ErrNoteNotFound)
}

var flats = map[string]string{
	"DB": "C#", "EB": "D#", "GB": "F#", "AB": "G#", "BB": "A#",
}

func normalizeName(name string) string {
	s := strings.ToUpper(strings.TrimSpace(name))
	if len(s) >= 3 {
		if sharp, ok := flats[s[:2]]; ok {
			return sharp + s[2:]
		}
	}
	return s
}

// Resolve accepts either a pitch name or a frequency literal and returns
// the table index.
func Resolve(s string) (int, error) {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Index(f)
	}
	return Lookup(s)
}

// FormatHz formats a frequency the way output file names spell it: the
// shortest exact decimal, always with a fractional part ("440.0", "261.63").
func FormatHz(freq float64) string {
	s := strconv.FormatFloat(freq, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
