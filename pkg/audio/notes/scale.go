package notes

import (
	"fmt"
	"sort"
)

// StepsPerScale is the number of entries in every pattern: seven steps and
// a trailing zero that keeps the walk on the last note.
const StepsPerScale = 8

// Scale is a pattern of index jumps through the note table.
type Scale [StepsPerScale]int

// Built-in scale patterns.
var (
	Major = Scale{2, 2, 1, 2, 2, 2, 1, 0}
	Minor = Scale{2, 1, 2, 2, 1, 2, 2, 0}
)

var scales = map[string]Scale{
	"major": Major,
	"minor": Minor,
}

// Pattern returns the step pattern for the named scale. Names match exactly:
// "major" and "minor" are recognized, "Major" is not.
func Pattern(name string) (Scale, error) {
	s, ok := scales[name]
	if !ok {
		return Scale{}, fmt.Errorf("notes: scale %q: %w", name, ErrUnknownScale)
	}
	return s, nil
}

// ScaleNames returns the recognized scale names in sorted order.
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Span returns the total index distance the pattern covers.
func (s Scale) Span() int {
	total := 0
	for _, step := range s {
		total += step
	}
	return total
}
