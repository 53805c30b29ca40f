package notes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencies_StrictlyIncreasing(t *testing.T) {
	require.Len(t, Frequencies, 88)
	for i := 1; i < Len; i++ {
		assert.Greater(t, Frequencies[i], Frequencies[i-1], "index %d", i)
	}
	assert.Equal(t, 27.50, Frequencies[0])
	assert.Equal(t, 4186.01, Frequencies[Len-1])
}

func TestIndex(t *testing.T) {
	tests := []struct {
		freq float64
		want int
	}{
		{27.50, 0},
		{261.63, 39},
		{440.00, 48},
		{880.00, 60},
		{4186.01, 87},
	}
	for _, tt := range tests {
		got, err := Index(tt.freq)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Index(%v)", tt.freq)
	}
}

func TestIndex_EveryMember(t *testing.T) {
	for i, f := range Frequencies {
		got, err := Index(f)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestIndex_NotFound(t *testing.T) {
	for _, f := range []float64{0, 441, 440.001, 261.6256, 5000} {
		_, err := Index(f)
		assert.True(t, errors.Is(err, ErrNoteNotFound), "Index(%v) err = %v", f, err)
	}
}

func TestAt(t *testing.T) {
	f, err := At(48)
	require.NoError(t, err)
	assert.Equal(t, 440.0, f)

	_, err = At(-1)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	_, err = At(Len)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestName(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "A0"},
		{1, "A#0"},
		{2, "B0"},
		{3, "C1"},
		{39, "C4"},
		{48, "A4"},
		{87, "C8"},
		{-1, ""},
		{88, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.i), "Name(%d)", tt.i)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"A4", 48},
		{"a4", 48},
		{"C#4", 40},
		{"Db4", 40},
		{"Bb3", 37},
		{" C8 ", 87},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := Lookup("H2")
	assert.ErrorIs(t, err, ErrNoteNotFound)
	_, err = Lookup("C9")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestResolve(t *testing.T) {
	i, err := Resolve("440.00")
	require.NoError(t, err)
	assert.Equal(t, 48, i)

	i, err = Resolve("A4")
	require.NoError(t, err)
	assert.Equal(t, 48, i)

	_, err = Resolve("441")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestFormatHz(t *testing.T) {
	tests := []struct {
		freq float64
		want string
	}{
		{440, "440.0"},
		{27.5, "27.5"},
		{261.63, "261.63"},
		{4186.01, "4186.01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHz(tt.freq))
	}
}

func TestPattern(t *testing.T) {
	major, err := Pattern("major")
	require.NoError(t, err)
	assert.Equal(t, Scale{2, 2, 1, 2, 2, 2, 1, 0}, major)
	assert.Equal(t, 12, major.Span())

	minor, err := Pattern("minor")
	require.NoError(t, err)
	assert.Equal(t, Scale{2, 1, 2, 2, 1, 2, 2, 0}, minor)
	assert.Equal(t, 12, minor.Span())

	for _, name := range []string{"dorian", "Major", "MINOR", " major", ""} {
		_, err = Pattern(name)
		assert.ErrorIs(t, err, ErrUnknownScale, "Pattern(%q)", name)
	}
}

func TestScaleNames(t *testing.T) {
	assert.Equal(t, []string{"major", "minor"}, ScaleNames())
}
