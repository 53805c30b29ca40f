package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/haivivi/wavescale/pkg/audio/pcm"
	"github.com/haivivi/wavescale/pkg/audio/scale"
	"github.com/haivivi/wavescale/pkg/audio/wavfile"
)

// Small renders keep the tests fast: 80 samples per note.
var lofi = []string{"--sample-rate", "8000", "--duration", "0.01"}

func TestScaleStartFrequency(t *testing.T) {
	env := setupTestEnv(t)

	args := append([]string{"scale", "--start", "440.0", "--out", env.out}, lofi...)
	stdout, stderr, code := env.run(t, args...)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if got := startLine(stdout); got != "Start freq: 440.0" {
		t.Fatalf("start line = %q, output:\n%s", got, stdout)
	}

	opts := scale.Options{SampleRate: 8000, Duration: 0.01}
	for _, name := range []string{"major", "minor"} {
		f, err := wavfile.Read(filepath.Join(env.out, "440.0_"+name+"_scale.wav"))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if f.Format.SampleRate() != 8000 {
			t.Errorf("%s: sample rate = %d, want 8000", name, f.Format.SampleRate())
		}
		want, err := scale.Compose(440, name, opts)
		if err != nil {
			t.Fatal(err)
		}
		if len(f.Samples) != 8*80 {
			t.Errorf("%s: %d samples, want %d", name, len(f.Samples), 8*80)
		}
		if !slices.Equal(f.Samples, want.Samples) {
			t.Errorf("%s: file samples differ from composed samples", name)
		}
	}
}

func TestScaleStartName(t *testing.T) {
	env := setupTestEnv(t)

	args := append([]string{"scale", "--start", "A4", "--scales", "major", "--out", env.out}, lofi...)
	stdout, stderr, code := env.run(t, args...)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if got := startLine(stdout); got != "Start freq: 440.0" {
		t.Fatalf("start line = %q", got)
	}
	if _, err := wavfile.Read(filepath.Join(env.out, "440.0_major_scale.wav")); err != nil {
		t.Fatal(err)
	}
	if _, err := wavfile.Read(filepath.Join(env.out, "440.0_minor_scale.wav")); err == nil {
		t.Error("minor scale should not be rendered with --scales major")
	}
}

func TestScaleSeedIsDeterministic(t *testing.T) {
	env := setupTestEnv(t)

	var lines []string
	for i := 0; i < 2; i++ {
		args := append([]string{"scale", "--seed", "7", "--out", t.TempDir()}, lofi...)
		stdout, stderr, code := env.run(t, args...)
		if code != 0 {
			t.Fatalf("exit %d: %s", code, stderr)
		}
		lines = append(lines, startLine(stdout))
	}
	if lines[0] == "" || lines[0] != lines[1] {
		t.Fatalf("seeded runs picked %q and %q", lines[0], lines[1])
	}
}

func TestScaleRandomStart(t *testing.T) {
	env := setupTestEnv(t)

	args := append([]string{"scale", "--out", env.out}, lofi...)
	stdout, stderr, code := env.run(t, args...)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	hz := strings.TrimPrefix(startLine(stdout), "Start freq: ")
	if hz == "" {
		t.Fatalf("no start line in output:\n%s", stdout)
	}
	for _, name := range []string{"major", "minor"} {
		if _, err := wavfile.Read(filepath.Join(env.out, hz+"_"+name+"_scale.wav")); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestScaleTopOfTable(t *testing.T) {
	env := setupTestEnv(t)

	args := append([]string{"scale", "--start", "C8", "--scales", "major", "--out", env.out}, lofi...)
	_, stderr, code := env.run(t, args...)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	f, err := wavfile.Read(filepath.Join(env.out, "4186.01_major_scale.wav"))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Samples) != 80 {
		t.Errorf("%d samples, want a single 80-sample note", len(f.Samples))
	}
}

func TestScaleRawFormat(t *testing.T) {
	env := setupTestEnv(t)

	args := append([]string{"scale", "--start", "261.63", "--format", "raw", "--out", env.out}, lofi...)
	_, stderr, code := env.run(t, args...)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	samples, err := pcm.ReadFile(filepath.Join(env.out, "261.63_minor_scale.pcm"))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := scale.Compose(261.63, "minor", scale.Options{SampleRate: 8000, Duration: 0.01})
	if !slices.Equal(samples, want.Samples) {
		t.Error("raw samples differ from composed samples")
	}
}

func TestScaleJSON(t *testing.T) {
	env := setupTestEnv(t)

	args := append([]string{"scale", "--start", "440.0", "--json", "--out", env.out}, lofi...)
	stdout, stderr, code := env.run(t, args...)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}

	var res struct {
		Start     float64 `json:"start_hz"`
		StartNote string  `json:"start_note"`
		Scales    []struct {
			Scale string    `json:"scale"`
			Notes []float64 `json:"notes_hz"`
			File  struct {
				Path    string `json:"path"`
				Samples int    `json:"samples"`
			} `json:"file"`
		} `json:"scales"`
	}
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if res.Start != 440 || res.StartNote != "A4" {
		t.Errorf("start = %v %q", res.Start, res.StartNote)
	}
	if len(res.Scales) != 2 || res.Scales[0].Scale != "major" || res.Scales[1].Scale != "minor" {
		t.Fatalf("scales = %+v", res.Scales)
	}
	if n := len(res.Scales[0].Notes); n != 8 {
		t.Errorf("major notes = %d, want 8", n)
	}
	if res.Scales[0].File.Samples != 640 {
		t.Errorf("major samples = %d, want 640", res.Scales[0].File.Samples)
	}
}

func TestScaleNoteNotFound(t *testing.T) {
	env := setupTestEnv(t)

	_, stderr, code := env.run(t, "scale", "--start", "441", "--out", env.out)
	if code == 0 {
		t.Fatal("expected error for frequency outside the table")
	}
	if !strings.Contains(stderr, "not in table") {
		t.Fatalf("expected 'not in table', got: %s", stderr)
	}
}

func TestScaleUnknownScale(t *testing.T) {
	env := setupTestEnv(t)

	args := append([]string{"scale", "--start", "440.0", "--scales", "major,blues", "--out", env.out}, lofi...)
	_, stderr, code := env.run(t, args...)
	if code == 0 {
		t.Fatal("expected error for unknown scale")
	}
	if !strings.Contains(stderr, "unknown scale") {
		t.Fatalf("expected 'unknown scale', got: %s", stderr)
	}
}

func TestScaleBadFormat(t *testing.T) {
	env := setupTestEnv(t)

	_, stderr, code := env.run(t, "scale", "--start", "440.0", "--format", "mp3", "--out", env.out)
	if code == 0 {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(stderr, "unsupported format") {
		t.Fatalf("expected 'unsupported format', got: %s", stderr)
	}
}

func TestScaleUsesProfile(t *testing.T) {
	env := setupTestEnv(t)

	_, stderr, code := env.run(t, "config", "add-profile", "lofi",
		"--sample-rate", "8000", "--duration", "0.01", "--format", "raw", "--out", env.out)
	if code != 0 {
		t.Fatalf("add-profile exit %d: %s", code, stderr)
	}

	// --profile selects it without making it current.
	_, stderr, code = env.run(t, "scale", "--profile", "lofi", "--start", "440.0", "--scales", "major")
	if code != 0 {
		t.Fatalf("scale exit %d: %s", code, stderr)
	}
	samples, err := pcm.ReadFile(filepath.Join(env.out, "440.0_major_scale.pcm"))
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 640 {
		t.Errorf("%d samples, want 640", len(samples))
	}

	// Flags override the profile.
	_, stderr, code = env.run(t, "scale", "--profile", "lofi", "--start", "440.0", "--scales", "major", "--format", "wav")
	if code != 0 {
		t.Fatalf("scale exit %d: %s", code, stderr)
	}
	if _, err := wavfile.Read(filepath.Join(env.out, "440.0_major_scale.wav")); err != nil {
		t.Fatal(err)
	}
}

func TestScaleMissingProfile(t *testing.T) {
	env := setupTestEnv(t)

	_, stderr, code := env.run(t, "scale", "--profile", "nope", "--start", "440.0")
	if code == 0 {
		t.Fatal("expected error for unknown profile")
	}
	if !strings.Contains(stderr, "not found") {
		t.Fatalf("expected 'not found', got: %s", stderr)
	}
}

func TestScaleFileName(t *testing.T) {
	tests := []struct {
		start float64
		scale string
		ext   string
		want  string
	}{
		{440, "major", ".wav", "440.0_major_scale.wav"},
		{27.5, "minor", ".wav", "27.5_minor_scale.wav"},
		{261.63, "major", ".pcm", "261.63_major_scale.pcm"},
	}
	for _, tt := range tests {
		if got := scaleFileName(tt.start, tt.scale, tt.ext); got != tt.want {
			t.Errorf("scaleFileName(%v, %q) = %q, want %q", tt.start, tt.scale, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" Major, minor,,")
	if !slices.Equal(got, []string{"major", "minor"}) {
		t.Errorf("splitList = %v", got)
	}
}

func TestScaleInvalidSettings(t *testing.T) {
	env := setupTestEnv(t)

	for _, bad := range [][]string{
		{"--amplitude", "-20000"},
		{"--duration", "-1"},
		{"--duration", "0"},
	} {
		args := append([]string{"scale", "--start", "440.0", "--out", env.out, "--sample-rate", "8000"}, bad...)
		_, stderr, code := env.run(t, args...)
		if code == 0 {
			t.Fatalf("%v: expected error", bad)
		}
		if !strings.Contains(stderr, "invalid tone parameters") {
			t.Errorf("%v: expected 'invalid tone parameters', got: %s", bad, stderr)
		}
	}
	if _, err := os.Stat(env.out); !os.IsNotExist(err) {
		t.Errorf("no files should be written, stat err = %v", err)
	}
}
