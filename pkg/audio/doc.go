// Package audio is the umbrella for wavescale's audio packages:
//
//   - notes: the 88-key frequency table and scale step patterns
//   - tone: sine, square, triangle and sawtooth synthesis
//   - scale: scales assembled from tones along the note table
//   - pcm: raw 16-bit PCM formats, chunks and files
//   - wavfile: WAV encoding and decoding
//   - plot: terminal time/amplitude charts
//
// Example usage:
//
//	import (
//	    "github.com/haivivi/wavescale/pkg/audio/scale"
//	    "github.com/haivivi/wavescale/pkg/audio/wavfile"
//	)
//
//	w, err := scale.ComposeScale(440.0, "major")
//	if err != nil {
//	    return err
//	}
//	err = wavfile.Write("440.0_major_scale.wav", w.SampleRate, w.Samples)
package audio
