// Package wavfile writes and reads uncompressed 16-bit PCM WAV files.
//
// It is a thin layer over github.com/go-audio/wav that speaks []int16 and
// pcm.Format so synthesized samples round-trip unchanged.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/haivivi/wavescale/pkg/audio/pcm"
)

// formatPCM is the WAVE format tag for uncompressed integer PCM.
const formatPCM = 1

var (
	// ErrUnsupportedFormat is returned when reading a file that is not
	// 16-bit integer PCM.
	ErrUnsupportedFormat = errors.New("wavfile: unsupported format")
	// ErrInvalidFile is returned when the input is not a RIFF/WAVE file.
	ErrInvalidFile = errors.New("wavfile: not a valid wav file")
)

// File is a decoded WAV file.
type File struct {
	Format  pcm.Format
	Samples []int16 // interleaved when Format.Channels() > 1
}

// Frames returns the number of sample frames.
func (f *File) Frames() int {
	if f.Format.Channels() == 0 {
		return 0
	}
	return len(f.Samples) / f.Format.Channels()
}

// Duration returns the length in seconds.
func (f *File) Duration() float64 {
	if f.Format.SampleRate() == 0 {
		return 0
	}
	return float64(f.Frames()) / float64(f.Format.SampleRate())
}

// Encode writes samples as a WAV stream. Multi-channel samples must be
// interleaved. The writer must be seekable because the RIFF sizes are
// patched after the data is written.
func Encode(ws io.WriteSeeker, format pcm.Format, samples []int16) error {
	if !format.IsValid() {
		return fmt.Errorf("wavfile: invalid format %v", format)
	}
	if len(samples)%format.Channels() != 0 {
		return fmt.Errorf("wavfile: %d samples do not divide into %d channels", len(samples), format.Channels())
	}

	enc := wav.NewEncoder(ws, format.SampleRate(), format.Depth(), format.Channels(), formatPCM)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: format.Channels(),
			SampleRate:  format.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: format.Depth(),
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavfile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavfile: finalize: %w", err)
	}
	return nil
}

// Write creates path and writes a mono 16-bit WAV at sampleRate.
func Write(path string, sampleRate int, samples []int16) error {
	return WriteFormat(path, pcm.L16Mono(sampleRate), samples)
}

// WriteFormat creates path and writes samples in the given format. A
// failed write leaves whatever was written on disk.
func WriteFormat(path string, format pcm.Format, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavfile: create %s: %w", path, err)
	}
	if err := Encode(f, format, samples); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("wavfile: close %s: %w", path, err)
	}
	return nil
}

// Decode reads a complete WAV stream.
func Decode(rs io.ReadSeeker) (*File, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
		return nil, ErrInvalidFile
	}
	if dec.WavAudioFormat != formatPCM || dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: format tag %d, %d bits", ErrUnsupportedFormat, dec.WavAudioFormat, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavfile: decode: %w", err)
	}
	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return &File{
		Format:  pcm.L16(int(dec.SampleRate), int(dec.NumChans)),
		Samples: samples,
	}, nil
}

// Read opens and decodes path.
func Read(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavfile: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
