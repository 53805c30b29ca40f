package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrOddLength is returned when 16-bit sample data has an odd byte count.
var ErrOddLength = errors.New("pcm: odd byte length for 16-bit samples")

// Chunk is a chunk of audio data.
type Chunk interface {
	Len() int64
	Format() Format
	WriteTo(w io.Writer) (int64, error)
}

// Format represents a linear 16-bit little-endian audio format.
type Format struct {
	rate     int
	channels int
}

// L16Mono returns the single-channel 16-bit format at rate Hz.
func L16Mono(rate int) Format {
	return Format{rate: rate, channels: 1}
}

// L16 returns a 16-bit format with the given rate and channel count.
func L16(rate, channels int) Format {
	return Format{rate: rate, channels: channels}
}

// IsValid reports whether the format has a positive rate and channel count.
func (f Format) IsValid() bool {
	return f.rate > 0 && f.channels > 0
}

// SampleRate returns the sample rate in Hz for this format.
func (f Format) SampleRate() int {
	return f.rate
}

// Channels returns the number of audio channels for this format.
func (f Format) Channels() int {
	return f.channels
}

// Depth returns the bit depth for this format.
func (f Format) Depth() int {
	return 16
}

// Samples returns the number of samples in the given number of bytes.
func (f Format) Samples(bytes int64) int64 {
	return bytes * 8 / int64(f.Channels()) / int64(f.Depth())
}

// Duration returns the duration of the given number of bytes.
func (f Format) Duration(bytes int64) time.Duration {
	return time.Duration(f.Samples(bytes)) * time.Second / time.Duration(f.SampleRate())
}

// DataChunk returns a chunk of audio data.
func (f Format) DataChunk(data []byte) Chunk {
	return &DataChunk{
		Data: data,
		fmt:  f,
	}
}

// SampleChunk returns a chunk holding samples encoded little-endian.
func (f Format) SampleChunk(samples []int16) Chunk {
	return f.DataChunk(Int16ToBytes(samples))
}

// String returns a human-readable string representation of the format.
func (f Format) String() string {
	return fmt.Sprintf("audio/L16; rate=%d; channels=%d", f.rate, f.channels)
}

// DataChunk is a chunk of audio data.
type DataChunk struct {
	Data []byte
	fmt  Format
}

// Len returns the length of the audio data in bytes.
func (c *DataChunk) Len() int64 {
	return int64(len(c.Data))
}

// Format returns the audio format of this chunk.
func (c *DataChunk) Format() Format {
	return c.fmt
}

// WriteTo writes the audio data to the writer.
func (c *DataChunk) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Data)
	return int64(n), err
}

// Int16ToBytes converts []int16 samples to raw PCM bytes (little-endian).
func Int16ToBytes(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}

// BytesToInt16 converts raw little-endian PCM bytes to samples.
func BytesToInt16(data []byte) ([]int16, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples, nil
}
