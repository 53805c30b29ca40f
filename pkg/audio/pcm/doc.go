// Package pcm provides types and utilities for working with raw 16-bit PCM
// (Pulse Code Modulation) audio data.
//
// A Format carries the sample rate and channel count; the bit depth is
// always 16 and samples are little-endian, the same layout a WAV data chunk
// uses.
//
// Key types:
//   - Format: sample rate and channel count
//   - Chunk: Interface for audio data chunks
//   - DataChunk: Concrete implementation of Chunk for raw audio data
//   - Writer: Interface for writing audio chunks
//
// Example usage:
//
//	format := pcm.L16Mono(44100)
//
//	// Wrap synthesized samples and write them to a file
//	chunk := format.SampleChunk(samples)
//	err := pcm.WriteFile("out.pcm", chunk)
//
//	// Playing time of the file
//	d := format.Duration(chunk.Len())
package pcm
