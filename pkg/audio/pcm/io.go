package pcm

import (
	"fmt"
	"io"
	"os"
)

// Writer is a writer for chunks of audio data.
type Writer interface {
	Write(Chunk) error
}

// ChunkWriter wraps an io.Writer to provide a pcm.Writer interface.
// All chunks are written to the underlying writer using WriteTo.
func ChunkWriter(w io.Writer) Writer {
	return &chunkWriter{w: w}
}

type chunkWriter struct {
	w io.Writer
}

func (w *chunkWriter) Write(c Chunk) error {
	_, err := c.WriteTo(w.w)
	return err
}

// WriteFile writes the chunks back to back to a new file at path as headerless
// PCM. The file is truncated if it exists.
func WriteFile(path string, chunks ...Chunk) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pcm: create %s: %w", path, err)
	}
	w := ChunkWriter(f)
	for _, c := range chunks {
		if err := w.Write(c); err != nil {
			f.Close()
			return fmt.Errorf("pcm: write %s: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pcm: close %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a headerless 16-bit PCM file written by WriteFile.
func ReadFile(path string) ([]int16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pcm: read %s: %w", path, err)
	}
	samples, err := BytesToInt16(data)
	if err != nil {
		return nil, fmt.Errorf("pcm: read %s: %w", path, err)
	}
	return samples, nil
}
