package wav

import (
	"fmt"
	"io"

	"github.com/ik5/wavfx/audio"
)

// Writer encodes canonical blocks into a WAV file. It implements
// audio.BlockWriter. A provisional header goes out up front; Close
// rewrites it so the size fields reflect the frames actually written.
type Writer struct {
	w      io.WriteSeeker
	format audio.Format
	frames uint64
	closed bool
}

// NewWriter validates the output format and writes the provisional
// header.
func NewWriter(w io.WriteSeeker, f audio.Format) (*Writer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if _, err := w.Write(EncodeHeader(f, 0)); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return &Writer{w: w, format: f}, nil
}

// Format the writer encodes to.
func (wr *Writer) Format() audio.Format { return wr.format }

// Frames written so far.
func (wr *Writer) Frames() uint64 { return wr.frames }

// WriteBlock appends the encoded block, preserving frame order and the
// block's length (a short final block is written short, never padded).
func (wr *Writer) WriteBlock(b audio.Block) error {
	if wr.closed {
		return ErrWriterClosed
	}
	raw, err := EncodeFrames(b, wr.format)
	if err != nil {
		return err
	}
	if _, err := wr.w.Write(raw); err != nil {
		return fmt.Errorf("writing frame %d: %w", wr.frames, err)
	}
	wr.frames += uint64(len(b))
	return nil
}

// Close patches the header with the final frame count and leaves the
// stream positioned at its end. Closing twice is harmless.
func (wr *Writer) Close() error {
	if wr.closed {
		return nil
	}
	wr.closed = true
	// RIFF chunk bodies are word-aligned; an odd data chunk needs a pad
	// byte after it.
	if wr.frames*uint64(wr.format.FrameBytes())%2 == 1 {
		if _, err := wr.w.Write([]byte{0}); err != nil {
			return fmt.Errorf("padding data chunk: %w", err)
		}
	}
	if _, err := wr.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding to header: %w", err)
	}
	if _, err := wr.w.Write(EncodeHeader(wr.format, wr.frames)); err != nil {
		return fmt.Errorf("patching header: %w", err)
	}
	if _, err := wr.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("restoring position: %w", err)
	}
	return nil
}
