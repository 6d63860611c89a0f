package wav

import (
	"fmt"
	"io"

	"github.com/ik5/wavfx/audio"
)

// Reader streams fixed-size blocks of canonical frames out of a WAV file.
// It implements audio.BlockReader. The header is parsed and validated
// eagerly in NewReader, so malformed or unsupported files fail at open
// time rather than mid-stream.
type Reader struct {
	r           io.ReadSeeker
	header      *Header
	blockFrames uint
	framesRead  uint64
	buf         []byte
}

// NewReader parses the WAV header and positions the stream at the first
// audio frame. blockFrames of zero selects audio.DefaultBlockFrames.
func NewReader(r io.ReadSeeker, blockFrames uint) (*Reader, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(h.DataOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to data chunk: %w", err)
	}
	if blockFrames == 0 {
		blockFrames = audio.DefaultBlockFrames
	}
	return &Reader{
		r:           r,
		header:      h,
		blockFrames: blockFrames,
	}, nil
}

// Header exposes the parsed container metadata.
func (r *Reader) Header() *Header { return r.header }

// Format of the decoded stream.
func (r *Reader) Format() audio.Format { return r.header.Format }

// Frames is the total frame count the header declares.
func (r *Reader) Frames() uint64 { return r.header.FrameCount }

// NextBlock returns the next block of decoded frames. The final block may
// be short; reading past the declared frame count yields io.EOF.
func (r *Reader) NextBlock() (audio.Block, error) {
	remaining := r.header.FrameCount - r.framesRead
	if remaining == 0 {
		return nil, io.EOF
	}
	frames := uint64(r.blockFrames)
	if frames > remaining {
		frames = remaining
	}
	need := int(frames) * int(r.header.Format.FrameBytes())
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	if _, err := io.ReadFull(r.r, r.buf[:need]); err != nil {
		return nil, fmt.Errorf("reading frame %d: %w", r.framesRead, err)
	}
	blk, err := DecodeFrames(r.buf[:need], r.header.Format)
	if err != nil {
		return nil, fmt.Errorf("decoding frame %d: %w", r.framesRead, err)
	}
	r.framesRead += frames
	return blk, nil
}

// Close releases nothing; the underlying stream belongs to the caller.
func (r *Reader) Close() error { return nil }
