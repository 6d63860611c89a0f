// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Domain is the numeric encoding of a sample stream.
type Domain uint8

const (
	// PCM is fixed-point integer sample data.
	PCM Domain = iota + 1
	// Float is IEEE floating point sample data in the [-1.0, 1.0] range.
	Float
)

func (d Domain) String() string {
	switch d {
	case PCM:
		return "PCM"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("domain(%d)", uint8(d))
	}
}

// Format describes the numeric layout of an audio stream. It is fixed for
// the lifetime of an open stream.
type Format struct {
	// Domain is PCM or Float.
	Domain Domain
	// BitDepth is 8 or 16 for PCM, 32 or 64 for Float.
	BitDepth uint
	// NumChannels is the number of interleaved channels, at least 1.
	NumChannels uint
	// SampleRate in Hz.
	SampleRate uint
}

func (f Format) String() string {
	return fmt.Sprintf("%d-bit %s, %d ch @ %d Hz", f.BitDepth, f.Domain, f.NumChannels, f.SampleRate)
}

// Validate reports whether the format is inside the supported matrix.
func (f Format) Validate() error {
	switch f.Domain {
	case PCM:
		if f.BitDepth != 8 && f.BitDepth != 16 {
			return fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedBitDepth, f.BitDepth)
		}
	case Float:
		if f.BitDepth != 32 && f.BitDepth != 64 {
			return fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, f.BitDepth)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDomain, f.Domain)
	}
	if f.NumChannels < 1 {
		return ErrNoChannels
	}
	return nil
}

// ByteDepth is the on-disk size of one sample in bytes.
func (f Format) ByteDepth() uint { return f.BitDepth / 8 }

// FrameBytes is the on-disk size of one frame (one sample per channel).
func (f Format) FrameBytes() uint { return f.ByteDepth() * f.NumChannels }

// Frame holds one canonical sample per channel at a single time index.
// PCM samples are integral signed values regardless of the on-disk sign
// convention; float samples live in the [-1.0, 1.0] range.
type Frame []float64

// Block is an ordered run of consecutive frames processed together.
type Block []Frame

// NewBlock allocates a zeroed (silent) block.
func NewBlock(frames, channels uint) Block {
	b := make(Block, frames)
	for i := range b {
		b[i] = make(Frame, channels)
	}
	return b
}

// Clone deep-copies the block so later mutation cannot alias it.
func (b Block) Clone() Block {
	c := make(Block, len(b))
	for i, fr := range b {
		c[i] = append(Frame(nil), fr...)
	}
	return c
}

// BlockReader produces fixed-size blocks of decoded frames. The final block
// before io.EOF may be short; it is never padded.
type BlockReader interface {
	// Format of the decoded stream.
	Format() Format
	// Frames is the total number of frames the stream declares.
	Frames() uint64
	// NextBlock returns the next block, or io.EOF once the declared
	// frame count has been consumed.
	NextBlock() (Block, error)
	// Close releases any resources.
	Close() error
}

// BlockWriter appends encoded blocks to an output stream in order.
type BlockWriter interface {
	// Format the sink encodes to.
	Format() Format
	// WriteBlock appends the block, preserving its frame count.
	WriteBlock(Block) error
	// Close finalizes the output so its header reflects the frames
	// actually written.
	Close() error
}
