// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides block source and sink fakes plus in-memory
// file helpers for exercising the engine without real files.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/wavfx/audio"
)

// BlockSource is a test audio.BlockReader that generates frames from a
// waveform function.
type BlockSource struct {
	format      audio.Format
	totalFrames uint64
	blockFrames uint
	generated   uint64
	waveform    func(frame uint64, channel uint) float64
	closed      bool
}

// NewBlockSource creates a source producing totalFrames frames in blocks
// of blockFrames, sampled from waveform.
func NewBlockSource(f audio.Format, totalFrames uint64, blockFrames uint, waveform func(frame uint64, channel uint) float64) *BlockSource {
	return &BlockSource{
		format:      f,
		totalFrames: totalFrames,
		blockFrames: blockFrames,
		waveform:    waveform,
	}
}

// NewSilentSource generates silence (all zeros).
func NewSilentSource(f audio.Format, totalFrames uint64, blockFrames uint) *BlockSource {
	return NewBlockSource(f, totalFrames, blockFrames, func(uint64, uint) float64 {
		return 0
	})
}

// NewConstantSource generates the same value on every channel.
func NewConstantSource(f audio.Format, totalFrames uint64, blockFrames uint, value float64) *BlockSource {
	return NewBlockSource(f, totalFrames, blockFrames, func(uint64, uint) float64 {
		return value
	})
}

// NewSineSource generates a sine wave at the given frequency, scaled to
// amplitude (use the PCM maximum for PCM formats, 1.0 for float).
func NewSineSource(f audio.Format, totalFrames uint64, blockFrames uint, frequency, amplitude float64) *BlockSource {
	return NewBlockSource(f, totalFrames, blockFrames, func(frame uint64, _ uint) float64 {
		t := float64(frame) / float64(f.SampleRate)
		v := amplitude * math.Sin(2*math.Pi*frequency*t)
		if f.Domain == audio.PCM {
			v = math.Trunc(v)
		}
		return v
	})
}

func (s *BlockSource) Format() audio.Format { return s.format }
func (s *BlockSource) Frames() uint64       { return s.totalFrames }
func (s *BlockSource) Closed() bool         { return s.closed }

func (s *BlockSource) NextBlock() (audio.Block, error) {
	if s.generated >= s.totalFrames {
		return nil, io.EOF
	}
	frames := uint64(s.blockFrames)
	if rest := s.totalFrames - s.generated; frames > rest {
		frames = rest
	}
	blk := make(audio.Block, frames)
	for i := range blk {
		fr := make(audio.Frame, s.format.NumChannels)
		for c := range fr {
			fr[c] = s.waveform(s.generated+uint64(i), uint(c))
		}
		blk[i] = fr
	}
	s.generated += frames
	return blk, nil
}

func (s *BlockSource) Close() error {
	s.closed = true
	return nil
}

// BlockSink is a test audio.BlockWriter that collects written blocks in
// memory.
type BlockSink struct {
	format audio.Format
	blocks []audio.Block
	closed bool

	// WriteErr, when set, is returned by the next WriteBlock call.
	WriteErr error
}

// NewBlockSink creates a sink declaring the given output format.
func NewBlockSink(f audio.Format) *BlockSink {
	return &BlockSink{format: f}
}

func (s *BlockSink) Format() audio.Format { return s.format }

func (s *BlockSink) WriteBlock(b audio.Block) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.blocks = append(s.blocks, b.Clone())
	return nil
}

func (s *BlockSink) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *BlockSink) Closed() bool { return s.closed }

// Blocks returns the collected blocks in write order.
func (s *BlockSink) Blocks() []audio.Block { return s.blocks }

// Frames is the total number of frames written.
func (s *BlockSink) Frames() uint64 {
	var n uint64
	for _, b := range s.blocks {
		n += uint64(len(b))
	}
	return n
}

// Samples flattens everything written into one block.
func (s *BlockSink) Samples() audio.Block {
	var out audio.Block
	for _, b := range s.blocks {
		out = append(out, b...)
	}
	return out
}
