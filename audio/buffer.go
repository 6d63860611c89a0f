// SPDX-License-Identifier: EPL-2.0

package audio

import (
	goaudio "github.com/go-audio/audio"
)

// IntBuffer converts the block into an interleaved go-audio IntBuffer so
// callers can hand decoded frames to the go-audio ecosystem. Intended for
// PCM-domain blocks; samples are truncated to integers.
func (b Block) IntBuffer(f Format) *goaudio.IntBuffer {
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(f.NumChannels),
			SampleRate:  int(f.SampleRate),
		},
		SourceBitDepth: int(f.BitDepth),
		Data:           make([]int, 0, len(b)*int(f.NumChannels)),
	}
	for _, fr := range b {
		for _, s := range fr {
			buf.Data = append(buf.Data, int(s))
		}
	}
	return buf
}

// FloatBuffer converts the block into an interleaved go-audio FloatBuffer.
func (b Block) FloatBuffer(f Format) *goaudio.FloatBuffer {
	buf := &goaudio.FloatBuffer{
		Format: &goaudio.Format{
			NumChannels: int(f.NumChannels),
			SampleRate:  int(f.SampleRate),
		},
		Data: make([]float64, 0, len(b)*int(f.NumChannels)),
	}
	for _, fr := range b {
		buf.Data = append(buf.Data, fr...)
	}
	return buf
}

// BlockFromIntBuffer converts an interleaved go-audio IntBuffer into a
// canonical block. Data length that is not a whole number of frames drops
// the trailing partial frame.
func BlockFromIntBuffer(buf *goaudio.IntBuffer) Block {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil
	}
	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	b := make(Block, frames)
	for i := range b {
		fr := make(Frame, channels)
		for c := 0; c < channels; c++ {
			fr[c] = float64(buf.Data[i*channels+c])
		}
		b[i] = fr
	}
	return b
}
