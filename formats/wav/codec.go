package wav

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/wavfx/audio"
	"github.com/ik5/wavfx/utils"
)

// DecodeFrames converts raw interleaved little-endian sample bytes into
// canonical frames. 8-bit PCM is stored unsigned on disk; the midpoint
// bias is subtracted here so the rest of the pipeline only ever sees
// signed values. 16-bit PCM is already two's-complement and passes
// through with endianness correction only.
func DecodeFrames(raw []byte, f audio.Format) (audio.Block, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	frameBytes := int(f.FrameBytes())
	if len(raw)%frameBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes at %d bytes per frame", ErrPartialFrame, len(raw), frameBytes)
	}
	channels := int(f.NumChannels)
	byteDepth := int(f.ByteDepth())
	blk := make(audio.Block, len(raw)/frameBytes)
	for i := range blk {
		fr := make(audio.Frame, channels)
		base := i * frameBytes
		for c := 0; c < channels; c++ {
			s := raw[base+c*byteDepth:]
			switch {
			case f.Domain == audio.PCM && f.BitDepth == 8:
				fr[c] = float64(int(s[0]) - 128)
			case f.Domain == audio.PCM && f.BitDepth == 16:
				fr[c] = float64(int16(binary.LittleEndian.Uint16(s)))
			case f.Domain == audio.Float && f.BitDepth == 32:
				fr[c] = float64(math.Float32frombits(binary.LittleEndian.Uint32(s)))
			case f.Domain == audio.Float && f.BitDepth == 64:
				fr[c] = math.Float64frombits(binary.LittleEndian.Uint64(s))
			}
		}
		blk[i] = fr
	}
	return blk, nil
}

// EncodeFrames converts canonical frames back into raw interleaved
// little-endian sample bytes, the byte-exact inverse of DecodeFrames for
// any block it produced. PCM samples are clamped to the target integer
// range so a frame can never wrap around on disk.
func EncodeFrames(b audio.Block, f audio.Format) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	frameBytes := int(f.FrameBytes())
	raw := make([]byte, 0, len(b)*frameBytes)
	for _, fr := range b {
		if len(fr) != int(f.NumChannels) {
			return nil, fmt.Errorf("%w: frame has %d channels, format has %d",
				ErrPartialFrame, len(fr), f.NumChannels)
		}
		for _, s := range fr {
			switch {
			case f.Domain == audio.PCM && f.BitDepth == 8:
				v := utils.ClampPCM(s, 8)
				raw = append(raw, byte(int(v)+128))
			case f.Domain == audio.PCM && f.BitDepth == 16:
				v := utils.ClampPCM(s, 16)
				raw = binary.LittleEndian.AppendUint16(raw, uint16(int16(v)))
			case f.Domain == audio.Float && f.BitDepth == 32:
				raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(float32(s)))
			case f.Domain == audio.Float && f.BitDepth == 64:
				raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(s))
			}
		}
	}
	return raw, nil
}
