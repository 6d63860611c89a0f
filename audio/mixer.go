// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/wavfx/utils"
)

// Remix converts a block between channel counts. A mono frame is
// duplicated into every output channel; multiple channels mix down to mono
// by arithmetic mean. PCM-domain means truncate toward zero, matching the
// narrowing rule used everywhere else. Other combinations have no defined
// mixing rule and fail.
func Remix(b Block, numChannels uint, d Domain) (Block, error) {
	if len(b) == 0 {
		return b, nil
	}
	in := uint(len(b[0]))
	switch {
	case in == numChannels:
		return b, nil
	case in == 1:
		out := make(Block, len(b))
		for i, fr := range b {
			dst := make(Frame, numChannels)
			for c := range dst {
				dst[c] = fr[0]
			}
			out[i] = dst
		}
		return out, nil
	case numChannels == 1:
		out := make(Block, len(b))
		inv := 1 / float64(in)
		for i, fr := range b {
			sum := float64(0)
			for _, s := range fr {
				sum += s
			}
			mean := sum * inv
			if d == PCM {
				mean = utils.Truncate(mean)
			}
			out[i] = Frame{mean}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d to %d channels", ErrUnsupportedChannelMix, in, numChannels)
	}
}
