// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/wavfx/utils"

// PCMToFloat converts a canonical signed PCM sample at the given bit depth
// to the [-1.0, 1.0] float domain. Positive and negative values scale by
// their respective maximum magnitudes, so the extremes map exactly to 1.0
// and -1.0.
func PCMToFloat(v float64, bitDepth uint) float64 {
	if v >= 0 {
		return v / utils.PCMMax(bitDepth)
	}
	return v / -utils.PCMMin(bitDepth)
}

// FloatToPCM converts a float-domain sample to a canonical signed PCM
// sample at the given bit depth. The input is clamped to [-1.0, 1.0] first
// so overflow cannot wrap, and the scaled result truncates toward zero.
func FloatToPCM(v float64, bitDepth uint) float64 {
	v = utils.ClampFloat(v)
	if v >= 0 {
		return utils.Truncate(v * utils.PCMMax(bitDepth))
	}
	return utils.Truncate(v * -utils.PCMMin(bitDepth))
}

// PCMToPCM re-quantizes a canonical PCM sample between bit depths. Equal
// depths pass through untouched; anything else routes through the float
// domain and inherits its truncation rule.
func PCMToPCM(v float64, inDepth, outDepth uint) float64 {
	if inDepth == outDepth {
		return v
	}
	return FloatToPCM(PCMToFloat(v, inDepth), outDepth)
}

// ConvertSample moves one canonical sample between formats. Same-domain
// float is a passthrough: out-of-range float values are preserved, not
// clamped, unless the target is PCM.
func ConvertSample(v float64, from, to Format) float64 {
	switch {
	case from.Domain == PCM && to.Domain == PCM:
		return PCMToPCM(v, from.BitDepth, to.BitDepth)
	case from.Domain == Float && to.Domain == Float:
		return v
	case from.Domain == PCM:
		return PCMToFloat(v, from.BitDepth)
	default:
		return FloatToPCM(v, to.BitDepth)
	}
}

// ClipPCM limits every sample in the block to the signed range of the
// given bit depth, in place.
func ClipPCM(b Block, bitDepth uint) {
	for _, fr := range b {
		for i, s := range fr {
			fr[i] = utils.ClampPCM(s, bitDepth)
		}
	}
}

// ClipFloat limits every sample in the block to [-1.0, 1.0], in place.
func ClipFloat(b Block) {
	for _, fr := range b {
		for i, s := range fr {
			fr[i] = utils.ClampFloat(s)
		}
	}
}
