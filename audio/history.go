// SPDX-License-Identifier: EPL-2.0

package audio

// History is an append-only, capacity-bounded log of the blocks already
// shown to the transform. Entries older than the configured reach-back
// horizon are evicted as newer blocks arrive. Lookups address absolute
// frame positions, so they resolve across block boundaries transparently.
type History struct {
	blocks    []Block
	starts    []uint64 // absolute index of each block's first frame
	nextStart uint64
	reachBack uint
}

// newHistory creates a log retaining reachBack frames behind the start of
// the newest recorded block. Recorded blocks may be any size; retention is
// counted in frames, not blocks.
func newHistory(reachBack uint) *History {
	return &History{reachBack: reachBack}
}

// Record appends a deep copy of the block, evicting whole blocks that fell
// entirely behind the reach-back horizon. With no horizon configured it
// only tracks position.
func (h *History) Record(b Block) {
	if h.reachBack > 0 {
		h.blocks = append(h.blocks, b.Clone())
		h.starts = append(h.starts, h.nextStart)
		newest := h.starts[len(h.starts)-1]
		if newest > uint64(h.reachBack) {
			horizon := newest - uint64(h.reachBack)
			for len(h.blocks) > 1 && h.starts[0]+uint64(len(h.blocks[0])) <= horizon {
				h.blocks = h.blocks[1:]
				h.starts = h.starts[1:]
			}
		}
	}
	h.nextStart += uint64(len(b))
}

// Sample returns the value of channel at the frame back frames before the
// frame at frameOffset within the newest recorded block. Positions before
// the start of the stream, or older than the retained horizon, read as
// silence (canonical zero) rather than failing: "no prior signal" is a
// valid query at stream start.
func (h *History) Sample(back, frameOffset, channel uint) float64 {
	if len(h.blocks) == 0 {
		return 0
	}
	cur := h.starts[len(h.starts)-1] + uint64(frameOffset)
	if uint64(back) > cur {
		return 0
	}
	target := cur - uint64(back)
	if target < h.starts[0] {
		return 0
	}
	for i := len(h.blocks) - 1; i >= 0; i-- {
		if target >= h.starts[i] {
			idx := target - h.starts[i]
			if idx >= uint64(len(h.blocks[i])) {
				return 0
			}
			fr := h.blocks[i][idx]
			if channel >= uint(len(fr)) {
				return 0
			}
			return fr[channel]
		}
	}
	return 0
}
