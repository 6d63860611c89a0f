// SPDX-License-Identifier: EPL-2.0

package audio

// DefaultBlockFrames is the number of frames per block when Options does
// not say otherwise.
const DefaultBlockFrames = 1024

// Options selects the output and exposure formats for an engine run. The
// zero value of every field means "inherit from the input stream".
type Options struct {
	// Domain of the output file.
	Domain Domain
	// BitDepth of the output file. When Domain switches away from the
	// input's domain and BitDepth is left unset, the new domain's
	// narrowest common depth is used (16 for PCM, 32 for Float).
	BitDepth uint
	// NumChannels of the output file.
	NumChannels uint
	// SampleRate declared in the output header. The rate is relabeled
	// only; samples are never interpolated or decimated.
	SampleRate uint
	// PluginDomain is the domain samples are presented to the transform
	// in, independent of input and output domains.
	PluginDomain Domain
	// ReachBack is the number of frames of history the transform can
	// query. Zero disables history retention.
	ReachBack uint
	// BlockFrames is the fixed block length for the run.
	BlockFrames uint
}

// FramesPerBlock returns the configured block length, or the default.
func (o Options) FramesPerBlock() uint {
	if o.BlockFrames == 0 {
		return DefaultBlockFrames
	}
	return o.BlockFrames
}

// Resolve derives the effective output format: explicitly set fields
// override the corresponding input field, unset fields inherit.
func (o Options) Resolve(input Format) (Format, error) {
	out := input
	if o.Domain != 0 {
		out.Domain = o.Domain
	}
	if o.BitDepth != 0 {
		out.BitDepth = o.BitDepth
	} else if out.Domain != input.Domain {
		switch out.Domain {
		case PCM:
			out.BitDepth = 16
		case Float:
			out.BitDepth = 32
		}
	}
	if o.NumChannels != 0 {
		out.NumChannels = o.NumChannels
	}
	if o.SampleRate != 0 {
		out.SampleRate = o.SampleRate
	}
	if err := out.Validate(); err != nil {
		return Format{}, err
	}
	return out, nil
}
