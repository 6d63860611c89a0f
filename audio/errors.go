// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedBitDepth is returned for bit depths outside the
	// supported matrix (8/16-bit PCM, 32/64-bit float).
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrUnsupportedDomain is returned for sample domains other than
	// PCM and Float.
	ErrUnsupportedDomain = errors.New("unsupported sample domain")

	// ErrNoChannels is returned for formats declaring zero channels.
	ErrNoChannels = errors.New("stream must have at least one channel")

	// ErrBlockLengthMismatch is returned when a transform returns a block
	// whose frame count differs from the block it was given.
	ErrBlockLengthMismatch = errors.New("transform changed block length")

	// ErrUnsupportedChannelMix is returned when converting between channel
	// counts that have no defined mixing rule.
	ErrUnsupportedChannelMix = errors.New("unsupported channel conversion")

	// ErrEngineSpent is returned when Process is called on an engine that
	// already ran, whether it closed cleanly or failed.
	ErrEngineSpent = errors.New("engine already processed its stream")
)
