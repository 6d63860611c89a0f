// SPDX-License-Identifier: EPL-2.0

package wavfx

import (
	"fmt"
	"os"

	"github.com/ik5/wavfx/audio"
	"github.com/ik5/wavfx/formats/wav"
)

// ProcessFile is a high-level convenience function that streams a WAV
// file through a transform into a new WAV file, converting sample format,
// bit depth or channel count along the way.
//
// This function builds the standard pipeline:
//  1. Parses and validates the input header
//  2. Resolves the output format from opts against the input format
//  3. Runs the block engine: decode, transform, convert, encode
//  4. Finalizes the output header with the real frame count
//
// A nil transform copies the audio through unchanged (aside from any
// format conversion the options request). Errors from a partially written
// output are surfaced, never silently discarded.
//
// Example:
//
//	gain := func(h *audio.Handle, b audio.Block) audio.Block {
//	    for i := range b {
//	        for c := range b[i] {
//	            b[i][c] *= 0.5
//	        }
//	    }
//	    return b
//	}
//	err := wavfx.ProcessFile("in.wav", "out.wav", gain, audio.Options{
//	    PluginDomain: audio.Float,
//	})
func ProcessFile(inPath, outPath string, transform audio.Transform, opts audio.Options) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	r, err := wav.NewReader(in, opts.FramesPerBlock())
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	outFmt, err := opts.Resolve(r.Format())
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	w, err := wav.NewWriter(out, outFmt)
	if err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", outPath, err)
	}

	eng, err := audio.NewEngine(r, w, transform, opts)
	if err != nil {
		out.Close()
		return err
	}
	if err := eng.Process(); err != nil {
		out.Close()
		return fmt.Errorf("%s left partial: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	return nil
}
