// SPDX-License-Identifier: EPL-2.0

// Package wavfx streams WAV audio block-by-block through a user-supplied
// transform, re-encoding the result into a new WAV file.
//
// The engine normalizes every supported on-disk sample layout (8/16-bit
// PCM, 32/64-bit IEEE float) into a canonical numeric form, hands blocks
// of it to a transform callback, then re-quantizes for the output format.
// The transform never sees raw bytes, byte order or sign conventions.
//
// # Quick Start
//
// The simplest entry point is ProcessFile:
//
//	halve := func(h *audio.Handle, b audio.Block) audio.Block {
//	    for i := range b {
//	        for c := range b[i] {
//	            b[i][c] *= 0.5
//	        }
//	    }
//	    return b
//	}
//	err := wavfx.ProcessFile("in.wav", "out.wav", halve, audio.Options{
//	    PluginDomain: audio.Float,
//	})
//
// # Format Conversion
//
// Each Options field that is set overrides the matching input property;
// unset fields inherit from the input header. Converting float output to
// PCM clamps samples to [-1.0, 1.0] before scaling so values cannot wrap.
// The sample rate field only relabels the output header; no resampling is
// performed.
//
// # Reach-Back
//
// Transforms can reference earlier samples through their Handle, bounded
// by Options.ReachBack. When reach-back is configured, the engine also
// flushes that many frames of silence through the transform at the end of
// the stream so echo or envelope tails can ring out.
//
// # Building Custom Pipelines
//
// For more control, wire the pieces from the audio and formats/wav
// subpackages directly:
//
//	r, err := wav.NewReader(inFile, 1024)
//	w, err := wav.NewWriter(outFile, outputFormat)
//	eng, err := audio.NewEngine(r, w, transform, opts)
//	err = eng.Process()
package wavfx
