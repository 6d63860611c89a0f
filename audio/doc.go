// SPDX-License-Identifier: EPL-2.0

// Package audio holds the canonical sample model and the block processing
// engine.
//
// # Canonical Samples
//
// Samples are carried as float64 values in one of two domains:
//   - PCM: integral signed values, e.g. -32768..32767 for 16-bit.
//     Unsigned on-disk encodings (8-bit WAV) are sign-normalized on
//     decode, so a transform never sees bias-shifted data.
//   - Float: values in the [-1.0, 1.0] range. Values outside the range
//     are preserved through float-to-float paths and only clamped when
//     converting to a PCM target.
//
// A Frame is one sample per channel at a single time index; a Block is a
// fixed-size run of frames (the final block of a stream may be short).
//
// # Engine
//
// Engine connects a BlockReader, a Transform callback and a BlockWriter:
//
//	eng, err := audio.NewEngine(reader, writer, transform, audio.Options{
//	    ReachBack: 44100,
//	})
//	if err != nil {
//	    return err
//	}
//	err = eng.Process()
//
// The pipeline is single-threaded and synchronous: one block is fully
// decoded, transformed, converted and written before the next is read.
// Blocking inside the transform blocks the whole pipeline.
//
// # Reach-Back
//
// With Options.ReachBack set, the engine retains a bounded history of the
// blocks the transform has seen. The transform queries it through its
// Handle:
//
//	func echo(h *audio.Handle, b audio.Block) audio.Block {
//	    for i := range b {
//	        for c := range b[i] {
//	            b[i][c] += 0.35 * h.ReachBack(44100, uint(i), uint(c))
//	        }
//	    }
//	    return b
//	}
//
// Queries that precede the start of the stream, or reach past the
// retained horizon, return silence (zero) rather than an error.
package audio
