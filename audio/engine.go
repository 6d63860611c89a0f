// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// State is the engine lifecycle position.
type State uint8

const (
	// Idle means Process has not started yet.
	Idle State = iota
	// Streaming is the main decode/transform/encode loop.
	Streaming
	// Draining flushes trailing history frames and finalizes the output.
	Draining
	// Closed is terminal success.
	Closed
	// Failed is terminal failure; the output file is left in an
	// undefined state and the error is surfaced to the caller.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Streaming:
		return "streaming"
	case Draining:
		return "draining"
	case Closed:
		return "closed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Transform processes one block of canonical samples. It may mutate the
// block it is given and must return a block with the same frame count;
// the content may differ, the length may not.
type Transform func(h *Handle, b Block) Block

// Handle is the capability surface handed to a transform: read-only
// format metadata plus reach-back lookups, without exposing the engine's
// mutable internals.
type Handle struct {
	e *Engine
}

// InputFormat is the format of the stream being read.
func (h *Handle) InputFormat() Format { return h.e.inFmt }

// OutputFormat is the resolved format of the stream being written.
func (h *Handle) OutputFormat() Format { return h.e.outFmt }

// PluginFormat is the format samples are presented to the transform in.
func (h *Handle) PluginFormat() Format { return h.e.pluginFmt }

// ReachBack returns the sample on channel that came back frames before
// the frame at frameOffset in the current block. Positions before the
// start of the stream or beyond the retained horizon read as silence.
func (h *Handle) ReachBack(back, frameOffset, channel uint) float64 {
	return h.e.history.Sample(back, frameOffset, channel)
}

// Engine drives the block pipeline between a reader, a transform and a
// writer: decode block, record history, invoke the transform, re-target
// the output format, encode, write. It is single-threaded by design; the
// transform runs on the caller's goroutine and correctness of reach-back
// lookups depends on sequential frame ordering.
type Engine struct {
	r         BlockReader
	w         BlockWriter
	transform Transform
	opts      Options

	inFmt     Format
	outFmt    Format
	pluginFmt Format

	history  *History
	handle   Handle
	state    State
	framesIn uint64

	// Logger, when set, receives block progress at debug level and
	// failures at error level.
	Logger *slog.Logger
}

// NewEngine wires a reader and writer to a transform. A nil transform
// passes samples through unchanged. The writer's format decides the
// conversion target; use Options.Resolve to derive it from the input.
func NewEngine(r BlockReader, w BlockWriter, transform Transform, opts Options) (*Engine, error) {
	inFmt := r.Format()
	if err := inFmt.Validate(); err != nil {
		return nil, err
	}
	outFmt := w.Format()
	if err := outFmt.Validate(); err != nil {
		return nil, err
	}
	if transform == nil {
		transform = func(_ *Handle, b Block) Block { return b }
	}
	e := &Engine{
		r:         r,
		w:         w,
		transform: transform,
		opts:      opts,
		inFmt:     inFmt,
		outFmt:    outFmt,
		pluginFmt: exposureFormat(inFmt, outFmt, opts.PluginDomain),
		history:   newHistory(opts.ReachBack),
	}
	e.handle.e = e
	return e, nil
}

// exposureFormat picks the format the transform sees. Same-domain streams
// keep the input depth; converting float input to a PCM exposure borrows
// the output depth when the output is PCM, else presents 32-bit.
func exposureFormat(in, out Format, pluginDomain Domain) Format {
	f := in
	if pluginDomain == 0 || pluginDomain == in.Domain {
		return f
	}
	f.Domain = pluginDomain
	switch pluginDomain {
	case Float:
		f.BitDepth = 64
	case PCM:
		if out.Domain == PCM {
			f.BitDepth = out.BitDepth
		} else {
			f.BitDepth = 32
		}
	}
	return f
}

// State reports the engine lifecycle position.
func (e *Engine) State() State { return e.state }

// Process runs the whole pipeline to completion. It can be called once;
// the engine keeps no resumable checkpoint, so retry means reopening the
// stream and starting over. On failure the output is left partial and the
// error carries the frame index it occurred at.
func (e *Engine) Process() error {
	if e.state != Idle {
		return ErrEngineSpent
	}
	e.state = Streaming
	if e.Logger != nil {
		e.Logger.Debug("stream opened",
			"input", e.inFmt.String(), "output", e.outFmt.String(),
			"plugin", e.pluginFmt.String(), "frames", e.r.Frames())
	}
	for {
		blk, err := e.r.NextBlock()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return e.fail(fmt.Errorf("reading frame %d: %w", e.framesIn, err))
		}
		e.exposeInPlace(blk)
		if err := e.step(blk); err != nil {
			return e.fail(err)
		}
	}
	e.state = Draining
	if err := e.drain(); err != nil {
		return e.fail(err)
	}
	if err := e.w.Close(); err != nil {
		return e.fail(fmt.Errorf("finalizing output after frame %d: %w", e.framesIn, err))
	}
	if err := e.r.Close(); err != nil {
		return e.fail(fmt.Errorf("closing input: %w", err))
	}
	e.state = Closed
	if e.Logger != nil {
		e.Logger.Debug("stream closed", "frames", e.framesIn)
	}
	return nil
}

// step runs one already-exposed block through history, transform,
// re-targeting and the writer.
func (e *Engine) step(blk Block) error {
	n := len(blk)
	e.history.Record(blk)
	out := e.transform(&e.handle, blk)
	if len(out) != n {
		return fmt.Errorf("frame %d: %w: got %d frames, want %d",
			e.framesIn, ErrBlockLengthMismatch, len(out), n)
	}
	if e.pluginFmt.Domain == PCM {
		ClipPCM(out, e.pluginFmt.BitDepth)
	}
	enc, err := Remix(out, e.outFmt.NumChannels, e.pluginFmt.Domain)
	if err != nil {
		return fmt.Errorf("frame %d: %w", e.framesIn, err)
	}
	for _, fr := range enc {
		for i, s := range fr {
			fr[i] = ConvertSample(s, e.pluginFmt, e.outFmt)
		}
	}
	if err := e.w.WriteBlock(enc); err != nil {
		return fmt.Errorf("writing frame %d: %w", e.framesIn, err)
	}
	e.framesIn += uint64(n)
	if e.Logger != nil {
		e.Logger.Debug("block written", "frames", n, "position", e.framesIn)
	}
	return nil
}

// exposeInPlace converts a freshly decoded block from the input format to
// the plugin exposure format.
func (e *Engine) exposeInPlace(blk Block) {
	if e.pluginFmt.Domain == e.inFmt.Domain && e.pluginFmt.BitDepth == e.inFmt.BitDepth {
		return
	}
	for _, fr := range blk {
		for i, s := range fr {
			fr[i] = ConvertSample(s, e.inFmt, e.pluginFmt)
		}
	}
}

// drain feeds reach-back worth of silence through the transform after the
// input ends, so retrospective effects can ring out. Canonical zero is
// zero in every exposure format since PCM is presented sign-normalized.
func (e *Engine) drain() error {
	remaining := e.opts.ReachBack
	if remaining == 0 {
		return nil
	}
	blockFrames := e.opts.FramesPerBlock()
	for remaining > 0 {
		n := min(blockFrames, remaining)
		if err := e.step(NewBlock(n, e.inFmt.NumChannels)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

func (e *Engine) fail(err error) error {
	e.state = Failed
	if e.Logger != nil {
		e.Logger.Error("processing failed", "frame", e.framesIn, "error", err)
	}
	return err
}
