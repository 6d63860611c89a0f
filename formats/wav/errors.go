package wav

import "errors"

var (
	// ErrNotWAV means the file does not start with a RIFF/WAVE container.
	ErrNotWAV = errors.New("not a RIFF WAVE file")
	// ErrMalformedHeader means the container is recognizably WAV but its
	// chunk layout or sizes are inconsistent.
	ErrMalformedHeader = errors.New("malformed WAV header")
	// ErrPartialFrame means the raw data length is not a whole number of
	// frames.
	ErrPartialFrame = errors.New("data length is not a whole number of frames")
	// ErrWriterClosed means WriteBlock was called after Close.
	ErrWriterClosed = errors.New("writer is closed")
)
