package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/wavfx/audio"
)

// WAV format codes.
const (
	fmtCodePCM        = 1
	fmtCodeFloat      = 3
	fmtCodeExtensible = 0xFFFE
)

const (
	riffHeadSize  = 12 // "RIFF" + size + "WAVE"
	chunkHeadSize = 8  // chunk ID + size
	fmtChunk16    = 16 // PCM fmt body
	fmtChunk18    = 18 // non-PCM fmt body (cbSize = 0)
	fmtChunk40    = 40 // extensible fmt body
)

// Header is the parsed description of a WAV container: the declared
// sample format plus where the audio data lives. It is created once when
// a file is opened and never mutated mid-stream.
type Header struct {
	// Format declared by the fmt chunk.
	Format audio.Format
	// FormatCode is the raw wFormatTag (after resolving the extensible
	// sub-format, when present).
	FormatCode uint16
	// ByteRate and BlockAlign as declared.
	ByteRate   uint32
	BlockAlign uint16
	// DataOffset is the byte position of the first audio frame.
	DataOffset int64
	// DataBytes is the declared size of the data chunk.
	DataBytes uint32
	// FrameCount is the number of frames the stream declares, taken from
	// the fact chunk when present, else derived from DataBytes.
	FrameCount uint64
	// HasFact records whether the source carried a fact chunk.
	HasFact bool
}

// DecodeHeader parses and validates a WAV header, leaving the reader
// positioned arbitrarily. It fails eagerly: malformed or unsupported
// containers are rejected here, before any data is streamed.
func DecodeHeader(r io.ReadSeeker) (*Header, error) {
	fileSize, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("sizing input: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding input: %w", err)
	}

	var riff [riffHeadSize]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotWAV, err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, ErrNotWAV
	}

	h := &Header{}
	var (
		fmtSeen    bool
		dataSeen   bool
		factFrames uint32
		offset     = int64(riffHeadSize)
	)
	for !dataSeen {
		var head [chunkHeadSize]byte
		if _, err := io.ReadFull(r, head[:]); err != nil {
			return nil, fmt.Errorf("%w: missing data chunk", ErrMalformedHeader)
		}
		id := string(head[0:4])
		size := binary.LittleEndian.Uint32(head[4:8])
		offset += chunkHeadSize

		switch id {
		case "fmt ":
			if err := h.parseFmt(r, size); err != nil {
				return nil, err
			}
			fmtSeen = true
		case "fact":
			if size < 4 {
				return nil, fmt.Errorf("%w: fact chunk too small", ErrMalformedHeader)
			}
			var body [4]byte
			if _, err := io.ReadFull(r, body[:]); err != nil {
				return nil, fmt.Errorf("%w: truncated fact chunk", ErrMalformedHeader)
			}
			factFrames = binary.LittleEndian.Uint32(body[:])
			h.HasFact = true
			if _, err := r.Seek(int64(size)-4, io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrMalformedHeader, err)
			}
		case "data":
			h.DataOffset = offset
			h.DataBytes = size
			dataSeen = true
			continue // size is audio data, not header to skip
		default:
			// Unknown chunk: skip the body.
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrMalformedHeader, err)
			}
		}
		offset += int64(size)
		// Chunk bodies are word-aligned; odd sizes carry a pad byte.
		if size%2 == 1 {
			if _, err := r.Seek(1, io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrMalformedHeader, err)
			}
			offset++
		}
	}
	if !fmtSeen {
		return nil, fmt.Errorf("%w: no fmt chunk before data", ErrMalformedHeader)
	}
	if err := h.Format.Validate(); err != nil {
		return nil, err
	}
	if h.DataOffset+int64(h.DataBytes) > fileSize {
		return nil, fmt.Errorf("%w: data chunk of %d bytes exceeds file size %d",
			ErrMalformedHeader, h.DataBytes, fileSize)
	}

	frameBytes := h.Format.FrameBytes()
	h.FrameCount = uint64(h.DataBytes) / uint64(frameBytes)
	if h.HasFact && factFrames > 0 {
		if uint64(factFrames) > h.FrameCount {
			return nil, fmt.Errorf("%w: fact chunk declares %d frames but data holds %d",
				ErrMalformedHeader, factFrames, h.FrameCount)
		}
		h.FrameCount = uint64(factFrames)
	}
	return h, nil
}

// parseFmt reads the fmt chunk body and fills in the declared format,
// accepting the 16, 18 and 40 byte layouts.
func (h *Header) parseFmt(r io.Reader, size uint32) error {
	if size < fmtChunk16 {
		return fmt.Errorf("%w: fmt chunk of %d bytes", ErrMalformedHeader, size)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return fmt.Errorf("%w: truncated fmt chunk", ErrMalformedHeader)
	}

	code := binary.LittleEndian.Uint16(body[0:2])
	channels := binary.LittleEndian.Uint16(body[2:4])
	sampleRate := binary.LittleEndian.Uint32(body[4:8])
	h.ByteRate = binary.LittleEndian.Uint32(body[8:12])
	h.BlockAlign = binary.LittleEndian.Uint16(body[12:14])
	bits := binary.LittleEndian.Uint16(body[14:16])

	if code == fmtCodeExtensible {
		if size < fmtChunk40 {
			return fmt.Errorf("%w: extensible fmt chunk of %d bytes", ErrMalformedHeader, size)
		}
		// wFormatTag of the SubFormat GUID decides the real encoding.
		code = binary.LittleEndian.Uint16(body[24:26])
	}

	var domain audio.Domain
	switch code {
	case fmtCodePCM:
		domain = audio.PCM
	case fmtCodeFloat:
		domain = audio.Float
	default:
		return fmt.Errorf("%w: WAV format code %d", audio.ErrUnsupportedDomain, code)
	}
	h.FormatCode = code
	h.Format = audio.Format{
		Domain:      domain,
		BitDepth:    uint(bits),
		NumChannels: uint(channels),
		SampleRate:  uint(sampleRate),
	}
	return nil
}

// EncodeHeader serializes a header for the given format and frame count.
// It is deterministic and the byte-exact inverse of DecodeHeader for any
// header this package writes: PCM streams get the canonical 44-byte
// fmt-16 layout, float streams the fmt-18 layout with a fact chunk.
func EncodeHeader(f audio.Format, frameCount uint64) []byte {
	dataSize := uint32(frameCount * uint64(f.FrameBytes()))
	blockAlign := uint16(f.FrameBytes())
	byteRate := uint32(f.SampleRate) * uint32(blockAlign)

	var code uint16 = fmtCodePCM
	fmtSize := uint32(fmtChunk16)
	if f.Domain == audio.Float {
		code = fmtCodeFloat
		fmtSize = fmtChunk18
	}

	headerLen := HeaderLen(f)
	buf := make([]byte, 0, headerLen)

	// An odd data chunk carries a word-alignment pad byte, counted in the
	// RIFF size but not in the data size.
	riffSize := uint32(headerLen) - chunkHeadSize + dataSize + dataSize%2
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, riffSize)
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, fmtSize)
	buf = binary.LittleEndian.AppendUint16(buf, code)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(f.NumChannels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(f.SampleRate))
	buf = binary.LittleEndian.AppendUint32(buf, byteRate)
	buf = binary.LittleEndian.AppendUint16(buf, blockAlign)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(f.BitDepth))
	if f.Domain == audio.Float {
		buf = binary.LittleEndian.AppendUint16(buf, 0) // cbSize
		buf = append(buf, "fact"...)
		buf = binary.LittleEndian.AppendUint32(buf, 4)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(frameCount))
	}

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, dataSize)
	return buf
}

// HeaderLen is the serialized header size for a format: 44 bytes for PCM,
// 58 for float (fmt extension plus fact chunk).
func HeaderLen(f audio.Format) int {
	n := riffHeadSize + chunkHeadSize + fmtChunk16 + chunkHeadSize
	if f.Domain == audio.Float {
		n += 2 + chunkHeadSize + 4 // cbSize + fact chunk
	}
	return n
}
