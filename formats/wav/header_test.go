package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/wavfx/audio"
)

var (
	pcm16Stereo = audio.Format{Domain: audio.PCM, BitDepth: 16, NumChannels: 2, SampleRate: 44100}
	pcm8Mono    = audio.Format{Domain: audio.PCM, BitDepth: 8, NumChannels: 1, SampleRate: 8000}
	float32Mono = audio.Format{Domain: audio.Float, BitDepth: 32, NumChannels: 1, SampleRate: 48000}
)

// withData appends a zero-filled data chunk body matching the header's
// declared frame count, so file-size validation holds.
func withData(header []byte, f audio.Format, frameCount uint64) []byte {
	return append(header, make([]byte, frameCount*uint64(f.FrameBytes()))...)
}

func TestEncodeDecodeHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		format     audio.Format
		frameCount uint64
		wantLen    int
		wantCode   uint16
		wantFact   bool
	}{
		{
			name:       "pcm 16-bit stereo",
			format:     pcm16Stereo,
			frameCount: 100,
			wantLen:    44,
			wantCode:   fmtCodePCM,
		},
		{
			name:       "pcm 8-bit mono",
			format:     pcm8Mono,
			frameCount: 13,
			wantLen:    44,
			wantCode:   fmtCodePCM,
		},
		{
			name:       "float 32-bit mono",
			format:     float32Mono,
			frameCount: 50,
			wantLen:    58,
			wantCode:   fmtCodeFloat,
			wantFact:   true,
		},
		{
			name:       "empty data chunk",
			format:     pcm16Stereo,
			frameCount: 0,
			wantLen:    44,
			wantCode:   fmtCodePCM,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := EncodeHeader(tt.format, tt.frameCount)
			if len(raw) != tt.wantLen {
				t.Fatalf("EncodeHeader() produced %d bytes, want %d", len(raw), tt.wantLen)
			}
			if got := HeaderLen(tt.format); got != tt.wantLen {
				t.Errorf("HeaderLen() = %d, want %d", got, tt.wantLen)
			}

			h, err := DecodeHeader(bytes.NewReader(withData(raw, tt.format, tt.frameCount)))
			if err != nil {
				t.Fatalf("DecodeHeader() error = %v, want nil", err)
			}
			if h.Format != tt.format {
				t.Errorf("Format = %+v, want %+v", h.Format, tt.format)
			}
			if h.FormatCode != tt.wantCode {
				t.Errorf("FormatCode = %d, want %d", h.FormatCode, tt.wantCode)
			}
			if h.FrameCount != tt.frameCount {
				t.Errorf("FrameCount = %d, want %d", h.FrameCount, tt.frameCount)
			}
			if h.HasFact != tt.wantFact {
				t.Errorf("HasFact = %v, want %v", h.HasFact, tt.wantFact)
			}
			if h.DataOffset != int64(tt.wantLen) {
				t.Errorf("DataOffset = %d, want %d", h.DataOffset, tt.wantLen)
			}
			wantData := uint32(tt.frameCount * uint64(tt.format.FrameBytes()))
			if h.DataBytes != wantData {
				t.Errorf("DataBytes = %d, want %d", h.DataBytes, wantData)
			}
			if wantAlign := uint16(tt.format.FrameBytes()); h.BlockAlign != wantAlign {
				t.Errorf("BlockAlign = %d, want %d", h.BlockAlign, wantAlign)
			}
			if wantRate := uint32(tt.format.SampleRate) * uint32(tt.format.FrameBytes()); h.ByteRate != wantRate {
				t.Errorf("ByteRate = %d, want %d", h.ByteRate, wantRate)
			}
		})
	}
}

func TestDecodeHeaderSkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	// Rebuild a canonical PCM header with a LIST chunk (odd size, so a pad
	// byte follows) wedged between fmt and data.
	canonical := EncodeHeader(pcm16Stereo, 2)
	var buf []byte
	buf = append(buf, canonical[:riffHeadSize+chunkHeadSize+fmtChunk16]...)
	buf = append(buf, "LIST"...)
	buf = binary.LittleEndian.AppendUint32(buf, 5)
	buf = append(buf, 'I', 'N', 'F', 'O', 'x', 0) // 5 bytes + pad
	buf = append(buf, canonical[riffHeadSize+chunkHeadSize+fmtChunk16:]...)
	buf = withData(buf, pcm16Stereo, 2)

	h, err := DecodeHeader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v, want nil", err)
	}
	if h.Format != pcm16Stereo {
		t.Errorf("Format = %+v, want %+v", h.Format, pcm16Stereo)
	}
	if h.FrameCount != 2 {
		t.Errorf("FrameCount = %d, want 2", h.FrameCount)
	}
	if want := int64(44 + chunkHeadSize + 6); h.DataOffset != want {
		t.Errorf("DataOffset = %d, want %d", h.DataOffset, want)
	}
}

func TestDecodeHeaderExtensible(t *testing.T) {
	t.Parallel()

	var buf []byte
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, 0) // patched below
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, fmtChunk40)
	buf = binary.LittleEndian.AppendUint16(buf, fmtCodeExtensible)
	buf = binary.LittleEndian.AppendUint16(buf, 2)     // channels
	buf = binary.LittleEndian.AppendUint32(buf, 44100) // sample rate
	buf = binary.LittleEndian.AppendUint32(buf, 44100*4)
	buf = binary.LittleEndian.AppendUint16(buf, 4)
	buf = binary.LittleEndian.AppendUint16(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 22)         // cbSize
	buf = binary.LittleEndian.AppendUint16(buf, 16)         // valid bits
	buf = binary.LittleEndian.AppendUint32(buf, 0x3)        // channel mask
	buf = binary.LittleEndian.AppendUint16(buf, fmtCodePCM) // sub-format tag
	buf = append(buf, make([]byte, 14)...)                  // rest of the GUID

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, 8)
	buf = append(buf, make([]byte, 8)...)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(buf)-chunkHeadSize))

	h, err := DecodeHeader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v, want nil", err)
	}
	if h.FormatCode != fmtCodePCM {
		t.Errorf("FormatCode = %d, want resolved PCM", h.FormatCode)
	}
	if h.Format != pcm16Stereo {
		t.Errorf("Format = %+v, want %+v", h.Format, pcm16Stereo)
	}
	if h.FrameCount != 2 {
		t.Errorf("FrameCount = %d, want 2", h.FrameCount)
	}
}

func TestDecodeHeaderRejects(t *testing.T) {
	t.Parallel()

	// corrupt mutates a valid header at build time.
	valid := func() []byte {
		return withData(EncodeHeader(pcm16Stereo, 4), pcm16Stereo, 4)
	}

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{
			name:    "empty input",
			input:   nil,
			wantErr: ErrNotWAV,
		},
		{
			name:    "truncated riff head",
			input:   []byte("RIFF\x00\x00"),
			wantErr: ErrNotWAV,
		},
		{
			name: "wrong riff magic",
			input: func() []byte {
				b := valid()
				copy(b, "JUNK")
				return b
			}(),
			wantErr: ErrNotWAV,
		},
		{
			name: "wrong wave magic",
			input: func() []byte {
				b := valid()
				copy(b[8:], "AVI ")
				return b
			}(),
			wantErr: ErrNotWAV,
		},
		{
			name:    "no data chunk",
			input:   EncodeHeader(pcm16Stereo, 0)[:riffHeadSize+chunkHeadSize+fmtChunk16],
			wantErr: ErrMalformedHeader,
		},
		{
			name: "fmt chunk too small",
			input: func() []byte {
				b := valid()
				binary.LittleEndian.PutUint32(b[16:20], 8)
				return b
			}(),
			wantErr: ErrMalformedHeader,
		},
		{
			name: "data exceeds file size",
			input: func() []byte {
				b := valid()
				binary.LittleEndian.PutUint32(b[40:44], 1<<20)
				return b
			}(),
			wantErr: ErrMalformedHeader,
		},
		{
			name: "unsupported format code",
			input: func() []byte {
				b := valid()
				binary.LittleEndian.PutUint16(b[20:22], 6) // A-law
				return b
			}(),
			wantErr: audio.ErrUnsupportedDomain,
		},
		{
			name: "unsupported bit depth",
			input: func() []byte {
				b := valid()
				binary.LittleEndian.PutUint16(b[34:36], 24)
				return b
			}(),
			wantErr: audio.ErrUnsupportedBitDepth,
		},
		{
			name: "fact chunk exceeds data",
			input: func() []byte {
				b := withData(EncodeHeader(float32Mono, 4), float32Mono, 4)
				// Inflate the fact dwSampleLength past what data holds.
				binary.LittleEndian.PutUint32(b[46:50], 999)
				return b
			}(),
			wantErr: ErrMalformedHeader,
		},
		{
			name: "zero channels",
			input: func() []byte {
				b := valid()
				binary.LittleEndian.PutUint16(b[22:24], 0)
				return b
			}(),
			wantErr: audio.ErrNoChannels,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeHeader(bytes.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeHeader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
