// Package wav reads and writes uncompressed WAV containers.
//
// # Supported Layouts
//
// The package handles the two layouts the engine produces and the common
// variants it may encounter:
//   - PCM data (format code 1): 8-bit unsigned or 16-bit signed samples,
//     canonical 44-byte header.
//   - IEEE float data (format code 3): 32 or 64-bit samples, fmt-18
//     header with a fact chunk.
//   - Extensible headers (format code 0xFFFE) resolve through their
//     SubFormat tag; unknown chunks before the data chunk are skipped.
//
// Everything else fails at open time with ErrMalformedHeader or an
// unsupported-format error, never mid-stream.
//
// # Reading and Writing
//
//	r, err := wav.NewReader(file, 1024)
//	// r.Format(), r.Frames(), r.NextBlock() ...
//
//	w, err := wav.NewWriter(outFile, r.Format())
//	// w.WriteBlock(block) ...
//	err = w.Close() // patches the header with the real frame count
//
// Reader and Writer satisfy audio.BlockReader and audio.BlockWriter, so
// they plug straight into audio.Engine.
//
// # Sample Encoding
//
// DecodeFrames and EncodeFrames are the pure byte-level sample codec.
// On-disk 8-bit PCM is unsigned; decoding subtracts the midpoint bias of
// 128 so byte 0x00 becomes -128, 0x80 becomes 0 and 0xFF becomes 127.
// Encoding adds the bias back. 16-bit PCM and the float depths pass
// through with endianness handling only.
package wav
