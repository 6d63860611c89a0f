// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestOptions_Resolve(t *testing.T) {
	t.Parallel()

	input := Format{Domain: PCM, BitDepth: 16, NumChannels: 2, SampleRate: 44100}

	tests := []struct {
		name    string
		opts    Options
		want    Format
		wantErr error
	}{
		{
			name: "all unset inherits input",
			opts: Options{},
			want: input,
		},
		{
			name: "bit depth override",
			opts: Options{BitDepth: 8},
			want: Format{Domain: PCM, BitDepth: 8, NumChannels: 2, SampleRate: 44100},
		},
		{
			name: "channel override",
			opts: Options{NumChannels: 1},
			want: Format{Domain: PCM, BitDepth: 16, NumChannels: 1, SampleRate: 44100},
		},
		{
			name: "sample rate relabel",
			opts: Options{SampleRate: 48000},
			want: Format{Domain: PCM, BitDepth: 16, NumChannels: 2, SampleRate: 48000},
		},
		{
			name: "domain switch defaults float depth",
			opts: Options{Domain: Float},
			want: Format{Domain: Float, BitDepth: 32, NumChannels: 2, SampleRate: 44100},
		},
		{
			name: "domain switch with explicit depth",
			opts: Options{Domain: Float, BitDepth: 64},
			want: Format{Domain: Float, BitDepth: 64, NumChannels: 2, SampleRate: 44100},
		},
		{
			name:    "invalid pcm depth",
			opts:    Options{BitDepth: 24},
			wantErr: ErrUnsupportedBitDepth,
		},
		{
			name:    "invalid float depth",
			opts:    Options{Domain: Float, BitDepth: 16},
			wantErr: ErrUnsupportedBitDepth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Resolve(input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptions_ResolveFloatInputToPCMDefaultsDepth(t *testing.T) {
	t.Parallel()

	input := Format{Domain: Float, BitDepth: 32, NumChannels: 1, SampleRate: 8000}
	got, err := Options{Domain: PCM}.Resolve(input)
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if got.BitDepth != 16 {
		t.Errorf("Resolve() depth = %d, want 16", got.BitDepth)
	}
}

func TestOptions_FramesPerBlock(t *testing.T) {
	t.Parallel()

	if got := (Options{}).FramesPerBlock(); got != DefaultBlockFrames {
		t.Errorf("FramesPerBlock() = %d, want %d", got, DefaultBlockFrames)
	}
	if got := (Options{BlockFrames: 256}).FramesPerBlock(); got != 256 {
		t.Errorf("FramesPerBlock() = %d, want 256", got)
	}
}

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		wantErr error
	}{
		{
			name:   "8-bit pcm",
			format: Format{Domain: PCM, BitDepth: 8, NumChannels: 1, SampleRate: 8000},
		},
		{
			name:   "64-bit float",
			format: Format{Domain: Float, BitDepth: 64, NumChannels: 2, SampleRate: 96000},
		},
		{
			name:    "32-bit pcm unsupported",
			format:  Format{Domain: PCM, BitDepth: 32, NumChannels: 1, SampleRate: 44100},
			wantErr: ErrUnsupportedBitDepth,
		},
		{
			name:    "8-bit float unsupported",
			format:  Format{Domain: Float, BitDepth: 8, NumChannels: 1, SampleRate: 44100},
			wantErr: ErrUnsupportedBitDepth,
		},
		{
			name:    "unknown domain",
			format:  Format{Domain: 0, BitDepth: 16, NumChannels: 1, SampleRate: 44100},
			wantErr: ErrUnsupportedDomain,
		},
		{
			name:    "zero channels",
			format:  Format{Domain: PCM, BitDepth: 16, NumChannels: 0, SampleRate: 44100},
			wantErr: ErrNoChannels,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
