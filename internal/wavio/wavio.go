// Package wavio writes and reads the stereo PCM files used to audition
// synthesized tones.
package wavio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"
)

const (
	stereoChannels = 2
	wavFormatPCM   = 1

	// Supported bit depths
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// Errors returned by this package.
var (
	ErrBitDepth      = errors.New("wavio: unsupported bit depth")
	ErrSampleRate    = errors.New("wavio: sample rate must be positive")
	ErrChannelLength = errors.New("wavio: channel lengths differ")
	ErrInvalidFile   = errors.New("wavio: invalid WAV file")
)

// maxValue returns the largest positive sample for a bit depth.
func maxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return math.Exp2(float64(bitDepth-1)) - 1, nil
	default:
		return 0, fmt.Errorf("%w: %d (supported 16, 24, 32)", ErrBitDepth, bitDepth)
	}
}

// WriteStereo writes left and right as an interleaved PCM WAV file.
// Samples are clipped to [-1, 1] before quantization.
func WriteStereo(path string, sampleRate, bitDepth int, left, right []float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrSampleRate, sampleRate)
	}
	if len(left) != len(right) {
		return fmt.Errorf("%w: left %d, right %d", ErrChannelLength, len(left), len(right))
	}
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return err
	}

	interleaved := make([]float64, len(left)*stereoChannels)
	f64.Interleave2(interleaved, left, right)

	data := make([]int, len(interleaved))
	for i, v := range interleaved {
		data[i] = int(math.Round(clip(v) * maxVal))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, stereoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: stereoChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return f.Close()
}

// Audio is a decoded PCM file with samples scaled to [-1, 1].
type Audio struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// Read decodes a PCM WAV file and deinterleaves its channels.
func Read(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	numChannels := buf.Format.NumChannels
	frames := len(buf.Data) / numChannels
	channels := make([][]float64, numChannels)
	for ch := range numChannels {
		channels[ch] = make([]float64, frames)
		for i := range frames {
			channels[ch][i] = float64(buf.Data[i*numChannels+ch]) / maxVal
		}
	}

	return &Audio{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
		Channels:   channels,
	}, nil
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
