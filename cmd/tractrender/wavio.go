package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

// readWAV decodes the first channel of a PCM WAV file into [-1, 1] samples.
func readWAV(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: not a valid WAV file", path)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, 0, fmt.Errorf("%s: no channels", path)
	}
	scale := fullScale(buf.SourceBitDepth)
	if scale == 0 {
		return nil, 0, fmt.Errorf("%s: unsupported bit depth %d", path, buf.SourceBitDepth)
	}

	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range out {
		out[i] = float64(buf.Data[i*channels]) / scale
	}
	return out, float64(buf.Format.SampleRate), nil
}

// writeWAV encodes samples as mono PCM, clipping to [-1, 1].
func writeWAV(path string, samples []float64, sampleRate, bitDepth int) error {
	scale := fullScale(bitDepth)
	if scale == 0 {
		return fmt.Errorf("unsupported bit depth %d", bitDepth)
	}

	data := make([]int, len(samples))
	for i, x := range samples {
		x = max(-1, min(1, x))
		data[i] = int(x * scale)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	e := wav.NewEncoder(out, sampleRate, bitDepth, 1, pcmFormat)
	if err := e.Write(buf); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := e.Close(); err != nil {
		out.Close()
		return fmt.Errorf("closing encoder for %s: %w", path, err)
	}
	return out.Close()
}

func fullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 0x7F
	case 16:
		return 0x7FFF
	case 24:
		return 0x7FFFFF
	case 32:
		return 0x7FFFFFFF
	}
	return 0
}
