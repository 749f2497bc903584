package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// DecodeAudioFile reads a WAV or MP3 upload into mono float32 samples at the
// model's rate (16 kHz).
func DecodeAudioFile(path string) ([]float32, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return decodeMP3(path)
	default:
		return decodeWAV(path)
	}
}

func decodeMP3(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	// go-mp3 always emits 16-bit stereo little-endian.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	samples := make([]float32, 0, len(raw)/4)
	for i := 0; i+3 < len(raw); i += 4 {
		left := int16(uint16(raw[i]) | uint16(raw[i+1])<<8)
		right := int16(uint16(raw[i+2]) | uint16(raw[i+3])<<8)
		samples = append(samples, (float32(left)+float32(right))/2/32768)
	}

	return resample(samples, dec.SampleRate(), whisper.SampleRate), nil
}

func downmix(data []float32, channels int) []float32 {
	if channels <= 1 {
		return data
	}
	mono := make([]float32, 0, len(data)/channels)
	for i := 0; i+channels-1 < len(data); i += channels {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += data[i+c]
		}
		mono = append(mono, sum/float32(channels))
	}
	return mono
}

// resample does linear interpolation, good enough for speech input.
func resample(in []float32, from, to int) []float32 {
	if from == to || from <= 0 || len(in) == 0 {
		return in
	}

	ratio := float64(from) / float64(to)
	n := int(float64(len(in)) / ratio)
	out := make([]float32, n)
	for i := range out {
		pos := float64(i) * ratio
		j := int(pos)
		if j >= len(in)-1 {
			out[i] = in[len(in)-1]
			continue
		}
		frac := float32(pos - float64(j))
		out[i] = in[j]*(1-frac) + in[j+1]*frac
	}
	return out
}
