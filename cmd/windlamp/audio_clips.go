package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// loadClipSamples decodes the WAV at path and returns stereo-averaged mono
// samples at sampleRate.
func loadClipSamples(sampleRate int, path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	samples := decodeStereoI16ToFloat(decoded)
	if len(samples) == 0 {
		return nil, fmt.Errorf("wav %q has no usable samples", path)
	}
	return samples, nil
}

func decodeStereoI16ToFloat(pcm []byte) []float32 {
	frameCount := len(pcm) / 4
	if frameCount == 0 {
		return nil
	}
	samples := make([]float32, frameCount)
	for i := 0; i < frameCount; i++ {
		offset := i * 4
		left := int16(binary.LittleEndian.Uint16(pcm[offset : offset+2]))
		right := int16(binary.LittleEndian.Uint16(pcm[offset+2 : offset+4]))
		samples[i] = (float32(left) + float32(right)) * (0.5 / 32768.0)
	}
	return samples
}

// encodeStereoI16 converts mono float32 samples to interleaved stereo PCM16,
// clamping to the valid range.
func encodeStereoI16(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * 32767)
		base := i * 4
		binary.LittleEndian.PutUint16(out[base:base+2], uint16(s))
		binary.LittleEndian.PutUint16(out[base+2:base+4], uint16(s))
	}
	return out
}

// synthWindUpSamples generates the wind-up cue: a rising tone with an
// accelerating ratchet click train. The controller scrubs through this clip,
// so pitch and click density encode positions within a chunk.
func synthWindUpSamples(sampleRate int, seconds float64) []float32 {
	n := int(float64(sampleRate) * seconds)
	if n <= 0 {
		return nil
	}
	samples := make([]float32, n)
	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(n)
		freq := windUpStartHz + (windUpEndHz-windUpStartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		body := math.Sin(phase) * 0.35

		clickRate := 6 + 18*t
		clickPhase := math.Mod(float64(i)/float64(sampleRate)*clickRate, 1)
		click := 0.0
		if clickPhase < 0.05 {
			click = (1 - clickPhase/0.05) * 0.3
		}

		samples[i] = float32((body + click) * (0.4 + 0.6*t))
	}
	return samples
}

// synthClankSamples generates the clank cue: a short metallic strike built
// from inharmonic partials with an exponential decay and a noise transient.
func synthClankSamples(sampleRate int, seconds float64) []float32 {
	n := int(float64(sampleRate) * seconds)
	if n <= 0 {
		return nil
	}
	partials := []struct {
		ratio, amp float64
	}{
		{1.0, 0.5},
		{2.76, 0.3},
		{5.40, 0.15},
		{8.93, 0.08},
	}
	rng := rand.New(rand.NewSource(7))
	samples := make([]float32, n)
	for i := range samples {
		ts := float64(i) / float64(sampleRate)
		env := math.Exp(-ts * clankDecayPerSec)
		v := 0.0
		for _, p := range partials {
			v += math.Sin(2*math.Pi*clankBaseHz*p.ratio*ts) * p.amp
		}
		if ts < 0.01 {
			v += (rng.Float64()*2 - 1) * (1 - ts/0.01) * 0.6
		}
		samples[i] = float32(v * env * 0.5)
	}
	return samples
}
