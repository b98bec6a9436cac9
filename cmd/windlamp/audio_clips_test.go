package main

import (
	"encoding/binary"
	"testing"
)

func TestSynthWindUpSamples(t *testing.T) {
	const rate = 48000
	samples := synthWindUpSamples(rate, 1.5)
	if len(samples) != rate*3/2 {
		t.Fatalf("expected %d samples, got %d", rate*3/2, len(samples))
	}
	for i, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}

	// The cue swells toward the clip end so scrubbing is audible.
	early := peakAbs(samples[:rate/10])
	late := peakAbs(samples[len(samples)-rate/10:])
	if late <= early {
		t.Errorf("wind-up does not swell: early peak %v, late peak %v", early, late)
	}
}

func TestSynthClankSamples(t *testing.T) {
	const rate = 48000
	samples := synthClankSamples(rate, 0.7)
	if len(samples) != int(float64(rate)*0.7) {
		t.Fatalf("unexpected sample count %d", len(samples))
	}
	for i, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}

	// A strike decays: the attack must dominate the tail.
	attack := peakAbs(samples[:rate/20])
	tail := peakAbs(samples[len(samples)-rate/20:])
	if tail >= attack/4 {
		t.Errorf("clank does not decay: attack %v, tail %v", attack, tail)
	}
}

func TestSynthZeroLength(t *testing.T) {
	if s := synthWindUpSamples(48000, 0); s != nil {
		t.Errorf("expected nil for zero-length wind-up, got %d samples", len(s))
	}
	if s := synthClankSamples(48000, 0); s != nil {
		t.Errorf("expected nil for zero-length clank, got %d samples", len(s))
	}
}

func TestEncodeStereoI16(t *testing.T) {
	in := []float32{0, 0.5, -0.5, 2, -2}
	out := encodeStereoI16(in)
	if len(out) != len(in)*4 {
		t.Fatalf("expected %d bytes, got %d", len(in)*4, len(out))
	}

	for i := range in {
		left := int16(binary.LittleEndian.Uint16(out[i*4 : i*4+2]))
		right := int16(binary.LittleEndian.Uint16(out[i*4+2 : i*4+4]))
		if left != right {
			t.Errorf("frame %d: channels differ, %d vs %d", i, left, right)
		}
	}

	// Out-of-range inputs clamp to full scale.
	if v := int16(binary.LittleEndian.Uint16(out[12:14])); v != 32767 {
		t.Errorf("expected +2 to clamp to 32767, got %d", v)
	}
	if v := int16(binary.LittleEndian.Uint16(out[16:18])); v != -32767 {
		t.Errorf("expected -2 to clamp to -32767, got %d", v)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []float32{0, 0.25, -0.25, 0.9, -0.9}
	got := decodeStereoI16ToFloat(encodeStereoI16(in))
	if len(got) != len(in) {
		t.Fatalf("expected %d samples, got %d", len(in), len(got))
	}
	for i := range in {
		d := got[i] - in[i]
		if d < 0 {
			d = -d
		}
		if d > 1.0/16384 {
			t.Errorf("sample %d: %v -> %v drifted beyond quantization", i, in[i], got[i])
		}
	}
}

func peakAbs(samples []float32) float32 {
	var peak float32
	for _, v := range samples {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
