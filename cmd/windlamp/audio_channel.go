package main

import (
	"bytes"
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"windlamp"
)

// clipChannel adapts an Ebiten audio player to the windlamp.AudioChannel
// interface. The backing stream is an in-memory PCM buffer, so seeking is
// always available.
type clipChannel struct {
	player   *audio.Player
	duration float32
}

// newClipChannel builds a seekable player over mono float32 samples.
func newClipChannel(ctx *audio.Context, samples []float32, sampleRate int) (*clipChannel, error) {
	if len(samples) == 0 {
		return nil, errors.New("clip has no samples")
	}
	player, err := ctx.NewPlayer(bytes.NewReader(encodeStereoI16(samples)))
	if err != nil {
		return nil, err
	}
	return &clipChannel{
		player:   player,
		duration: float32(len(samples)) / float32(sampleRate),
	}, nil
}

func (c *clipChannel) PlayFromStart() {
	_ = c.player.Rewind()
	c.player.Play()
}

func (c *clipChannel) Stop() { c.player.Pause() }

func (c *clipChannel) IsPlaying() bool { return c.player.IsPlaying() }

func (c *clipChannel) Seek(positionSeconds float32) {
	_ = c.player.SetPosition(time.Duration(float64(positionSeconds) * float64(time.Second)))
}

func (c *clipChannel) Position() float32 {
	return float32(c.player.Position().Seconds())
}

func (c *clipChannel) ClipDuration() float32 { return c.duration }

// setupAudio builds the wind-up and clank channels. Any failure degrades to a
// nil channel: the controller treats that as an absent cue and the lamp keeps
// running light-only.
func setupAudio(cfg Config) (windUp, clank windlamp.AudioChannel) {
	if !*enableAudioFlag {
		return nil, nil
	}
	ctx := audio.NewContext(cfg.Audio.SampleRate)
	windUp = buildChannel(ctx, cfg.Audio.SampleRate, *windUpWavFlag, func() []float32 {
		return synthWindUpSamples(cfg.Audio.SampleRate, cfg.Audio.WindUpSeconds)
	})
	clank = buildChannel(ctx, cfg.Audio.SampleRate, *clankWavFlag, func() []float32 {
		return synthClankSamples(cfg.Audio.SampleRate, cfg.Audio.ClankSeconds)
	})
	return windUp, clank
}

// buildChannel prefers the WAV at wavPath and falls back to the synthesized
// cue when the path is empty or unreadable.
func buildChannel(ctx *audio.Context, sampleRate int, wavPath string, synth func() []float32) windlamp.AudioChannel {
	var samples []float32
	if wavPath != "" {
		loaded, err := loadClipSamples(sampleRate, wavPath)
		if err != nil {
			log.Printf("WAV cue %q unavailable (%v), using synthesized cue", wavPath, err)
		} else {
			samples = loaded
		}
	}
	if samples == nil {
		samples = synth()
	}
	ch, err := newClipChannel(ctx, samples, sampleRate)
	if err != nil {
		log.Printf("Audio channel creation failed: %v", err)
		return nil
	}
	return ch
}
