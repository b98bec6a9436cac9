package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"windlamp"
)

// Config is the top-level YAML configuration for the wind lamp demo. Defaults
// and validation live here so the rest of the code can assume a well-formed
// config.
type Config struct {
	// Lamp tunes the charge controller.
	Lamp LampConfig `yaml:"lamp"`

	// Audio tunes the synthesized cue generators.
	Audio AudioConfig `yaml:"audio"`
}

// LampConfig maps 1:1 onto windlamp.Config using YAML-friendly field names.
type LampConfig struct {
	MaxIntensity       float32 `yaml:"max_intensity"`
	ChunkSize          float32 `yaml:"chunk_size"`
	ChargeRate         float32 `yaml:"charge_rate"`
	DecayRate          float32 `yaml:"decay_rate"`
	StopWindUpOnFinish bool    `yaml:"stop_windup_on_finish"`

	// Optional feel knobs; zero selects the library defaults.
	CompletionEpsilon float32 `yaml:"completion_epsilon,omitempty"`
	SeekHysteresisSec float32 `yaml:"seek_hysteresis_sec,omitempty"`
	ClipEndGuardSec   float32 `yaml:"clip_end_guard_sec,omitempty"`
}

type AudioConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	WindUpSeconds float64 `yaml:"windup_seconds"`
	ClankSeconds  float64 `yaml:"clank_seconds"`
}

// DefaultConfig returns a fully-populated Config with defaults.
func DefaultConfig() Config {
	return Config{
		Lamp: LampConfig{
			MaxIntensity:       8,
			ChunkSize:          2,
			ChargeRate:         1.5,
			DecayRate:          0.5,
			StopWindUpOnFinish: true,
		},
		Audio: AudioConfig{
			SampleRate:    defaultSampleRate,
			WindUpSeconds: defaultWindUpSeconds,
			ClankSeconds:  defaultClankSeconds,
		},
	}
}

// LoadConfigFile reads and parses a YAML config file on top of the defaults.
// Unknown fields are rejected to catch typos, and trailing YAML documents are
// treated as errors.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); err == nil {
		return Config{}, fmt.Errorf("decode config yaml: unexpected trailing document")
	} else if !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}

	return cfg, nil
}

// Validate checks config invariants and returns a user-friendly error. Lamp
// fields are validated by the controller config they map onto.
func (c *Config) Validate() error {
	lamp := c.ToControllerConfig()
	if err := lamp.Validate(); err != nil {
		return fmt.Errorf("lamp: %w", err)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.New("audio.sample_rate must be > 0")
	}
	if c.Audio.WindUpSeconds <= 0 {
		return errors.New("audio.windup_seconds must be > 0")
	}
	if c.Audio.ClankSeconds <= 0 {
		return errors.New("audio.clank_seconds must be > 0")
	}
	return nil
}

// ToControllerConfig maps the file config onto the library config.
func (c *Config) ToControllerConfig() windlamp.Config {
	return windlamp.Config{
		MaxIntensity:           c.Lamp.MaxIntensity,
		ChunkSize:              c.Lamp.ChunkSize,
		ChargeRate:             c.Lamp.ChargeRate,
		DecayRate:              c.Lamp.DecayRate,
		StopAudioOnChunkFinish: c.Lamp.StopWindUpOnFinish,
		CompletionEpsilon:      c.Lamp.CompletionEpsilon,
		SeekHysteresis:         c.Lamp.SeekHysteresisSec,
		ClipEndGuard:           c.Lamp.ClipEndGuardSec,
	}
}
