package windlamp

import "testing"

func TestConfigValidate(t *testing.T) {
	valid := Config{
		MaxIntensity: 8,
		ChunkSize:    2,
		ChargeRate:   1,
		DecayRate:    0.5,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero decay is valid", func(c *Config) { c.DecayRate = 0 }, false},
		{"negative chunk is valid", func(c *Config) { c.ChunkSize = -1 }, false},
		{"zero max intensity", func(c *Config) { c.MaxIntensity = 0 }, true},
		{"negative max intensity", func(c *Config) { c.MaxIntensity = -2 }, true},
		{"zero charge rate", func(c *Config) { c.ChargeRate = 0 }, true},
		{"negative decay rate", func(c *Config) { c.DecayRate = -0.1 }, true},
		{"negative epsilon", func(c *Config) { c.CompletionEpsilon = -1e-5 }, true},
		{"negative hysteresis", func(c *Config) { c.SeekHysteresis = -0.1 }, true},
		{"negative end guard", func(c *Config) { c.ClipEndGuard = -0.01 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewControllerRejectsInvalidConfig(t *testing.T) {
	if _, err := NewController(Config{}, nil, nil, nil); err == nil {
		t.Fatal("expected error for zero config")
	}
}

func TestConfigDefaultsApplied(t *testing.T) {
	cfg := Config{MaxIntensity: 1, ChargeRate: 1}
	cfg.applyDefaults()

	if cfg.CompletionEpsilon != DefaultCompletionEpsilon {
		t.Errorf("epsilon default not applied, got %v", cfg.CompletionEpsilon)
	}
	if cfg.SeekHysteresis != DefaultSeekHysteresis {
		t.Errorf("hysteresis default not applied, got %v", cfg.SeekHysteresis)
	}
	if cfg.ClipEndGuard != DefaultClipEndGuard {
		t.Errorf("end guard default not applied, got %v", cfg.ClipEndGuard)
	}

	tuned := Config{
		MaxIntensity:      1,
		ChargeRate:        1,
		CompletionEpsilon: 1e-6,
		SeekHysteresis:    0.2,
		ClipEndGuard:      0.1,
	}
	tuned.applyDefaults()
	if tuned.CompletionEpsilon != 1e-6 || tuned.SeekHysteresis != 0.2 || tuned.ClipEndGuard != 0.1 {
		t.Errorf("explicit tuning overwritten: %+v", tuned)
	}
}
