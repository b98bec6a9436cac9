package windlamp

import (
	"errors"
	"fmt"
)

// Default tuning values applied when the corresponding Config field is zero.
// Completion tolerance and seek hysteresis are feel knobs, not correctness
// knobs; hosts that care override them.
const (
	// DefaultCompletionEpsilon absorbs float32 stepping drift when comparing
	// the current intensity against the chunk target.
	DefaultCompletionEpsilon = 1e-4

	// DefaultSeekHysteresis is the minimum playback-position delta, in
	// seconds, before the wind-up cue is re-seeked. Seeking every tick causes
	// audible zippering on most backends.
	DefaultSeekHysteresis = 0.05

	// DefaultClipEndGuard keeps progress-mapped seeks short of the clip's
	// final sample. Landing exactly on end-of-clip reads as "stopped" to some
	// audio backends.
	DefaultClipEndGuard = 0.02
)

// Config holds the controller's immutable tuning. It is supplied once at
// construction; the controller never mutates it.
type Config struct {
	// MaxIntensity is the hard ceiling for the light output. Must be > 0.
	MaxIntensity float32

	// ChunkSize is the intensity gained by one completed charge chunk. A zero
	// or negative size is accepted and yields an instantly finished chunk.
	ChunkSize float32

	// ChargeRate is intensity gained per second while the input is held.
	// Must be > 0.
	ChargeRate float32

	// DecayRate is intensity lost per second while not charging. Zero
	// disables decay.
	DecayRate float32

	// StopAudioOnChunkFinish stops the wind-up cue the moment a chunk
	// completes instead of letting it play out.
	StopAudioOnChunkFinish bool

	// CompletionEpsilon, SeekHysteresis, and ClipEndGuard override the
	// package defaults when non-zero. Negative values are rejected.
	CompletionEpsilon float32
	SeekHysteresis    float32
	ClipEndGuard      float32
}

// Validate reports the first invariant violation in c.
func (c *Config) Validate() error {
	if c.MaxIntensity <= 0 {
		return fmt.Errorf("max intensity must be > 0, got %v", c.MaxIntensity)
	}
	if c.ChargeRate <= 0 {
		return fmt.Errorf("charge rate must be > 0, got %v", c.ChargeRate)
	}
	if c.DecayRate < 0 {
		return fmt.Errorf("decay rate must be >= 0, got %v", c.DecayRate)
	}
	if c.CompletionEpsilon < 0 {
		return errors.New("completion epsilon must be >= 0")
	}
	if c.SeekHysteresis < 0 {
		return errors.New("seek hysteresis must be >= 0")
	}
	if c.ClipEndGuard < 0 {
		return errors.New("clip end guard must be >= 0")
	}
	return nil
}

// applyDefaults fills zero-valued tuning knobs.
func (c *Config) applyDefaults() {
	if c.CompletionEpsilon == 0 {
		c.CompletionEpsilon = DefaultCompletionEpsilon
	}
	if c.SeekHysteresis == 0 {
		c.SeekHysteresis = DefaultSeekHysteresis
	}
	if c.ClipEndGuard == 0 {
		c.ClipEndGuard = DefaultClipEndGuard
	}
}
