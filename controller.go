package windlamp

// State identifies the controller's position in the charge cycle. Decay is
// not a state of its own: it runs whenever the controller is not charging and
// intensity remains above zero.
type State int

const (
	StateIdle State = iota
	StateCharging
	StateChunkFinished
)

// String returns a short human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCharging:
		return "charging"
	case StateChunkFinished:
		return "chunk-finished"
	}
	return "unknown"
}

// Controller is the charge/decay state machine driving one light intensity
// and two audio cues. It is single-threaded by design: all logic runs inside
// Tick, which the host loop calls once per frame.
type Controller struct {
	cfg    Config
	light  LightSink
	windUp AudioChannel
	clank  AudioChannel

	intensity  float32
	chunkStart float32
	target     float32

	charging    bool
	chunkDone   bool
	prevPressed bool
}

// NewController validates cfg and builds a controller wired to the given
// sinks. Any sink may be nil; operations on an absent sink are skipped
// silently and the intensity simulation proceeds unaffected.
func NewController(cfg Config, light LightSink, windUp, clank AudioChannel) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &Controller{
		cfg:    cfg,
		light:  light,
		windUp: windUp,
		clank:  clank,
	}, nil
}

// Intensity returns the current light output, always within
// [0, MaxIntensity].
func (c *Controller) Intensity() float32 { return c.intensity }

// ChunkTarget returns the active chunk's intensity ceiling. Meaningful while
// charging or chunk-finished; it retains the last chunk's value when idle.
func (c *Controller) ChunkTarget() float32 { return c.target }

// State returns the controller's current state.
func (c *Controller) State() State {
	switch {
	case c.charging:
		return StateCharging
	case c.chunkDone:
		return StateChunkFinished
	}
	return StateIdle
}

// Tick advances the simulation by dt seconds using the current raw input
// state. Edge detection against the previous tick's input happens here; the
// host supplies only the raw held/not-held boolean. Negative dt is clamped
// to zero.
func (c *Controller) Tick(pressed bool, dt float32) {
	if dt < 0 {
		dt = 0
	}
	risingEdge := pressed && !c.prevPressed
	fallingEdge := !pressed && c.prevPressed
	c.prevPressed = pressed

	// Start-charge edge: only from idle. A finished chunk blocks re-entry
	// until the input has been released once.
	if risingEdge && !c.charging && !c.chunkDone {
		c.beginChunk()
	}

	// Early release halts the chunk and the wind-up cue immediately.
	if c.charging && !pressed {
		c.charging = false
		if c.windUp != nil && c.windUp.IsPlaying() {
			c.windUp.Stop()
		}
	}

	advanced := false
	if c.charging {
		advanced = true
		remaining := c.target - c.intensity
		step := c.cfg.ChargeRate * dt
		if step > remaining {
			step = remaining
		}
		if step > 0 {
			c.setIntensity(c.intensity + step)
		}
		c.syncWindUp()
		if c.target-c.intensity <= c.cfg.CompletionEpsilon {
			c.finishChunk()
		}
	}

	// Release edge re-arms a finished chunk for the next press.
	if c.chunkDone && fallingEdge {
		c.chunkDone = false
	}

	// Decay whenever this tick's time was not consumed by charging.
	if !advanced && c.intensity > 0 && c.cfg.DecayRate > 0 && dt > 0 {
		next := c.intensity - c.cfg.DecayRate*dt
		if next < 0 {
			next = 0
		}
		c.setIntensity(next)
	}
}

// beginChunk snapshots the chunk bounds and restarts the wind-up cue.
func (c *Controller) beginChunk() {
	c.charging = true
	c.chunkStart = c.intensity
	span := c.cfg.ChunkSize
	if span < 0 {
		span = 0
	}
	target := c.chunkStart + span
	if target > c.cfg.MaxIntensity {
		target = c.cfg.MaxIntensity
	}
	if target < c.chunkStart {
		target = c.chunkStart
	}
	c.target = target
	if c.windUp != nil {
		c.windUp.PlayFromStart()
	}
}

// finishChunk snaps the intensity onto the target and fires the clank cue.
func (c *Controller) finishChunk() {
	c.setIntensity(c.target)
	c.charging = false
	c.chunkDone = true
	if c.cfg.StopAudioOnChunkFinish && c.windUp != nil && c.windUp.IsPlaying() {
		c.windUp.Stop()
	}
	if c.clank != nil {
		c.clank.Stop()
		c.clank.PlayFromStart()
	}
}

// syncWindUp maps chunk progress onto the wind-up clip's timeline and seeks
// only when the drift against the current playback position exceeds the
// hysteresis threshold.
func (c *Controller) syncWindUp() {
	if c.windUp == nil {
		return
	}
	duration := c.windUp.ClipDuration()
	if duration <= 0 {
		return
	}
	span := c.target - c.chunkStart
	var fraction float32
	if span > c.cfg.CompletionEpsilon {
		fraction = (c.intensity - c.chunkStart) / span
		if fraction < 0 {
			fraction = 0
		} else if fraction > 1 {
			fraction = 1
		}
	}
	playable := duration - c.cfg.ClipEndGuard
	if playable < 0 {
		playable = 0
	}
	pos := fraction * playable
	delta := pos - c.windUp.Position()
	if delta < 0 {
		delta = -delta
	}
	if delta > c.cfg.SeekHysteresis {
		c.windUp.Seek(pos)
	}
}

// setIntensity updates the stored intensity and pushes it to the light sink
// when it actually changed.
func (c *Controller) setIntensity(v float32) {
	if v == c.intensity {
		return
	}
	c.intensity = v
	if c.light != nil {
		c.light.SetIntensity(v)
	}
}
