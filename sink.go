package windlamp

// LightSink receives the controller's intensity output. The controller pushes
// a value whenever the intensity changes and never reads it back.
type LightSink interface {
	SetIntensity(v float32)
}

// AudioChannel is one independently controllable audio cue. Positions and
// durations are in seconds. The controller owns the channel's playback state
// exclusively; nothing else may play, stop, or seek it.
type AudioChannel interface {
	// PlayFromStart restarts the cue from position zero.
	PlayFromStart()
	// Stop halts playback immediately. No fade.
	Stop()
	IsPlaying() bool
	// Seek moves the playback position without changing play state.
	Seek(positionSeconds float32)
	// Position reports the current playback position.
	Position() float32
	// ClipDuration reports the assigned clip's length, or 0 when no clip is
	// usable.
	ClipDuration() float32
}
