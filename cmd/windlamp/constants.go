package main

import "time"

// Rendering, timing, and audio synthesis constants for the wind lamp demo.
// These define the window geometry, the simulation time-scale bounds, and the
// procedural cue generators.
const (
	screenW, screenH = 256, 256
	windowScale      = 2
	defaultTPS       = 60.0

	minTimeScale = 0.125
	maxTimeScale = 8.0

	glowRadius = 120.0
	barRows    = 5

	defaultSampleRate    = 48000
	defaultWindUpSeconds = 3.0
	defaultClankSeconds  = 0.7

	windUpStartHz    = 110.0
	windUpEndHz      = 880.0
	clankBaseHz      = 720.0
	clankDecayPerSec = 9.0

	autoHoldMinFrames = 45
	autoHoldVarFrames = 150
	autoGapMinFrames  = 30
	autoGapVarFrames  = 90

	pgoRecordDuration = 15 * time.Second
)
