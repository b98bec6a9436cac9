package main

import "flag"

// Command-line flags that control optional audio, input, and runtime
// behavior. The YAML config file is the primary tuning surface; flags cover
// the knobs that vary per invocation.
var (
	// configFlag points at an optional YAML configuration file.
	configFlag = flag.String("config", "", "path to a YAML configuration file")

	// enableAudioFlag toggles the wind-up and clank cues.
	enableAudioFlag = flag.Bool("enable-audio", true, "enable wind-up and clank audio cues")

	// windUpWavFlag overrides the synthesized wind-up cue with a WAV file.
	windUpWavFlag = flag.String("windup-wav", "", "WAV file for the wind-up cue (synthesized when empty)")

	// clankWavFlag overrides the synthesized clank cue with a WAV file.
	clankWavFlag = flag.String("clank-wav", "", "WAV file for the clank cue (synthesized when empty)")

	// debugFlag enables the state overlay and the time-scale hotkeys.
	debugFlag = flag.Bool("debug", false, "show FPS and charge state overlay")

	// autoCycleFlag replaces keyboard input with scripted press/release cycles.
	autoCycleFlag = flag.Bool("auto-cycle", false, "drive scripted press/release cycles instead of keyboard input")

	// recordDefaultPGO auto-cycles for 15s while capturing default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "auto-cycle for 15s while capturing default.pgo")
)
