package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"windlamp"
)

// lampLight is the demo's light sink. It stores the latest intensity pushed
// by the controller for Draw to read.
type lampLight struct {
	level float32
}

func (l *lampLight) SetIntensity(v float32) { l.level = v }

// Game wires keyboard input and per-frame elapsed time into the charge
// controller and renders the resulting lamp state.
type Game struct {
	ctrl *windlamp.Controller
	lamp *lampLight
	cfg  Config

	timeScale float64
	auto      *autoCycle

	stopPGO     func()
	pgoDeadline time.Time

	pixels []byte
}

// newGame constructs a fully initialized Game instance.
func newGame(cfg Config) (*Game, error) {
	lamp := &lampLight{}
	windUp, clank := setupAudio(cfg)
	ctrl, err := windlamp.NewController(cfg.ToControllerConfig(), lamp, windUp, clank)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctrl:      ctrl,
		lamp:      lamp,
		cfg:       cfg,
		timeScale: 1,
	}
	if *autoCycleFlag || *recordDefaultPGO {
		g.auto = newAutoCycle()
	}
	if *recordDefaultPGO {
		stop, err := startProfileRecording("default.pgo")
		if err != nil {
			return nil, err
		}
		g.stopPGO = stop
		g.pgoDeadline = time.Now().Add(pgoRecordDuration)
		log.Printf("Recording default.pgo for %v", pgoRecordDuration)
	}
	return g, nil
}

// Update samples the raw input state, derives this frame's elapsed time from
// the actual tick rate, and advances the controller.
func (g *Game) Update() error {
	g.handleDebugControls()

	pressed := g.inputPressed()
	tps := ebiten.ActualTPS()
	if tps < 1 {
		tps = defaultTPS
	}
	dt := float32(g.timeScale / tps)
	g.ctrl.Tick(pressed, dt)

	if g.stopPGO != nil && time.Now().After(g.pgoDeadline) {
		g.stopPGO()
		g.stopPGO = nil
		log.Printf("default.pgo capture complete")
	}
	return nil
}

// inputPressed returns the raw held state for this frame. The controller does
// its own edge detection.
func (g *Game) inputPressed() bool {
	if g.auto != nil {
		return g.auto.pressed()
	}
	return ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// handleDebugControls processes the time-scale hotkeys.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustTimeScale(0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustTimeScale(2)
	}
}

func (g *Game) adjustTimeScale(mult float64) {
	g.timeScale *= mult
	if g.timeScale < minTimeScale {
		g.timeScale = minTimeScale
	}
	if g.timeScale > maxTimeScale {
		g.timeScale = maxTimeScale
	}
}

// autoCycle synthesizes press/hold/release cycles for demos and profiling
// runs, standing in for a human holding the charge key.
type autoCycle struct {
	rand       *rand.Rand
	holding    bool
	framesLeft int
}

func newAutoCycle() *autoCycle {
	return &autoCycle{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// pressed advances the cycle by one frame and returns the synthetic input
// state. Hold and gap lengths are randomized so release-early and
// hold-to-finish paths both get exercised.
func (a *autoCycle) pressed() bool {
	if a.framesLeft <= 0 {
		a.holding = !a.holding
		if a.holding {
			a.framesLeft = autoHoldMinFrames + a.rand.Intn(autoHoldVarFrames)
		} else {
			a.framesLeft = autoGapMinFrames + a.rand.Intn(autoGapVarFrames)
		}
	}
	a.framesLeft--
	return a.holding
}
