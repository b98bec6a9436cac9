package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"windlamp"
)

// Draw renders the lamp glow, the charge progress bar, and the optional
// debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.pixels == nil {
		g.pixels = make([]byte, screenW*screenH*4)
	}

	level := float64(g.lamp.level / g.cfg.Lamp.MaxIntensity)
	cx, cy := screenW/2, screenH/2
	for y := 0; y < screenH; y++ {
		for x := 0; x < screenW; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			falloff := 1 - math.Sqrt(dx*dx+dy*dy)/glowRadius
			if falloff < 0 {
				falloff = 0
			}
			// Warm white, quadratic falloff from the lamp center.
			b := level * falloff * falloff * 255
			base := (y*screenW + x) * 4
			g.pixels[base] = byte(math.Min(255, b))
			g.pixels[base+1] = byte(math.Min(255, b*0.84))
			g.pixels[base+2] = byte(math.Min(255, b*0.58))
			g.pixels[base+3] = 255
		}
	}
	screen.WritePixels(g.pixels)

	g.drawChargeBar(screen)

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		debugMsg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nState: %v\nIntensity: %.2f / %.2f (target %.2f)\nTime scale: %.3fx (+/-)",
			fps, tps, g.ctrl.State(), g.ctrl.Intensity(), g.cfg.Lamp.MaxIntensity, g.ctrl.ChunkTarget(), g.timeScale)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// drawChargeBar renders the intensity fill along the bottom edge with a
// marker at the active chunk's target.
func (g *Game) drawChargeBar(screen *ebiten.Image) {
	maxI := g.cfg.Lamp.MaxIntensity
	fill := clampCoord(int(float64(g.ctrl.Intensity()/maxI)*screenW), 0, screenW)

	barColor := color.RGBA{90, 170, 255, 255}
	if g.ctrl.State() == windlamp.StateCharging {
		barColor = color.RGBA{255, 190, 60, 255}
	}
	for y := screenH - barRows; y < screenH; y++ {
		for x := 0; x < fill; x++ {
			screen.Set(x, y, barColor)
		}
	}

	if g.ctrl.State() != windlamp.StateIdle {
		marker := clampCoord(int(float64(g.ctrl.ChunkTarget()/maxI)*screenW), 0, screenW-1)
		for y := screenH - barRows; y < screenH; y++ {
			screen.Set(marker, y, color.RGBA{255, 60, 60, 255})
		}
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
