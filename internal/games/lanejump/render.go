package lanejump

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lanejump/internal/core"
	"github.com/vovakirdan/lanejump/internal/motion"
	"github.com/vovakirdan/lanejump/internal/road"
	"github.com/vovakirdan/lanejump/internal/round"
)

// Visual characters for rendering
const (
	BlockTop    = '█'
	BlockBody   = '▓'
	FinishChar  = '▐'
	GapChar     = '░'
	AvatarIdle  = '●'
	AvatarJumpA = '◓'
	AvatarJumpB = '◒'
)

const (
	tileWidth   = 3 // Screen columns per road tile
	leftMargin  = 2
	tilesBehind = 4 // Tiles kept visible behind the avatar
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.ctrl.Snapshot()
	groundY := dst.Height()/2 + 2
	camera := math.Max(0, snap.Position.X-tilesBehind)

	g.drawRoad(dst, groundY, camera)
	g.drawAvatar(dst, snap, groundY, camera)
	g.drawHUD(dst)

	if g.menu.visible {
		g.drawMenu(dst)
	} else if g.paused {
		drawCenteredBox(dst, []string{"PAUSED", "Press P to resume"})
	}
}

// tileX maps a road coordinate to a screen column.
func tileX(x, camera float64) int {
	return leftMargin + int(math.Round((x-camera)*tileWidth))
}

func (g *Game) drawRoad(dst *core.Screen, groundY int, camera float64) {
	for _, b := range g.blocks.blocks {
		x := tileX(b.pos.X, camera)
		if x+tileWidth < 0 || x >= dst.Width() {
			continue
		}
		dst.DrawHLine(x, groundY, tileWidth, BlockTop, core.ColorGreen)
		dst.DrawHLine(x, groundY+1, tileWidth, BlockBody, core.ColorGray)
	}

	// Gaps have no block; mark them so the hazard reads on the body line.
	r := g.machine.Road()
	first := max(0, int(camera)-1)
	for i := first; i < r.Len(); i++ {
		x := tileX(float64(i), camera)
		if x >= dst.Width() {
			break
		}
		if r.At(i) == road.None {
			dst.DrawHLine(x, groundY+1, tileWidth, GapChar, core.ColorRed)
		}
	}

	end := tileX(float64(g.opts.Config.Road.Length), camera)
	dst.SetColored(end, groundY-2, FinishChar, core.ColorYellow)
	dst.SetColored(end, groundY-1, FinishChar, core.ColorYellow)
}

func (g *Game) drawAvatar(dst *core.Screen, snap motion.Snapshot, groundY int, camera float64) {
	peak := 1.0
	if g.body.clip == motion.ClipTwoStep {
		peak = 2
	}
	lift := int(math.Round(math.Sin(math.Pi*snap.Progress()) * peak))

	glyph := AvatarIdle
	if g.skeleton.clip == motion.ClipJump {
		glyph = AvatarJumpA
		if int(g.skeleton.phase*10)%2 == 1 {
			glyph = AvatarJumpB
		}
	}

	x := tileX(snap.Position.X, camera) + tileWidth/2
	dst.SetColored(x, groundY-1-lift, glyph, core.ColorCyan)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, " "+g.Title()+" ", core.ColorBrightWhite)

	steps := fmt.Sprintf(" Steps: %s ", g.label.text)
	dst.DrawTextColored(dst.Width()-len(steps)-2, 0, steps, core.ColorYellow)

	if r := g.machine.Rounds(); r > 0 {
		rounds := fmt.Sprintf(" Rounds: %d ", r)
		dst.DrawTextColored((dst.Width()-len(rounds))/2, 0, rounds, core.ColorGray)
	}
}

func (g *Game) drawMenu(dst *core.Screen) {
	lines := []string{
		"L A N E   J U M P",
		"",
		"Enter            start",
		"Space / H / LMB  hop one tile",
		"L / RMB          leap two tiles",
	}
	if res, ok := g.LastResult(); ok {
		lines = append(lines, "", fmt.Sprintf("Last round: %d steps, %s", res.Steps, describeReason(res.Reason)))
	}
	drawCenteredBox(dst, lines)
}

func describeReason(r round.Reason) string {
	switch r {
	case round.ReasonGap:
		return "fell into a gap"
	case round.ReasonOffRoad:
		return "ran off the road"
	case round.ReasonTimeout:
		return "too slow"
	default:
		return "round over"
	}
}

// drawCenteredBox draws a framed message box in the center of the screen.
func drawCenteredBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorGray)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i, l, core.ColorBrightWhite)
	}
}
