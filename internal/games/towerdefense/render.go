package towerdefense

import (
	"fmt"
	"math"
	"unicode"

	"github.com/vovakirdan/tui-towers/internal/core"
	"github.com/vovakirdan/tui-towers/internal/games/towerdefense/sim"
)

// Visual characters for rendering
const (
	BaseChar   = '▒'
	CameraChar = '+'
	RangeChar  = '·'
	CrowdChar  = '+'
)

// BaseSize is the side of the square player base drawn at the world origin.
const BaseSize = 50.0

// Minimum terminal size for the world view.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// towerColors cycles through catalog entries.
var towerColors = []core.Color{core.ColorCyan, core.ColorMagenta, core.ColorYellow, core.ColorGreen, core.ColorBlue}

const helpLine = "WASD/arrows move  SPACE build  TAB/E tower  P pause  Q quit"

// Render draws the HUD, the world around the camera and any overlay.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	if g.err != nil {
		dst.DrawTextCentered(h/2-1, "Cannot start session", core.ColorBrightRed)
		dst.DrawTextCentered(h/2, g.err.Error(), core.ColorWhite)
		dst.DrawTextCentered(h/2+2, "B menu  Q quit", core.ColorGray)
		return
	}
	if g.sim == nil {
		return
	}
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, fmt.Sprintf("Terminal too small (%dx%d)", MinScreenW, MinScreenH), core.ColorYellow)
		return
	}

	snap := g.sim.Snapshot()
	catalog := g.sim.Catalog()

	g.drawHUD(dst, snap, catalog)

	frame := core.NewRect(0, 1, w, h-2)
	dst.DrawBox(frame, core.ColorGray)

	vp := core.Viewport{
		Bounds:       core.NewRect(1, 2, w-2, h-4),
		CenterX:      snap.Camera.X,
		CenterY:      snap.Camera.Y,
		UnitsPerCell: g.cfg.Render.UnitsPerCell,
	}

	drawRange(dst, vp, catalog.Towers[g.selected].Range)
	dst.DrawRect(vp.ProjectRect(0, 0, BaseSize, BaseSize), BaseChar, core.ColorBlue)
	drawTowers(dst, vp, snap.Towers, catalog)
	drawEnemies(dst, vp, snap.Enemies)

	if col, row, ok := vp.Project(snap.Camera.X, snap.Camera.Y); ok {
		dst.SetColored(col, row, CameraChar, core.ColorBrightYellow)
	}

	g.drawFooter(dst)
	g.drawOverlay(dst)
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot, catalog sim.Catalog) {
	sel := catalog.Towers[g.selected]
	x := 1
	x += drawField(dst, x, "Resources ", fmt.Sprint(snap.Resources), core.ColorBrightYellow)
	x += drawField(dst, x, "Lives ", fmt.Sprint(snap.Lives), core.ColorBrightRed)
	x += drawField(dst, x, "Tower ", fmt.Sprintf("%s (%d)", sel.Name, sel.Cost), towerColors[g.selected%len(towerColors)])
	x += drawField(dst, x, "Enemies ", fmt.Sprint(len(snap.Enemies)), core.ColorRed)
	drawField(dst, x, "Camera ", fmt.Sprintf("%.0f,%.0f", snap.Camera.X, snap.Camera.Y), core.ColorGray)
}

// drawField draws "label value" and returns the width used plus a gap.
func drawField(dst *core.Screen, x int, label, value string, c core.Color) int {
	dst.DrawTextColored(x, 0, label, core.ColorGray)
	dst.DrawTextColored(x+len(label), 0, value, c)
	return len(label) + len([]rune(value)) + 2
}

func (g *Game) drawFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.noticeTTL > 0 {
		dst.DrawTextColored(1, y, g.notice, g.noticeColor)
		return
	}
	dst.DrawTextColored(1, y, helpLine, core.ColorGray)
}

func (g *Game) drawOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	st := g.State()

	switch {
	case st.GameOver:
		c := core.ColorBrightGreen
		if g.last.Outcome == sim.OutcomeLoss {
			c = core.ColorBrightRed
		}
		dst.DrawTextCentered(mid-1, " "+st.Message+" ", c)
		dst.DrawTextCentered(mid+1, fmt.Sprintf(" Earned %d in %d ticks ", st.Score, g.last.Tick), core.ColorWhite)
		dst.DrawTextCentered(mid+2, " R restart  B menu ", core.ColorGray)
	case st.Paused:
		dst.DrawTextCentered(mid, " PAUSED ", core.ColorBrightYellow)
	}
}

// drawRange marks cells on the circle a tower built at the camera would cover.
func drawRange(dst *core.Screen, vp core.Viewport, r float64) {
	half := vp.UnitsPerCell / 2
	for row := vp.Bounds.Y; row < vp.Bounds.Bottom(); row++ {
		for col := vp.Bounds.X; col < vp.Bounds.Right(); col++ {
			x, y := vp.Unproject(col, row)
			d := math.Hypot(x-vp.CenterX, y-vp.CenterY)
			if math.Abs(d-r) < half {
				dst.SetColored(col, row, RangeChar, core.ColorGray)
			}
		}
	}
}

func drawTowers(dst *core.Screen, vp core.Viewport, towers []sim.TowerView, catalog sim.Catalog) {
	for _, t := range towers {
		col, row, ok := vp.Project(t.Position.X, t.Position.Y)
		if !ok {
			continue
		}
		c := core.ColorWhite
		if i := catalog.TowerIndex(t.Type); i >= 0 {
			c = towerColors[i%len(towerColors)]
		}
		dst.SetColored(col, row, initial(t.Type, unicode.ToUpper), c)
	}
}

type crowd struct {
	count   int
	name    string
	wounded bool
}

// drawEnemies draws one glyph per occupied cell: the type initial for a
// single enemy, a digit for small groups and CrowdChar beyond nine.
func drawEnemies(dst *core.Screen, vp core.Viewport, enemies []sim.EnemyView) {
	cells := make(map[[2]int]*crowd)
	var order [][2]int
	for _, e := range enemies {
		col, row, ok := vp.Project(e.Position.X, e.Position.Y)
		if !ok {
			continue
		}
		key := [2]int{col, row}
		c, seen := cells[key]
		if !seen {
			c = &crowd{name: e.Type}
			cells[key] = c
			order = append(order, key)
		}
		c.count++
		c.wounded = c.wounded || e.HitPoints < e.MaxHitPoints
	}

	for _, key := range order {
		c := cells[key]
		glyph := initial(c.name, unicode.ToLower)
		switch {
		case c.count > 9:
			glyph = CrowdChar
		case c.count > 1:
			glyph = rune('0' + c.count)
		}
		color := core.ColorRed
		if c.wounded {
			color = core.ColorOrange
		}
		dst.SetColored(key[0], key[1], glyph, color)
	}
}

func initial(name string, fold func(rune) rune) rune {
	for _, r := range name {
		return fold(r)
	}
	return '?'
}
