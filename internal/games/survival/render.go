package survival

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/engine"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
)

// Map glyphs.
const (
	WallChar      = '█'
	DoorChar      = '▒'
	FloorChar     = '·'
	PlayerChar    = '@'
	ReticleChar   = '+'
	ZombieChar    = 'z'
	BossChar      = 'Z'
	ExploderChar  = 'x'
	BulletChar    = '•'
	GrenadeChar   = 'o'
	WallBuyChar   = 'W'
	BoxChar       = '?'
	VendingChar   = 'P'
	AmmoChar      = 'A'
	SwitchChar    = 'S'
	floorSpacing  = 200.0
	reticleRange  = 80.0
	blinkLeft     = 3000.0
	lowHealthFrac = 0.3
)

// Render draws the current frame to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.resize(dst.Width(), dst.Height())

	if g.screenTooSmall || g.eng == nil {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small!")
		return
	}

	snap := g.eng.Snapshot()
	g.camera.Center = snap.Player.Pos
	g.camera.Offset = g.fx.ShakeOffset()

	g.drawFloor(dst)
	g.drawSites(dst)
	g.drawWalls(dst)
	g.drawPowerUps(dst, snap)
	g.drawZombies(dst, snap)
	g.drawProjectiles(dst, snap)
	g.drawExplosions(dst, snap)
	g.drawParticles(dst)
	g.drawPlayer(dst, snap)
	g.drawFloaters(dst)
	g.drawDamageTint(dst, snap)

	g.drawHUD(dst, snap)
	g.drawOverlay(dst, snap)
}

func (g *Game) plot(dst *core.Screen, p core.Vec, r rune, c core.Color) {
	x, y := g.camera.ToScreen(p)
	if g.camera.Visible(x, y) {
		dst.SetColor(x, y, r, c)
	}
}

func (g *Game) text(dst *core.Screen, p core.Vec, s string, c core.Color) {
	x, y := g.camera.ToScreen(p)
	x -= len([]rune(s)) / 2
	if y < g.camera.Top || y >= g.camera.Top+g.camera.Rows {
		return
	}
	for i, r := range []rune(s) {
		if g.camera.Visible(x+i, y) {
			dst.SetColor(x+i, y, r, c)
		}
	}
}

// fillBox fills every viewport cell whose center lies inside b.
func (g *Game) fillBox(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0, y0 := g.camera.ToScreen(core.V(b.X, b.Y))
	x1, y1 := g.camera.ToScreen(core.V(b.X+b.W, b.Y+b.H))
	x0, y0 = max(x0, 0), max(y0, g.camera.Top)
	x1, y1 = min(x1, g.camera.Cols-1), min(y1, g.camera.Top+g.camera.Rows-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if b.Contains(g.camera.ToWorld(x, y)) {
				dst.SetColor(x, y, r, c)
			}
		}
	}
}

func (g *Game) drawFloor(dst *core.Screen) {
	m := g.eng.World()
	tl := g.camera.ToWorld(0, g.camera.Top)
	br := g.camera.ToWorld(g.camera.Cols-1, g.camera.Top+g.camera.Rows-1)
	startX := math.Max(0, math.Floor(tl.X/floorSpacing)*floorSpacing)
	startY := math.Max(0, math.Floor(tl.Y/floorSpacing)*floorSpacing)
	for wy := startY; wy <= math.Min(br.Y, m.Height()); wy += floorSpacing {
		for wx := startX; wx <= math.Min(br.X, m.Width()); wx += floorSpacing {
			g.plot(dst, core.V(wx, wy), FloorChar, core.ColorDarkGray)
		}
	}
}

func (g *Game) drawWalls(dst *core.Screen) {
	m := g.eng.World()
	for _, w := range m.Walls() {
		g.fillBox(dst, w, WallChar, core.ColorGray)
	}
	for _, d := range m.Doors() {
		if d.Open {
			continue
		}
		g.fillBox(dst, d.Box, DoorChar, core.ColorYellow)
	}
}

func (g *Game) drawSites(dst *core.Screen) {
	m := g.eng.World()
	for _, wb := range m.WallBuys() {
		g.plot(dst, wb.Pos, WallBuyChar, core.ColorCyan)
	}
	for _, b := range m.Boxes() {
		g.plot(dst, b.Pos, BoxChar, core.ColorBrightMagenta)
	}
	for _, a := range m.AmmoStations() {
		g.plot(dst, a.Pos, AmmoChar, core.ColorYellow)
	}

	pz, powered := m.(world.PowerZones)
	for _, v := range m.VendingMachines() {
		c := core.ColorBrightGreen
		if powered && !pz.Powered(v.Zone) {
			c = core.ColorRed
		}
		g.plot(dst, v.Pos, VendingChar, c)
	}
	if powered {
		for _, s := range pz.Switches() {
			c := core.ColorRed
			if s.On {
				c = core.ColorBrightGreen
			}
			g.plot(dst, s.Pos, SwitchChar, c)
		}
	}
}

func (g *Game) drawPowerUps(dst *core.Screen, snap engine.Snapshot) {
	for _, p := range snap.PowerUps {
		// Blink while about to despawn.
		if p.Lifetime < blinkLeft && (snap.Tick/8)%2 == 0 {
			continue
		}
		g.text(dst, p.Pos, p.Kind.Label(), powerUpColor(p.Kind))
	}
}

func (g *Game) drawZombies(dst *core.Screen, snap engine.Snapshot) {
	for _, z := range snap.Zombies {
		glyph := ZombieChar
		c := core.ColorGreen
		switch {
		case z.Boss:
			glyph, c = BossChar, core.ColorRed
		case z.Exploder:
			glyph, c = ExploderChar, core.ColorOrange
		case z.Toxic:
			c = core.ColorBrightGreen
		}
		switch {
		case z.HitFlash:
			c = core.ColorBrightWhite
		case z.Stunned:
			c = core.ColorBrightCyan
		case z.Burning:
			c = core.ColorOrange
		}
		g.plot(dst, z.Pos, glyph, c)
		if z.Boss {
			g.text(dst, z.Pos.Sub(core.V(0, CellH)), healthBar(z.Health, z.Max, 6), core.ColorRed)
		}
	}
}

func (g *Game) drawProjectiles(dst *core.Screen, snap engine.Snapshot) {
	for _, b := range snap.Bullets {
		g.plot(dst, b.Pos, BulletChar, core.ColorBrightYellow)
	}
	for _, gr := range snap.GrenadesIn {
		g.plot(dst, gr.Pos.Sub(core.V(0, gr.Height)), GrenadeChar, grenadeColor(gr.Kind))
	}
	if g.fx.flashLeft > 0 {
		g.plot(dst, g.fx.flashPos, '*', core.ColorBrightYellow)
	}
}

func (g *Game) drawExplosions(dst *core.Screen, snap engine.Snapshot) {
	for _, ex := range snap.Explosions {
		if ex.Total <= 0 {
			continue
		}
		r := ex.Radius * (1 - ex.Left/ex.Total)
		steps := max(int(r/CellW)*2, 8)
		for i := range steps {
			a := float64(i) / float64(steps) * 2 * math.Pi
			g.plot(dst, ex.Pos.Add(core.FromAngle(a).Scale(r)), '*', grenadeColor(ex.Kind))
		}
	}
}

func (g *Game) drawParticles(dst *core.Screen) {
	for _, p := range g.fx.particles {
		g.plot(dst, p.Pos, p.Glyph, p.Color)
	}
}

func (g *Game) drawFloaters(dst *core.Screen) {
	for _, f := range g.fx.texts {
		g.text(dst, f.Pos, f.Text, f.Color)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, snap engine.Snapshot) {
	pv := snap.Player
	c := core.ColorBrightWhite
	switch {
	case pv.HitFlash:
		c = core.ColorBrightRed
	case pv.Poisoned:
		c = core.ColorBrightGreen
	case snap.Rolling:
		c = core.ColorBrightCyan
	}
	g.plot(dst, pv.Pos.Add(pv.Recoil), PlayerChar, c)

	aim := pv.Pos.Add(core.FromAngle(pv.Angle).Scale(reticleRange))
	rc := core.ColorWhite
	if snap.Knifing {
		rc = core.ColorBrightRed
	}
	g.plot(dst, aim, ReticleChar, rc)
}

// drawDamageTint frames the viewport in red while health is low and
// marks the side of the last hit.
func (g *Game) drawDamageTint(dst *core.Screen, snap engine.Snapshot) {
	top, bottom := g.camera.Top, g.camera.Top+g.camera.Rows-1
	right := g.camera.Cols - 1

	if snap.MaxHealth > 0 && snap.Health/snap.MaxHealth < lowHealthFrac {
		for x := 0; x <= right; x++ {
			dst.SetColor(x, top, '▀', core.ColorDarkRed)
			dst.SetColor(x, bottom, '▄', core.ColorDarkRed)
		}
		for y := top; y <= bottom; y++ {
			dst.SetColor(0, y, '▌', core.ColorDarkRed)
			dst.SetColor(right, y, '▐', core.ColorDarkRed)
		}
	}

	dir, ok := g.fx.HitIndicator()
	if !ok || dir.IsZero() {
		return
	}
	cx, cy := right/2, (top+bottom)/2
	n := dir.Norm()
	// Scale the cell aspect so the marker sits on the viewport edge.
	sx := math.Abs(float64(cx) / math.Max(math.Abs(n.X), 1e-9))
	sy := math.Abs(float64(cy-top) / math.Max(math.Abs(n.Y), 1e-9))
	s := math.Min(sx, sy)
	x := cx + int(math.Round(n.X*s))
	y := cy + int(math.Round(n.Y*s))
	dst.SetColor(core.Clamp(x, 0, right), core.Clamp(y, top, bottom), hitArrow(n), core.ColorBrightRed)
}

func hitArrow(d core.Vec) rune {
	if math.Abs(d.X) > math.Abs(d.Y) {
		if d.X > 0 {
			return '▶'
		}
		return '◀'
	}
	if d.Y > 0 {
		return '▼'
	}
	return '▲'
}

func healthBar(cur, maxVal float64, width int) string {
	if maxVal <= 0 {
		return ""
	}
	filled := core.Clamp(int(math.Ceil(cur/maxVal*float64(width))), 0, width)
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}

func powerUpColor(k entity.PowerUpKind) core.Color {
	switch k {
	case entity.PowerUpInstaKill:
		return core.ColorBrightMagenta
	case entity.PowerUpDoublePoints:
		return core.ColorBrightYellow
	case entity.PowerUpMaxAmmo:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightRed
	}
}
