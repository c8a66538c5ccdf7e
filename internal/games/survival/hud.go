package survival

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/engine"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
)

func seconds(ms float64) int {
	return int(math.Ceil(ms / 1000))
}

// drawHUD draws the status row above the map and the loadout rows below.
func (g *Game) drawHUD(dst *core.Screen, snap engine.Snapshot) {
	w := dst.Width()
	for x := range w {
		dst.SetColor(x, 0, ' ', core.ColorDefault)
	}

	hpColor := core.ColorBrightGreen
	if snap.MaxHealth > 0 && snap.Health/snap.MaxHealth < lowHealthFrac {
		hpColor = core.ColorBrightRed
	}
	x := 0
	x += drawSeg(dst, x, 0, fmt.Sprintf("ROUND %d", snap.Round), core.ColorBrightRed)
	x += drawSeg(dst, x, 0, fmt.Sprintf("HP %d/%d", int(math.Ceil(snap.Health)), int(snap.MaxHealth)), hpColor)
	x += drawSeg(dst, x, 0, fmt.Sprintf("$%d", snap.Points), core.ColorBrightYellow)
	x += drawSeg(dst, x, 0, fmt.Sprintf("Zombies %d", snap.ZombiesLeft), core.ColorGreen)
	if snap.PowerUp != "" {
		drawSeg(dst, x, 0, fmt.Sprintf("%s %ds", snap.PowerUp.Label(), seconds(snap.PowerUpLeft)), powerUpColor(snap.PowerUp))
	}
	kills := fmt.Sprintf("Kills %d", snap.Kills)
	dst.DrawTextColor(w-len(kills), 0, kills, core.ColorWhite)

	g.drawFeed(dst, snap)

	row := dst.Height() - 2
	dst.DrawTextColor(0, row, weaponLine(snap), core.ColorWhite)
	if snap.Reloading {
		msg := fmt.Sprintf("RELOADING %.1fs", snap.ReloadLeft/1000)
		dst.DrawTextColor(w-len(msg), row, msg, core.ColorBrightYellow)
	}

	row = dst.Height() - 1
	x = 0
	x += drawSeg(dst, x, row, grenadeLine(snap), core.ColorWhite)
	if len(snap.Perks) > 0 {
		x += drawSeg(dst, x, row, perkLine(snap.Perks), core.ColorBrightBlue)
	}
	roll := "ROLL READY"
	if !snap.RollReady {
		roll = fmt.Sprintf("ROLL %ds", seconds(snap.RollCooldown))
	}
	drawSeg(dst, x, row, roll, core.ColorCyan)

	// Swap prompt, then transient messages, then site hints.
	line, c := "", core.ColorDefault
	if msg, mc, ok := g.fx.Message(); ok {
		line, c = msg, mc
	} else if hint := g.hint(snap); hint != "" {
		line, c = hint, core.ColorYellow
	}
	if snap.Pending != nil {
		line, c = swapLine(snap), core.ColorBrightYellow
	}
	if line != "" {
		dst.DrawTextCenteredColor(g.camera.Top+g.camera.Rows-2, line, c)
	}
}

func drawSeg(dst *core.Screen, x, y int, s string, c core.Color) int {
	dst.DrawTextColor(x, y, s, c)
	return len([]rune(s)) + 2
}

func (g *Game) drawFeed(dst *core.Screen, snap engine.Snapshot) {
	y := g.camera.Top
	for i := len(snap.Feed) - 1; i >= 0 && y < g.camera.Top+g.camera.Rows/2; i-- {
		e := snap.Feed[i]
		line := fmt.Sprintf("%s [%s] %s", e.Killer, e.Weapon, e.Victim)
		dst.DrawTextColor(dst.Width()-len([]rune(line))-1, y, line, core.ColorGray)
		y++
	}
}

func weaponLine(snap engine.Snapshot) string {
	var b strings.Builder
	for i, w := range snap.Weapons {
		mark := ' '
		if i == snap.Current {
			mark = '>'
		}
		fmt.Fprintf(&b, "%c%d %s %d/%d  ", mark, i+1, w.Name, w.Ammo, w.Reserve)
	}
	return strings.TrimRight(b.String(), " ")
}

func grenadeLine(snap engine.Snapshot) string {
	var parts []string
	for _, k := range entity.GrenadeKinds {
		if n := snap.Grenades[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", k, n))
		}
	}
	if len(parts) == 0 {
		return "no grenades"
	}
	return strings.Join(parts, " ")
}

func perkLine(perks []entity.Perk) string {
	labels := make([]string, len(perks))
	for i, p := range perks {
		labels[i] = p.Short()
	}
	return strings.Join(labels, " ")
}

func swapLine(snap engine.Snapshot) string {
	ps := snap.Pending
	var b strings.Builder
	fmt.Fprintf(&b, "Take %s", ps.Weapon.Name)
	if ps.Cost > 0 {
		fmt.Fprintf(&b, " ($%d)", ps.Cost)
	}
	b.WriteString(":")
	for i, w := range snap.Weapons {
		fmt.Fprintf(&b, " [%d] drop %s", i+1, w.Name)
	}
	b.WriteString(" [Esc] keep")
	return b.String()
}

// hint describes what Interact would do at the player's position, in the
// same priority order the engine resolves it.
func (g *Game) hint(snap engine.Snapshot) string {
	m := g.eng.World()
	pos := snap.Player.Pos

	if d := m.DoorNear(pos); d != nil {
		return fmt.Sprintf("E: open door $%d", d.Cost)
	}
	if pz, ok := m.(world.PowerZones); ok {
		if s := pz.SwitchNear(pos); s != nil {
			if s.On {
				return "E: power off"
			}
			return "E: power on"
		}
	}
	if wb := m.WallBuyNear(pos); wb != nil {
		name := wb.Weapon
		if data, ok := entity.LookupWeapon(wb.Weapon); ok {
			name = data.Name
		}
		return fmt.Sprintf("E: buy %s $%d", name, wb.Cost)
	}
	if m.BoxNear(pos) != nil {
		if rb, ok := m.(world.RelocatableBox); ok && rb.UsesLeft() > 0 {
			return fmt.Sprintf("E: mystery box $%d (%d left)", g.cfg.Economy.MysteryBoxCost, rb.UsesLeft())
		}
		return fmt.Sprintf("E: mystery box $%d", g.cfg.Economy.MysteryBoxCost)
	}
	if v := m.VendingNear(pos); v != nil {
		if pz, ok := m.(world.PowerZones); ok && !pz.Powered(v.Zone) {
			return fmt.Sprintf("%s needs power", v.Perk)
		}
		return fmt.Sprintf("E: %s $%d", v.Perk, v.Cost)
	}
	if a := m.AmmoStationNear(pos); a != nil {
		return fmt.Sprintf("E: ammo $%d", a.Cost)
	}
	return ""
}

// drawOverlay draws the phase banners.
func (g *Game) drawOverlay(dst *core.Screen, snap engine.Snapshot) {
	mid := g.camera.Top + g.camera.Rows/2
	switch {
	case snap.Phase == engine.PhaseStopped:
		g.banner(dst, mid, []string{
			"GAME OVER",
			fmt.Sprintf("You survived %d round(s) with %d kills", snap.Round, snap.Kills),
			"Press R to restart or Q to quit",
		}, core.ColorBrightRed)
	case snap.Paused:
		g.banner(dst, mid, []string{"PAUSED", "Press P or Esc to resume"}, core.ColorBrightYellow)
	case snap.Phase == engine.PhaseCountdown:
		g.banner(dst, mid-2, []string{fmt.Sprintf("ROUND %d STARTS IN %d", snap.Round, seconds(snap.Countdown))}, core.ColorBrightYellow)
	case snap.Phase == engine.PhaseRoundClear:
		g.banner(dst, mid-2, []string{
			fmt.Sprintf("ROUND %d COMPLETE", snap.Round),
			fmt.Sprintf("Next round in %d", seconds(snap.Transition)),
		}, core.ColorBrightGreen)
	}
}

func (g *Game) banner(dst *core.Screen, y int, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width)/2-2, y-1, width+4, len(lines)+2)
	dst.DrawRectColor(box, ' ', c)
	dst.DrawBoxColor(box, c)
	for i, l := range lines {
		dst.DrawTextCenteredColor(y+i, l, c)
	}
}
