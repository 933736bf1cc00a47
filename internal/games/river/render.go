package river

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/river-rush/internal/core"
	"github.com/vovakirdan/river-rush/internal/sim"
)

const maxRiverWidth = 48

var obstacleGlyphs = map[string]struct {
	r rune
	c core.Color
}{
	"rock":      {'▲', core.ColorRock},
	"boulder":   {'●', core.ColorRock},
	"log":       {'═', core.ColorLog},
	"stump":     {'▄', core.ColorLog},
	"cactus":    {'¥', core.ColorBank},
	"iceberg":   {'◆', core.ColorIce},
	"floe":      {'▬', core.ColorIce},
	"basalt":    {'■', core.ColorDim},
	"lava_rock": {'▲', core.ColorLava},
	"vent":      {'∆', core.ColorLava},
}

var powerUpGlyphs = [...]rune{
	sim.PowerUpShield:     'S',
	sim.PowerUpMagnet:     'M',
	sim.PowerUpGhost:      'G',
	sim.PowerUpMultiplier: 'x',
	sim.PowerUpSlowMotion: 'Z',
}

var bankColors = map[string]core.Color{
	"forest":   core.ColorBank,
	"canyon":   core.ColorLog,
	"arctic":   core.ColorIce,
	"volcanic": core.ColorLava,
}

// viewport maps the visible stretch of river onto the screen, leaving the
// top row for the HUD and the bottom row for the status line.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	w := min(dst.Width(), maxRiverWidth)
	half := g.cfg.World.DecorationSpread + 1
	return core.Viewport{
		MinX: -half,
		MaxX: half,
		MinY: g.cfg.World.PlayerY - 3,
		MaxY: g.cfg.World.SpawnY,
		Area: core.NewRect((dst.Width()-w)/2, 1, w, max(dst.Height()-2, 1)),
	}
}

// Render draws the river, the sprites and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	vp := g.viewport(dst)
	g.drawRiver(dst, vp)
	for _, s := range g.world.Sprites() {
		g.drawSprite(dst, vp, s)
	}
	g.drawHUD(dst)
	g.drawStatusLine(dst)

	switch {
	case g.state.Over():
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  %dm  |  Press R to restart", g.state.Score, int(g.state.Distance)))
	case g.state.Status == StatusPaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawRiver(dst *core.Screen, vp core.Viewport) {
	biome := g.cfg.BiomeAt(g.state.Distance)
	bank := bankColors[biome.Name]
	if bank == core.ColorDefault {
		bank = core.ColorBank
	}

	edge := math.Abs(g.cfg.World.LaneX(1)) + 1
	left, _, _ := vp.ToCell(-edge, 0)
	right, _, _ := vp.ToCell(edge, 0)
	phase := int(g.state.Distance * 2)

	for y := vp.Area.Y; y < vp.Area.Bottom(); y++ {
		for x := vp.Area.X; x < vp.Area.Right(); x++ {
			switch {
			case x < left || x > right:
				dst.SetColored(x, y, '░', bank)
			case (x+y*3-phase)%7 == 0:
				dst.SetColored(x, y, '~', core.ColorFoam)
			default:
				dst.SetColored(x, y, ' ', core.ColorWater)
			}
		}
	}

	// Lane dividers.
	for _, lx := range []float64{-1, 1} {
		cx, _, ok := vp.ToCell(lx, 0)
		if !ok {
			continue
		}
		for y := vp.Area.Y; y < vp.Area.Bottom(); y++ {
			if (y-phase)%3 == 0 {
				dst.SetColored(cx, y, '┊', core.ColorDim)
			}
		}
	}
}

func (g *Game) drawSprite(dst *core.Screen, vp core.Viewport, s sim.Sprite) {
	cx, cy, ok := vp.ToCell(s.Position.X, s.Position.Y)
	if !ok {
		return
	}

	switch {
	case s.Tags.Has(sim.TagPlayer):
		r, c := g.playerGlyph(s)
		dst.SetColored(cx, cy, r, c)
		if s.Position.Z > 0.5 {
			dst.SetColored(cx, cy+1, '·', core.ColorDim) // shadow
		}
	case s.Tags.Has(sim.TagObstacle):
		glyph, found := obstacleGlyphs[s.Variant]
		if !found {
			glyph.r, glyph.c = '#', core.ColorRock
		}
		span := vp.Span(s.Collider.Width)
		dst.DrawHLine(cx-span/2, cy, span, glyph.r, glyph.c)
	case s.Tags.Has(sim.TagCollectible):
		r, c := g.collectibleGlyph(s.Entity)
		dst.SetColored(cx, cy, r, c)
	case s.Tags.Has(sim.TagParticle):
		switch s.Particle {
		case sim.ParticleSplash:
			dst.SetColored(cx, cy, '°', core.ColorFoam)
		case sim.ParticleWhoosh:
			dst.SetColored(cx, cy, '\'', core.ColorHUD)
		default:
			dst.SetColored(cx, cy, '*', core.ColorCoin)
		}
	case s.Tags.Has(sim.TagDecoration):
		dst.SetColored(cx, cy, decorationGlyph(s.Variant), core.ColorBank)
	}
}

func (g *Game) playerGlyph(s sim.Sprite) (rune, core.Color) {
	r := '@'
	switch s.Anim {
	case sim.AnimJump:
		r = '^'
	case sim.AnimHit:
		r = '#'
	case sim.AnimDeath:
		r = 'X'
	case sim.AnimDodge:
		r = '&'
	}

	c := core.ColorPlayer
	switch {
	case g.powerUps.Active(sim.PowerUpGhost, g.now):
		c = core.ColorGhost
	case g.powerUps.Active(sim.PowerUpShield, g.now):
		c = core.ColorShield
	}
	if h, ok := g.world.Healths.Get(s.Entity); ok && g.now < h.InvulnerableUntil && (g.now/100)%2 == 0 {
		c = core.ColorHit
	}
	return r, c
}

func (g *Game) collectibleGlyph(e sim.Entity) (rune, core.Color) {
	if p, ok := g.world.PowerUps.Get(e); ok && int(p.Kind) < len(powerUpGlyphs) {
		return powerUpGlyphs[p.Kind], core.ColorPowerUp
	}
	if c, ok := g.world.Collectibles.Get(e); ok && c.Kind == sim.CollectibleGem {
		return '◆', core.ColorGem
	}
	return 'o', core.ColorCoin
}

func decorationGlyph(variant string) rune {
	switch variant {
	case "pine", "spruce":
		return '♠'
	case "fern", "bush":
		return '♣'
	case "snowdrift", "igloo":
		return '∩'
	case "ember", "ash":
		return '∙'
	default:
		return '"'
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	lives := strings.Repeat("♥", max(g.state.Lives, 0))
	hud := fmt.Sprintf(" Score %d  %dm  o%d  ◆%d  %s", g.state.Score, int(g.state.Distance), g.state.Coins, g.state.Gems, lives)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)

	var right string
	switch {
	case g.state.TimeLeftMs() >= 0:
		right = fmt.Sprintf("%.1fs ", float64(g.state.TimeLeftMs())/1000)
	case g.state.Combo > 0:
		right = fmt.Sprintf("Combo %d x%d ", g.state.Combo, g.state.ComboMultiplier())
	}
	if right != "" {
		color := core.ColorHUD
		if g.state.TimeLeftMs() >= 0 && g.state.TimeLeftMs() < 10000 {
			color = core.ColorWarning
		}
		dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, color)
	}
}

func (g *Game) drawStatusLine(dst *core.Screen) {
	parts := []string{g.cfg.BiomeAt(g.state.Distance).Name}
	for _, k := range g.powerUps.ActiveKinds(g.now) {
		if left := g.powerUps.Remaining(k, g.now); left > 0 {
			parts = append(parts, fmt.Sprintf("%s %.0fs", k, math.Ceil(float64(left)/1000)))
		} else {
			parts = append(parts, k.String())
		}
	}
	if g.worldScale > 1 {
		parts = append(parts, fmt.Sprintf("speed x%.1f", g.worldScale))
	}
	dst.DrawTextColored(1, dst.Height()-1, strings.Join(parts, " · "), core.ColorDim)
}

// drawCenteredMessage draws a boxed two-line message in the middle of dst.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)
	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorWarning)
	dst.DrawTextColored(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorHUD)
}
