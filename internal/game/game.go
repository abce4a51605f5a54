package game

import (
	"fmt"
	"math/rand"

	"github.com/ivasilev/popchain/internal/config"
	"github.com/ivasilev/popchain/internal/core"
	"github.com/ivasilev/popchain/internal/registry"
)

// HUD layout constants.
const (
	hudHeight    = 3 // two content rows plus a separator
	countdownBar = 14
)

// Visual characters for rendering.
const (
	BalloonChar = '●'
	StringChar  = '│'
	PopChar     = '✶'
	SlotDone    = '✓'
	GroundChar  = '═'
)

// Package-level knobs set by the CLI before game creation.
var configPath string

// SetConfigPath sets a custom gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform's registry.Game interface.
// It plays the input-collaborator role (resolving taps and hue keys to
// a specific not-yet-popped balloon) and the presentation role (drawing
// the play area from session state).
type Game struct {
	cfg     core.RuntimeConfig
	rules   config.Config
	session *Session
	rng     *rand.Rand // reseeds restarts only; session owns gameplay RNG

	paused     bool
	tickCount  uint64
	fraction   float64 // latest countdown fraction from the session
	finalScore int
}

// New creates a new popchain game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("popchain", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "popchain"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Popchain"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.tickCount = 0
	g.fraction = 0
	g.finalScore = 0

	rules, err := config.Load(configPath)
	if err != nil {
		rules = config.Default()
	}
	g.rules = rules

	g.session = NewSession(rules, cfg.Seed, nil, Events{
		CountdownFraction: func(f float64) { g.fraction = f },
		GameOver:          func(final int) { g.finalScore = final },
	})

	field := g.session.Field()
	margin := core.Max(0, rules.Balloons.SpawnXMargin)
	field.SetBounds(margin, core.Max(margin, cfg.ScreenW-1-margin))
	if rules.Balloons.DestroyAltitude <= 0 {
		// Reap balloons when they would drift into the HUD.
		field.SetCeiling(float64(core.Max(1, g.groundRow()-hudHeight)))
	}

	g.session.Start()
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.State() == SessionGameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.cfg.ScreenW,
			ScreenH:  g.cfg.ScreenH,
			TickRate: g.cfg.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Resolve input before advancing timers, matching the event-then-tick
	// order of the host loop.
	if g.session.State() == SessionActive {
		if in.Has(core.ActionSkip) {
			g.session.SkipSequence()
		}
		for _, c := range in.Clicks {
			g.tapAt(c.X, c.Y)
		}
		if in.HueKey >= 1 && in.HueKey <= HueCount {
			g.tapHue(AllHues[in.HueKey-1])
		}
	}

	tickRate := g.cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.session.Tick(1.0 / float64(tickRate))

	return core.StepResult{State: g.State()}
}

// tapAt resolves a mouse click to a specific unpopped balloon. A balloon
// is tappable on its body cell or the string cell below it; when taps
// overlap, the highest-risen balloon wins. Duplicate pops are rejected
// by the field's one-way Popped flag before the hue reaches the session.
func (g *Game) tapAt(x, y int) {
	best := -1
	bestY := -1.0
	for _, b := range g.session.Balloons() {
		if b.Popped {
			continue
		}
		row := g.balloonRow(b)
		if b.X == x && (row == y || row+1 == y) && b.Y > bestY {
			best = b.ID
			bestY = b.Y
		}
	}
	if best < 0 {
		return
	}
	g.popAndSubmit(best)
}

// tapHue pops the highest-risen unpopped balloon of the given hue, if
// any is on screen. The keyboard equivalent of a tap.
func (g *Game) tapHue(h Hue) {
	best := -1
	bestY := -1.0
	for _, b := range g.session.Balloons() {
		if b.Popped || b.Hue != h {
			continue
		}
		if b.Y > bestY {
			best = b.ID
			bestY = b.Y
		}
	}
	if best < 0 {
		return
	}
	g.popAndSubmit(best)
}

func (g *Game) popAndSubmit(id int) {
	hue, ok := g.session.Field().Pop(id)
	if !ok {
		return
	}
	g.session.SubmitColor(hue)
}

// groundRow returns the screen row of the ground line.
func (g *Game) groundRow() int {
	return g.cfg.ScreenH - 1
}

// balloonRow converts a balloon's altitude to its screen row.
func (g *Game) balloonRow(b Balloon) int {
	return g.groundRow() - 1 - int(b.Y)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	// Ground line
	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	// Balloons
	for _, b := range g.session.Balloons() {
		row := groundY - 1 - int(b.Y)
		if row <= hudHeight-1 || row >= groundY {
			continue
		}
		if b.Popped {
			dst.SetCell(b.X, row, PopChar, hueColor(b.Hue))
			continue
		}
		dst.SetCell(b.X, row, BalloonChar, hueColor(b.Hue))
		if row+1 < groundY {
			dst.SetCell(b.X, row+1, StringChar, core.ColorGray)
		}
	}

	switch {
	case g.session.State() == SessionGameOver:
		g.renderOverlay(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d  |  Press R to restart", g.finalScore))
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the score/health row, the target sequence with the
// countdown bar, and a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Popchain — Score: %d  ", g.session.Score())
	dst.DrawText(0, 0, hud)

	x := len([]rune(hud))
	dst.DrawText(x, 0, "Health: ")
	x += len("Health: ")
	for i := 0; i < g.session.Health(); i++ {
		dst.SetCell(x, 0, '♥', core.ColorBrightRed)
		x += 2
	}

	// Target sequence slots, in draw order
	dst.DrawText(1, 1, "Target: ")
	x = 1 + len("Target: ")
	for _, slot := range g.session.Slots() {
		if slot.Done {
			dst.SetCell(x, 1, SlotDone, core.ColorGray)
		} else {
			dst.SetCell(x, 1, BalloonChar, hueColor(slot.Hue))
		}
		x += 2
	}

	// Countdown bar, right-aligned
	barX := dst.Width() - countdownBar - 2
	if barX > x {
		filled := int(g.fraction * float64(countdownBar))
		dst.Set(barX-1, 1, '[')
		for i := 0; i < countdownBar; i++ {
			if i < filled {
				dst.SetCell(barX+i, 1, '█', core.ColorWhite)
			} else {
				dst.SetCell(barX+i, 1, '░', core.ColorGray)
			}
		}
		dst.Set(barX+countdownBar, 1, ']')
	}

	// Separator
	for i := 0; i < dst.Width(); i++ {
		dst.Set(i, 2, '─')
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Health:   g.session.Health(),
		GameOver: g.session.State() == SessionGameOver,
		Paused:   g.paused,
	}
}

// hueColor maps a balloon hue to a terminal palette color.
func hueColor(h Hue) core.Color {
	switch h {
	case HueRed:
		return core.ColorRed
	case HueOrange:
		return core.ColorOrange
	case HueYellow:
		return core.ColorYellow
	case HueGreen:
		return core.ColorGreen
	case HueBlue:
		return core.ColorBlue
	case HuePurple:
		return core.ColorPurple
	case HuePink:
		return core.ColorPink
	default:
		return core.ColorWhite
	}
}
