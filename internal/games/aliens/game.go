package aliens

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/arcadelab/aliens/internal/config"
	"github.com/arcadelab/aliens/internal/core"
	"github.com/arcadelab/aliens/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic is the full game: the swarm descends and shoots back.
	ModeClassic Mode = "classic"
	// ModeZen disables enemy fire. The swarm still descends; running out
	// of room still loses.
	ModeZen Mode = "zen"
)

// Game implements the It Was Aliens shooter on top of Board.
//
// The controller owns the tick loop order: input intent, cooldowns,
// projectile and swarm advancement, enemy fire, then a single commit.
// All randomness flows through one seeded source so a (seed, input)
// pair replays identically.
type Game struct {
	mode Mode
	cfg  config.AliensConfig
	rng  *rand.Rand

	board *Board
	tick  uint64
	score int

	won      bool
	lost     bool
	paused   bool
	tooSmall bool
	fault    error // protocol violation, reported once through StepResult

	screenW int
	screenH int
}

// Package-level variables for config/difficulty, set by the CLI before
// the registry instantiates the game.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a zen mode game (no enemy fire).
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("aliens", func() registry.Game {
		return New()
	})
	registry.Register("aliens_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "aliens_zen"
	}
	return "aliens"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "It Was Aliens (Zen)"
	}
	return "It Was Aliens"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.won = false
	g.lost = false
	g.paused = false
	g.fault = nil
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	cfg, err := config.LoadAliens(configPath)
	if err != nil {
		g.fault = fmt.Errorf("loading config: %w", err)
		return
	}
	config.ApplyAliensPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	if g.mode == ModeZen {
		cfg.Enemies.Fire = false
	}
	g.cfg = cfg

	needW, needH := MinScreenSize(cfg)
	if g.screenW < needW || g.screenH < needH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	board, err := NewBoard(cfg, g.rng, g)
	if err != nil {
		g.fault = fmt.Errorf("building board: %w", err)
		return
	}
	g.board = board
}

// IncrementScore awards one kill. Called by collision resolution.
func (g *Game) IncrementScore() {
	g.score += g.cfg.Scoring.KillPoints
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.fault != nil {
		return core.StepResult{State: g.State(), Err: g.fault}
	}

	if input.Has(core.ActionRestart) && (g.won || g.lost) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State(), Err: g.fault}
	}

	if input.Has(core.ActionPause) && !g.won && !g.lost {
		g.paused = !g.paused
	}

	if g.won || g.lost || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.board.TickCooldowns()

	if err := g.stepPlayer(input); err != nil {
		return g.faultResult(err)
	}
	if err := g.stepProjectiles(); err != nil {
		return g.faultResult(err)
	}

	invaded, err := g.stepEnemies()
	if err != nil {
		return g.faultResult(err)
	}
	if invaded {
		g.lost = true
		return core.StepResult{State: g.State()}
	}

	if g.cfg.Enemies.Fire {
		if err := g.stepEnemyFire(); err != nil {
			return g.faultResult(err)
		}
	}

	if err := g.board.Commit(); err != nil {
		return g.faultResult(err)
	}

	if g.board.Player() == nil {
		g.lost = true
	} else if len(g.board.Alive(KindEnemy)) == 0 {
		g.won = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) faultResult(err error) core.StepResult {
	g.fault = err
	return core.StepResult{State: g.State(), Err: err}
}

// stepPlayer applies the surviving movement and fire intents for this
// tick. The player holds its cell when no movement key arrived; a move
// that would leave the bounds is ignored rather than wrapped.
func (g *Game) stepPlayer(input core.InputFrame) error {
	player := g.board.Player()
	if player == nil {
		return nil
	}

	row, col, err := player.Pos()
	if err != nil {
		return err
	}

	switch input.Latest(core.GroupMovement) {
	case core.ActionLeft:
		if g.board.Bounds().Contains(row, col-1) {
			col--
		}
	case core.ActionRight:
		if g.board.Bounds().Contains(row, col+1) {
			col++
		}
	}
	if err := g.board.PlaceNext(row, col, player); err != nil {
		return err
	}

	if input.Has(core.ActionFire) {
		return g.board.SpawnProjectile(player)
	}
	return nil
}

// stepProjectiles advances every live projectile. Rosters are copied
// before iteration because out-of-bounds projectiles remove themselves
// mid-walk.
func (g *Game) stepProjectiles() error {
	for _, kind := range []Kind{KindPlayerProjectile, KindEnemyProjectile} {
		live := make([]*Entity, len(g.board.Alive(kind)))
		copy(live, g.board.Alive(kind))
		for _, p := range live {
			if err := g.board.Advance(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// stepEnemies advances the swarm along the snake path. The game is lost
// as soon as any enemy is about to enter the player's row: that keeps
// non-projectiles from ever being routed into one cell, which the board
// treats as a protocol violation. A fully blocked enemy (no room left
// at all) loses the same way; any other failure is a protocol error.
func (g *Game) stepEnemies() (invaded bool, err error) {
	bottomRow := g.board.Bounds().Height - 1
	live := make([]*Entity, len(g.board.Alive(KindEnemy)))
	copy(live, g.board.Alive(KindEnemy))
	for _, e := range live {
		if err := g.board.Advance(e); err != nil {
			if errors.Is(err, ErrMovementBlocked) {
				return true, nil
			}
			return false, err
		}
		if e.inNext && e.nextRow >= bottomRow {
			return true, nil
		}
	}
	return false, nil
}

// stepEnemyFire lets one randomly chosen enemy attempt a shot. The
// shot cooldown inside SpawnProjectile decides whether it actually
// fires, so fire rate stays bounded regardless of swarm size.
func (g *Game) stepEnemyFire() error {
	enemies := g.board.Alive(KindEnemy)
	if len(enemies) == 0 {
		return nil
	}
	shooter := enemies[g.rng.Intn(len(enemies))]
	if !shooter.placed {
		return nil
	}
	return g.board.SpawnProjectile(shooter)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Too small", "Resize to play")
		return
	}
	if g.board == nil {
		return
	}

	rawH, rawW := g.board.RawSize()
	offsetX := (dst.Width() - rawW) / 2
	offsetY := (dst.Height() - rawH) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	if offsetY < 0 {
		offsetY = 0
	}

	for y := range rawH {
		for x := range rawW {
			if e := g.board.At(y, x); e != nil {
				dst.SetCell(offsetX+x, offsetY+y, e.Glyph(), e.Color())
			}
		}
	}

	g.renderBars(dst, offsetX, offsetY, rawW)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.lost:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBars fills the title bar and the stats bar inside the frame.
func (g *Game) renderBars(dst *core.Screen, offsetX, offsetY, rawW int) {
	title := "IT WAS ALIENS"
	tx := offsetX + (rawW-len(title))/2
	ty := offsetY + g.board.frame.titleRow()
	for i, r := range title {
		dst.SetCell(tx+i, ty, r, core.ColorYellow)
	}

	stats := fmt.Sprintf("SCORE: %d   ALIENS: %d", g.score, len(g.board.Alive(KindEnemy)))
	sx := offsetX + (rawW-len(stats))/2
	sy := offsetY + g.board.frame.statsRow()
	for i, r := range stats {
		dst.SetCell(sx+i, sy, r, core.ColorGray)
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won || g.lost || g.fault != nil,
		Paused:   g.paused,
	}
}
