package aliens

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/arcadelab/aliens/internal/core"
)

func writeTestConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliens.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const tinyBoardYAML = `
board:
  height: 5
  width: 5
enemies:
  count: 1
  spacing: 1
  ticks_per_move: 100
  ticks_per_shot: 50
  fire: false
player:
  ticks_per_shot: 1
scoring:
  kill_points: 100
timing:
  ticks_per_second: 10
  projectile_step: 1
`

const marchingSwarmYAML = `
board:
  height: 3
  width: 3
enemies:
  count: 1
  spacing: 1
  ticks_per_move: 1
  ticks_per_shot: 50
  fire: false
player:
  ticks_per_shot: 1
scoring:
  kill_points: 100
timing:
  ticks_per_second: 10
  projectile_step: 1
`

func TestGameDeterminism(t *testing.T) {
	// Test that given the same inputs, the game produces identical results
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     12345,
	}

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%7 == 0 {
			inputSequence[i].Set(core.ActionFire)
		}
		if i%6 < 3 {
			inputSequence[i].Set(core.ActionRight)
		} else {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.Err != nil {
				t.Fatalf("unexpected step error: %v", result.Err)
			}
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     42,
	}

	g := NewZen()
	g.Reset(cfg)

	// Play a few ticks
	for i := 0; i < 30; i++ {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionRight)
		}
		if i%5 == 0 {
			in.Set(core.ActionFire)
		}
		if res := g.Step(in); res.Err != nil {
			t.Fatalf("step %d: %v", i, res.Err)
		}
	}

	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.tick != 0 {
		t.Errorf("Reset should clear tick, got %d", g.tick)
	}
	if g.won || g.lost {
		t.Error("Reset should clear terminal states")
	}
	if got := len(g.board.Alive(KindEnemy)); got != g.cfg.Enemies.Count {
		t.Errorf("Reset should repopulate the swarm, got %d of %d", got, g.cfg.Enemies.Count)
	}

	row, col, err := g.board.Player().Pos()
	if err != nil {
		t.Fatal(err)
	}
	if row != g.cfg.Board.Height-1 || col != g.cfg.Board.Width/2 {
		t.Errorf("player at (%d,%d) after reset, expected bottom center", row, col)
	}
}

func TestPlayerMovement(t *testing.T) {
	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})

	startRow, startCol, err := g.board.Player().Pos()
	if err != nil {
		t.Fatal(err)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)

	row, col, _ := g.board.Player().Pos()
	if row != startRow || col != startCol-1 {
		t.Errorf("player at (%d,%d) after moving left, expected (%d,%d)", row, col, startRow, startCol-1)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)

	_, col, _ = g.board.Player().Pos()
	if col != startCol {
		t.Errorf("player at col %d after moving back right, expected %d", col, startCol)
	}

	// The left edge clamps instead of wrapping
	for range g.cfg.Board.Width + 3 {
		g.Step(left)
	}
	_, col, _ = g.board.Player().Pos()
	if col != 0 {
		t.Errorf("player at col %d, expected to stop at the left edge", col)
	}
}

func TestGamePause(t *testing.T) {
	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 3})

	empty := core.NewInputFrame()
	g.Step(empty)
	g.Step(empty)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	frozen := g.Snapshot().EntityData
	for range 5 {
		g.Step(empty)
	}
	if !reflect.DeepEqual(frozen, g.Snapshot().EntityData) {
		t.Error("entity state should not change while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
}

func TestWinCondition(t *testing.T) {
	SetConfigPath(writeTestConfig(t, tinyBoardYAML))
	defer SetConfigPath("")

	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 10, Seed: 7})

	// Walk to the enemy's column and fire once; the shot crosses the
	// board while the slow enemy holds its cell.
	inputs := make([]core.InputFrame, 10)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
	}
	inputs[0].Set(core.ActionLeft)
	inputs[1].Set(core.ActionLeft)
	inputs[2].Set(core.ActionFire)

	for i, in := range inputs {
		res := g.Step(in)
		if res.Err != nil {
			t.Fatalf("step %d: %v", i, res.Err)
		}
		if res.State.GameOver {
			break
		}
	}

	if !g.won {
		t.Fatal("destroying the last enemy should win the game")
	}
	if len(g.board.Alive(KindEnemy)) != 0 {
		t.Error("win requires an empty enemy roster")
	}
	if g.score != 100 {
		t.Errorf("score = %d, expected 100 after one kill", g.score)
	}
}

func TestFireFromMovedColumn(t *testing.T) {
	SetConfigPath(writeTestConfig(t, tinyBoardYAML))
	defer SetConfigPath("")

	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 10, Seed: 7})

	// Moving and firing in one tick shoots from the new column.
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionFire)
	if res := g.Step(in); res.Err != nil {
		t.Fatalf("step: %v", res.Err)
	}

	occ, err := g.board.OccupantAt(3, 1, BufferCurrent)
	if err != nil {
		t.Fatal(err)
	}
	if occ == nil || occ.Kind() != KindPlayerProjectile {
		t.Errorf("expected the projectile above the new column, got %v", occ)
	}
	if stale, _ := g.board.OccupantAt(3, 2, BufferCurrent); stale != nil {
		t.Errorf("no projectile should spawn above the old column, got %v", stale)
	}
}

func TestInvasionLoss(t *testing.T) {
	SetConfigPath(writeTestConfig(t, marchingSwarmYAML))
	defer SetConfigPath("")

	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 10, Seed: 7})

	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		res := g.Step(empty)
		if res.Err != nil {
			t.Fatalf("step %d: %v", i, res.Err)
		}
		if res.State.GameOver {
			break
		}
	}

	if !g.lost {
		t.Error("the swarm reaching the bottom row should lose the game")
	}
	if g.won {
		t.Error("an invasion is not a win")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	SetConfigPath(writeTestConfig(t, marchingSwarmYAML))
	defer SetConfigPath("")

	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 10, Seed: 7})

	empty := core.NewInputFrame()
	for range 10 {
		if g.Step(empty).State.GameOver {
			break
		}
	}
	if !g.lost {
		t.Fatal("expected the game to be lost")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)
	if res.Err != nil {
		t.Fatalf("restart: %v", res.Err)
	}

	if res.State.GameOver {
		t.Error("restart should clear the terminal state")
	}
	if g.score != 0 {
		t.Errorf("restart should clear the score, got %d", g.score)
	}
	if len(g.board.Alive(KindEnemy)) != 1 {
		t.Error("restart should repopulate the swarm")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 10, TickRate: 10, Seed: 1})

	if !g.tooSmall {
		t.Fatal("a 10x10 screen cannot hold the default grid")
	}

	res := g.Step(core.NewInputFrame())
	if res.Err != nil {
		t.Errorf("stepping a too-small game should not error: %v", res.Err)
	}
	if res.State.GameOver {
		t.Error("a too-small screen is not game over")
	}

	// The overlay message survives a screen narrower than the text box.
	screen := core.NewScreen(10, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Too small") {
		t.Error("render should show the too-small overlay")
	}
}

func TestBadConfigFaults(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	defer SetConfigPath("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})

	res := g.Step(core.NewInputFrame())
	if res.Err == nil {
		t.Fatal("an unreadable config file should surface through StepResult.Err")
	}
	if !res.State.GameOver {
		t.Error("a faulted game reports GameOver")
	}
}

func TestGameRender(t *testing.T) {
	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"IT WAS ALIENS", "SCORE: 0", "╔", "╝", "║", "╠", "^", "◦"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output should contain %q", want)
		}
	}

	// The frame is stable across ticks.
	rawH, _ := g.board.RawSize()
	offsetY := (24 - rawH) / 2
	frameRows := []int{offsetY, offsetY + 2, offsetY + rawH - 3, offsetY + rawH - 1}
	before := make([]string, len(frameRows))
	for i, y := range frameRows {
		before[i] = screen.Row(y)
	}

	empty := core.NewInputFrame()
	for range 7 {
		g.Step(empty)
	}
	g.Render(screen)
	for i, y := range frameRows {
		if screen.Row(y) != before[i] {
			t.Errorf("frame row %d changed across ticks", y)
		}
	}
}
