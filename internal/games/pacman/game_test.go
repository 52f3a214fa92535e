package pacman

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  40,
		ScreenH:  36,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Given the same seed and inputs, two runs must produce identical state.
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputSequence[i].Set(core.ActionConfirm)
		case i < 120:
			inputSequence[i].Set(core.ActionLeft)
		case i < 240:
			inputSequence[i].Set(core.ActionDown)
		default:
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		for _, in := range inputSequence {
			result := g.Step(in)
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
	if snap1.PlayerX != snap2.PlayerX || snap1.PlayerY != snap2.PlayerY {
		t.Errorf("Determinism failed: player positions differ")
	}
}

func TestGameStaysReadyUntilConfirm(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// Steering input alone must not start the game.
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 10; i++ {
		g.Step(in)
	}

	snap := g.Snapshot()
	if snap.Status != "ready" {
		t.Fatalf("status = %q, want ready", snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, want 0", snap.Score)
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	if got := g.Snapshot().Status; got != "playing" {
		t.Errorf("status after confirm = %q, want playing", got)
	}
}

func TestGameScoresWhileMoving(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 120; i++ {
		g.Step(left)
	}

	snap := g.Snapshot()
	if snap.Score == 0 {
		t.Error("expected pellets eaten while moving left from spawn")
	}
	full := len(g.engine.Maze().Pellets) + len(g.engine.Maze().PowerPellets)
	if snap.CollectiblesRemaining >= full {
		t.Errorf("collectibles = %d, want fewer than %d", snap.CollectiblesRemaining, full)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	result := g.Step(pause)
	if !result.State.Paused {
		t.Fatal("game not paused after pause action")
	}

	result = g.Step(pause)
	if result.State.Paused {
		t.Fatal("game still paused after second pause action")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 100; i++ {
		g.Step(left)
	}

	g.Reset(testConfig(42))

	snap := g.Snapshot()
	if snap.Status != "ready" {
		t.Errorf("Reset should return to ready, got %q", snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("Reset should clear score, got %d", snap.Score)
	}
	if snap.Tick != 0 {
		t.Errorf("Reset should clear tick count, got %d", snap.Tick)
	}
	full := len(g.engine.Maze().Pellets) + len(g.engine.Maze().PowerPellets)
	if snap.CollectiblesRemaining != full {
		t.Errorf("Reset should repopulate the board: %d of %d", snap.CollectiblesRemaining, full)
	}
}

func TestGameTooSmallScreenIsSafe(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	for i := 0; i < 5; i++ {
		g.Step(in) // must not panic
	}

	dst := core.NewScreen(20, 10)
	g.Render(dst) // overlay path must not panic either
}

func TestGameRenderShowsBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	dst := core.NewScreen(40, 36)
	g.Render(dst)

	out := dst.String()
	if len(out) == 0 {
		t.Fatal("empty render output")
	}

	// The ready overlay must be visible before the first confirm.
	if !strings.Contains(out, "Press Enter to start") {
		t.Error("ready overlay not rendered")
	}
}
