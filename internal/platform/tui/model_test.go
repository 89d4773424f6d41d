package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// stubGame records which actions reach Step, so input handling during
// clock catch-up can be observed from outside the model.
type stubGame struct {
	paused       bool
	pauseToggles int
	restarts     int
	rightSteps   int
	steps        int
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) LevelID() string          { return "stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen)      {}

func (g *stubGame) Step(input core.InputFrame) core.StepResult {
	g.steps++
	if input.Has(core.ActionRestart) {
		g.restarts++
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.pauseToggles++
		g.paused = !g.paused
	}
	if input.Has(core.ActionRight) {
		g.rightSteps++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

func newTestModel(game Game) Model {
	return NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
}

func advanceModel(t *testing.T, m Model, now time.Time) Model {
	t.Helper()
	next, _ := m.handleTick(now)
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("handleTick returned %T, want Model", next)
	}
	return updated
}

// A single pause press must toggle pause exactly once even when a slow
// wakeup makes the clock owe several simulation steps.
func TestCatchUpAppliesPauseOnce(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game)

	start := time.Now()
	m = advanceModel(t, m, start) // first wakeup always runs one step

	m.inputFrame.Set(core.ActionPause)
	m = advanceModel(t, m, start.Add(2*m.clock.Interval()+time.Millisecond))

	if game.steps != 3 {
		t.Fatalf("steps = %d, want 3 (one prime + two owed)", game.steps)
	}
	if game.pauseToggles != 1 {
		t.Fatalf("pause applied %d times during catch-up, want 1", game.pauseToggles)
	}
	if !game.paused {
		t.Fatal("game not paused after a single pause press")
	}
}

func TestCatchUpAppliesRestartOnce(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game)

	start := time.Now()
	m = advanceModel(t, m, start)

	m.inputFrame.Set(core.ActionRestart)
	m = advanceModel(t, m, start.Add(3*m.clock.Interval()+time.Millisecond))

	if game.restarts != 1 {
		t.Fatalf("restart applied %d times during catch-up, want 1", game.restarts)
	}
}

// Held movement intents are level-triggered and should reach every owed step.
func TestCatchUpKeepsHeldDirection(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game)

	start := time.Now()
	m = advanceModel(t, m, start)

	m.inputFrame.Set(core.ActionRight)
	m = advanceModel(t, m, start.Add(2*m.clock.Interval()+time.Millisecond))

	if game.rightSteps != 2 {
		t.Fatalf("held right reached %d of 2 owed steps", game.rightSteps)
	}
}
