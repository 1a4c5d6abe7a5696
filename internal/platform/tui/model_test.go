package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  int
	resized [2]int
	inputs  []core.InputFrame
	events  []core.Event
	state   core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a, v := range in.Actions {
		if v {
			cp.Set(a)
		}
	}
	cp.Pointer = append(cp.Pointer, in.Pointer...)
	g.inputs = append(g.inputs, cp)
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake screen")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return mm
}

func TestModelReservesFooter(t *testing.T) {
	m := newTestModel(&fakeGame{})
	if m.screen.Width() != 40 || m.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, expected 40x11", m.screen.Width(), m.screen.Height())
	}
}

func TestModelForwardsInputOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 2, Y: 8, Action: tea.MouseActionRelease})
	m = update(t, m, TickMsg{})

	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", g.resets)
	}
	if len(g.inputs) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(g.inputs))
	}
	in := g.inputs[0]
	if !in.Has(core.ActionAdvance) {
		t.Error("advance action not forwarded")
	}
	if len(in.Pointer) != 2 || in.Pointer[0].Kind != core.PointerPress || in.Pointer[1].Kind != core.PointerRelease {
		t.Errorf("Pointer = %+v, expected press then release", in.Pointer)
	}

	// Input is cleared after each tick.
	update(t, m, TickMsg{})
	if !g.inputs[1].Empty() {
		t.Errorf("second tick got stale input: %+v", g.inputs[1])
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 29} {
		t.Errorf("Resize got %v, expected [100 29]", g.resized)
	}
	if g.resets != 0 {
		t.Error("a resizable game should not be reset")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{})

	view := m.View()
	if !strings.Contains(view, "fake screen") {
		t.Error("view should contain the game screen")
	}
	if !strings.Contains(view, "space") || !strings.Contains(view, "quit") {
		t.Errorf("view should contain the help footer:\n%s", view)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 1 newline, got %d", got)
	}
}
