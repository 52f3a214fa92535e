package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestScoreboardTabCyclesModes(t *testing.T) {
	games := registry.List()
	if len(games) < 2 {
		t.Fatalf("registered modes = %d, want at least 2", len(games))
	}

	m := NewScoreboardModel(nil, 100, 30)

	next, _ := m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.gameCursor != 1 {
		t.Errorf("cursor after tab = %d, want 1", m.gameCursor)
	}

	// Cycling past the last mode wraps to the first.
	for i := 1; i < len(games); i++ {
		next, _ = m.Update(keyMsg("tab"))
		m = next.(ScoreboardModel)
	}
	if m.gameCursor != 0 {
		t.Errorf("cursor after full cycle = %d, want 0", m.gameCursor)
	}

	next, _ = m.Update(keyMsg("shift+tab"))
	m = next.(ScoreboardModel)
	if m.gameCursor != len(games)-1 {
		t.Errorf("cursor after shift+tab = %d, want %d", m.gameCursor, len(games)-1)
	}
}

func TestScoreboardViewShowsTabsAndTitle(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") {
		t.Error("view missing title")
	}
	for _, g := range registry.List() {
		if !strings.Contains(view, g.Title) {
			t.Errorf("view missing mode tab %q", g.Title)
		}
	}
	if !strings.Contains(view, "No scores recorded yet") {
		t.Error("view missing empty-table message without a store")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	next, _ := m.Update(keyMsg("esc"))
	back := next.(ScoreboardModel)
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Errorf("esc: goingBack=%v quitting=%v, want back only", back.IsGoingBack(), back.IsQuitting())
	}

	next, _ = m.Update(keyMsg("q"))
	quit := next.(ScoreboardModel)
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Errorf("q: goingBack=%v quitting=%v, want quit only", quit.IsGoingBack(), quit.IsQuitting())
	}
}
