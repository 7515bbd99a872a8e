package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/autolayout/pkg/demo"
	"github.com/matzehuels/autolayout/pkg/layout"
)

func browser(t *testing.T) SceneBrowserModel {
	t.Helper()
	m := NewSceneBrowserModel(context.Background(), demo.All(), demo.Options{Logger: newLogger(io.Discard, LogInfo)})
	if m.err != nil {
		t.Fatalf("initial solve: %v", m.err)
	}
	return m
}

func press(m tea.Model, msg tea.KeyMsg) SceneBrowserModel {
	next, _ := m.Update(msg)
	return next.(SceneBrowserModel)
}

func TestSceneBrowserNavigation(t *testing.T) {
	m := browser(t)
	if m.result == nil || m.result.Scene.Name != "pin-insets" {
		t.Fatalf("initial scene = %v, want pin-insets", m.result)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("Cursor after up at top = %d, want 0", m.Cursor)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 1 || m.result.Scene.Name != "center" {
		t.Errorf("after down: cursor %d scene %s, want 1 center", m.Cursor, m.result.Scene.Name)
	}

	for i := 0; i < 20; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	if m.Cursor != len(m.Scenes)-1 {
		t.Errorf("Cursor = %d, want clamped to %d", m.Cursor, len(m.Scenes)-1)
	}
}

func TestSceneBrowserFlipDirection(t *testing.T) {
	m := browser(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if m.Options.Direction != layout.DirectionRightToLeft {
		t.Errorf("Direction = %v, want rtl", m.Options.Direction)
	}
	if m.result.Root.LayoutDirection() != layout.DirectionRightToLeft {
		t.Error("scene was not re-solved right to left")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if m.Options.Direction != layout.DirectionLeftToRight {
		t.Errorf("Direction = %v, want ltr", m.Options.Direction)
	}
}

func TestSceneBrowserQuit(t *testing.T) {
	m := browser(t)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q should return a quit command")
	}
	if _, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24}); cmd != nil {
		t.Error("window size should not return a command")
	}
}

func TestSceneBrowserView(t *testing.T) {
	view := browser(t).View()
	for _, want := range []string{"Scenes", "pin-insets", "matrix", "card", "header", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
