package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goelo/newspanel/internal/fetch"
)

func loadedModel(t *testing.T, titles ...string) Model {
	t.Helper()

	headlines := make([]fetch.Headline, len(titles))
	for i, title := range titles {
		headlines[i] = fetch.Headline{Title: title}
	}

	m := New(AppConfig{})
	updated, _ := m.Update(HeadlinesLoaded{Headlines: headlines})
	return updated.(Model)
}

func TestModelLoadsHeadlines(t *testing.T) {
	m := loadedModel(t, "Marine enterte Tanker im Mittelmeer", "Bahnstreik legt Verkehr lahm")

	if len(m.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(m.rows))
	}
	for i, r := range m.rows {
		if !r.included {
			t.Errorf("row %d not included by default", i)
		}
	}

	view := m.View()
	if !strings.Contains(view, "Marine enterte Tanker im Mittelmeer") {
		t.Error("view missing first headline")
	}
}

func TestModelToggleExcludesFromPrompt(t *testing.T) {
	m := loadedModel(t, "Marine enterte Tanker im Mittelmeer", "Bahnstreik legt Verkehr lahm")

	if !strings.Contains(m.Prompt(), `"MARINE"`) {
		t.Fatal("prompt missing MARINE before toggle")
	}

	// Toggle the first headline off.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m = updated.(Model)

	if m.rows[0].included {
		t.Error("space did not toggle inclusion")
	}
	if strings.Contains(m.Prompt(), `"MARINE"`) {
		t.Error("excluded headline still in prompt")
	}
}

func TestModelCursorMovement(t *testing.T) {
	m := loadedModel(t, "eins", "zwei", "drei")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}

	// Never below zero.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestModelFetchError(t *testing.T) {
	m := New(AppConfig{})
	updated, _ := m.Update(HeadlinesLoaded{Err: errFake})
	m = updated.(Model)

	if m.err == nil {
		t.Error("fetch error not recorded")
	}
	if !strings.Contains(m.status, "fetch failed") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelRenderDone(t *testing.T) {
	m := loadedModel(t, "eins")
	m.rendering = true

	updated, _ := m.Update(RenderDone{Path: "/tmp/panel.png"})
	m = updated.(Model)

	if m.rendering {
		t.Error("rendering flag still set")
	}
	if !strings.Contains(m.status, "/tmp/panel.png") {
		t.Errorf("status = %q", m.status)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

var errFake = fakeErr("kaputt")
