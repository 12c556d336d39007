// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/psu-tools/psu/internal/editor"
	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/model"
	"github.com/psu-tools/psu/internal/navigator"
	"github.com/psu-tools/psu/internal/screen"
)

type memStore struct{ err error }

func (s memStore) Persist([]model.Entry) error { return s.err }

type memClipboard struct{ text string }

func (c *memClipboard) SetContents(text string) error {
	c.text = text
	return nil
}

func newTestModel(t *testing.T, st screen.Persister, entries ...model.Entry) mainModel {
	t.Helper()
	i18n.Init("en")
	ctrl := screen.New(entries, st, &memClipboard{})
	m := newModel(ctrl, 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(mainModel)
}

func press(m mainModel, msgs ...tea.KeyMsg) (mainModel, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, msg := range msgs {
		next, cmd = next.Update(msg)
	}
	return next.(mainModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAlignFooter(t *testing.T) {
	got := AlignFooter("left", "right", 20)
	if len(got) != 20 || !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Fatalf("AlignFooter = %q", got)
	}
	if got := AlignFooter("left", "right", 3); got != "left right" {
		t.Fatalf("narrow AlignFooter = %q", got)
	}
}

func TestView_Table(t *testing.T) {
	m := newTestModel(t, memStore{},
		model.NewEntry(0, "github", "alice", "s3cret"),
		model.NewEntry(1, "gmail", "bob", "hunter2"),
	)
	out := m.View()
	for _, want := range []string{"Service", "Login or Email", "Password", "github", "alice", "s3cret", "gmail", "hunter2", "█"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table view missing %q:\n%s", want, out)
		}
	}
}

func TestView_Empty(t *testing.T) {
	m := newTestModel(t, memStore{})
	if out := m.View(); !strings.Contains(out, "No entries yet") {
		t.Fatalf("empty view:\n%s", out)
	}
}

func TestView_PopupAndHelp(t *testing.T) {
	m := newTestModel(t, memStore{})
	m, _ = press(m, runes("n"), runes("x"), runes("y"))
	out := m.View()
	if !strings.Contains(out, "New entry") || !strings.Contains(out, "xy") {
		t.Fatalf("popup view:\n%s", out)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc}, runes("?"))
	out = m.View()
	if !strings.Contains(out, "Keys") || !strings.Contains(out, "copy password") {
		t.Fatalf("help view:\n%s", out)
	}
}

func TestUpdate_StatusAndQuit(t *testing.T) {
	m := newTestModel(t, memStore{err: errors.New("disk full")})
	m, _ = press(m, runes("n"), runes("a"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.statusErr || !strings.Contains(m.status, "disk full") {
		t.Fatalf("status = %q (err %v)", m.status, m.statusErr)
	}

	_, cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatalf("q must return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestNewModel_LoadWarnings(t *testing.T) {
	i18n.Init("en")
	m := newModel(screen.New(nil, memStore{}, &memClipboard{}), 2)
	if !strings.Contains(m.status, "2 unreadable") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestRenderInput_Scrolls(t *testing.T) {
	var f editor.Field
	f.SetValue("abcdefghij")
	if got := renderInput(f, 4, false); got != "hij" {
		t.Fatalf("inactive input = %q", got)
	}
	f.Home()
	if got := renderInput(f, 4, false); got != "abcd" {
		t.Fatalf("input at home = %q", got)
	}
}

func TestColumnWidths(t *testing.T) {
	i18n.Init("en")
	entries := []model.Entry{model.NewEntry(0, strings.Repeat("s", 50), "l", "p")}
	w := columnWidths(entries, 40)
	total := 0
	for _, n := range w {
		total += n
	}
	if total != 40 {
		t.Fatalf("widths %v sum to %d, want 40", w, total)
	}
	if n := lipgloss.Width(cell(entries[0].Service(), w[0])); n > w[0] {
		t.Fatalf("cell wider than column: %d > %d", n, w[0])
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		scroll, total, height, want int
	}{
		{0, 30, 9, 0},
		{6, 30, 9, 0},
		{9, 30, 9, 3},
		{27, 30, 9, 21},
		{0, 6, 9, 0},
	}
	for _, tt := range tests {
		if got := windowStart(tt.scroll, tt.total, tt.height); got != tt.want {
			t.Fatalf("windowStart(%d,%d,%d) = %d, want %d", tt.scroll, tt.total, tt.height, got, tt.want)
		}
	}
	if navigator.RowHeight != 3 {
		t.Fatalf("table layout assumes three-line rows")
	}
}
