// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package screen

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/psu-tools/psu/internal/editor"
	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/model"
)

type fakeStore struct {
	calls int
	last  []model.Entry
	err   error
}

func (f *fakeStore) Persist(entries []model.Entry) error {
	f.calls++
	f.last = append([]model.Entry(nil), entries...)
	return f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) SetContents(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
)

func newController(entries ...model.Entry) (*Controller, *fakeStore, *fakeClipboard) {
	i18n.Init("en")
	st := &fakeStore{}
	clip := &fakeClipboard{}
	return New(entries, st, clip), st, clip
}

// typeText sends every rune of s as its own key event.
func typeText(t *testing.T, c *Controller, s string) {
	t.Helper()
	for _, r := range s {
		if out := c.HandleKey(runes(string(r))); out.Quit || out.Err != nil {
			t.Fatalf("typing %q: unexpected outcome %+v", r, out)
		}
	}
}

func addEntry(t *testing.T, c *Controller, service, login, password string) {
	t.Helper()
	c.HandleKey(runes("n"))
	if c.Screen() != Popup {
		t.Fatalf("screen after n = %s, want popup", c.Screen())
	}
	typeText(t, c, service)
	c.HandleKey(keyTab)
	typeText(t, c, login)
	c.HandleKey(keyTab)
	typeText(t, c, password)
	if out := c.HandleKey(keyEnter); out.Err != nil {
		t.Fatalf("commit: %v", out.Err)
	}
	if c.Screen() != Main {
		t.Fatalf("screen after commit = %s, want main", c.Screen())
	}
}

func TestController_Scenario(t *testing.T) {
	c, st, _ := newController()

	addEntry(t, c, "github", "alice", "p1")
	addEntry(t, c, "gmail", "alice", "p2")
	if st.calls != 2 {
		t.Fatalf("persist calls = %d, want 2", st.calls)
	}
	got := c.Entries()
	if len(got) != 2 || got[0] != model.NewEntry(0, "github", "alice", "p1") || got[1] != model.NewEntry(1, "gmail", "alice", "p2") {
		t.Fatalf("entries = %+v", got)
	}

	// Row 0 is selected; delete it.
	out := c.HandleKey(runes("d"))
	if out.Err != nil {
		t.Fatalf("delete: %v", out.Err)
	}
	got = c.Entries()
	if len(got) != 1 || got[0] != model.NewEntry(0, "gmail", "alice", "p2") {
		t.Fatalf("after delete = %+v", got)
	}

	c.HandleKey(runes("m"))
	if c.Screen() != Popup {
		t.Fatalf("modify did not open the popup")
	}
	v := c.View()
	if !v.Editing || v.Fields[0].Field.Value() != "gmail" || !v.Fields[0].Active {
		t.Fatalf("modify form = %+v", v)
	}
	c.HandleKey(keyTab)
	c.HandleKey(keyTab)
	c.HandleKey(keyBack)
	typeText(t, c, "3")
	c.HandleKey(keyEnter)

	got = c.Entries()
	if len(got) != 1 || got[0] != model.NewEntry(0, "gmail", "alice", "p3") {
		t.Fatalf("after modify = %+v", got)
	}
	if st.calls != 4 {
		t.Fatalf("persist calls = %d, want 4", st.calls)
	}
	if len(st.last) != 1 || st.last[0].Password() != "p3" {
		t.Fatalf("persisted = %+v", st.last)
	}
}

func TestController_CancelDiscards(t *testing.T) {
	c, st, _ := newController(model.NewEntry(0, "a", "b", "c"))
	before := c.Entries()

	c.HandleKey(runes("n"))
	typeText(t, c, "typed")
	c.HandleKey(keyEsc)
	if c.Screen() != Main {
		t.Fatalf("esc in popup: screen = %s", c.Screen())
	}
	if st.calls != 0 {
		t.Fatalf("cancel persisted %d times", st.calls)
	}
	after := c.Entries()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("cancel changed entries: %+v", after)
	}

	// The form is cleared for the next open.
	c.HandleKey(runes("n"))
	for _, f := range c.View().Fields {
		if f.Field.Value() != "" {
			t.Fatalf("field %s not cleared: %q", f.ID, f.Field.Value())
		}
	}
}

func TestController_CancelModifyKeepsEntry(t *testing.T) {
	c, st, _ := newController(model.NewEntry(0, "svc", "usr", "pw"))
	c.HandleKey(runes("m"))
	typeText(t, c, "xyz")
	c.HandleKey(keyEsc)
	if st.calls != 0 || c.Entries()[0] != model.NewEntry(0, "svc", "usr", "pw") {
		t.Fatalf("cancelled modify changed state: calls=%d %+v", st.calls, c.Entries())
	}
}

func TestController_CommitEmptyIsNoop(t *testing.T) {
	c, st, _ := newController()
	c.HandleKey(runes("n"))
	out := c.HandleKey(keyEnter)
	if out != (Outcome{}) {
		t.Fatalf("outcome = %+v", out)
	}
	if c.Screen() != Popup {
		t.Fatalf("screen = %s, want popup", c.Screen())
	}
	if st.calls != 0 || len(c.Entries()) != 0 {
		t.Fatalf("empty commit mutated state")
	}
}

func TestController_PopupKeysEditFields(t *testing.T) {
	c, _, _ := newController()
	c.HandleKey(runes("n"))
	// Main-screen bindings are plain text inside the popup.
	typeText(t, c, "jkdq?")
	if got := c.View().Fields[0].Field.Value(); got != "jkdq?" {
		t.Fatalf("service = %q", got)
	}
	c.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	v := c.View()
	if !v.Fields[editor.FieldPassword].Active {
		t.Fatalf("shift+tab from service must focus password")
	}
}

func TestController_Help(t *testing.T) {
	c, _, _ := newController()
	c.HandleKey(runes("?"))
	if c.Screen() != Help {
		t.Fatalf("screen = %s, want help", c.Screen())
	}
	if out := c.HandleKey(runes("q")); out.Quit {
		t.Fatalf("q on help must not quit")
	}
	c.HandleKey(keyEsc)
	if c.Screen() != Main {
		t.Fatalf("esc on help: screen = %s", c.Screen())
	}

	c.HandleKey(runes("n"))
	c.HandleKey(runes("?"))
	if c.Screen() != Popup {
		t.Fatalf("help must not open from the popup")
	}
}

func TestController_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), keyEsc, {Type: tea.KeyCtrlC}} {
		c, _, _ := newController()
		if out := c.HandleKey(k); !out.Quit {
			t.Fatalf("%s did not quit", k)
		}
	}
}

func TestController_Navigation(t *testing.T) {
	c, _, _ := newController(
		model.NewEntry(0, "a", "1", "x"),
		model.NewEntry(1, "b", "2", "y"),
	)
	c.HandleKey(runes("k"))
	if v := c.View(); v.Selected != 1 || v.Scroll != 3 {
		t.Fatalf("k from 0 = row %d scroll %d", v.Selected, v.Scroll)
	}
	c.HandleKey(runes("j"))
	if v := c.View(); v.Selected != 0 {
		t.Fatalf("j from last = %d", v.Selected)
	}
	c.HandleKey(runes("h"))
	if v := c.View(); v.Column != 2 {
		t.Fatalf("h from column 0 = %d", v.Column)
	}
}

func TestController_Copy(t *testing.T) {
	c, _, clip := newController(model.NewEntry(0, "github", "alice", "s3cret"))

	out := c.HandleKey(runes("P"))
	if clip.text != "github   alice   s3cret" || out.Notice == "" {
		t.Fatalf("copy row = %q %+v", clip.text, out)
	}
	c.HandleKey(runes("p"))
	if clip.text != "s3cret" {
		t.Fatalf("copy password = %q", clip.text)
	}
	c.HandleKey(runes("l"))
	out = c.HandleKey(runes("c"))
	if clip.text != "alice" {
		t.Fatalf("copy cell = %q", clip.text)
	}
	if !strings.Contains(out.Notice, "Login") {
		t.Fatalf("notice = %q", out.Notice)
	}
}

func TestController_CopyError(t *testing.T) {
	c, _, clip := newController(model.NewEntry(0, "a", "b", "c"))
	clip.err = errors.New("no display")
	out := c.HandleKey(runes("p"))
	if out.Err == nil || out.Quit {
		t.Fatalf("outcome = %+v", out)
	}
}

func TestController_NoSelection(t *testing.T) {
	c, st, clip := newController()
	for _, k := range []string{"d", "m", "p", "P", "c", "j", "k"} {
		if out := c.HandleKey(runes(k)); out != (Outcome{}) {
			t.Fatalf("%s on empty table = %+v", k, out)
		}
		if c.Screen() != Main {
			t.Fatalf("%s on empty table left main", k)
		}
	}
	if st.calls != 0 || clip.text != "" {
		t.Fatalf("empty table produced side effects")
	}
}

func TestController_PersistErrorKeepsChange(t *testing.T) {
	c, st, _ := newController()
	st.err = errors.New("disk full")
	c.HandleKey(runes("n"))
	typeText(t, c, "svc")
	out := c.HandleKey(keyEnter)
	if out.Err == nil || !errors.Is(out.Err, st.err) {
		t.Fatalf("err = %v", out.Err)
	}
	if out.Quit || c.Screen() != Main {
		t.Fatalf("persist failure must return to main without quitting")
	}
	if len(c.Entries()) != 1 {
		t.Fatalf("in-memory change dropped")
	}
}

func TestController_DeleteLastRowClamps(t *testing.T) {
	c, _, _ := newController(
		model.NewEntry(0, "a", "1", "x"),
		model.NewEntry(1, "b", "2", "y"),
	)
	c.HandleKey(runes("j"))
	c.HandleKey(runes("d"))
	if v := c.View(); !v.HasRow || v.Selected != 0 {
		t.Fatalf("selection after deleting last row = %d %v", v.Selected, v.HasRow)
	}
	c.HandleKey(runes("d"))
	if v := c.View(); v.HasRow || len(v.Entries) != 0 {
		t.Fatalf("selection after emptying = %+v", v)
	}
}
