// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package screen is the interactive core of psu: a finite-state machine over
// the Main, Popup and Help screens. Every key event is resolved to an Action
// through the screen's key map and dispatched through a transition table that
// updates the navigator, the form editor or the entry collection.
package screen // import "github.com/psu-tools/psu/internal/screen"

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/psu-tools/psu/internal/editor"
	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/logging"
	"github.com/psu-tools/psu/internal/model"
	"github.com/psu-tools/psu/internal/navigator"
	"github.com/psu-tools/psu/internal/store"
)

// Screen is the state of the controller.
type Screen int

const (
	Main Screen = iota
	Popup
	Help
)

func (s Screen) String() string {
	switch s {
	case Main:
		return "main"
	case Popup:
		return "popup"
	case Help:
		return "help"
	}
	return "unknown"
}

// Persister durably writes the whole collection.
type Persister interface {
	Persist(entries []model.Entry) error
}

// Clipboard accepts exported text.
type Clipboard interface {
	SetContents(text string) error
}

// Outcome is the result of handling one key.
type Outcome struct {
	Quit   bool
	Notice string
	Err    error
}

// Controller owns the entry collection and the UI state around it. It is
// the only writer of the collection.
type Controller struct {
	screen  Screen
	entries []model.Entry
	nav     navigator.Navigator
	form    editor.Form
	active  editor.FieldID
	editing bool
	target  int

	store Persister
	clip  Clipboard
	keys  KeyMap
}

// New returns a controller on the Main screen over entries.
func New(entries []model.Entry, st Persister, clip Clipboard) *Controller {
	return &Controller{
		screen:  Main,
		entries: entries,
		nav:     navigator.New(len(entries)),
		store:   st,
		clip:    clip,
		keys:    DefaultKeyMap,
	}
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen { return c.screen }

// Keys returns the active key map.
func (c *Controller) Keys() KeyMap { return c.keys }

// SetKeys replaces the key map.
func (c *Controller) SetKeys(k KeyMap) { c.keys = k }

// HandleKey resolves msg to an action on the current screen and runs the
// matching transition. Keys without a transition are ignored.
func (c *Controller) HandleKey(msg tea.KeyMsg) Outcome {
	action := c.resolve(msg)
	h, ok := transitions[transition{from: c.screen, action: action}]
	if !ok {
		return Outcome{}
	}
	from := c.screen
	next, out := h(c, msg)
	c.screen = next
	if from != next {
		logging.Debugf("screen: %s -> %s", from, next)
	}
	return out
}

func (c *Controller) resolve(msg tea.KeyMsg) Action {
	for _, b := range c.keys.bindings(c.screen) {
		if key.Matches(msg, b.Binding) {
			return b.action
		}
	}
	if c.screen == Popup {
		return ActionEdit
	}
	return ActionNone
}

type transition struct {
	from   Screen
	action Action
}

type handler func(c *Controller, msg tea.KeyMsg) (Screen, Outcome)

// transitions is the state machine. Help is only reachable from Main and
// only returns to Main.
var transitions = map[transition]handler{
	{Main, ActionNextRow}:      (*Controller).nextRow,
	{Main, ActionPrevRow}:      (*Controller).prevRow,
	{Main, ActionNextColumn}:   (*Controller).nextColumn,
	{Main, ActionPrevColumn}:   (*Controller).prevColumn,
	{Main, ActionDelete}:       (*Controller).deleteSelected,
	{Main, ActionAdd}:          (*Controller).openAdd,
	{Main, ActionModify}:       (*Controller).openModify,
	{Main, ActionHelp}:         (*Controller).openHelp,
	{Main, ActionCopyRow}:      (*Controller).copyRow,
	{Main, ActionCopyPassword}: (*Controller).copyPassword,
	{Main, ActionCopyColumn}:   (*Controller).copyColumn,
	{Main, ActionQuit}:         (*Controller).quit,

	{Popup, ActionCancel}:    (*Controller).cancel,
	{Popup, ActionCommit}:    (*Controller).commit,
	{Popup, ActionNextField}: (*Controller).nextField,
	{Popup, ActionPrevField}: (*Controller).prevField,
	{Popup, ActionEdit}:      (*Controller).edit,

	{Help, ActionBack}: (*Controller).back,
}

func (c *Controller) nextRow(tea.KeyMsg) (Screen, Outcome) {
	c.nav.NextRow(len(c.entries))
	return Main, Outcome{}
}

func (c *Controller) prevRow(tea.KeyMsg) (Screen, Outcome) {
	c.nav.PreviousRow(len(c.entries))
	return Main, Outcome{}
}

func (c *Controller) nextColumn(tea.KeyMsg) (Screen, Outcome) {
	c.nav.NextColumn()
	return Main, Outcome{}
}

func (c *Controller) prevColumn(tea.KeyMsg) (Screen, Outcome) {
	c.nav.PreviousColumn()
	return Main, Outcome{}
}

func (c *Controller) openHelp(tea.KeyMsg) (Screen, Outcome) {
	return Help, Outcome{}
}

func (c *Controller) back(tea.KeyMsg) (Screen, Outcome) {
	return Main, Outcome{}
}

func (c *Controller) quit(tea.KeyMsg) (Screen, Outcome) {
	return Main, Outcome{Quit: true}
}

// selected returns the selected position when it addresses an entry.
func (c *Controller) selected() (int, bool) {
	pos, ok := c.nav.Selected()
	if !ok || pos < 0 || pos >= len(c.entries) {
		return 0, false
	}
	return pos, true
}

func (c *Controller) deleteSelected(tea.KeyMsg) (Screen, Outcome) {
	pos, ok := c.selected()
	if !ok {
		return Main, Outcome{}
	}
	entries, err := store.Remove(c.entries, pos)
	if err != nil {
		return Main, Outcome{Err: err}
	}
	c.entries = entries
	c.nav.Clamp(len(c.entries))
	return Main, c.persist(i18n.T("status.deleted"))
}

func (c *Controller) openAdd(tea.KeyMsg) (Screen, Outcome) {
	c.form.Reset()
	c.active = editor.FieldOrder[0]
	c.editing = false
	return Popup, Outcome{}
}

func (c *Controller) openModify(tea.KeyMsg) (Screen, Outcome) {
	pos, ok := c.selected()
	if !ok {
		return Main, Outcome{}
	}
	c.form.Fill(c.entries[pos])
	c.active = editor.FieldOrder[0]
	c.editing = true
	c.target = pos
	return Popup, Outcome{}
}

func (c *Controller) cancel(tea.KeyMsg) (Screen, Outcome) {
	c.closeForm()
	return Main, Outcome{}
}

func (c *Controller) commit(tea.KeyMsg) (Screen, Outcome) {
	if c.form.IsEmpty() {
		return Popup, Outcome{}
	}

	notice := i18n.T("status.added")
	if c.editing {
		if err := store.Update(c.entries, c.target, &c.form); err != nil {
			c.closeForm()
			return Main, Outcome{Err: err}
		}
		notice = i18n.T("status.updated")
	} else {
		c.entries = store.Add(c.entries, model.FromCredentials(0, &c.form))
		c.nav.Clamp(len(c.entries))
	}

	out := c.persist(notice)
	c.closeForm()
	return Main, out
}

func (c *Controller) closeForm() {
	c.form.Reset()
	c.active = editor.FieldOrder[0]
	c.editing = false
	c.target = 0
}

func (c *Controller) nextField(tea.KeyMsg) (Screen, Outcome) {
	c.active = c.active.Next()
	return Popup, Outcome{}
}

func (c *Controller) prevField(tea.KeyMsg) (Screen, Outcome) {
	c.active = c.active.Prev()
	return Popup, Outcome{}
}

func (c *Controller) edit(msg tea.KeyMsg) (Screen, Outcome) {
	c.form.Field(c.active).HandleKey(msg)
	return Popup, Outcome{}
}

// persist writes the collection after a mutation. On failure the in-memory
// change stays and the error tells the user it is not saved.
func (c *Controller) persist(notice string) Outcome {
	if err := c.store.Persist(c.entries); err != nil {
		logging.Errorf("persist failed: %v", err)
		return Outcome{Err: fmt.Errorf("change is not saved: %w", err)}
	}
	return Outcome{Notice: notice}
}

func (c *Controller) copyRow(tea.KeyMsg) (Screen, Outcome) {
	pos, ok := c.selected()
	if !ok {
		return Main, Outcome{}
	}
	return Main, c.export(c.entries[pos].String(), i18n.T("status.copied_row"))
}

func (c *Controller) copyPassword(tea.KeyMsg) (Screen, Outcome) {
	pos, ok := c.selected()
	if !ok {
		return Main, Outcome{}
	}
	return Main, c.export(c.entries[pos].Password(), i18n.T("status.copied_password"))
}

func (c *Controller) copyColumn(tea.KeyMsg) (Screen, Outcome) {
	pos, ok := c.selected()
	if !ok {
		return Main, Outcome{}
	}
	col := c.nav.Column()
	return Main, c.export(c.entries[pos].Column(col), i18n.T("status.copied_column", ColumnTitle(col)))
}

func (c *Controller) export(text, notice string) Outcome {
	if err := c.clip.SetContents(text); err != nil {
		logging.Warnf("clipboard: %v", err)
		return Outcome{Err: fmt.Errorf("copy to clipboard: %w", err)}
	}
	return Outcome{Notice: notice}
}

// ColumnTitle returns the localised header of table column col.
func ColumnTitle(col int) string {
	switch col {
	case 0:
		return i18n.T("table.header.service")
	case 1:
		return i18n.T("table.header.login")
	default:
		return i18n.T("table.header.password")
	}
}
