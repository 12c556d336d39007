// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package screen

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Action is what a key means on the current screen.
type Action int

const (
	ActionNone Action = iota
	ActionNextRow
	ActionPrevRow
	ActionNextColumn
	ActionPrevColumn
	ActionDelete
	ActionAdd
	ActionModify
	ActionHelp
	ActionCopyRow
	ActionCopyPassword
	ActionCopyColumn
	ActionQuit
	ActionCancel
	ActionCommit
	ActionNextField
	ActionPrevField
	ActionEdit
	ActionBack
)

// MainKeyMap holds the table screen bindings.
type MainKeyMap struct {
	Down         key.Binding
	Up           key.Binding
	Right        key.Binding
	Left         key.Binding
	Add          key.Binding
	Modify       key.Binding
	Delete       key.Binding
	CopyRow      key.Binding
	CopyPassword key.Binding
	CopyColumn   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func (k MainKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Modify, k.Delete, k.CopyPassword, k.Help, k.Quit}
}

func (k MainKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Right, k.Left},
		{k.Add, k.Modify, k.Delete},
		{k.CopyRow, k.CopyPassword, k.CopyColumn},
		{k.Help, k.Quit},
	}
}

// PopupKeyMap holds the form bindings. Keys that match none of them are
// passed to the focused field.
type PopupKeyMap struct {
	Commit    key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
}

func (k PopupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Commit, k.Cancel}
}

func (k PopupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// HelpKeyMap holds the help screen bindings.
type HelpKeyMap struct {
	Back key.Binding
}

func (k HelpKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Back} }

func (k HelpKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var (
	_ help.KeyMap = MainKeyMap{}
	_ help.KeyMap = PopupKeyMap{}
	_ help.KeyMap = HelpKeyMap{}
)

// KeyMap bundles the bindings of every screen.
type KeyMap struct {
	Main  MainKeyMap
	Popup PopupKeyMap
	Help  HelpKeyMap
}

// DefaultKeyMap mirrors the classic psu bindings.
var DefaultKeyMap = KeyMap{
	Main: MainKeyMap{
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next row")),
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous row")),
		Right:        key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next column")),
		Left:         key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous column")),
		Add:          key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "new")),
		Modify:       key.NewBinding(key.WithKeys("m", "M"), key.WithHelp("m", "modify")),
		Delete:       key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "delete")),
		CopyRow:      key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "copy row")),
		CopyPassword: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "copy password")),
		CopyColumn:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy cell")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "quit")),
	},
	Popup: PopupKeyMap{
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("↑", "previous field")),
	},
	Help: HelpKeyMap{
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	},
}

type binding struct {
	key.Binding
	action Action
}

// bindings lists the bindings of screen s in match order.
func (k KeyMap) bindings(s Screen) []binding {
	switch s {
	case Main:
		m := k.Main
		return []binding{
			{m.Down, ActionNextRow},
			{m.Up, ActionPrevRow},
			{m.Right, ActionNextColumn},
			{m.Left, ActionPrevColumn},
			{m.Add, ActionAdd},
			{m.Modify, ActionModify},
			{m.Delete, ActionDelete},
			{m.CopyRow, ActionCopyRow},
			{m.CopyPassword, ActionCopyPassword},
			{m.CopyColumn, ActionCopyColumn},
			{m.Help, ActionHelp},
			{m.Quit, ActionQuit},
		}
	case Popup:
		p := k.Popup
		return []binding{
			{p.Commit, ActionCommit},
			{p.Cancel, ActionCancel},
			{p.NextField, ActionNextField},
			{p.PrevField, ActionPrevField},
		}
	case Help:
		return []binding{{k.Help.Back, ActionBack}}
	}
	return nil
}

// For returns the help.KeyMap shown on screen s.
func (k KeyMap) For(s Screen) help.KeyMap {
	switch s {
	case Popup:
		return k.Popup
	case Help:
		return k.Help
	}
	return k.Main
}
