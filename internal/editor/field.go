// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package editor implements the editable text fields of the entry form.
// All cursor arithmetic is done in runes so multi-byte text behaves.
package editor // import "github.com/psu-tools/psu/internal/editor"

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Field is a single-line text buffer with a cursor. The cursor is a rune
// index in [0, Len()].
type Field struct {
	value  []rune
	cursor int
}

// Value returns the field content.
func (f Field) Value() string { return string(f.value) }

// Cursor returns the cursor position in runes.
func (f Field) Cursor() int { return f.cursor }

// Len returns the content length in runes.
func (f Field) Len() int { return len(f.value) }

// SetValue replaces the content and moves the cursor to the end.
func (f *Field) SetValue(s string) {
	f.value = []rune(s)
	f.cursor = len(f.value)
}

// Reset clears the content and the cursor.
func (f *Field) Reset() {
	f.value = nil
	f.cursor = 0
}

// Insert puts r at the cursor and advances the cursor.
func (f *Field) Insert(r rune) {
	f.clamp()
	f.value = append(f.value, 0)
	copy(f.value[f.cursor+1:], f.value[f.cursor:])
	f.value[f.cursor] = r
	f.cursor++
	f.clamp()
}

// Backspace removes the rune before the cursor. No-op at position 0.
func (f *Field) Backspace() {
	f.clamp()
	if f.cursor == 0 {
		return
	}
	f.value = append(f.value[:f.cursor-1], f.value[f.cursor:]...)
	f.cursor--
}

// Delete removes the rune under the cursor. No-op at the end.
func (f *Field) Delete() {
	f.clamp()
	if f.cursor >= len(f.value) {
		return
	}
	f.value = append(f.value[:f.cursor], f.value[f.cursor+1:]...)
}

// MoveLeft moves the cursor one rune left.
func (f *Field) MoveLeft() {
	f.cursor--
	f.clamp()
}

// MoveRight moves the cursor one rune right.
func (f *Field) MoveRight() {
	f.cursor++
	f.clamp()
}

// Home moves the cursor to the start.
func (f *Field) Home() { f.cursor = 0 }

// End moves the cursor past the last rune.
func (f *Field) End() { f.cursor = len(f.value) }

func (f *Field) clamp() {
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > len(f.value) {
		f.cursor = len(f.value)
	}
}

// VisibleOffset returns the index of the leftmost rune shown in a viewport
// of the given width such that the cursor stays visible. It has no effect on
// the field.
func (f Field) VisibleOffset(width int) int {
	if width <= 0 {
		return f.cursor
	}
	if f.cursor < width {
		return 0
	}
	return f.cursor - width + 1
}

// HandleKey applies an editing key and reports whether it was consumed.
func (f *Field) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		for _, r := range msg.Runes {
			// Pasted text may carry newlines and tabs.
			if unicode.IsControl(r) {
				continue
			}
			f.Insert(r)
		}
	case tea.KeySpace:
		f.Insert(' ')
	case tea.KeyBackspace:
		f.Backspace()
	case tea.KeyDelete:
		f.Delete()
	case tea.KeyLeft:
		f.MoveLeft()
	case tea.KeyRight:
		f.MoveRight()
	case tea.KeyHome, tea.KeyCtrlA:
		f.Home()
	case tea.KeyEnd, tea.KeyCtrlE:
		f.End()
	default:
		return false
	}
	return true
}

// Clone returns an independent copy of the field.
func (f Field) Clone() Field {
	return Field{value: append([]rune(nil), f.value...), cursor: f.cursor}
}
