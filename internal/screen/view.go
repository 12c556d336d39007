// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package screen

import (
	"github.com/psu-tools/psu/internal/editor"
	"github.com/psu-tools/psu/internal/model"
)

// FieldView is a read-only copy of one form field.
type FieldView struct {
	ID     editor.FieldID
	Field  editor.Field
	Active bool
}

// View is a snapshot of everything the renderer needs. It shares no mutable
// state with the controller.
type View struct {
	Screen   Screen
	Entries  []model.Entry
	Selected int
	HasRow   bool
	Column   int
	Scroll   int
	Editing  bool
	Fields   []FieldView
}

// View returns a snapshot of the current state.
func (c *Controller) View() View {
	row, ok := c.nav.Selected()
	v := View{
		Screen:   c.screen,
		Entries:  c.Entries(),
		Selected: row,
		HasRow:   ok,
		Column:   c.nav.Column(),
		Scroll:   c.nav.ScrollOffset(),
		Editing:  c.editing,
	}
	if c.screen == Popup {
		for _, id := range editor.FieldOrder {
			v.Fields = append(v.Fields, FieldView{
				ID:     id,
				Field:  c.form.Field(id).Clone(),
				Active: id == c.active,
			})
		}
	}
	return v
}

// Entries returns a copy of the collection.
func (c *Controller) Entries() []model.Entry {
	out := make([]model.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
