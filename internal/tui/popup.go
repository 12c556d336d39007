// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/psu-tools/psu/internal/editor"
	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/screen"
)

const (
	popupMaxWidth = 60
	popupMinWidth = 20
)

func fieldLabel(id editor.FieldID) string {
	switch id {
	case editor.FieldService:
		return i18n.T("form.field.service")
	case editor.FieldLogin:
		return i18n.T("form.field.login")
	default:
		return i18n.T("form.field.password")
	}
}

// renderInput draws the part of f that fits in width cells, scrolled so the
// cursor stays visible. The cursor is only drawn on the active field.
func renderInput(f editor.Field, width int, active bool) string {
	value := []rune(f.Value())
	off := f.VisibleOffset(width)
	end := min(off+width, len(value))
	if off > end {
		off = end
	}
	visible := value[off:end]
	if !active {
		return string(visible)
	}

	cur := f.Cursor() - off
	var b strings.Builder
	b.WriteString(string(visible[:cur]))
	if cur < len(visible) {
		b.WriteString(cursorStyle.Render(string(visible[cur])))
		b.WriteString(string(visible[cur+1:]))
	} else {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

// renderPopup draws the three-field entry form centered in the window.
func renderPopup(v screen.View, width, height int) string {
	boxWidth := min(popupMaxWidth, width-4)
	boxWidth = max(boxWidth, popupMinWidth)
	// Border and padding of the dialog and of each input.
	inputWidth := boxWidth - 4 - 2

	title := i18n.T("form.title.add")
	if v.Editing {
		title = i18n.T("form.title.modify")
	}

	parts := []string{titleStyle.Render(title)}
	for _, fv := range v.Fields {
		label, box := inputLabelStyle, inputStyle
		if fv.Active {
			label, box = activeInputLabelStyle, activeInputStyle
		}
		parts = append(parts,
			label.Render(fieldLabel(fv.ID)),
			box.Width(inputWidth).Render(renderInput(fv.Field, inputWidth-1, fv.Active)),
		)
	}

	dialog := dialogBoxStyle.Width(boxWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if width <= 0 || height <= 0 {
		return dialog
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
