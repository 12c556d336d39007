// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/model"
	"github.com/psu-tools/psu/internal/navigator"
	"github.com/psu-tools/psu/internal/screen"
)

const (
	gutterWidth    = 3
	scrollbarWidth = 1
	// minColumnWidth keeps a column usable on narrow terminals.
	minColumnWidth = 4
)

var selectionBar = strings.Join([]string{"   ", " █ ", "   "}, "\n")

// columnWidths sizes the three columns to their longest value plus one cell
// of padding, shrinking them evenly when they do not fit in avail.
func columnWidths(entries []model.Entry, avail int) [navigator.Columns]int {
	var w [navigator.Columns]int
	for col := range w {
		w[col] = lipgloss.Width(screen.ColumnTitle(col)) + 1
	}
	for _, e := range entries {
		for col := range w {
			if n := lipgloss.Width(e.Column(col)) + 1; n > w[col] {
				w[col] = n
			}
		}
	}

	total := w[0] + w[1] + w[2]
	if total <= avail {
		// The last column takes the remaining space.
		w[navigator.Columns-1] += avail - total
		return w
	}
	for total > avail {
		widest := 0
		for col := range w {
			if w[col] > w[widest] {
				widest = col
			}
		}
		if w[widest] <= minColumnWidth {
			break
		}
		w[widest]--
		total--
	}
	return w
}

func cell(text string, width int) string {
	return ansi.Truncate(text, width-1, "…")
}

func renderHeader(widths [navigator.Columns]int) string {
	parts := []string{strings.Repeat(" ", gutterWidth)}
	for col, w := range widths {
		parts = append(parts, headerStyle.Width(w).Render(cell(screen.ColumnTitle(col), w)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderRow(v screen.View, i int, widths [navigator.Columns]int) string {
	selected := v.HasRow && v.Selected == i
	bg := colorRowEven
	if i%2 == 1 {
		bg = colorRowOdd
	}

	gutter := strings.Repeat(" ", gutterWidth)
	gutter = gutter + "\n" + gutter + "\n" + gutter
	if selected {
		gutter = specialStyle.Render(selectionBar)
	}
	parts := []string{gutter}
	for col, w := range widths {
		style := rowStyle.Background(bg)
		switch {
		case selected && col == v.Column:
			style = selectedCellStyle.Height(navigator.RowHeight)
		case selected:
			style = selectedRowStyle.Background(bg)
		}
		parts = append(parts, style.Width(w).Render("\n"+cell(v.Entries[i].Column(col), w)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// windowStart returns the first body line to draw so that the row whose top
// line is scroll stays fully visible in a body of height lines.
func windowStart(scroll, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	start := 0
	if scroll+navigator.RowHeight > height {
		start = scroll + navigator.RowHeight - height
	}
	if start > total-height {
		start = total - height
	}
	return start
}

// scrollbar returns one glyph per visible body line.
func scrollbar(start, height, total int) []string {
	bar := make([]string, height)
	for i := range bar {
		bar[i] = scrollbarStyle.Render("│")
	}
	if total <= height || height == 0 {
		return bar
	}
	thumb := height * height / total
	if thumb < 1 {
		thumb = 1
	}
	pos := start * (height - thumb) / (total - height)
	for i := pos; i < pos+thumb && i < height; i++ {
		bar[i] = scrollbarThumb.Render("█")
	}
	return bar
}

// renderTable draws the header and as many rows as fit in height lines.
func renderTable(v screen.View, width, height int) string {
	if len(v.Entries) == 0 {
		return helpStyle.Render(i18n.T("table.empty"))
	}

	widths := columnWidths(v.Entries, width-gutterWidth-scrollbarWidth)
	var lines []string
	for i := range v.Entries {
		lines = append(lines, strings.Split(renderRow(v, i, widths), "\n")...)
	}

	bodyHeight := height - 1
	if bodyHeight < navigator.RowHeight {
		bodyHeight = navigator.RowHeight
	}
	start := windowStart(v.Scroll, len(lines), bodyHeight)
	end := min(start+bodyHeight, len(lines))
	bar := scrollbar(start, end-start, len(lines))

	var b strings.Builder
	b.WriteString(renderHeader(widths))
	for i, line := range lines[start:end] {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString(bar[i])
	}
	return b.String()
}
