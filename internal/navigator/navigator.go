// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package navigator tracks the table selection: an optional selected row, a
// selected column and the vertical scroll offset derived from the row.
package navigator // import "github.com/psu-tools/psu/internal/navigator"

const (
	// RowHeight is the number of terminal lines used by one table row.
	RowHeight = 3
	// Columns is the number of selectable table columns.
	Columns = 3
)

// Navigator holds the selection state. The zero value has no selected row
// and column 0 selected.
type Navigator struct {
	row      int
	selected bool
	column   int
	scroll   int
}

// New returns a navigator with row 0 selected when the collection of size n
// is not empty.
func New(n int) Navigator {
	var nav Navigator
	if n > 0 {
		nav.Select(0)
	}
	return nav
}

// Selected returns the selected row, if any.
func (n Navigator) Selected() (int, bool) {
	return n.row, n.selected
}

// Column returns the selected column in [0, Columns).
func (n Navigator) Column() int { return n.column }

// ScrollOffset returns the selected row times RowHeight.
func (n Navigator) ScrollOffset() int { return n.scroll }

// Select selects row i.
func (n *Navigator) Select(i int) {
	n.row = i
	n.selected = true
	n.scroll = i * RowHeight
}

// Clear drops the row selection.
func (n *Navigator) Clear() {
	n.row = 0
	n.selected = false
	n.scroll = 0
}

// NextRow selects the following row of a collection of size count, wrapping
// from the last row to the first. No-op when count is zero.
func (n *Navigator) NextRow(count int) {
	if count <= 0 {
		return
	}
	i := 0
	if n.selected && n.row < count-1 {
		i = n.row + 1
	}
	n.Select(i)
}

// PreviousRow selects the preceding row, wrapping from the first row to the
// last. No-op when count is zero.
func (n *Navigator) PreviousRow(count int) {
	if count <= 0 {
		return
	}
	i := 0
	if n.selected {
		if n.row == 0 || n.row > count-1 {
			i = count - 1
		} else {
			i = n.row - 1
		}
	}
	n.Select(i)
}

// NextColumn moves the column selection right, wrapping around.
func (n *Navigator) NextColumn() {
	n.column = (n.column + 1) % Columns
}

// PreviousColumn moves the column selection left, wrapping around.
func (n *Navigator) PreviousColumn() {
	n.column = (n.column + Columns - 1) % Columns
}

// Clamp keeps the selection valid for a collection of size count after a
// structural change. An empty collection clears the selection; a collection
// without a selection gets row 0 selected.
func (n *Navigator) Clamp(count int) {
	switch {
	case count <= 0:
		n.Clear()
	case !n.selected:
		n.Select(0)
	case n.row >= count:
		n.Select(count - 1)
	}
}
