// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package editor

import "github.com/psu-tools/psu/internal/model"

// FieldID names one of the form fields.
type FieldID int

const (
	FieldService FieldID = iota
	FieldLogin
	FieldPassword
)

// FieldOrder is the focus cycle of the form.
var FieldOrder = [...]FieldID{FieldService, FieldLogin, FieldPassword}

// Next returns the field after id in FieldOrder, wrapping around.
func (id FieldID) Next() FieldID { return id.rotate(1) }

// Prev returns the field before id in FieldOrder, wrapping around.
func (id FieldID) Prev() FieldID { return id.rotate(-1) }

func (id FieldID) rotate(delta int) FieldID {
	n := len(FieldOrder)
	for i, f := range FieldOrder {
		if f == id {
			return FieldOrder[((i+delta)%n+n)%n]
		}
	}
	return FieldOrder[0]
}

func (id FieldID) String() string {
	switch id {
	case FieldService:
		return "service"
	case FieldLogin:
		return "login"
	case FieldPassword:
		return "password"
	}
	return "unknown"
}

// Form is the draft entry edited in the popup.
type Form struct {
	fields [len(FieldOrder)]Field
}

// Field returns the field buffer for id.
func (f *Form) Field(id FieldID) *Field {
	return &f.fields[id]
}

// Reset clears all three fields.
func (f *Form) Reset() {
	for i := range f.fields {
		f.fields[i].Reset()
	}
}

// IsEmpty reports whether every field is empty.
func (f *Form) IsEmpty() bool {
	for i := range f.fields {
		if f.fields[i].Len() > 0 {
			return false
		}
	}
	return true
}

// Fill copies c into the form, placing every cursor at the end.
func (f *Form) Fill(c model.Credentials) {
	f.fields[FieldService].SetValue(c.Service())
	f.fields[FieldLogin].SetValue(c.Login())
	f.fields[FieldPassword].SetValue(c.Password())
}

func (f *Form) Service() string  { return f.fields[FieldService].Value() }
func (f *Form) Login() string    { return f.fields[FieldLogin].Value() }
func (f *Form) Password() string { return f.fields[FieldPassword].Value() }

var _ model.Credentials = (*Form)(nil)
