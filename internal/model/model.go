// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model contains the core data types shared by the store, the form
// editor and the screen controller.
package model

import "fmt"

// Credentials is implemented by anything exposing the three stored text
// fields. Both a stored Entry and the popup form satisfy it, so copying
// between them is written once.
type Credentials interface {
	Service() string
	Login() string
	Password() string
}

// Entry is one stored service/login/password record. ID is the entry's
// position in the collection and is reassigned after every structural change.
type Entry struct {
	ID     uint32 `json:"id"`
	Svc    string `json:"service"`
	Usr    string `json:"login"`
	Secret string `json:"password"`
}

// NewEntry builds an entry from plain values.
func NewEntry(id uint32, service, login, password string) Entry {
	return Entry{ID: id, Svc: service, Usr: login, Secret: password}
}

// FromCredentials copies the three fields of c into a new entry with the given id.
func FromCredentials(id uint32, c Credentials) Entry {
	return NewEntry(id, c.Service(), c.Login(), c.Password())
}

func (e Entry) Service() string  { return e.Svc }
func (e Entry) Login() string    { return e.Usr }
func (e Entry) Password() string { return e.Secret }

// Overwrite replaces the three text fields with those of c. The id is kept.
func (e *Entry) Overwrite(c Credentials) {
	e.Svc = c.Service()
	e.Usr = c.Login()
	e.Secret = c.Password()
}

// String renders the entry the way it is exported as a whole row to the
// clipboard.
func (e Entry) String() string {
	return fmt.Sprintf("%s   %s   %s", e.Svc, e.Usr, e.Secret)
}

// Column returns the field shown in table column col: 0 service, 1 login,
// anything else password.
func (e Entry) Column(col int) string {
	switch col {
	case 0:
		return e.Svc
	case 1:
		return e.Usr
	default:
		return e.Secret
	}
}

// Ensure Entry satisfies Credentials.
var _ Credentials = Entry{}
