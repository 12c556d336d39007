// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security keeps passwords out of log output.
package security

import "encoding/json"

const redacted = "[SECRET]"

// Secret holds sensitive bytes. It formats and marshals as a placeholder so
// it can be passed to loggers safely.
type Secret []byte

// FromString copies s into a new Secret.
func FromString(s string) Secret {
	return Secret([]byte(s))
}

// Bytes returns the underlying bytes.
func (s Secret) Bytes() []byte { return s }

// String implements fmt.Stringer.
func (s Secret) String() string { return redacted }

// GoString keeps %#v redacted as well.
func (s Secret) GoString() string { return redacted }

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// Zero overwrites the secret in place.
func (s *Secret) Zero() {
	for i := range *s {
		(*s)[i] = 0
	}
}
