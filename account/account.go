// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - account identifiers
//
// An identifier names an account on the hosting execution
// environment.  The service never creates identifiers itself, it only
// receives them from the host, so validation is purely syntactic.
package account

import (
	"github.com/userevolution/furball-dapp/fault"
)

// length limits for an identifier
const (
	MinimumLength = 2
	MaximumLength = 64
)

// Identifier - the name of an account as supplied by the host
type Identifier string

// Validate - check the syntax of an identifier
//
// lowercase alphanumeric parts separated by single "." "_" or "-"
// characters, length within [MinimumLength, MaximumLength]
func (id Identifier) Validate() error {
	if len(id) < MinimumLength || len(id) > MaximumLength {
		return fault.ErrInvalidAccountIdentifier
	}

	lastWasSeparator := true // leading separator is invalid
	for _, c := range string(id) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			lastWasSeparator = false
		case c == '.' || c == '_' || c == '-':
			if lastWasSeparator {
				return fault.ErrInvalidAccountIdentifier
			}
			lastWasSeparator = true
		default:
			return fault.ErrInvalidAccountIdentifier
		}
	}
	if lastWasSeparator {
		return fault.ErrInvalidAccountIdentifier
	}
	return nil
}

// IsValid - convenience wrapper around Validate
func (id Identifier) IsValid() bool {
	return nil == id.Validate()
}

// String - identifier as a plain string
func (id Identifier) String() string {
	return string(id)
}

// Bytes - identifier as a byte slice for storage keys
func (id Identifier) Bytes() []byte {
	return []byte(id)
}
