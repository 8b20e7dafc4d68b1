// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cid - opaque content identifiers
//
// A CID references off-chain artwork or profile data.  The service
// treats it as an opaque string, only bounding the length of artwork
// identifiers so that storage keys stay small.
package cid

import (
	"github.com/userevolution/furball-dapp/fault"
)

// MaximumLength - longest acceptable artwork identifier
const MaximumLength = 64

// CID - an opaque content identifier
type CID string

// ValidateArtwork - bounds check for an artwork identifier
//
// original and profile identifiers are not length limited
func (c CID) ValidateArtwork() error {
	if 0 == len(c) {
		return fault.ErrCidCannotBeEmpty
	}
	if len(c) > MaximumLength {
		return fault.ErrArtworkCidTooLong
	}
	return nil
}

// String - CID as a plain string
func (c CID) String() string {
	return string(c)
}

// Bytes - CID as a byte slice for storage keys
func (c CID) Bytes() []byte {
	return []byte(c)
}
