// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - unsigned 128 bit token quantities
//
// All ledger arithmetic is performed on these amounts.  Operations
// are checked: any result outside the 128 bit range is reported as an
// overflow fault, never wrapped.
package balance

import (
	"github.com/holiman/uint256"

	"github.com/userevolution/furball-dapp/fault"
)

// amounts are limited to the unsigned 128 bit range
const (
	maximumBits = 128

	// ByteSize - length of the packed big endian representation
	ByteSize = 16
)

// Amount - an unsigned 128 bit quantity of tokens or payment units
type Amount struct {
	n uint256.Int
}

// Zero - the zero amount
var Zero = Amount{}

// New - amount from a small integer
func New(value uint64) Amount {
	a := Amount{}
	a.n.SetUint64(value)
	return a
}

// Parse - amount from a decimal string
func Parse(s string) (Amount, error) {
	a := Amount{}
	if err := a.n.SetFromDecimal(s); nil != err {
		return Zero, fault.ErrAmountOverflow
	}
	if a.n.BitLen() > maximumBits {
		return Zero, fault.ErrAmountOverflow
	}
	return a, nil
}

// MustParse - amount from a decimal literal, panics on error
//
// only for constant initialisation
func MustParse(s string) Amount {
	a, err := Parse(s)
	if nil != err {
		panic("balance: invalid literal: " + s)
	}
	return a
}

// FromBytes - amount from a packed big endian value
//
// values shorter than ByteSize are treated as high zero padded
func FromBytes(buffer []byte) (Amount, error) {
	if len(buffer) > ByteSize {
		return Zero, fault.ErrAmountOverflow
	}
	a := Amount{}
	a.n.SetBytes(buffer)
	return a, nil
}

// Bytes - packed big endian representation, always ByteSize long
func (a Amount) Bytes() []byte {
	full := a.n.Bytes32()
	buffer := make([]byte, ByteSize)
	copy(buffer, full[32-ByteSize:])
	return buffer
}

// Add - checked addition
func (a Amount) Add(b Amount) (Amount, error) {
	r := Amount{}
	if _, overflow := r.n.AddOverflow(&a.n, &b.n); overflow || r.n.BitLen() > maximumBits {
		return Zero, fault.ErrAmountOverflow
	}
	return r, nil
}

// Sub - checked subtraction, fails rather than wrapping below zero
func (a Amount) Sub(b Amount) (Amount, error) {
	r := Amount{}
	if _, underflow := r.n.SubOverflow(&a.n, &b.n); underflow {
		return Zero, fault.ErrAmountUnderflow
	}
	return r, nil
}

// SaturatingSub - subtraction floored at zero
func (a Amount) SaturatingSub(b Amount) Amount {
	r, err := a.Sub(b)
	if nil != err {
		return Zero
	}
	return r
}

// Mul - checked multiplication
func (a Amount) Mul(b Amount) (Amount, error) {
	r := Amount{}
	if _, overflow := r.n.MulOverflow(&a.n, &b.n); overflow || r.n.BitLen() > maximumBits {
		return Zero, fault.ErrAmountOverflow
	}
	return r, nil
}

// Cmp - three way comparison: -1, 0, +1
func (a Amount) Cmp(b Amount) int {
	return a.n.Cmp(&b.n)
}

// IsZero - true for the zero amount
func (a Amount) IsZero() bool {
	return a.n.IsZero()
}

// Equal - amounts hold the same value
func (a Amount) Equal(b Amount) bool {
	return a.n.Eq(&b.n)
}

// String - decimal representation
func (a Amount) String() string {
	return a.n.Dec()
}

// MarshalText - decimal string for JSON and logging
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.n.Dec()), nil
}

// UnmarshalText - parse a decimal string
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}
