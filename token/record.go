// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - the per-artwork token record
//
// One record exists for every registered artwork.  The artist and
// artwork identifiers are fixed at creation; only the cost per token
// changes over the record's lifetime.
package token

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/fault"
)

// fixed token parameters
//
// every artwork receives the same initial supply, minted in full to
// the registering artist; the decimals value only describes display
// precision and has no effect on stored arithmetic
const (
	DecimalsPerToken = 36
)

var (
	// InitialSupply - supply minted to the artist at registration
	InitialSupply = balance.New(1_000_000_000)

	// DefaultCostPerToken - price until the artist changes it
	DefaultCostPerToken = balance.New(1_000)
)

// structure of the packed record
const (
	costStart    = 0
	costFinish   = costStart + balance.ByteSize
	supplyStart  = costFinish
	supplyFinish = supplyStart + balance.ByteSize
	artistStart  = supplyFinish

	minimumPackLength = artistStart + account.MinimumLength
)

// Record - token metadata for one artwork
type Record struct {
	Artist       account.Identifier
	Artwork      cid.CID
	CostPerToken balance.Amount
	TotalSupply  balance.Amount
}

// Pack - record to its stored byte representation
func (r *Record) Pack() []byte {
	buffer := make([]byte, 0, artistStart+len(r.Artist))
	buffer = append(buffer, r.CostPerToken.Bytes()...)
	buffer = append(buffer, r.TotalSupply.Bytes()...)
	buffer = append(buffer, r.Artist.Bytes()...)
	return buffer
}

// Unpack - record from its stored byte representation
//
// the artwork cid is the storage key, so it is supplied separately
func Unpack(artwork cid.CID, buffer []byte) (*Record, error) {
	if len(buffer) < minimumPackLength {
		return nil, fault.ErrCorruptTokenRecord
	}

	cost, err := balance.FromBytes(buffer[costStart:costFinish])
	if nil != err {
		return nil, fault.ErrCorruptTokenRecord
	}
	supply, err := balance.FromBytes(buffer[supplyStart:supplyFinish])
	if nil != err {
		return nil, fault.ErrCorruptTokenRecord
	}

	return &Record{
		Artist:       account.Identifier(buffer[artistStart:]),
		Artwork:      artwork,
		CostPerToken: cost,
		TotalSupply:  supply,
	}, nil
}
