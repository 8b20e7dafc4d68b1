// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package design - derived read-only queries
//
// Recomputed on every call by scanning the registry; nothing here is
// cached or mutated.
package design

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/ledger"
	"github.com/userevolution/furball-dapp/registry"
)

// Holding - one artwork a user holds tokens of
type Holding struct {
	Artwork cid.CID        `json:"artwork"`
	Balance balance.Amount `json:"balance"`
}

// Designs - artwork cids registered by an artist, in registration order
func Designs(artist account.Identifier) ([]cid.CID, error) {
	artworks, err := registry.AllArtworks()
	if nil != err {
		return nil, err
	}

	designs := []cid.CID{}
	for _, artwork := range artworks {
		record, err := registry.Get(artwork)
		if nil != err {
			return nil, err
		}
		if record.Artist == artist {
			designs = append(designs, artwork)
		}
	}
	return designs, nil
}

// DesignTokens - (artwork, balance) pairs for every token where the
// user has a ledger entry, including entries that are now zero
func DesignTokens(user account.Identifier) ([]Holding, error) {
	artworks, err := registry.AllArtworks()
	if nil != err {
		return nil, err
	}

	holdings := []Holding{}
	for _, artwork := range artworks {
		if !ledger.HasAccount(artwork, user) {
			continue
		}
		holdings = append(holdings, Holding{
			Artwork: artwork,
			Balance: ledger.Balance(artwork, user),
		})
	}
	return holdings, nil
}
