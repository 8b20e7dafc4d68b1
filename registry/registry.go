// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the artwork catalog
//
// Maps artwork cids to token records, enforcing uniqueness and the
// identifier length bound, and indexes original artifact cids to the
// artworks derived from them.  Registration creates the token and
// mints its entire supply to the registering artist in one atomic
// step.  Tokens are never deleted.
package registry

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/ledger"
	"github.com/userevolution/furball-dapp/storage"
	"github.com/userevolution/furball-dapp/token"
)

// size of one batch during full catalog scans
const fetchBatchSize = 100

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the registry
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// CreateToken - register an artwork and mint its token supply
//
// the caller becomes the artist of record; the original cid is
// indexed to the new artwork; registration of an already known
// artwork cid is rejected, never overwritten
func CreateToken(e env.Environment, artwork cid.CID, original cid.CID) (*token.Record, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if err := artwork.ValidateArtwork(); nil != err {
		return nil, err
	}

	artist := e.Caller()
	if err := artist.Validate(); nil != err {
		return nil, err
	}

	if storage.Pool.Arts.Has(artwork.Bytes()) {
		return nil, fault.ErrArtworkAlreadyRegistered
	}

	record := &token.Record{
		Artist:       artist,
		Artwork:      artwork,
		CostPerToken: token.DefaultCostPerToken,
		TotalSupply:  token.InitialSupply,
	}

	// next insertion index for ordered enumeration
	index, _ := storage.Pool.ArtCount.GetN([]byte{})
	indexKey := make([]byte, 8)
	binary.BigEndian.PutUint64(indexKey, index)
	nextIndex := make([]byte, 8)
	binary.BigEndian.PutUint64(nextIndex, index+1)

	batch := storage.NewBatch()
	storage.Pool.Arts.PutBatch(batch, artwork.Bytes(), record.Pack())
	storage.Pool.ArtList.PutBatch(batch, indexKey, artwork.Bytes())
	storage.Pool.ArtCount.PutBatch(batch, []byte{}, nextIndex)
	storage.Pool.Originals.PutBatch(batch, original.Bytes(), artwork.Bytes())
	ledger.Mint(batch, artwork, artist, record.TotalSupply)

	if err := batch.Commit(); nil != err {
		return nil, err
	}

	globalData.log.Infof("registered artwork: %s  artist: %s", artwork, artist)
	return record, nil
}

// Get - fetch the token record for an artwork cid
func Get(artwork cid.CID) (*token.Record, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	packed := storage.Pool.Arts.Get(artwork.Bytes())
	if nil == packed {
		return nil, fault.ErrArtworkNotFound
	}
	return token.Unpack(artwork, packed)
}

// Replace - store an updated token record
//
// the write is staged into the caller's batch; only the cost per
// token is ever legitimately updated
func Replace(batch *storage.Batch, record *token.Record) {
	storage.Pool.Arts.PutBatch(batch, record.Artwork.Bytes(), record.Pack())
}

// ArtworkOfOriginal - artwork cid derived from an original cid
func ArtworkOfOriginal(original cid.CID) (cid.CID, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	value := storage.Pool.Originals.Get(original.Bytes())
	if nil == value {
		return "", false
	}
	return cid.CID(value), true
}

// AllArtworks - every registered artwork cid in registration order
func AllArtworks() ([]cid.CID, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	artworks := []cid.CID{}
	cursor := storage.Pool.ArtList.NewFetchCursor()
	for {
		elements, err := cursor.Fetch(fetchBatchSize)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			return artworks, nil
		}
		for _, e := range elements {
			artworks = append(artworks, cid.CID(e.Value))
		}
	}
}
