// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package artwork

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/registry"
	"github.com/userevolution/furball-dapp/rpc/ratelimit"
)

// Artwork
// -------

const (
	rateLimitArtwork = 200
	rateBurstArtwork = 100

	// MaximumListCount - maximum artworks returned by one List call
	MaximumListCount = 100
)

// Artwork - type for RPC
type Artwork struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Hooks    env.Hooks
	ReadOnly bool
}

func New(log *logger.L, hooks env.Hooks, readOnly bool) *Artwork {
	return &Artwork{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitArtwork, rateBurstArtwork),
		Hooks:    hooks,
		ReadOnly: readOnly,
	}
}

// Register a tokenised artwork
// ----------------------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Caller   account.Identifier `json:"caller"`
	Artwork  cid.CID            `json:"artwork"`
	Original cid.CID            `json:"original"`
}

// CreateReply - results from registering an artwork
type CreateReply struct {
	Artwork      cid.CID            `json:"artwork"`
	Artist       account.Identifier `json:"artist"`
	TotalSupply  balance.Amount     `json:"totalSupply"`
	CostPerToken balance.Amount     `json:"costPerToken"`
}

// Create - register an artwork and mint its token supply
func (artwork *Artwork) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(artwork.Limiter); nil != err {
		return err
	}
	if artwork.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := artwork.Log

	log.Infof("Artwork.Create: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	e := artwork.Hooks.NewCall(arguments.Caller, balance.Zero)

	record, err := registry.CreateToken(e, arguments.Artwork, arguments.Original)
	if nil != err {
		return err
	}

	reply.Artwork = record.Artwork
	reply.Artist = record.Artist
	reply.TotalSupply = record.TotalSupply
	reply.CostPerToken = record.CostPerToken

	return nil
}

// Get one artwork record
// ----------------------

// GetArguments - arguments for RPC
type GetArguments struct {
	Artwork cid.CID `json:"artwork"`
}

// GetReply - the stored token record
type GetReply struct {
	Artwork      cid.CID            `json:"artwork"`
	Artist       account.Identifier `json:"artist"`
	TotalSupply  balance.Amount     `json:"totalSupply"`
	CostPerToken balance.Amount     `json:"costPerToken"`
}

// Get - fetch the token record of a registered artwork
func (artwork *Artwork) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(artwork.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	record, err := registry.Get(arguments.Artwork)
	if nil != err {
		return err
	}

	reply.Artwork = record.Artwork
	reply.Artist = record.Artist
	reply.TotalSupply = record.TotalSupply
	reply.CostPerToken = record.CostPerToken

	return nil
}

// Look up the tokenised copy of an original
// -----------------------------------------

// OfOriginalArguments - arguments for RPC
type OfOriginalArguments struct {
	Original cid.CID `json:"original"`
}

// OfOriginalReply - tokenised artwork for an original cid, if any
type OfOriginalReply struct {
	Artwork    cid.CID `json:"artwork"`
	Registered bool    `json:"registered"`
}

// OfOriginal - find the tokenised artwork derived from an original
func (artwork *Artwork) OfOriginal(arguments *OfOriginalArguments, reply *OfOriginalReply) error {

	if err := ratelimit.Limit(artwork.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	reply.Artwork, reply.Registered = registry.ArtworkOfOriginal(arguments.Original)

	return nil
}

// List registered artworks
// ------------------------

// ListArguments - arguments for RPC
type ListArguments struct {
	Count int `json:"count"`
}

// ListReply - artworks in registration order
type ListReply struct {
	Artworks []cid.CID `json:"artworks"`
}

// List - enumerate registered artworks in registration order
func (artwork *Artwork) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(artwork.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	artworks, err := registry.AllArtworks()
	if nil != err {
		return err
	}

	if len(artworks) > arguments.Count {
		artworks = artworks[:arguments.Count]
	}
	reply.Artworks = artworks

	return nil
}
