// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package artist

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/design"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/profile"
	"github.com/userevolution/furball-dapp/rpc/ratelimit"
)

// Artist
// ------

const (
	rateLimitArtist = 200
	rateBurstArtist = 100
)

// Artist - type for RPC
type Artist struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Hooks    env.Hooks
	ReadOnly bool
}

func New(log *logger.L, hooks env.Hooks, readOnly bool) *Artist {
	return &Artist{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitArtist, rateBurstArtist),
		Hooks:    hooks,
		ReadOnly: readOnly,
	}
}

// Profile upsert
// --------------

// UpdateProfileArguments - arguments for RPC
type UpdateProfileArguments struct {
	Caller  account.Identifier `json:"caller"`
	Payment balance.Amount     `json:"payment"`
	Profile cid.CID            `json:"profile"`
}

// UpdateProfileReply - stored profile after the update
type UpdateProfileReply struct {
	Profile cid.CID `json:"profile"`
}

// UpdateProfile - set the caller's profile cid
//
// the attached payment must cover the storage growth
func (artist *Artist) UpdateProfile(arguments *UpdateProfileArguments, reply *UpdateProfileReply) error {

	if err := ratelimit.Limit(artist.Limiter); nil != err {
		return err
	}
	if artist.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := artist.Log

	log.Infof("Artist.UpdateProfile: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	e := artist.Hooks.NewCall(arguments.Caller, arguments.Payment)

	if err := profile.Update(e, arguments.Profile); nil != err {
		return err
	}

	reply.Profile = arguments.Profile

	return nil
}

// Profile read
// ------------

// ProfileArguments - arguments for RPC
type ProfileArguments struct {
	Artist account.Identifier `json:"artist"`
}

// ProfileReply - profile cid of an artist
type ProfileReply struct {
	Profile cid.CID `json:"profile"`
}

// Profile - profile cid stored for an artist
func (artist *Artist) Profile(arguments *ProfileArguments, reply *ProfileReply) error {

	if err := ratelimit.Limit(artist.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	stored, err := profile.Get(arguments.Artist)
	if nil != err {
		return err
	}
	reply.Profile = stored

	return nil
}

// Derived queries
// ---------------

// DesignsArguments - arguments for RPC
type DesignsArguments struct {
	Artist account.Identifier `json:"artist"`
}

// DesignsReply - artworks registered by an artist
type DesignsReply struct {
	Artworks []cid.CID `json:"artworks"`
}

// Designs - artworks an artist has registered, in registration order
func (artist *Artist) Designs(arguments *DesignsArguments, reply *DesignsReply) error {

	if err := ratelimit.Limit(artist.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	designs, err := design.Designs(arguments.Artist)
	if nil != err {
		return err
	}
	reply.Artworks = designs

	return nil
}

// DesignTokensArguments - arguments for RPC
type DesignTokensArguments struct {
	Owner account.Identifier `json:"owner"`
}

// DesignTokensReply - every token the owner has a ledger entry for
type DesignTokensReply struct {
	Holdings []design.Holding `json:"holdings"`
}

// DesignTokens - holdings of an owner across all artworks
func (artist *Artist) DesignTokens(arguments *DesignTokensArguments, reply *DesignTokensReply) error {

	if err := ratelimit.Limit(artist.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	holdings, err := design.DesignTokens(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Holdings = holdings

	return nil
}
