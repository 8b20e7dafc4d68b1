// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package artist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/env/mocks"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/fixtures"
	"github.com/userevolution/furball-dapp/profile"
	"github.com/userevolution/furball-dapp/registry"
	"github.com/userevolution/furball-dapp/rpc/artist"
	"github.com/userevolution/furball-dapp/storage"
)

const (
	artworkOne = cid.CID("QmPAwR5un1YPJEF6iB7KvErDmAhiXxwL5J5qjA3Z9ceKqv")
	artworkTwo = cid.CID("QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
	profileCid = cid.CID("QmT78zSuBmuS4z925WZfrqQ1qHaJ56DQaTfyMUF7F8ff5o")
	artistID   = account.Identifier("carol.near")
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

// start the stack and register two artworks by carol; payments
// forwarded back to callers are collected into refunds
func setup(t *testing.T, refunds map[account.Identifier]balance.Amount) *artist.Artist {
	t.Helper()

	err := storage.Initialise(filepath.Join(t.TempDir(), "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if err := registry.Initialise(); nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
	if err := profile.Initialise(); nil != err {
		t.Fatalf("profile initialise error: %s", err)
	}
	t.Cleanup(func() {
		_ = profile.Finalise()
		_ = registry.Finalise()
		_ = storage.Finalise()
	})

	creator := mocks.NewMockEnvironment(gomock.NewController(t))
	creator.EXPECT().Caller().Return(artistID).AnyTimes()
	if _, err := registry.CreateToken(creator, artworkOne, "original-1"); nil != err {
		t.Fatalf("create token error: %s", err)
	}
	if _, err := registry.CreateToken(creator, artworkTwo, "original-2"); nil != err {
		t.Fatalf("create token error: %s", err)
	}

	hooks := env.Hooks{
		Service: "furball.near",
		Transfer: func(to account.Identifier, amount balance.Amount) error {
			refunds[to] = amount
			return nil
		},
		Metering: storage.Pool.Profiles.DataBytes,
	}
	return artist.New(logger.New("test"), hooks, false)
}

func TestUpdateProfile(t *testing.T) {
	refunds := map[account.Identifier]balance.Amount{}
	art := setup(t, refunds)

	// enough for one kilobyte of storage growth
	payment, err := balance.New(1_000).Mul(profile.StoragePricePerByte)
	assert.Nil(t, err, "unexpected error")

	before := storage.Pool.Profiles.DataBytes()

	var reply artist.UpdateProfileReply
	err = art.UpdateProfile(&artist.UpdateProfileArguments{
		Caller:  artistID,
		Payment: payment,
		Profile: profileCid,
	}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, profileCid, reply.Profile, "wrong profile")

	var stored artist.ProfileReply
	err = art.Profile(&artist.ProfileArguments{Artist: artistID}, &stored)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, profileCid, stored.Profile, "wrong stored profile")

	// the surplus over the metered growth came back to the caller
	growth, err := balance.New(storage.Pool.Profiles.DataBytes() - before).Mul(profile.StoragePricePerByte)
	assert.Nil(t, err, "unexpected error")
	expected, err := payment.Sub(growth)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, expected.String(), refunds[artistID].String(), "wrong refund")
}

// replacing a profile with one of the same size needs no payment
func TestUpdateProfileSameSize(t *testing.T) {
	refunds := map[account.Identifier]balance.Amount{}
	art := setup(t, refunds)

	payment, err := balance.New(1_000).Mul(profile.StoragePricePerByte)
	assert.Nil(t, err, "unexpected error")

	var reply artist.UpdateProfileReply
	err = art.UpdateProfile(&artist.UpdateProfileArguments{
		Caller:  artistID,
		Payment: payment,
		Profile: profileCid,
	}, &reply)
	assert.Nil(t, err, "unexpected error")

	replacement := cid.CID("QmbWqxBEKC3P8tqsKc98xmWNzrzDtRLMiMPL8wBuTGsMnR")
	err = art.UpdateProfile(&artist.UpdateProfileArguments{
		Caller:  artistID,
		Payment: balance.Zero,
		Profile: replacement,
	}, &reply)
	assert.Nil(t, err, "unexpected error")

	var stored artist.ProfileReply
	err = art.Profile(&artist.ProfileArguments{Artist: artistID}, &stored)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, replacement, stored.Profile, "wrong stored profile")
}

func TestUpdateProfileInsufficientPayment(t *testing.T) {
	refunds := map[account.Identifier]balance.Amount{}
	art := setup(t, refunds)

	var reply artist.UpdateProfileReply
	err := art.UpdateProfile(&artist.UpdateProfileArguments{
		Caller:  artistID,
		Payment: balance.Zero,
		Profile: profileCid,
	}, &reply)
	assert.Equal(t, fault.ErrInsufficientPayment, err, "wrong error")

	// the write was rolled back
	var stored artist.ProfileReply
	err = art.Profile(&artist.ProfileArguments{Artist: artistID}, &stored)
	assert.Equal(t, fault.ErrProfileNotFound, err, "wrong error")
}

func TestProfileNotFound(t *testing.T) {
	refunds := map[account.Identifier]balance.Amount{}
	art := setup(t, refunds)

	var stored artist.ProfileReply
	err := art.Profile(&artist.ProfileArguments{Artist: "nobody.near"}, &stored)
	assert.Equal(t, fault.ErrProfileNotFound, err, "wrong error")
}

func TestDesigns(t *testing.T) {
	refunds := map[account.Identifier]balance.Amount{}
	art := setup(t, refunds)

	var reply artist.DesignsReply
	err := art.Designs(&artist.DesignsArguments{Artist: artistID}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, []cid.CID{artworkOne, artworkTwo}, reply.Artworks, "wrong designs")

	err = art.Designs(&artist.DesignsArguments{Artist: "nobody.near"}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, 0, len(reply.Artworks), "must have no designs")
}

func TestDesignTokens(t *testing.T) {
	refunds := map[account.Identifier]balance.Amount{}
	art := setup(t, refunds)

	var reply artist.DesignTokensReply
	err := art.DesignTokens(&artist.DesignTokensArguments{Owner: artistID}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, 2, len(reply.Holdings), "wrong holding count")
	for _, holding := range reply.Holdings {
		assert.Equal(t, "1000000000", holding.Balance.String(), "wrong held balance")
	}
}

func TestReadOnlyMode(t *testing.T) {
	refunds := map[account.Identifier]balance.Amount{}
	setup(t, refunds)

	art := artist.New(logger.New("test"), env.Hooks{Service: "furball.near"}, true)

	var reply artist.UpdateProfileReply
	err := art.UpdateProfile(&artist.UpdateProfileArguments{
		Caller:  artistID,
		Payment: balance.Zero,
		Profile: profileCid,
	}, &reply)
	assert.Equal(t, fault.ErrNotAvailableInReadOnly, err, "wrong error")
}
