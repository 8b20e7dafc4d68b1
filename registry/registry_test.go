// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/fixtures"
	"github.com/userevolution/furball-dapp/ledger"
	"github.com/userevolution/furball-dapp/registry"
	"github.com/userevolution/furball-dapp/storage"
	"github.com/userevolution/furball-dapp/token"
)

const (
	art1 = cid.CID("QmPAwR5un1YPJEF6iB7KvErDmAhiXxwL5J5qjA3Z9ceKqv")
	art2 = cid.CID("QqPAwR5un1YPJEF6iB7KvErDmAhiXxwL5J5qjA3Z9ceKqv")
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func setup(t *testing.T) {
	t.Helper()
	err := storage.Initialise(filepath.Join(t.TempDir(), "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if err := registry.Initialise(); nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
	t.Cleanup(func() {
		_ = registry.Finalise()
		_ = storage.Finalise()
	})
}

func callAs(caller account.Identifier) env.Environment {
	return &env.Call{
		CallerID:  caller,
		ServiceID: "furball.near",
	}
}

func TestDoubleInitialise(t *testing.T) {
	setup(t)
	assert.Equal(t, fault.ErrAlreadyInitialised, registry.Initialise(), "wrong error")
}

func TestCreateToken(t *testing.T) {
	setup(t)

	record, err := registry.CreateToken(callAs("carol.near"), art1, "original-1")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, account.Identifier("carol.near"), record.Artist, "wrong artist")
	assert.True(t, token.InitialSupply.Equal(record.TotalSupply), "wrong supply")
	assert.True(t, token.DefaultCostPerToken.Equal(record.CostPerToken), "wrong cost")

	// full supply minted to the creator
	assert.True(t, token.InitialSupply.Equal(ledger.Balance(art1, "carol.near")), "wrong creator balance")

	// original cid now resolves to the artwork
	derived, ok := registry.ArtworkOfOriginal("original-1")
	assert.True(t, ok, "expected mapping")
	assert.Equal(t, art1, derived, "wrong artwork")

	// stored record reads back identically
	stored, err := registry.Get(art1)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, record.Artist, stored.Artist, "wrong stored artist")
}

func TestCreateTokenDuplicate(t *testing.T) {
	setup(t)

	_, err := registry.CreateToken(callAs("carol.near"), art1, "original-1")
	assert.Nil(t, err, "unexpected error")

	_, err = registry.CreateToken(callAs("bob.near"), art1, "original-2")
	assert.Equal(t, fault.ErrArtworkAlreadyRegistered, err, "wrong error")

	// the original token must be unchanged
	record, err := registry.Get(art1)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, account.Identifier("carol.near"), record.Artist, "artist must be unchanged")
}

func TestCreateTokenCidTooLong(t *testing.T) {
	setup(t)

	tooLong := cid.CID(strings.Repeat("Q", 65))
	_, err := registry.CreateToken(callAs("carol.near"), tooLong, "original-1")
	assert.Equal(t, fault.ErrArtworkCidTooLong, err, "wrong error")

	// nothing was created
	_, err = registry.Get(tooLong)
	assert.Equal(t, fault.ErrArtworkNotFound, err, "wrong error")
	artworks, err := registry.AllArtworks()
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, 0, len(artworks), "expected empty catalog")
}

func TestCreateTokenInvalidArtist(t *testing.T) {
	setup(t)

	_, err := registry.CreateToken(callAs("Not An Account"), art1, "original-1")
	assert.Equal(t, fault.ErrInvalidAccountIdentifier, err, "wrong error")
}

func TestGetUnknown(t *testing.T) {
	setup(t)

	_, err := registry.Get("never-registered")
	assert.Equal(t, fault.ErrArtworkNotFound, err, "wrong error")

	_, ok := registry.ArtworkOfOriginal("never-registered")
	assert.False(t, ok, "unexpected mapping")
}

func TestAllArtworksOrder(t *testing.T) {
	setup(t)

	// register in an order that differs from the lexical one
	_, err := registry.CreateToken(callAs("carol.near"), art2, "original-2")
	assert.Nil(t, err, "unexpected error")
	_, err = registry.CreateToken(callAs("carol.near"), art1, "original-1")
	assert.Nil(t, err, "unexpected error")
	_, err = registry.CreateToken(callAs("bob.near"), "zz-late-artwork", "original-3")
	assert.Nil(t, err, "unexpected error")

	artworks, err := registry.AllArtworks()
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, []cid.CID{art2, art1, "zz-late-artwork"}, artworks, "wrong registration order")
}
