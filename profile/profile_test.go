// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/env/mocks"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/fixtures"
	"github.com/userevolution/furball-dapp/profile"
	"github.com/userevolution/furball-dapp/storage"
)

const artist = account.Identifier("carol.near")

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
	if err := profile.Initialise(); nil != err {
		t.Fatalf("profile initialise error: %s", err)
	}
	t.Cleanup(func() {
		_ = profile.Finalise()
		_ = storage.Finalise()
	})
}

// cost of n bytes of storage growth
func storageCost(n uint64) balance.Amount {
	cost, err := balance.New(n).Mul(profile.StoragePricePerByte)
	if nil != err {
		panic("storage cost overflow")
	}
	return cost
}

// environment whose storage metering grows by the given number of
// bytes across the upsert
func growingEnv(t *testing.T, attached balance.Amount, growth uint64) *mocks.MockEnvironment {
	t.Helper()
	m := mocks.NewMockEnvironment(gomock.NewController(t))
	m.EXPECT().Caller().Return(artist).AnyTimes()
	m.EXPECT().AttachedPayment().Return(attached).AnyTimes()
	m.EXPECT().StorageUsed().Return(uint64(1_000)).Times(1)
	m.EXPECT().StorageUsed().Return(uint64(1_000 + growth)).Times(1)
	return m
}

func TestUpdateAndGet(t *testing.T) {
	setup(t)

	e := growingEnv(t, storageCost(64), 64)
	assert.Nil(t, profile.Update(e, "profile-cid-1"), "unexpected error")

	stored, err := profile.Get(artist)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "profile-cid-1", stored.String(), "wrong profile")
}

func TestGetUnset(t *testing.T) {
	setup(t)

	_, err := profile.Get("nobody.near")
	assert.Equal(t, fault.ErrProfileNotFound, err, "wrong error")
}

func TestUpdateLastWriteWins(t *testing.T) {
	setup(t)

	e := growingEnv(t, storageCost(64), 64)
	assert.Nil(t, profile.Update(e, "profile-cid-1"), "unexpected error")

	// second write replaces the first, same size so no growth
	e = growingEnv(t, balance.Zero, 0)
	assert.Nil(t, profile.Update(e, "profile-cid-2"), "unexpected error")

	stored, err := profile.Get(artist)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "profile-cid-2", stored.String(), "last write must win")
}

func TestUpdateRefundsSurplus(t *testing.T) {
	setup(t)

	attached, err := storageCost(64).Add(balance.New(12345))
	assert.Nil(t, err, "unexpected error")

	e := growingEnv(t, attached, 64)
	e.EXPECT().TransferPayment(artist, balance.New(12345)).Return(nil).Times(1)

	assert.Nil(t, profile.Update(e, "profile-cid-1"), "unexpected error")
}

func TestUpdateRefundsReleasedStorage(t *testing.T) {
	setup(t)

	e := growingEnv(t, storageCost(64), 64)
	assert.Nil(t, profile.Update(e, "a-long-profile-cid"), "unexpected error")

	// shrink: refund is the released storage cost
	m := mocks.NewMockEnvironment(gomock.NewController(t))
	m.EXPECT().Caller().Return(artist).AnyTimes()
	m.EXPECT().AttachedPayment().Return(balance.Zero).AnyTimes()
	m.EXPECT().StorageUsed().Return(uint64(1_064)).Times(1)
	m.EXPECT().StorageUsed().Return(uint64(1_050)).Times(1)
	m.EXPECT().TransferPayment(artist, storageCost(14)).Return(nil).Times(1)

	assert.Nil(t, profile.Update(m, "short"), "unexpected error")
}

func TestUpdateInsufficientPayment(t *testing.T) {
	setup(t)

	e := growingEnv(t, storageCost(64), 64)
	assert.Nil(t, profile.Update(e, "profile-cid-1"), "unexpected error")

	// pay for one byte less than the growth
	short, err := storageCost(32).Sub(balance.New(1))
	assert.Nil(t, err, "unexpected error")

	e = growingEnv(t, short, 32)
	err = profile.Update(e, "a-profile-cid-that-needs-more-space")
	assert.Equal(t, fault.ErrInsufficientPayment, err, "wrong error")

	// the previous profile must be restored
	stored, err := profile.Get(artist)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "profile-cid-1", stored.String(), "profile must be unchanged")
}
