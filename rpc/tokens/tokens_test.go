// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/env/mocks"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/fixtures"
	"github.com/userevolution/furball-dapp/ledger"
	"github.com/userevolution/furball-dapp/registry"
	"github.com/userevolution/furball-dapp/rpc/tokens"
	"github.com/userevolution/furball-dapp/storage"
)

const (
	artwork  = cid.CID("QmPAwR5un1YPJEF6iB7KvErDmAhiXxwL5J5qjA3Z9ceKqv")
	artistID = account.Identifier("carol.near")
	buyerID  = account.Identifier("bob.near")
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func setup(t *testing.T) *tokens.Token {
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

	creator := mocks.NewMockEnvironment(gomock.NewController(t))
	creator.EXPECT().Caller().Return(artistID).AnyTimes()
	if _, err := registry.CreateToken(creator, artwork, "original-1"); nil != err {
		t.Fatalf("create token error: %s", err)
	}

	return tokens.New(logger.New("test"), false)
}

func TestTransfer(t *testing.T) {
	tok := setup(t)

	var reply tokens.TransferReply
	err := tok.Transfer(&tokens.TransferArguments{
		Caller:   artistID,
		Artwork:  artwork,
		Receiver: buyerID,
		Amount:   balance.New(5_000),
	}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "999995000", reply.Remaining.String(), "wrong remaining balance")

	var bal tokens.BalanceReply
	err = tok.Balance(&tokens.BalanceArguments{Artwork: artwork, Owner: buyerID}, &bal)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "5000", bal.Balance.String(), "wrong receiver balance")
}

func TestTransferUnknownArtwork(t *testing.T) {
	tok := setup(t)

	var reply tokens.TransferReply
	err := tok.Transfer(&tokens.TransferArguments{
		Caller:   artistID,
		Artwork:  "never-registered",
		Receiver: buyerID,
		Amount:   balance.New(1),
	}, &reply)
	assert.Equal(t, fault.ErrArtworkNotFound, err, "wrong error")
}

func TestTransferInsufficientBalance(t *testing.T) {
	tok := setup(t)

	var reply tokens.TransferReply
	err := tok.Transfer(&tokens.TransferArguments{
		Caller:   buyerID,
		Artwork:  artwork,
		Receiver: artistID,
		Amount:   balance.New(1),
	}, &reply)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "wrong error")
}

func TestAllowanceRoundTrip(t *testing.T) {
	tok := setup(t)

	var change tokens.AllowanceChangeReply
	err := tok.IncreaseAllowance(&tokens.AllowanceChangeArguments{
		Caller:  artistID,
		Artwork: artwork,
		Spender: buyerID,
		Amount:  balance.New(400),
	}, &change)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "400", change.Allowance.String(), "wrong allowance")

	// spend within the allowance
	var spent tokens.TransferFromReply
	err = tok.TransferFrom(&tokens.TransferFromArguments{
		Caller:   buyerID,
		Artwork:  artwork,
		Owner:    artistID,
		Receiver: buyerID,
		Amount:   balance.New(150),
	}, &spent)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "250", spent.RemainingAllowance.String(), "wrong remaining allowance")

	// decrease below zero floors at zero
	err = tok.DecreaseAllowance(&tokens.AllowanceChangeArguments{
		Caller:  artistID,
		Artwork: artwork,
		Spender: buyerID,
		Amount:  balance.New(9_999),
	}, &change)
	assert.Nil(t, err, "unexpected error")
	assert.True(t, change.Allowance.IsZero(), "allowance must floor at zero")
}

func TestReadOnlyMode(t *testing.T) {
	setup(t)

	tok := tokens.New(logger.New("test"), true)

	var reply tokens.TransferReply
	err := tok.Transfer(&tokens.TransferArguments{
		Caller:   artistID,
		Artwork:  artwork,
		Receiver: buyerID,
		Amount:   balance.New(1),
	}, &reply)
	assert.Equal(t, fault.ErrNotAvailableInReadOnly, err, "wrong error")
}

// concurrent transfers out of one account must each debit the sender,
// never overwrite one another's debit
func TestConcurrentTransfers(t *testing.T) {
	tok := setup(t)

	const transfers = 10
	const amount = 700

	receivers := make([]account.Identifier, transfers)
	for i := 0; i < transfers; i += 1 {
		receivers[i] = account.Identifier(fmt.Sprintf("receiver-%d.near", i))
	}

	var wg sync.WaitGroup
	for _, receiver := range receivers {
		wg.Add(1)
		go func(receiver account.Identifier) {
			defer wg.Done()
			var reply tokens.TransferReply
			err := tok.Transfer(&tokens.TransferArguments{
				Caller:   artistID,
				Artwork:  artwork,
				Receiver: receiver,
				Amount:   balance.New(amount),
			}, &reply)
			assert.Nil(t, err, "unexpected error")
		}(receiver)
	}
	wg.Wait()

	assert.Equal(t, "999993000", ledger.Balance(artwork, artistID).String(), "wrong sender balance")

	// every token is still accounted for
	total := ledger.Balance(artwork, artistID)
	for _, receiver := range receivers {
		held := ledger.Balance(artwork, receiver)
		assert.Equal(t, "700", held.String(), "wrong receiver balance")
		sum, err := total.Add(held)
		assert.Nil(t, err, "unexpected error")
		total = sum
	}
	assert.Equal(t, "1000000000", total.String(), "supply must be conserved")
}

func TestDecimals(t *testing.T) {
	tok := setup(t)

	var reply tokens.DecimalsReply
	assert.Nil(t, tok.Decimals(nil, &reply), "unexpected error")
	assert.Equal(t, uint64(36), reply.Decimals, "wrong decimals")
}
