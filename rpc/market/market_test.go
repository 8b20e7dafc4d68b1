// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"errors"
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
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/env/mocks"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/fixtures"
	"github.com/userevolution/furball-dapp/ledger"
	"github.com/userevolution/furball-dapp/marketplace"
	"github.com/userevolution/furball-dapp/registry"
	"github.com/userevolution/furball-dapp/rpc/market"
	"github.com/userevolution/furball-dapp/rpc/tokens"
	"github.com/userevolution/furball-dapp/storage"
)

const (
	artwork   = cid.CID("QmPAwR5un1YPJEF6iB7KvErDmAhiXxwL5J5qjA3Z9ceKqv")
	serviceID = account.Identifier("furball.near")
	artistID  = account.Identifier("carol.near")
	buyerID   = account.Identifier("bob.near")
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

// payments forwarded through the transfer hook, keyed by recipient
type forwarded struct {
	sync.Mutex
	payments map[account.Identifier]balance.Amount
}

func (f *forwarded) record(to account.Identifier, amount balance.Amount) error {
	f.Lock()
	defer f.Unlock()
	f.payments[to] = amount
	return nil
}

// start the stack and register one artwork owned by carol
func setup(t *testing.T) (*market.Market, *forwarded) {
	t.Helper()

	err := storage.Initialise(filepath.Join(t.TempDir(), "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if err := registry.Initialise(); nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
	if err := marketplace.Initialise(); nil != err {
		t.Fatalf("marketplace initialise error: %s", err)
	}
	t.Cleanup(func() {
		_ = marketplace.Finalise()
		_ = registry.Finalise()
		_ = storage.Finalise()
	})

	creator := mocks.NewMockEnvironment(gomock.NewController(t))
	creator.EXPECT().Caller().Return(artistID).AnyTimes()
	if _, err := registry.CreateToken(creator, artwork, "original-1"); nil != err {
		t.Fatalf("create token error: %s", err)
	}

	f := &forwarded{payments: map[account.Identifier]balance.Amount{}}
	hooks := env.Hooks{
		Service:  serviceID,
		Transfer: f.record,
	}
	return market.New(logger.New("test"), hooks, false), f
}

func TestPutOnSale(t *testing.T) {
	mkt, _ := setup(t)

	var reply market.PutOnSaleReply
	err := mkt.PutOnSale(&market.PutOnSaleArguments{
		Caller:  artistID,
		Artwork: artwork,
		Amount:  balance.New(1_000_000),
	}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "1000000", reply.OnSale.String(), "wrong amount on sale")

	// listing again accumulates
	err = mkt.PutOnSale(&market.PutOnSaleArguments{
		Caller:  artistID,
		Artwork: artwork,
		Amount:  balance.New(500),
	}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "1000500", reply.OnSale.String(), "listings must accumulate")

	var onSale market.AmountOnSaleReply
	err = mkt.AmountOnSale(&market.AmountOnSaleArguments{
		Artwork: artwork,
		Seller:  artistID,
	}, &onSale)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "1000500", onSale.OnSale.String(), "wrong amount on sale")
}

func TestBuy(t *testing.T) {
	mkt, f := setup(t)

	var listed market.PutOnSaleReply
	err := mkt.PutOnSale(&market.PutOnSaleArguments{
		Caller:  artistID,
		Artwork: artwork,
		Amount:  balance.New(1_000_000),
	}, &listed)
	assert.Nil(t, err, "unexpected error")

	// 1000 tokens at the default cost of 1000 each
	var reply market.BuyReply
	err = mkt.Buy(&market.BuyArguments{
		Caller:  buyerID,
		Payment: balance.New(1_000_000),
		Artwork: artwork,
		Amount:  balance.New(1_000),
		Seller:  artistID,
	}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "1000", reply.Balance.String(), "wrong buyer balance")

	// the payment went to the seller
	assert.Equal(t, "1000000", f.payments[artistID].String(), "wrong forwarded payment")

	var onSale market.AmountOnSaleReply
	err = mkt.AmountOnSale(&market.AmountOnSaleArguments{
		Artwork: artwork,
		Seller:  artistID,
	}, &onSale)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "999000", onSale.OnSale.String(), "wrong remaining listing")
}

func TestBuyPaymentMismatch(t *testing.T) {
	mkt, f := setup(t)

	var listed market.PutOnSaleReply
	err := mkt.PutOnSale(&market.PutOnSaleArguments{
		Caller:  artistID,
		Artwork: artwork,
		Amount:  balance.New(1_000_000),
	}, &listed)
	assert.Nil(t, err, "unexpected error")

	var reply market.BuyReply
	err = mkt.Buy(&market.BuyArguments{
		Caller:  buyerID,
		Payment: balance.New(999_999),
		Artwork: artwork,
		Amount:  balance.New(1_000),
		Seller:  artistID,
	}, &reply)
	assert.Equal(t, fault.ErrPaymentMismatch, err, "wrong error")
	assert.Equal(t, 0, len(f.payments), "no payment must be forwarded")
	assert.True(t, ledger.Balance(artwork, buyerID).IsZero(), "balance must be unchanged")
}

func TestBuyPaymentForwardFailure(t *testing.T) {
	setup(t)

	hooks := env.Hooks{
		Service: serviceID,
		Transfer: func(to account.Identifier, amount balance.Amount) error {
			return errors.New("host failure")
		},
	}
	mkt := market.New(logger.New("test"), hooks, false)

	var listed market.PutOnSaleReply
	err := mkt.PutOnSale(&market.PutOnSaleArguments{
		Caller:  artistID,
		Artwork: artwork,
		Amount:  balance.New(1_000_000),
	}, &listed)
	assert.Nil(t, err, "unexpected error")

	var reply market.BuyReply
	err = mkt.Buy(&market.BuyArguments{
		Caller:  buyerID,
		Payment: balance.New(1_000_000),
		Artwork: artwork,
		Amount:  balance.New(1_000),
		Seller:  artistID,
	}, &reply)
	assert.Equal(t, fault.ErrPaymentTransferFailed, err, "wrong error")

	// the staged ledger mutation was discarded
	assert.Equal(t, "1000000000", ledger.Balance(artwork, artistID).String(), "balance must be unchanged")
	assert.True(t, ledger.Balance(artwork, buyerID).IsZero(), "balance must be unchanged")
}

func TestChangeCost(t *testing.T) {
	mkt, _ := setup(t)

	var cost market.CostReply
	err := mkt.Cost(&market.CostArguments{Artwork: artwork}, &cost)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "1000", cost.CostPerToken.String(), "wrong default cost")

	var change market.ChangeCostReply
	err = mkt.ChangeCost(&market.ChangeCostArguments{
		Caller:       artistID,
		Artwork:      artwork,
		CostPerToken: balance.New(100),
	}, &change)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "100", change.CostPerToken.String(), "wrong cost")

	err = mkt.Cost(&market.CostArguments{Artwork: artwork}, &cost)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "100", cost.CostPerToken.String(), "wrong cost")
}

func TestChangeCostUnauthorized(t *testing.T) {
	mkt, _ := setup(t)

	var change market.ChangeCostReply
	err := mkt.ChangeCost(&market.ChangeCostArguments{
		Caller:       buyerID,
		Artwork:      artwork,
		CostPerToken: balance.New(5),
	}, &change)
	assert.Equal(t, fault.ErrNotArtistOfRecord, err, "wrong error")
}

func TestSellers(t *testing.T) {
	mkt, _ := setup(t)

	var listed market.PutOnSaleReply
	err := mkt.PutOnSale(&market.PutOnSaleArguments{
		Caller:  artistID,
		Artwork: artwork,
		Amount:  balance.New(2_000),
	}, &listed)
	assert.Nil(t, err, "unexpected error")

	var reply market.SellersReply
	err = mkt.Sellers(&market.SellersArguments{Artwork: artwork}, &reply)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, 1, len(reply.Offers), "wrong seller count")
	assert.Equal(t, artistID, reply.Offers[0].Seller, "wrong seller")
	assert.Equal(t, "2000", reply.Offers[0].Amount.String(), "wrong listed amount")
}

func TestReadOnlyMode(t *testing.T) {
	setup(t)

	mkt := market.New(logger.New("test"), env.Hooks{Service: serviceID}, true)

	var listed market.PutOnSaleReply
	err := mkt.PutOnSale(&market.PutOnSaleArguments{
		Caller:  artistID,
		Artwork: artwork,
		Amount:  balance.New(1),
	}, &listed)
	assert.Equal(t, fault.ErrNotAvailableInReadOnly, err, "wrong error")

	var bought market.BuyReply
	err = mkt.Buy(&market.BuyArguments{
		Caller:  buyerID,
		Payment: balance.New(1_000),
		Artwork: artwork,
		Amount:  balance.New(1),
		Seller:  artistID,
	}, &bought)
	assert.Equal(t, fault.ErrNotAvailableInReadOnly, err, "wrong error")
}

// purchases racing direct transfers out of the same account must not
// lose any debit
func TestConcurrentBuyAndTransfer(t *testing.T) {
	mkt, _ := setup(t)
	tok := tokens.New(logger.New("test"), false)

	var listed market.PutOnSaleReply
	err := mkt.PutOnSale(&market.PutOnSaleArguments{
		Caller:  artistID,
		Artwork: artwork,
		Amount:  balance.New(600),
	}, &listed)
	assert.Nil(t, err, "unexpected error")

	const rounds = 4
	receiverID := account.Identifier("dave.near")

	var wg sync.WaitGroup
	for i := 0; i < rounds; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var reply market.BuyReply
			err := mkt.Buy(&market.BuyArguments{
				Caller:  buyerID,
				Payment: balance.New(100_000), // 100 tokens at cost 1000
				Artwork: artwork,
				Amount:  balance.New(100),
				Seller:  artistID,
			}, &reply)
			assert.Nil(t, err, "unexpected error")
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			var reply tokens.TransferReply
			err := tok.Transfer(&tokens.TransferArguments{
				Caller:   artistID,
				Artwork:  artwork,
				Receiver: receiverID,
				Amount:   balance.New(100),
			}, &reply)
			assert.Nil(t, err, "unexpected error")
		}()
	}
	wg.Wait()

	assert.Equal(t, "999999200", ledger.Balance(artwork, artistID).String(), "wrong seller balance")
	assert.Equal(t, "400", ledger.Balance(artwork, buyerID).String(), "wrong buyer balance")
	assert.Equal(t, "400", ledger.Balance(artwork, receiverID).String(), "wrong receiver balance")
	assert.Equal(t, "200", ledger.Allowance(artwork, artistID, serviceID).String(), "wrong remaining listing")
}
