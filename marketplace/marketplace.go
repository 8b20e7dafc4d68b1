// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marketplace - escrow based token sales
//
// A listing is an allowance granted by the seller to the service's
// own identity; a purchase consumes that allowance through
// transfer-from, so the ledger itself enforces that the owner agreed
// to the sale.  Payment is checked against the artist-set price
// before any token moves, and the received payment is forwarded to
// the owner only when the transfer succeeded.
package marketplace

import (
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/ledger"
	"github.com/userevolution/furball-dapp/registry"
	"github.com/userevolution/furball-dapp/storage"
)

// identifiers never contain NUL so it is safe as a key separator
const keySeparator = 0x00

// size of one batch during seller enumeration
const fetchBatchSize = 100

// Offer - one seller's outstanding listing
type Offer struct {
	Seller account.Identifier `json:"seller"`
	Amount balance.Amount     `json:"amount"`
}

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the marketplace
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("marketplace")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the marketplace
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

// key: art cid ++ 00 ++ seller
func sellerKey(art cid.CID, seller account.Identifier) []byte {
	key := make([]byte, 0, len(art)+len(seller)+1)
	key = append(key, art.Bytes()...)
	key = append(key, keySeparator)
	return append(key, seller.Bytes()...)
}

// PutOnSale - list tokens by granting the service an allowance
//
// the caller becomes (or is re-confirmed as) a seller; repeated
// listings accumulate allowance
func PutOnSale(e env.Environment, art cid.CID, amount balance.Amount) error {
	globalData.Lock()
	defer globalData.Unlock()

	if _, err := registry.Get(art); nil != err {
		return err
	}

	seller := e.Caller()

	ledger.Lock()
	defer ledger.Unlock()

	batch := storage.NewBatch()
	err := ledger.IncreaseAllowance(batch, art, seller, e.Executor(), amount)
	if nil != err {
		return err
	}
	storage.Pool.Sellers.PutBatch(batch, sellerKey(art, seller), []byte{})

	if err := batch.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("listing: %s  seller: %s  amount: %s", art, seller, amount)
	return nil
}

// AmountOnSale - tokens a seller still has listed
//
// this is exactly the allowance the seller has granted the service
func AmountOnSale(e env.Environment, art cid.CID, seller account.Identifier) (balance.Amount, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if _, err := registry.Get(art); nil != err {
		return balance.Zero, err
	}
	return ledger.Allowance(art, seller, e.Executor()), nil
}

// ChangeCost - set the price per token, artist only
func ChangeCost(e env.Environment, art cid.CID, costPerToken balance.Amount) error {
	globalData.Lock()
	defer globalData.Unlock()

	record, err := registry.Get(art)
	if nil != err {
		return err
	}

	if record.Artist != e.Caller() {
		return fault.ErrNotArtistOfRecord
	}

	record.CostPerToken = costPerToken

	batch := storage.NewBatch()
	registry.Replace(batch, record)
	if err := batch.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("cost change: %s  cost: %s", art, costPerToken)
	return nil
}

// CostPerToken - current price per token
func CostPerToken(art cid.CID) (balance.Amount, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	record, err := registry.Get(art)
	if nil != err {
		return balance.Zero, err
	}
	return record.CostPerToken, nil
}

// Buy - purchase listed tokens from an owner
//
// the attached payment must exactly equal amount × cost per token;
// the tokens move by consuming the owner's allowance to the service;
// the payment is forwarded to the owner, and the ledger change only
// becomes visible when that forwarding succeeded
func Buy(e env.Environment, art cid.CID, amount balance.Amount, tokenOwner account.Identifier) error {
	globalData.Lock()
	defer globalData.Unlock()

	record, err := registry.Get(art)
	if nil != err {
		return err
	}

	cost, err := amount.Mul(record.CostPerToken)
	if nil != err {
		return err
	}

	if !e.AttachedPayment().Equal(cost) {
		return fault.ErrPaymentMismatch
	}

	buyer := e.Caller()

	ledger.Lock()
	defer ledger.Unlock()

	batch := storage.NewBatch()
	err = ledger.TransferFrom(batch, art, tokenOwner, e.Executor(), buyer, amount)
	if nil != err {
		return err
	}

	// forward the payment before committing: a failed forward
	// discards the staged ledger mutation
	if err := e.TransferPayment(tokenOwner, cost); nil != err {
		globalData.log.Errorf("payment forward failed: %s  owner: %s  cost: %s  error: %s", art, tokenOwner, cost, err)
		return fault.ErrPaymentTransferFailed
	}

	if err := batch.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("sale: %s  owner: %s  buyer: %s  amount: %s  cost: %s", art, tokenOwner, buyer, amount, cost)
	return nil
}

// AllSellers - sellers with a strictly positive listed amount
//
// sold out sellers stay in the set but are filtered from the result
func AllSellers(e env.Environment, art cid.CID) ([]Offer, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if _, err := registry.Get(art); nil != err {
		return nil, err
	}

	prefix := append(art.Bytes(), keySeparator)

	offers := []Offer{}
	cursor := storage.Pool.Sellers.NewFetchCursor().Seek(prefix)

scanning:
	for {
		elements, err := cursor.Fetch(fetchBatchSize)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			break scanning
		}
		for _, item := range elements {
			if !bytes.HasPrefix(item.Key, prefix) {
				break scanning
			}
			seller := account.Identifier(item.Key[len(prefix):])
			listed := ledger.Allowance(art, seller, e.Executor())
			if !listed.IsZero() {
				offers = append(offers, Offer{
					Seller: seller,
					Amount: listed,
				})
			}
		}
	}

	return offers, nil
}
