// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package profile - artist identity to profile cid mapping
//
// A plain last-write-wins upsert.  The only subtlety is storage cost
// accounting: the attached payment must cover any growth in persistent
// storage at the fixed price per byte, and any surplus (or the value
// of released storage) is returned to the caller.
package profile

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/storage"
)

// StoragePricePerByte - host payment units charged per byte of
// persistent storage growth
var StoragePricePerByte = balance.MustParse("100000000000000000000")

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the profile store
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("profile")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the profile store
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

// Update - upsert the caller's profile cid
//
// the whole operation is undone if the attached payment cannot cover
// the storage growth or the refund transfer fails
func Update(e env.Environment, profile cid.CID) error {
	globalData.Lock()
	defer globalData.Unlock()

	caller := e.Caller()
	if err := caller.Validate(); nil != err {
		return err
	}

	previous := storage.Pool.Profiles.Get(caller.Bytes())

	initialStorage := e.StorageUsed()
	storage.Pool.Profiles.Put(caller.Bytes(), profile.Bytes())
	finalStorage := e.StorageUsed()

	refund, err := settleStorage(e, initialStorage, finalStorage)
	if nil != err {
		rollback(caller, previous)
		return err
	}

	if !refund.IsZero() {
		if err := e.TransferPayment(caller, refund); nil != err {
			globalData.log.Errorf("storage refund failed: %s  amount: %s  error: %s", caller, refund, err)
			rollback(caller, previous)
			return fault.ErrPaymentTransferFailed
		}
	}

	globalData.log.Infof("profile update: %s → %s", caller, profile)
	return nil
}

// Get - profile cid for an artist
func Get(artist account.Identifier) (cid.CID, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	value := storage.Pool.Profiles.Get(artist.Bytes())
	if nil == value {
		return "", fault.ErrProfileNotFound
	}
	return cid.CID(value), nil
}

// compute the refund owed to the caller after a storage change
func settleStorage(e env.Environment, initialStorage uint64, finalStorage uint64) (balance.Amount, error) {
	attached := e.AttachedPayment()

	if finalStorage > initialStorage {
		required, err := balance.New(finalStorage - initialStorage).Mul(StoragePricePerByte)
		if nil != err {
			return balance.Zero, err
		}
		if attached.Cmp(required) < 0 {
			return balance.Zero, fault.ErrInsufficientPayment
		}
		return attached.Sub(required)
	}

	// shrinking storage releases its cost back to the caller
	released, err := balance.New(initialStorage - finalStorage).Mul(StoragePricePerByte)
	if nil != err {
		return balance.Zero, err
	}
	return attached.Add(released)
}

// restore the previous profile value
func rollback(caller account.Identifier, previous []byte) {
	if nil == previous {
		storage.Pool.Profiles.Delete(caller.Bytes())
	} else {
		storage.Pool.Profiles.Put(caller.Bytes(), previous)
	}
}
