// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - balance and allowance accounting
//
// One logical ledger exists per registered artwork, all sharing the
// Quantity and Allowances pools with the artwork cid as key prefix.
//
// Mutating operations only stage their writes into a batch supplied
// by the caller; nothing becomes visible until the caller commits.
// A failed precondition therefore leaves the ledger untouched.
//
// A mutating caller must hold the lock from Lock for its whole
// read-stage-commit cycle, so that staged amounts are always derived
// from the amounts currently committed.
package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/storage"
)

// identifiers never contain NUL so it is safe as a key separator
const keySeparator = 0x00

// serialises mutation cycles: held from the first amount read until
// the batch is committed or abandoned
var transactionLock sync.Mutex

// Lock - acquire the ledger mutation lock
func Lock() {
	transactionLock.Lock()
}

// Unlock - release the ledger mutation lock
func Unlock() {
	transactionLock.Unlock()
}

// key: art cid ++ 00 ++ owner
func quantityKey(art cid.CID, owner account.Identifier) []byte {
	key := make([]byte, 0, len(art)+len(owner)+1)
	key = append(key, art.Bytes()...)
	key = append(key, keySeparator)
	return append(key, owner.Bytes()...)
}

// key: art cid ++ 00 ++ owner ++ 00 ++ spender
func allowanceKey(art cid.CID, owner account.Identifier, spender account.Identifier) []byte {
	key := make([]byte, 0, len(art)+len(owner)+len(spender)+2)
	key = append(key, art.Bytes()...)
	key = append(key, keySeparator)
	key = append(key, owner.Bytes()...)
	key = append(key, keySeparator)
	return append(key, spender.Bytes()...)
}

// decode a stored amount, zero when the record is absent
func storedAmount(pool *storage.PoolHandle, key []byte) balance.Amount {
	buffer := pool.Get(key)
	if nil == buffer {
		return balance.Zero
	}
	amount, err := balance.FromBytes(buffer)
	if nil != err {
		logger.Panicf("ledger: corrupt amount record for: %x", key)
	}
	return amount
}

// Balance - tokens held by an account, zero for unknown accounts
func Balance(art cid.CID, owner account.Identifier) balance.Amount {
	return storedAmount(storage.Pool.Quantity, quantityKey(art, owner))
}

// Allowance - amount owner permits spender to move, zero if never granted
func Allowance(art cid.CID, owner account.Identifier, spender account.Identifier) balance.Amount {
	return storedAmount(storage.Pool.Allowances, allowanceKey(art, owner, spender))
}

// HasAccount - true if a balance entry was ever written for this
// owner, even one that has since returned to zero
func HasAccount(art cid.CID, owner account.Identifier) bool {
	return storage.Pool.Quantity.Has(quantityKey(art, owner))
}

// Mint - establish the full supply on the owner's account
//
// only used once, when the artwork is registered
func Mint(batch *storage.Batch, art cid.CID, owner account.Identifier, supply balance.Amount) {
	storage.Pool.Quantity.PutBatch(batch, quantityKey(art, owner), supply.Bytes())
}

// Transfer - move tokens from sender to receiver
//
// allowances are unaffected
func Transfer(batch *storage.Batch, art cid.CID, sender account.Identifier, receiver account.Identifier, amount balance.Amount) error {
	if amount.IsZero() {
		return fault.ErrInvalidAmount
	}

	senderBalance := Balance(art, sender)
	if senderBalance.Cmp(amount) < 0 {
		return fault.ErrInsufficientBalance
	}

	// a self transfer changes nothing once the balance check passed
	if sender == receiver {
		return nil
	}

	newSenderBalance, err := senderBalance.Sub(amount)
	if nil != err {
		return err
	}
	newReceiverBalance, err := Balance(art, receiver).Add(amount)
	if nil != err {
		return err
	}

	storage.Pool.Quantity.PutBatch(batch, quantityKey(art, sender), newSenderBalance.Bytes())
	storage.Pool.Quantity.PutBatch(batch, quantityKey(art, receiver), newReceiverBalance.Bytes())
	return nil
}

// TransferFrom - move tokens from owner to receiver on the strength
// of an allowance granted to spender
//
// on success the owner → spender allowance is reduced by amount
func TransferFrom(batch *storage.Batch, art cid.CID, owner account.Identifier, spender account.Identifier, receiver account.Identifier, amount balance.Amount) error {
	if amount.IsZero() {
		return fault.ErrInvalidAmount
	}

	allowance := Allowance(art, owner, spender)
	if allowance.Cmp(amount) < 0 {
		return fault.ErrInsufficientAllowance
	}

	ownerBalance := Balance(art, owner)
	if ownerBalance.Cmp(amount) < 0 {
		return fault.ErrInsufficientBalance
	}

	newAllowance, err := allowance.Sub(amount)
	if nil != err {
		return err
	}
	storage.Pool.Allowances.PutBatch(batch, allowanceKey(art, owner, spender), newAllowance.Bytes())

	// the allowance is still consumed when owner receives back
	if owner == receiver {
		return nil
	}

	newOwnerBalance, err := ownerBalance.Sub(amount)
	if nil != err {
		return err
	}
	newReceiverBalance, err := Balance(art, receiver).Add(amount)
	if nil != err {
		return err
	}

	storage.Pool.Quantity.PutBatch(batch, quantityKey(art, owner), newOwnerBalance.Bytes())
	storage.Pool.Quantity.PutBatch(batch, quantityKey(art, receiver), newReceiverBalance.Bytes())
	return nil
}

// IncreaseAllowance - raise the owner → spender allowance
func IncreaseAllowance(batch *storage.Batch, art cid.CID, owner account.Identifier, spender account.Identifier, amount balance.Amount) error {
	if amount.IsZero() {
		return fault.ErrInvalidAmount
	}

	newAllowance, err := Allowance(art, owner, spender).Add(amount)
	if nil != err {
		return err
	}

	storage.Pool.Allowances.PutBatch(batch, allowanceKey(art, owner, spender), newAllowance.Bytes())
	return nil
}

// DecreaseAllowance - lower the owner → spender allowance
//
// a decrease past zero floors at zero, it is not an error
func DecreaseAllowance(batch *storage.Batch, art cid.CID, owner account.Identifier, spender account.Identifier, amount balance.Amount) {
	newAllowance := Allowance(art, owner, spender).SaturatingSub(amount)
	storage.Pool.Allowances.PutBatch(batch, allowanceKey(art, owner, spender), newAllowance.Bytes())
}
