// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/ledger"
	"github.com/userevolution/furball-dapp/registry"
	"github.com/userevolution/furball-dapp/rpc/ratelimit"
	"github.com/userevolution/furball-dapp/storage"
	"github.com/userevolution/furball-dapp/token"
)

// Token
// -----

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for RPC
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	ReadOnly bool
}

func New(log *logger.L, readOnly bool) *Token {
	return &Token{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitToken, rateBurstToken),
		ReadOnly: readOnly,
	}
}

// Transfer tokens to another account
// ----------------------------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller   account.Identifier `json:"caller"`
	Artwork  cid.CID            `json:"artwork"`
	Receiver account.Identifier `json:"receiver"`
	Amount   balance.Amount     `json:"amount"`
}

// TransferReply - sender balance after the transfer
type TransferReply struct {
	Remaining balance.Amount `json:"remaining"`
}

// Transfer - move tokens from the caller to a receiver
func (t *Token) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if t.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := t.Log

	log.Infof("Token.Transfer: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := arguments.Caller.Validate(); nil != err {
		return err
	}
	if err := arguments.Receiver.Validate(); nil != err {
		return err
	}
	if _, err := registry.Get(arguments.Artwork); nil != err {
		return err
	}

	ledger.Lock()
	defer ledger.Unlock()

	batch := storage.NewBatch()
	err := ledger.Transfer(batch, arguments.Artwork, arguments.Caller, arguments.Receiver, arguments.Amount)
	if nil != err {
		return err
	}
	if err := batch.Commit(); nil != err {
		return err
	}

	reply.Remaining = ledger.Balance(arguments.Artwork, arguments.Caller)

	return nil
}

// Transfer tokens on behalf of an owner
// -------------------------------------

// TransferFromArguments - arguments for RPC
type TransferFromArguments struct {
	Caller   account.Identifier `json:"caller"`
	Artwork  cid.CID            `json:"artwork"`
	Owner    account.Identifier `json:"owner"`
	Receiver account.Identifier `json:"receiver"`
	Amount   balance.Amount     `json:"amount"`
}

// TransferFromReply - remaining allowance after the transfer
type TransferFromReply struct {
	RemainingAllowance balance.Amount `json:"remainingAllowance"`
}

// TransferFrom - spend an owner's tokens within the caller's allowance
func (t *Token) TransferFrom(arguments *TransferFromArguments, reply *TransferFromReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if t.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := t.Log

	log.Infof("Token.TransferFrom: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := arguments.Caller.Validate(); nil != err {
		return err
	}
	if err := arguments.Owner.Validate(); nil != err {
		return err
	}
	if err := arguments.Receiver.Validate(); nil != err {
		return err
	}
	if _, err := registry.Get(arguments.Artwork); nil != err {
		return err
	}

	ledger.Lock()
	defer ledger.Unlock()

	batch := storage.NewBatch()
	err := ledger.TransferFrom(batch, arguments.Artwork, arguments.Owner, arguments.Caller, arguments.Receiver, arguments.Amount)
	if nil != err {
		return err
	}
	if err := batch.Commit(); nil != err {
		return err
	}

	reply.RemainingAllowance = ledger.Allowance(arguments.Artwork, arguments.Owner, arguments.Caller)

	return nil
}

// Adjust a spender's allowance
// ----------------------------

// AllowanceChangeArguments - arguments for RPC
type AllowanceChangeArguments struct {
	Caller  account.Identifier `json:"caller"`
	Artwork cid.CID            `json:"artwork"`
	Spender account.Identifier `json:"spender"`
	Amount  balance.Amount     `json:"amount"`
}

// AllowanceChangeReply - allowance after the adjustment
type AllowanceChangeReply struct {
	Allowance balance.Amount `json:"allowance"`
}

// IncreaseAllowance - raise what a spender may move from the caller
func (t *Token) IncreaseAllowance(arguments *AllowanceChangeArguments, reply *AllowanceChangeReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if t.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := t.Log

	log.Infof("Token.IncreaseAllowance: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := arguments.Caller.Validate(); nil != err {
		return err
	}
	if err := arguments.Spender.Validate(); nil != err {
		return err
	}
	if _, err := registry.Get(arguments.Artwork); nil != err {
		return err
	}

	ledger.Lock()
	defer ledger.Unlock()

	batch := storage.NewBatch()
	err := ledger.IncreaseAllowance(batch, arguments.Artwork, arguments.Caller, arguments.Spender, arguments.Amount)
	if nil != err {
		return err
	}
	if err := batch.Commit(); nil != err {
		return err
	}

	reply.Allowance = ledger.Allowance(arguments.Artwork, arguments.Caller, arguments.Spender)

	return nil
}

// DecreaseAllowance - lower a spender's allowance, flooring at zero
func (t *Token) DecreaseAllowance(arguments *AllowanceChangeArguments, reply *AllowanceChangeReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if t.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := t.Log

	log.Infof("Token.DecreaseAllowance: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := arguments.Caller.Validate(); nil != err {
		return err
	}
	if err := arguments.Spender.Validate(); nil != err {
		return err
	}
	if _, err := registry.Get(arguments.Artwork); nil != err {
		return err
	}

	ledger.Lock()
	defer ledger.Unlock()

	batch := storage.NewBatch()
	ledger.DecreaseAllowance(batch, arguments.Artwork, arguments.Caller, arguments.Spender, arguments.Amount)
	if err := batch.Commit(); nil != err {
		return err
	}

	reply.Allowance = ledger.Allowance(arguments.Artwork, arguments.Caller, arguments.Spender)

	return nil
}

// Ledger reads
// ------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Artwork cid.CID            `json:"artwork"`
	Owner   account.Identifier `json:"owner"`
}

// BalanceReply - token balance of one owner
type BalanceReply struct {
	Balance balance.Amount `json:"balance"`
}

// Balance - token balance of an owner for one artwork
func (t *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if _, err := registry.Get(arguments.Artwork); nil != err {
		return err
	}

	reply.Balance = ledger.Balance(arguments.Artwork, arguments.Owner)

	return nil
}

// AllowanceArguments - arguments for RPC
type AllowanceArguments struct {
	Artwork cid.CID            `json:"artwork"`
	Owner   account.Identifier `json:"owner"`
	Spender account.Identifier `json:"spender"`
}

// AllowanceReply - remaining allowance of a spender
type AllowanceReply struct {
	Allowance balance.Amount `json:"allowance"`
}

// Allowance - what a spender may still move from an owner
func (t *Token) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if _, err := registry.Get(arguments.Artwork); nil != err {
		return err
	}

	reply.Allowance = ledger.Allowance(arguments.Artwork, arguments.Owner, arguments.Spender)

	return nil
}

// DecimalsArguments - arguments for RPC
type DecimalsArguments struct{}

// DecimalsReply - fixed decimal places of every token
type DecimalsReply struct {
	Decimals uint64 `json:"decimals"`
}

// Decimals - decimal places, identical for every artwork token
func (t *Token) Decimals(_ *DecimalsArguments, reply *DecimalsReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	reply.Decimals = token.DecimalsPerToken

	return nil
}
