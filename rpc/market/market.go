// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/fault"
	"github.com/userevolution/furball-dapp/ledger"
	"github.com/userevolution/furball-dapp/marketplace"
	"github.com/userevolution/furball-dapp/rpc/ratelimit"
)

// Market
// ------

const (
	rateLimitMarket = 200
	rateBurstMarket = 100
)

// Market - type for RPC
type Market struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Hooks    env.Hooks
	ReadOnly bool
}

func New(log *logger.L, hooks env.Hooks, readOnly bool) *Market {
	return &Market{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		Hooks:    hooks,
		ReadOnly: readOnly,
	}
}

// List tokens for sale
// --------------------

// PutOnSaleArguments - arguments for RPC
type PutOnSaleArguments struct {
	Caller  account.Identifier `json:"caller"`
	Artwork cid.CID            `json:"artwork"`
	Amount  balance.Amount     `json:"amount"`
}

// PutOnSaleReply - total amount the caller now has on sale
type PutOnSaleReply struct {
	OnSale balance.Amount `json:"onSale"`
}

// PutOnSale - escrow some of the caller's tokens for sale
func (market *Market) PutOnSale(arguments *PutOnSaleArguments, reply *PutOnSaleReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if market.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := market.Log

	log.Infof("Market.PutOnSale: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := arguments.Caller.Validate(); nil != err {
		return err
	}

	e := market.Hooks.NewCall(arguments.Caller, balance.Zero)

	if err := marketplace.PutOnSale(e, arguments.Artwork, arguments.Amount); nil != err {
		return err
	}

	onSale, err := marketplace.AmountOnSale(e, arguments.Artwork, arguments.Caller)
	if nil != err {
		return err
	}
	reply.OnSale = onSale

	return nil
}

// Buy escrowed tokens
// -------------------

// BuyArguments - arguments for RPC
type BuyArguments struct {
	Caller  account.Identifier `json:"caller"`
	Payment balance.Amount     `json:"payment"`
	Artwork cid.CID            `json:"artwork"`
	Amount  balance.Amount     `json:"amount"`
	Seller  account.Identifier `json:"seller"`
}

// BuyReply - buyer balance after the purchase
type BuyReply struct {
	Balance balance.Amount `json:"balance"`
}

// Buy - purchase escrowed tokens from a seller
//
// the attached payment must equal amount times the current cost per
// token exactly
func (market *Market) Buy(arguments *BuyArguments, reply *BuyReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if market.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := market.Log

	log.Infof("Market.Buy: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := arguments.Caller.Validate(); nil != err {
		return err
	}
	if err := arguments.Seller.Validate(); nil != err {
		return err
	}

	e := market.Hooks.NewCall(arguments.Caller, arguments.Payment)

	if err := marketplace.Buy(e, arguments.Artwork, arguments.Amount, arguments.Seller); nil != err {
		return err
	}

	reply.Balance = ledger.Balance(arguments.Artwork, arguments.Caller)

	return nil
}

// Adjust the token price
// ----------------------

// ChangeCostArguments - arguments for RPC
type ChangeCostArguments struct {
	Caller       account.Identifier `json:"caller"`
	Artwork      cid.CID            `json:"artwork"`
	CostPerToken balance.Amount     `json:"costPerToken"`
}

// ChangeCostReply - cost after the change
type ChangeCostReply struct {
	CostPerToken balance.Amount `json:"costPerToken"`
}

// ChangeCost - set a new cost per token, artist only
func (market *Market) ChangeCost(arguments *ChangeCostArguments, reply *ChangeCostReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if market.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	log := market.Log

	log.Infof("Market.ChangeCost: %+v", arguments)

	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := arguments.Caller.Validate(); nil != err {
		return err
	}

	e := market.Hooks.NewCall(arguments.Caller, balance.Zero)

	if err := marketplace.ChangeCost(e, arguments.Artwork, arguments.CostPerToken); nil != err {
		return err
	}

	reply.CostPerToken = arguments.CostPerToken

	return nil
}

// Market reads
// ------------

// CostArguments - arguments for RPC
type CostArguments struct {
	Artwork cid.CID `json:"artwork"`
}

// CostReply - current cost per token
type CostReply struct {
	CostPerToken balance.Amount `json:"costPerToken"`
}

// Cost - current cost per token of an artwork
func (market *Market) Cost(arguments *CostArguments, reply *CostReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	cost, err := marketplace.CostPerToken(arguments.Artwork)
	if nil != err {
		return err
	}
	reply.CostPerToken = cost

	return nil
}

// AmountOnSaleArguments - arguments for RPC
type AmountOnSaleArguments struct {
	Artwork cid.CID            `json:"artwork"`
	Seller  account.Identifier `json:"seller"`
}

// AmountOnSaleReply - tokens a seller still has escrowed
type AmountOnSaleReply struct {
	OnSale balance.Amount `json:"onSale"`
}

// AmountOnSale - how many tokens one seller still has on sale
func (market *Market) AmountOnSale(arguments *AmountOnSaleArguments, reply *AmountOnSaleReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	e := market.Hooks.NewCall(arguments.Seller, balance.Zero)

	onSale, err := marketplace.AmountOnSale(e, arguments.Artwork, arguments.Seller)
	if nil != err {
		return err
	}
	reply.OnSale = onSale

	return nil
}

// SellersArguments - arguments for RPC
type SellersArguments struct {
	Artwork cid.CID `json:"artwork"`
}

// SellersReply - open offers for one artwork
type SellersReply struct {
	Offers []marketplace.Offer `json:"offers"`
}

// Sellers - every seller with a non zero amount on sale
func (market *Market) Sellers(arguments *SellersArguments, reply *SellersReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	e := market.Hooks.NewCall(market.Hooks.Service, balance.Zero)

	offers, err := marketplace.AllSellers(e, arguments.Artwork)
	if nil != err {
		return err
	}
	reply.Offers = offers

	return nil
}
