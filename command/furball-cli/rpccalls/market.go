// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/rpc/market"
)

// SellData - the parameters for an escrow listing
type SellData struct {
	Caller  string
	Artwork string
	Amount  string
}

// PutOnSale - escrow tokens for sale
func (client *Client) PutOnSale(sellConfig *SellData) (*market.PutOnSaleReply, error) {

	amount, err := balance.Parse(sellConfig.Amount)
	if nil != err {
		return nil, err
	}

	sellArgs := market.PutOnSaleArguments{
		Caller:  account.Identifier(sellConfig.Caller),
		Artwork: cid.CID(sellConfig.Artwork),
		Amount:  amount,
	}

	client.printJson("PutOnSale Request", sellArgs)

	reply := &market.PutOnSaleReply{}
	err = client.client.Call("Market.PutOnSale", sellArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("PutOnSale Reply", reply)

	return reply, nil
}

// BuyData - the parameters for a purchase
type BuyData struct {
	Caller  string
	Payment string
	Artwork string
	Amount  string
	Seller  string
}

// Buy - purchase escrowed tokens from a seller
func (client *Client) Buy(buyConfig *BuyData) (*market.BuyReply, error) {

	amount, err := balance.Parse(buyConfig.Amount)
	if nil != err {
		return nil, err
	}
	payment, err := balance.Parse(buyConfig.Payment)
	if nil != err {
		return nil, err
	}

	buyArgs := market.BuyArguments{
		Caller:  account.Identifier(buyConfig.Caller),
		Payment: payment,
		Artwork: cid.CID(buyConfig.Artwork),
		Amount:  amount,
		Seller:  account.Identifier(buyConfig.Seller),
	}

	client.printJson("Buy Request", buyArgs)

	reply := &market.BuyReply{}
	err = client.client.Call("Market.Buy", buyArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Buy Reply", reply)

	return reply, nil
}

// ChangeCostData - the parameters for a price change
type ChangeCostData struct {
	Caller       string
	Artwork      string
	CostPerToken string
}

// ChangeCost - set a new cost per token, artist only
func (client *Client) ChangeCost(costConfig *ChangeCostData) (*market.ChangeCostReply, error) {

	cost, err := balance.Parse(costConfig.CostPerToken)
	if nil != err {
		return nil, err
	}

	costArgs := market.ChangeCostArguments{
		Caller:       account.Identifier(costConfig.Caller),
		Artwork:      cid.CID(costConfig.Artwork),
		CostPerToken: cost,
	}

	client.printJson("ChangeCost Request", costArgs)

	reply := &market.ChangeCostReply{}
	err = client.client.Call("Market.ChangeCost", costArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("ChangeCost Reply", reply)

	return reply, nil
}

// GetCost - current cost per token
func (client *Client) GetCost(artworkCid string) (*market.CostReply, error) {

	costArgs := market.CostArguments{
		Artwork: cid.CID(artworkCid),
	}

	client.printJson("Cost Request", costArgs)

	reply := &market.CostReply{}
	err := client.client.Call("Market.Cost", costArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Cost Reply", reply)

	return reply, nil
}

// GetAmountOnSale - tokens one seller still has escrowed
func (client *Client) GetAmountOnSale(artworkCid string, seller string) (*market.AmountOnSaleReply, error) {

	onSaleArgs := market.AmountOnSaleArguments{
		Artwork: cid.CID(artworkCid),
		Seller:  account.Identifier(seller),
	}

	client.printJson("AmountOnSale Request", onSaleArgs)

	reply := &market.AmountOnSaleReply{}
	err := client.client.Call("Market.AmountOnSale", onSaleArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("AmountOnSale Reply", reply)

	return reply, nil
}

// GetSellers - open offers for one artwork
func (client *Client) GetSellers(artworkCid string) (*market.SellersReply, error) {

	sellersArgs := market.SellersArguments{
		Artwork: cid.CID(artworkCid),
	}

	client.printJson("Sellers Request", sellersArgs)

	reply := &market.SellersReply{}
	err := client.client.Call("Market.Sellers", sellersArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Sellers Reply", reply)

	return reply, nil
}
