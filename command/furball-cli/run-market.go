// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/userevolution/furball-dapp/command/furball-cli/rpccalls"
)

func runSell(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := requiredIdentity(m)
	if nil != err {
		return err
	}
	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	quantity, err := requiredFlag(c, "quantity")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.PutOnSale(&rpccalls.SellData{
		Caller:  caller,
		Artwork: artworkCid,
		Amount:  quantity,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBuy(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := requiredIdentity(m)
	if nil != err {
		return err
	}
	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	seller, err := requiredFlag(c, "seller")
	if nil != err {
		return err
	}
	quantity, err := requiredFlag(c, "quantity")
	if nil != err {
		return err
	}
	payment, err := requiredFlag(c, "payment")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "artwork: %s\n", artworkCid)
		fmt.Fprintf(m.e, "seller: %s\n", seller)
		fmt.Fprintf(m.e, "quantity: %s\n", quantity)
		fmt.Fprintf(m.e, "payment: %s\n", payment)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Buy(&rpccalls.BuyData{
		Caller:  caller,
		Payment: payment,
		Artwork: artworkCid,
		Amount:  quantity,
		Seller:  seller,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSetCost(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := requiredIdentity(m)
	if nil != err {
		return err
	}
	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	cost, err := requiredFlag(c, "cost")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ChangeCost(&rpccalls.ChangeCostData{
		Caller:       caller,
		Artwork:      artworkCid,
		CostPerToken: cost,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCost(c *cli.Context) error {

	m := getMetadata(c)

	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetCost(artworkCid)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSellers(c *cli.Context) error {

	m := getMetadata(c)

	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetSellers(artworkCid)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOnSale(c *cli.Context) error {

	m := getMetadata(c)

	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	seller, err := accountOrIdentity(c, "seller", m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAmountOnSale(artworkCid, seller)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
