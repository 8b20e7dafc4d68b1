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

func runTransfer(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := requiredIdentity(m)
	if nil != err {
		return err
	}
	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	receiver, err := requiredFlag(c, "receiver")
	if nil != err {
		return err
	}
	quantity, err := requiredFlag(c, "quantity")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "artwork: %s\n", artworkCid)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "quantity: %s\n", quantity)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&rpccalls.TransferData{
		Caller:   caller,
		Artwork:  artworkCid,
		Receiver: receiver,
		Amount:   quantity,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransferFrom(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := requiredIdentity(m)
	if nil != err {
		return err
	}
	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	owner, err := requiredFlag(c, "owner")
	if nil != err {
		return err
	}
	receiver, err := requiredFlag(c, "receiver")
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

	response, err := client.TransferFrom(&rpccalls.TransferFromData{
		Caller:   caller,
		Artwork:  artworkCid,
		Owner:    owner,
		Receiver: receiver,
		Amount:   quantity,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAllow(c *cli.Context) error {
	return runAllowanceChange(c, true)
}

func runDisallow(c *cli.Context) error {
	return runAllowanceChange(c, false)
}

func runAllowanceChange(c *cli.Context, increase bool) error {

	m := getMetadata(c)

	caller, err := requiredIdentity(m)
	if nil != err {
		return err
	}
	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	spender, err := requiredFlag(c, "spender")
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

	allowanceConfig := &rpccalls.AllowanceData{
		Caller:  caller,
		Artwork: artworkCid,
		Spender: spender,
		Amount:  quantity,
	}

	var response interface{}
	if increase {
		response, err = client.IncreaseAllowance(allowanceConfig)
	} else {
		response, err = client.DecreaseAllowance(allowanceConfig)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBalance(c *cli.Context) error {

	m := getMetadata(c)

	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	owner, err := accountOrIdentity(c, "owner", m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(artworkCid, owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAllowance(c *cli.Context) error {

	m := getMetadata(c)

	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	owner, err := accountOrIdentity(c, "owner", m)
	if nil != err {
		return err
	}
	spender, err := requiredFlag(c, "spender")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAllowance(artworkCid, owner, spender)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
