// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/userevolution/furball-dapp/command/furball-cli/rpccalls"
)

func runProfileUpdate(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := requiredIdentity(m)
	if nil != err {
		return err
	}
	profileCid, err := requiredFlag(c, "profile")
	if nil != err {
		return err
	}
	payment := c.String("payment")

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdateProfile(&rpccalls.UpdateProfileData{
		Caller:  caller,
		Payment: payment,
		Profile: profileCid,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runProfile(c *cli.Context) error {

	m := getMetadata(c)

	artistAccount, err := accountOrIdentity(c, "artist", m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetProfile(artistAccount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runDesigns(c *cli.Context) error {

	m := getMetadata(c)

	artistAccount, err := accountOrIdentity(c, "artist", m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetDesigns(artistAccount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runHoldings(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := accountOrIdentity(c, "owner", m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetDesignTokens(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
