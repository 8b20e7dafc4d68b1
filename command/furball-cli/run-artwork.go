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

func runCreate(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := requiredIdentity(m)
	if nil != err {
		return err
	}
	artworkCid, err := requiredFlag(c, "artwork")
	if nil != err {
		return err
	}
	originalCid, err := requiredFlag(c, "original")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "artwork: %s\n", artworkCid)
		fmt.Fprintf(m.e, "original: %s\n", originalCid)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateArtwork(&rpccalls.CreateData{
		Caller:   caller,
		Artwork:  artworkCid,
		Original: originalCid,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGet(c *cli.Context) error {

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

	response, err := client.GetArtwork(artworkCid)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOfOriginal(c *cli.Context) error {

	m := getMetadata(c)

	originalCid, err := requiredFlag(c, "original")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ArtworkOfOriginal(originalCid)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runList(c *cli.Context) error {

	m := getMetadata(c)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ListArtworks(count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
