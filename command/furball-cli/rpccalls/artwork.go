// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/rpc/artwork"
)

// CreateData - the parameters for an artwork registration
type CreateData struct {
	Caller   string
	Artwork  string
	Original string
}

// CreateArtwork - register an artwork and mint its tokens
func (client *Client) CreateArtwork(createConfig *CreateData) (*artwork.CreateReply, error) {

	createArgs := artwork.CreateArguments{
		Caller:   account.Identifier(createConfig.Caller),
		Artwork:  cid.CID(createConfig.Artwork),
		Original: cid.CID(createConfig.Original),
	}

	client.printJson("Create Request", createArgs)

	reply := &artwork.CreateReply{}
	err := client.client.Call("Artwork.Create", createArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return reply, nil
}

// GetArtwork - fetch one token record
func (client *Client) GetArtwork(artworkCid string) (*artwork.GetReply, error) {

	getArgs := artwork.GetArguments{
		Artwork: cid.CID(artworkCid),
	}

	client.printJson("Get Request", getArgs)

	reply := &artwork.GetReply{}
	err := client.client.Call("Artwork.Get", getArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return reply, nil
}

// ArtworkOfOriginal - look up the tokenised copy of an original cid
func (client *Client) ArtworkOfOriginal(originalCid string) (*artwork.OfOriginalReply, error) {

	ofOriginalArgs := artwork.OfOriginalArguments{
		Original: cid.CID(originalCid),
	}

	client.printJson("OfOriginal Request", ofOriginalArgs)

	reply := &artwork.OfOriginalReply{}
	err := client.client.Call("Artwork.OfOriginal", ofOriginalArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("OfOriginal Reply", reply)

	return reply, nil
}

// ListArtworks - artworks in registration order
func (client *Client) ListArtworks(count int) (*artwork.ListReply, error) {

	listArgs := artwork.ListArguments{
		Count: count,
	}

	client.printJson("List Request", listArgs)

	reply := &artwork.ListReply{}
	err := client.client.Call("Artwork.List", listArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}
