// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/rpc/artist"
)

// UpdateProfileData - the parameters for a profile upsert
type UpdateProfileData struct {
	Caller  string
	Payment string
	Profile string
}

// UpdateProfile - set the caller's profile cid
func (client *Client) UpdateProfile(profileConfig *UpdateProfileData) (*artist.UpdateProfileReply, error) {

	payment, err := balance.Parse(profileConfig.Payment)
	if nil != err {
		return nil, err
	}

	updateArgs := artist.UpdateProfileArguments{
		Caller:  account.Identifier(profileConfig.Caller),
		Payment: payment,
		Profile: cid.CID(profileConfig.Profile),
	}

	client.printJson("UpdateProfile Request", updateArgs)

	reply := &artist.UpdateProfileReply{}
	err = client.client.Call("Artist.UpdateProfile", updateArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("UpdateProfile Reply", reply)

	return reply, nil
}

// GetProfile - profile cid of an artist
func (client *Client) GetProfile(artistAccount string) (*artist.ProfileReply, error) {

	profileArgs := artist.ProfileArguments{
		Artist: account.Identifier(artistAccount),
	}

	client.printJson("Profile Request", profileArgs)

	reply := &artist.ProfileReply{}
	err := client.client.Call("Artist.Profile", profileArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Profile Reply", reply)

	return reply, nil
}

// GetDesigns - artworks registered by an artist
func (client *Client) GetDesigns(artistAccount string) (*artist.DesignsReply, error) {

	designsArgs := artist.DesignsArguments{
		Artist: account.Identifier(artistAccount),
	}

	client.printJson("Designs Request", designsArgs)

	reply := &artist.DesignsReply{}
	err := client.client.Call("Artist.Designs", designsArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Designs Reply", reply)

	return reply, nil
}

// GetDesignTokens - holdings of an owner across all artworks
func (client *Client) GetDesignTokens(owner string) (*artist.DesignTokensReply, error) {

	holdingsArgs := artist.DesignTokensArguments{
		Owner: account.Identifier(owner),
	}

	client.printJson("DesignTokens Request", holdingsArgs)

	reply := &artist.DesignTokensReply{}
	err := client.client.Call("Artist.DesignTokens", holdingsArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("DesignTokens Reply", reply)

	return reply, nil
}
