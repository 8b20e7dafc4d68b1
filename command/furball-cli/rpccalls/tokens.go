// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
	"github.com/userevolution/furball-dapp/cid"
	"github.com/userevolution/furball-dapp/rpc/tokens"
)

// TransferData - the parameters for a token transfer
type TransferData struct {
	Caller   string
	Artwork  string
	Receiver string
	Amount   string
}

// Transfer - move tokens to a receiver
func (client *Client) Transfer(transferConfig *TransferData) (*tokens.TransferReply, error) {

	amount, err := balance.Parse(transferConfig.Amount)
	if nil != err {
		return nil, err
	}

	transferArgs := tokens.TransferArguments{
		Caller:   account.Identifier(transferConfig.Caller),
		Artwork:  cid.CID(transferConfig.Artwork),
		Receiver: account.Identifier(transferConfig.Receiver),
		Amount:   amount,
	}

	client.printJson("Transfer Request", transferArgs)

	reply := &tokens.TransferReply{}
	err = client.client.Call("Token.Transfer", transferArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return reply, nil
}

// TransferFromData - the parameters for a delegated transfer
type TransferFromData struct {
	Caller   string
	Artwork  string
	Owner    string
	Receiver string
	Amount   string
}

// TransferFrom - spend an owner's tokens within the caller's allowance
func (client *Client) TransferFrom(transferConfig *TransferFromData) (*tokens.TransferFromReply, error) {

	amount, err := balance.Parse(transferConfig.Amount)
	if nil != err {
		return nil, err
	}

	transferArgs := tokens.TransferFromArguments{
		Caller:   account.Identifier(transferConfig.Caller),
		Artwork:  cid.CID(transferConfig.Artwork),
		Owner:    account.Identifier(transferConfig.Owner),
		Receiver: account.Identifier(transferConfig.Receiver),
		Amount:   amount,
	}

	client.printJson("TransferFrom Request", transferArgs)

	reply := &tokens.TransferFromReply{}
	err = client.client.Call("Token.TransferFrom", transferArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("TransferFrom Reply", reply)

	return reply, nil
}

// AllowanceData - the parameters for an allowance adjustment
type AllowanceData struct {
	Caller  string
	Artwork string
	Spender string
	Amount  string
}

// IncreaseAllowance - raise a spender's allowance
func (client *Client) IncreaseAllowance(allowanceConfig *AllowanceData) (*tokens.AllowanceChangeReply, error) {
	return client.changeAllowance("Token.IncreaseAllowance", allowanceConfig)
}

// DecreaseAllowance - lower a spender's allowance, flooring at zero
func (client *Client) DecreaseAllowance(allowanceConfig *AllowanceData) (*tokens.AllowanceChangeReply, error) {
	return client.changeAllowance("Token.DecreaseAllowance", allowanceConfig)
}

func (client *Client) changeAllowance(method string, allowanceConfig *AllowanceData) (*tokens.AllowanceChangeReply, error) {

	amount, err := balance.Parse(allowanceConfig.Amount)
	if nil != err {
		return nil, err
	}

	allowanceArgs := tokens.AllowanceChangeArguments{
		Caller:  account.Identifier(allowanceConfig.Caller),
		Artwork: cid.CID(allowanceConfig.Artwork),
		Spender: account.Identifier(allowanceConfig.Spender),
		Amount:  amount,
	}

	client.printJson("Allowance Request", allowanceArgs)

	reply := &tokens.AllowanceChangeReply{}
	err = client.client.Call(method, allowanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Allowance Reply", reply)

	return reply, nil
}

// GetBalance - token balance of an owner
func (client *Client) GetBalance(artworkCid string, owner string) (*tokens.BalanceReply, error) {

	balanceArgs := tokens.BalanceArguments{
		Artwork: cid.CID(artworkCid),
		Owner:   account.Identifier(owner),
	}

	client.printJson("Balance Request", balanceArgs)

	reply := &tokens.BalanceReply{}
	err := client.client.Call("Token.Balance", balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// GetAllowance - what a spender may still move from an owner
func (client *Client) GetAllowance(artworkCid string, owner string, spender string) (*tokens.AllowanceReply, error) {

	allowanceArgs := tokens.AllowanceArguments{
		Artwork: cid.CID(artworkCid),
		Owner:   account.Identifier(owner),
		Spender: account.Identifier(spender),
	}

	client.printJson("Allowance Request", allowanceArgs)

	reply := &tokens.AllowanceReply{}
	err := client.client.Call("Token.Allowance", allowanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Allowance Reply", reply)

	return reply, nil
}
