// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/userevolution/furball-dapp/rpc/node"
)

// GetInfo - daemon status
func (client *Client) GetInfo() (*node.InfoReply, error) {

	infoArgs := node.InfoArguments{}

	client.printJson("Info Request", infoArgs)

	reply := &node.InfoReply{}
	err := client.client.Call("Node.Info", infoArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return reply, nil
}
