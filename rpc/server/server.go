// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/counter"
	"github.com/userevolution/furball-dapp/env"
	"github.com/userevolution/furball-dapp/rpc/artist"
	"github.com/userevolution/furball-dapp/rpc/artwork"
	"github.com/userevolution/furball-dapp/rpc/market"
	"github.com/userevolution/furball-dapp/rpc/node"
	"github.com/userevolution/furball-dapp/rpc/tokens"
)

// Create - build the RPC server with all services registered
func Create(log *logger.L, version string, hooks env.Hooks, rpcCount *counter.Counter, readOnly bool) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(artwork.New(log, hooks, readOnly))
	_ = server.Register(tokens.New(log, readOnly))
	_ = server.Register(market.New(log, hooks, readOnly))
	_ = server.Register(artist.New(log, hooks, readOnly))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
