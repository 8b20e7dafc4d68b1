// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/userevolution/furball-dapp/counter"
	"github.com/userevolution/furball-dapp/registry"
	"github.com/userevolution/furball-dapp/rpc/ratelimit"
)

// Node
// ----

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	start   time.Time
	version string
	count   *counter.Counter
}

func New(log *logger.L, start time.Time, version string, count *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		start:   start,
		version: version,
		count:   count,
	}
}

// InfoArguments - arguments for RPC
type InfoArguments struct{}

// InfoReply - daemon status
type InfoReply struct {
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Connections uint64 `json:"connections"`
	Artworks    int    `json:"artworks"`
}

// Info - daemon version, uptime and registry size
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	artworks, err := registry.AllArtworks()
	if nil != err {
		return err
	}

	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	reply.Connections = node.count.Uint64()
	reply.Artworks = len(artworks)

	return nil
}
