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

// fetch the metadata stored by app.Before
func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// open the RPC connection for one command
func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// a required string flag
func requiredFlag(c *cli.Context, name string) (string, error) {
	value := c.String(name)
	if "" == value {
		return "", fmt.Errorf("missing %s", name)
	}
	return value, nil
}

// the calling identity from the global flag
func requiredIdentity(m *metadata) (string, error) {
	if "" == m.identity {
		return "", fmt.Errorf("missing identity")
	}
	return m.identity, nil
}

// an account flag that falls back to the global identity
func accountOrIdentity(c *cli.Context, name string, m *metadata) (string, error) {
	value := c.String(name)
	if "" != value {
		return value, nil
	}
	return requiredIdentity(m)
}
