// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "furball-cli"
	app.Usage = "command line client for furballd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2230",
			Usage: " furballd host and port `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " calling account `NAME`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "register an artwork and mint its tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "original, o",
					Value: "",
					Usage: "*original artwork `CID`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "get",
			Usage:     "display one token record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "original",
			Usage:     "find the tokenised copy of an original",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "original, o",
					Value: "",
					Usage: "*original artwork `CID`",
				},
			},
			Action: runOfOriginal,
		},
		{
			Name:      "list",
			Usage:     "list registered artworks",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "transfer",
			Usage:     "transfer tokens to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the tokens `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*quantity to transfer `NUMBER`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "transfer-from",
			Usage:     "transfer another owner's tokens within an allowance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account whose tokens are spent `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the tokens `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*quantity to transfer `NUMBER`",
				},
			},
			Action: runTransferFrom,
		},
		{
			Name:      "allow",
			Usage:     "increase a spender's allowance",
			ArgsUsage: "\n   (* = required)",
			Flags:     allowanceFlags,
			Action:    runAllow,
		},
		{
			Name:      "disallow",
			Usage:     "decrease a spender's allowance",
			ArgsUsage: "\n   (* = required)",
			Flags:     allowanceFlags,
			Action:    runDisallow,
		},
		{
			Name:      "balance",
			Usage:     "display a token balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " account to query `ACCOUNT` default is identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "allowance",
			Usage:     "display a spender's remaining allowance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owning account `ACCOUNT` default is identity",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spending account `ACCOUNT`",
				},
			},
			Action: runAllowance,
		},
		{
			Name:      "sell",
			Usage:     "put tokens on sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*quantity to escrow `NUMBER`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "buy",
			Usage:     "buy escrowed tokens from a seller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: "*selling account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*quantity to buy `NUMBER`",
				},
				cli.StringFlag{
					Name:  "payment, p",
					Value: "",
					Usage: "*attached payment, must equal quantity times cost `NUMBER`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "set-cost",
			Usage:     "change the cost per token, artist only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "cost, C",
					Value: "",
					Usage: "*new cost per token `NUMBER`",
				},
			},
			Action: runSetCost,
		},
		{
			Name:      "cost",
			Usage:     "display the cost per token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
			},
			Action: runCost,
		},
		{
			Name:      "sellers",
			Usage:     "list open offers for an artwork",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
			},
			Action: runSellers,
		},
		{
			Name:      "on-sale",
			Usage:     "display the amount a seller has escrowed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artwork, a",
					Value: "",
					Usage: "*artwork `CID`",
				},
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: " selling account `ACCOUNT` default is identity",
				},
			},
			Action: runOnSale,
		},
		{
			Name:      "profile-update",
			Usage:     "set the caller's profile cid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "profile, P",
					Value: "",
					Usage: "*profile `CID`",
				},
				cli.StringFlag{
					Name:  "payment, p",
					Value: "0",
					Usage: " attached payment for storage growth `NUMBER`",
				},
			},
			Action: runProfileUpdate,
		},
		{
			Name:      "profile",
			Usage:     "display an artist's profile cid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artist, A",
					Value: "",
					Usage: " artist account `ACCOUNT` default is identity",
				},
			},
			Action: runProfile,
		},
		{
			Name:      "designs",
			Usage:     "list artworks registered by an artist",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "artist, A",
					Value: "",
					Usage: " artist account `ACCOUNT` default is identity",
				},
			},
			Action: runDesigns,
		},
		{
			Name:      "holdings",
			Usage:     "list every token an account holds",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " account to query `ACCOUNT` default is identity",
				},
			},
			Action: runHoldings,
		},
		{
			Name:   "info",
			Usage:  "display furballd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display furball-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			identity: c.GlobalString("identity"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// flags shared by allow and disallow
var allowanceFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "artwork, a",
		Value: "",
		Usage: "*artwork `CID`",
	},
	cli.StringFlag{
		Name:  "spender, s",
		Value: "",
		Usage: "*spending account `ACCOUNT`",
	},
	cli.StringFlag{
		Name:  "quantity, q",
		Value: "",
		Usage: "*quantity to adjust `NUMBER`",
	},
}
