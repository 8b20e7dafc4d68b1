// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
)

// commands that run before the configuration file is read
//
// returns true if a command was processed
func processSetupCommand(program string, arguments []string) bool {

	command := arguments[0]

	switch command {
	case "version":
		fmt.Println(version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [command]\n", program)
		fmt.Printf("supported commands:\n")
		fmt.Printf("  help                  (h)       - display this message\n")
		fmt.Printf("  version                         - display the version\n")

	default:
		exitwithstatus.Message("%s: unknown command: %q, see: %s help", program, command, program)
	}

	return true
}
