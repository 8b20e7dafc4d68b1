// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package env

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
)

// Hooks - daemon supplied call boundary
//
// one set is created at startup and shared by every request handler
type Hooks struct {
	Service  account.Identifier
	Transfer func(to account.Identifier, amount balance.Amount) error
	Metering func() uint64
}

// NewCall - assemble the environment for one request
func (h Hooks) NewCall(caller account.Identifier, payment balance.Amount) *Call {
	return &Call{
		CallerID:  caller,
		ServiceID: h.Service,
		Payment:   payment,
		Transfer:  h.Transfer,
		Metering:  h.Metering,
	}
}
