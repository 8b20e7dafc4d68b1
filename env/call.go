// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package env

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
)

// Call - a concrete Environment assembled by the call boundary
//
// the RPC adapter fills one of these in for each request; the
// transfer and metering hooks are provided by the daemon
type Call struct {
	CallerID  account.Identifier
	ServiceID account.Identifier
	Payment   balance.Amount
	Transfer  func(to account.Identifier, amount balance.Amount) error
	Metering  func() uint64
}

// Caller - identity that invoked the operation
func (c *Call) Caller() account.Identifier {
	return c.CallerID
}

// Executor - the service's own identity
func (c *Call) Executor() account.Identifier {
	return c.ServiceID
}

// AttachedPayment - payment attached to the call
func (c *Call) AttachedPayment() balance.Amount {
	return c.Payment
}

// TransferPayment - forward payment using the daemon supplied hook
func (c *Call) TransferPayment(to account.Identifier, amount balance.Amount) error {
	if nil == c.Transfer {
		return nil
	}
	return c.Transfer(to, amount)
}

// StorageUsed - current storage usage from the metering hook
func (c *Call) StorageUsed() uint64 {
	if nil == c.Metering {
		return 0
	}
	return c.Metering()
}
