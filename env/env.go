// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package env - the hosting execution environment
//
// Every public operation executes on behalf of a caller and may carry
// an attached payment.  The host supplies these facts, together with
// the payment transfer primitive and storage usage metering, through
// the Environment interface.  The service itself never fabricates a
// caller identity.
package env

import (
	"github.com/userevolution/furball-dapp/account"
	"github.com/userevolution/furball-dapp/balance"
)

// Environment - host collaborator contract for a single call
type Environment interface {

	// Caller - identity that directly invoked the current operation
	Caller() account.Identifier

	// Executor - the service's own identity, used as the
	// marketplace escrow/operator account
	Executor() account.Identifier

	// AttachedPayment - payment attached to the current call,
	// zero if none
	AttachedPayment() balance.Amount

	// TransferPayment - irrevocably send amount of the host's
	// native payment unit to the given account
	TransferPayment(to account.Identifier, amount balance.Amount) error

	// StorageUsed - current persistent storage usage in bytes
	StorageUsed() uint64
}
