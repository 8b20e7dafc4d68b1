// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/userevolution/furball-dapp/fault"
)

var (
	ErrAllowanceOne    = fault.AllowanceError("allowance one")
	ErrBalanceOne      = fault.BalanceError("balance one")
	ErrExistsOne       = fault.ExistsError("exists one")
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrLengthOne       = fault.LengthError("length one")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrOverflowOne     = fault.OverflowError("overflow one")
	ErrPaymentOne      = fault.PaymentError("payment one")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrUnauthorizedOne = fault.UnauthorizedError("unauthorized one")
)

// test that each error constant only matches its own class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err          error
		allowance    bool
		balance      bool
		exists       bool
		invalid      bool
		length       bool
		notFound     bool
		overflow     bool
		payment      bool
		process      bool
		unauthorized bool
	}{
		{ErrAllowanceOne, true, false, false, false, false, false, false, false, false, false},
		{ErrBalanceOne, false, true, false, false, false, false, false, false, false, false},
		{ErrExistsOne, false, false, true, false, false, false, false, false, false, false},
		{ErrInvalidOne, false, false, false, true, false, false, false, false, false, false},
		{ErrLengthOne, false, false, false, false, true, false, false, false, false, false},
		{ErrNotFoundOne, false, false, false, false, false, true, false, false, false, false},
		{ErrOverflowOne, false, false, false, false, false, false, true, false, false, false},
		{ErrPaymentOne, false, false, false, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, false, false, false, true, false},
		{ErrUnauthorizedOne, false, false, false, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAllowance(err) != e.allowance {
			t.Errorf("%d: expected 'allowance' == %v for err = %v", i, e.allowance, err)
		}
		if fault.IsErrBalance(err) != e.balance {
			t.Errorf("%d: expected 'balance' == %v for err = %v", i, e.balance, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrOverflow(err) != e.overflow {
			t.Errorf("%d: expected 'overflow' == %v for err = %v", i, e.overflow, err)
		}
		if fault.IsErrPayment(err) != e.payment {
			t.Errorf("%d: expected 'payment' == %v for err = %v", i, e.payment, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrUnauthorized(err) != e.unauthorized {
			t.Errorf("%d: expected 'unauthorized' == %v for err = %v", i, e.unauthorized, err)
		}
	}
}

// message text must round trip through the error interface
func TestMessages(t *testing.T) {
	if fault.ErrArtworkNotFound.Error() != "artwork cid is not registered" {
		t.Errorf("unexpected message: %q", fault.ErrArtworkNotFound.Error())
	}
	if fault.ErrPaymentMismatch.Error() != "attached payment does not equal cost" {
		t.Errorf("unexpected message: %q", fault.ErrPaymentMismatch.Error())
	}
}
