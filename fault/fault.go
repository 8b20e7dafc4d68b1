// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AllowanceError GenericError
type BalanceError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type PaymentError GenericError
type ProcessError GenericError
type UnauthorizedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrAmountOverflow            = OverflowError("amount overflow")
	ErrAmountUnderflow           = OverflowError("amount underflow")
	ErrArtworkAlreadyRegistered  = ExistsError("artwork is already registered")
	ErrArtworkCidTooLong         = LengthError("artwork cid exceeds maximum length")
	ErrArtworkNotFound           = NotFoundError("artwork cid is not registered")
	ErrCidCannotBeEmpty          = InvalidError("cid cannot be empty")
	ErrCorruptTokenRecord        = ProcessError("token record is corrupt")
	ErrInsufficientAllowance     = AllowanceError("insufficient allowance")
	ErrInsufficientBalance       = BalanceError("insufficient balance")
	ErrInsufficientPayment       = PaymentError("attached payment does not cover storage")
	ErrInvalidAccountIdentifier  = InvalidError("account identifier is invalid")
	ErrInvalidAmount             = InvalidError("amount must be greater than zero")
	ErrInvalidCount              = InvalidError("count must be greater than zero")
	ErrInvalidCursor             = InvalidError("cursor is invalid")
	ErrInvalidLoggerChannel      = ProcessError("invalid logger channel")
	ErrMissingParameters         = ProcessError("missing parameters")
	ErrNotArtistOfRecord         = UnauthorizedError("caller is not the artist of record")
	ErrNotAvailableInReadOnly    = ProcessError("not available in read only mode")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrPaymentMismatch           = PaymentError("attached payment does not equal cost")
	ErrPaymentTransferFailed     = PaymentError("payment transfer failed")
	ErrProfileNotFound           = NotFoundError("profile is not set")
	ErrRateLimiting              = ProcessError("rate limiting")
	ErrTooManyItemsToProcess     = ProcessError("too many items to process")
	ErrUnexpectedDatabaseFailure = ProcessError("unexpected database failure")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AllowanceError) Error() string    { return string(e) }
func (e BalanceError) Error() string      { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e LengthError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e OverflowError) Error() string     { return string(e) }
func (e PaymentError) Error() string      { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e UnauthorizedError) Error() string { return string(e) }

// determine the class of an error
func IsErrAllowance(e error) bool    { _, ok := e.(AllowanceError); return ok }
func IsErrBalance(e error) bool      { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool       { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool     { _, ok := e.(OverflowError); return ok }
func IsErrPayment(e error) bool      { _, ok := e.(PaymentError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrUnauthorized(e error) bool { _, ok := e.(UnauthorizedError); return ok }
