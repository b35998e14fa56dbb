// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
//
// ComposeError marks internal invariant violations in instruction
// assembly: these indicate a programming error, not bad caller input.
// DerivationError is fatal for the given seeds and must not be retried
// with the same inputs.
type ComposeError GenericError
type DerivationError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound        = NotFoundError("account does not exist")
	ErrCannotDecodeAccount    = ProcessError("cannot decode account data")
	ErrCannotEncodeParameters = ProcessError("cannot encode instruction parameters")
	ErrDuplicateAccountRole   = ComposeError("duplicate account role")
	ErrEmptySeedList          = InvalidError("seed list is empty")
	ErrInvalidResource        = InvalidError("invalid resource")
	ErrMissingAccountRole     = ComposeError("account role is missing")
	ErrMissingResourceMint    = InvalidError("resource mint is required")
	ErrNoCanonicalAddress     = DerivationError("no collision-free address for seeds")
	ErrNoFactionLookup        = InvalidError("faction lookup is not configured")
	ErrRateLimiting           = ProcessError("rate limiting")
	ErrSeedTooLong            = InvalidError("seed component is too long")
	ErrUnknownOperation       = ComposeError("operation is unknown")
	ErrWrongAccountCount      = ComposeError("account count does not match layout")
	ErrWrongDiscriminator     = ProcessError("account discriminator mismatch")
	ErrZeroIdentity           = InvalidError("identity must not be zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ComposeError) Error() string    { return string(e) }
func (e DerivationError) Error() string { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrCompose(e error) bool    { _, ok := e.(ComposeError); return ok }
func IsErrDerivation(e error) bool { _, ok := e.(DerivationError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
