// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/galactic-foundry/fleetstake/fault"
)

var (
	ErrComposeOne    = fault.ComposeError("compose one")
	ErrComposeTwo    = fault.ComposeError("compose two")
	ErrDerivationOne = fault.DerivationError("derivation one")
	ErrDerivationTwo = fault.DerivationError("derivation two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
)

// test that the various error classes stay distinguishable
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		compose    bool
		derivation bool
		invalid    bool
		notFound   bool
		process    bool
	}{
		{ErrComposeOne, true, false, false, false, false},
		{ErrComposeTwo, true, false, false, false, false},
		{ErrDerivationOne, false, true, false, false, false},
		{ErrDerivationTwo, false, true, false, false, false},
		{ErrInvalidOne, false, false, true, false, false},
		{ErrInvalidTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrCompose(err) != e.compose {
			t.Errorf("%d: expected 'compose' == %v for err = %v", i, e.compose, err)
		}
		if fault.IsErrDerivation(err) != e.derivation {
			t.Errorf("%d: expected 'derivation' == %v for err = %v", i, e.derivation, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// the shared instances must keep their documented classes
func TestSharedInstances(t *testing.T) {
	if !fault.IsErrInvalid(fault.ErrEmptySeedList) {
		t.Errorf("ErrEmptySeedList is not an invalid error")
	}
	if !fault.IsErrInvalid(fault.ErrZeroIdentity) {
		t.Errorf("ErrZeroIdentity is not an invalid error")
	}
	if !fault.IsErrDerivation(fault.ErrNoCanonicalAddress) {
		t.Errorf("ErrNoCanonicalAddress is not a derivation error")
	}
	if !fault.IsErrCompose(fault.ErrMissingAccountRole) {
		t.Errorf("ErrMissingAccountRole is not a compose error")
	}
	if !fault.IsErrNotFound(fault.ErrAccountNotFound) {
		t.Errorf("ErrAccountNotFound is not a not-found error")
	}
}
