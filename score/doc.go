// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package score - instruction assembly for the fleet staking program
//
// One exported builder per protocol operation.  Every builder follows
// the same shape: validate the caller supplied identities, derive the
// protocol accounts, serialize the operation parameters and compose
// the ordered account list from the operation's layout table.  The
// result is a Descriptor ready for an external transaction builder;
// nothing here signs, submits or waits.
//
// Builders are pure and idempotent: identical inputs produce byte
// identical descriptors, so they may be called concurrently without
// coordination.  Business rules (balances, state ordering,
// authorization) are enforced by the on-chain program, never here.
package score
