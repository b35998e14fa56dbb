// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pda - deterministic program derived addresses
//
// One derivation function per logical account kind, each under its
// own namespace tag so that no two kinds can collide even with
// adversarial key material.  All functions are pure: the same
// (program, seeds) always yields the same (address, bump).
//
// The bump returned with every address proves canonical derivation to
// the on-chain program and must be threaded into the instruction
// payload whenever the instruction creates the account.
package pda
