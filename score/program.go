// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"github.com/gagliardetto/solana-go"

	"github.com/galactic-foundry/fleetstake/fault"
)

// deployed identities of the executor and its collaborators
var (
	// mainnet deployment of the fleet staking program
	MainnetProgramID = solana.MustPublicKeyFromBase58("FLEET1qqzpexyaDpqb2DGsSzE2sDCizewCg9WjrA6DBW")

	// mainnet reward token mint
	MainnetRewardMint = solana.MustPublicKeyFromBase58("ATLASXmbPQxBUYbxPsV97usA3fPQYEqzQBUHgiFCUsXx")
)

// Program - immutable executor configuration
//
// A Program value replaces any process-wide program handle: construct
// once, pass explicitly to every assembly call site.  All derived
// addresses use exactly this identity as their derivation domain;
// mixing domains is a protocol violation.
type Program struct {
	id solana.PublicKey
}

// NewProgram - create the assembly entry point for one deployed
// program identity
func NewProgram(programID solana.PublicKey) (Program, error) {
	if programID.IsZero() {
		return Program{}, fault.ErrZeroIdentity
	}
	return Program{id: programID}, nil
}

// MainnetProgram - convenience constructor for the mainnet deployment
func MainnetProgram() Program {
	return Program{id: MainnetProgramID}
}

// ID - the program identity used as derivation domain
func (p Program) ID() solana.PublicKey {
	return p.id
}
