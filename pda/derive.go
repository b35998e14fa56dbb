// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pda

import (
	"github.com/gagliardetto/solana-go"

	"github.com/galactic-foundry/fleetstake/fault"
)

// namespace tags - byte-exact wire constants, never change these
const (
	TagScoreVars         = "SCOREVARS"
	TagScoreVarsShip     = "SCOREVARS_SHIP"
	TagEscrow            = "SCORE_ESCROW"
	TagEscrowAuthority   = "SCORE_ESCROW_AUTHORITY"
	TagShipStaking       = "SCORE_INFO"
	TagTreasury          = "SCORE_TREASURY"
	TagTreasuryAuthority = "SCORE_TREASURY_AUTHORITY"
)

// maximum byte length of a single seed component
const MaxSeedLength = 32

// Derive - generic derivation over an ordered seed list
//
// The first seed component must be a namespace tag.  The search nonce
// appended by the underlying derivation is bounded; exhaustion is a
// fatal DerivationError and must be propagated, never retried with
// different seed semantics.
func Derive(programID solana.PublicKey, seeds [][]byte) (solana.PublicKey, uint8, error) {
	if programID.IsZero() {
		return solana.PublicKey{}, 0, fault.ErrZeroIdentity
	}
	if 0 == len(seeds) {
		return solana.PublicKey{}, 0, fault.ErrEmptySeedList
	}
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return solana.PublicKey{}, 0, fault.ErrSeedTooLong
		}
	}

	address, bump, err := solana.FindProgramAddress(seeds, programID)
	if nil != err {
		return solana.PublicKey{}, 0, fault.ErrNoCanonicalAddress
	}
	return address, bump, nil
}

// ScoreVars - the protocol wide configuration singleton
func ScoreVars(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return Derive(programID, [][]byte{
		[]byte(TagScoreVars),
	})
}

// ScoreVarsShip - per ship class configuration
func ScoreVarsShip(programID solana.PublicKey, shipMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	if shipMint.IsZero() {
		return solana.PublicKey{}, 0, fault.ErrZeroIdentity
	}
	return Derive(programID, [][]byte{
		[]byte(TagScoreVarsShip),
		shipMint.Bytes(),
	})
}

// ShipStaking - a player's staking position for one ship class
func ShipStaking(programID solana.PublicKey, player solana.PublicKey, shipMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	if player.IsZero() || shipMint.IsZero() {
		return solana.PublicKey{}, 0, fault.ErrZeroIdentity
	}
	return Derive(programID, [][]byte{
		[]byte(TagShipStaking),
		player.Bytes(),
		shipMint.Bytes(),
	})
}

// Escrow - custody account for a staked ship or an escrowed resource
//
// The kind decides whether a trailing resource mint seed is appended;
// the caller must use the same kind when listing the account in an
// instruction.
func Escrow(programID solana.PublicKey, player solana.PublicKey, shipMint solana.PublicKey, kind EscrowKind) (solana.PublicKey, uint8, error) {
	if player.IsZero() || shipMint.IsZero() {
		return solana.PublicKey{}, 0, fault.ErrZeroIdentity
	}
	trailing, err := kind.trailingSeeds()
	if nil != err {
		return solana.PublicKey{}, 0, err
	}
	seeds := [][]byte{
		[]byte(TagEscrow),
		player.Bytes(),
		shipMint.Bytes(),
	}
	seeds = append(seeds, trailing...)
	return Derive(programID, seeds)
}

// EscrowAuthority - non custodial signer proxy for escrow transfers
//
// Derived per (player, ship) pair independently from the escrow
// accounts themselves; re-derive for every escrow-touching operation,
// never reuse across pairs.
func EscrowAuthority(programID solana.PublicKey, player solana.PublicKey, shipMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	if player.IsZero() || shipMint.IsZero() {
		return solana.PublicKey{}, 0, fault.ErrZeroIdentity
	}
	return Derive(programID, [][]byte{
		[]byte(TagEscrowAuthority),
		player.Bytes(),
		shipMint.Bytes(),
	})
}

// Treasury - protocol wide reward custody token account
func Treasury(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return Derive(programID, [][]byte{
		[]byte(TagTreasury),
	})
}

// TreasuryAuthority - signer proxy for treasury disbursement
func TreasuryAuthority(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return Derive(programID, [][]byte{
		[]byte(TagTreasuryAuthority),
	})
}
