// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"github.com/gagliardetto/solana-go"

	"github.com/galactic-foundry/fleetstake/fault"
)

// one row of an operation's account layout
//
// a non-zero fixed key marks a well-known identity supplied by the
// layout itself rather than by the builder
type accountRole struct {
	name       string
	isWritable bool
	isSigner   bool
	fixed      solana.PublicKey
}

// shorthand for table rows
func ro(name string) accountRole         { return accountRole{name: name} }
func rw(name string) accountRole         { return accountRole{name: name, isWritable: true} }
func signer(name string) accountRole     { return accountRole{name: name, isWritable: true, isSigner: true} }
func roSigner(name string) accountRole   { return accountRole{name: name, isSigner: true} }
func fixedRo(k solana.PublicKey) accountRole {
	return accountRole{name: k.String(), fixed: k}
}

// program and sysvar tails
var (
	tokenProgramRole  = fixedRo(solana.TokenProgramID)
	systemProgramRole = fixedRo(solana.SystemProgramID)
	rentSysvarRole    = fixedRo(solana.SysVarRentPubkey)
)

// the single source of truth for account ordering and flags
//
// order within each row list is the executor's expected wire order
var operationLayout = map[OpTag][]accountRole{

	InitializeTag: {
		signer("updateAuthority"),
		rw("scoreVars"),
		rw("treasury"),
		ro("treasuryAuthority"),
		ro("rewardMint"),
		ro("fuelMint"),
		ro("foodMint"),
		ro("armsMint"),
		ro("toolkitMint"),
		tokenProgramRole,
		systemProgramRole,
		rentSysvarRole,
	},

	RegisterShipTag: {
		signer("updateAuthority"),
		rw("scoreVarsShip"),
		ro("scoreVars"),
		ro("shipMint"),
		systemProgramRole,
		rentSysvarRole,
	},

	InitialDepositTag: {
		signer("player"),
		ro("faction"),
		ro("escrowAuthority"),
		rw("shipEscrow"),
		rw("shipStaking"),
		ro("scoreVarsShip"),
		rw("playerShipTokenAccount"),
		ro("shipMint"),
		tokenProgramRole,
		systemProgramRole,
		rentSysvarRole,
	},

	PartialDepositTag: {
		signer("player"),
		ro("escrowAuthority"),
		rw("shipEscrow"),
		rw("shipStaking"),
		ro("scoreVarsShip"),
		rw("playerShipTokenAccount"),
		ro("shipMint"),
		tokenProgramRole,
	},

	RearmTag:  resourceDepositLayout,
	RefeedTag: resourceDepositLayout,
	RefuelTag: resourceDepositLayout,

	RepairTag: {
		signer("player"),
		rw("shipStaking"),
		ro("scoreVarsShip"),
		ro("scoreVars"),
		rw("playerToolkitTokenAccount"),
		rw("burnDestination"),
		rw("toolkitMint"),
		ro("shipMint"),
		tokenProgramRole,
	},

	SettleTag: {
		roSigner("updateAuthority"),
		rw("shipStaking"),
		ro("scoreVarsShip"),
		ro("scoreVars"),
		ro("shipMint"),
	},

	HarvestTag: {
		signer("player"),
		rw("shipStaking"),
		ro("scoreVarsShip"),
		rw("treasury"),
		ro("treasuryAuthority"),
		rw("playerRewardTokenAccount"),
		tokenProgramRole,
	},

	WithdrawShipsTag: {
		signer("player"),
		ro("escrowAuthority"),
		rw("shipEscrow"),
		rw("shipStaking"),
		ro("scoreVarsShip"),
		ro("scoreVars"),
		rw("playerShipTokenAccount"),
		ro("shipMint"),
		tokenProgramRole,
	},

	UpdateRewardRateTag: {
		roSigner("updateAuthority"),
		rw("scoreVarsShip"),
		ro("scoreVars"),
		ro("shipMint"),
	},
}

// the three resource escrow deposits share one wire shape; they
// differ only by discriminator and by which mint the caller supplies
var resourceDepositLayout = []accountRole{
	signer("player"),
	ro("escrowAuthority"),
	rw("resourceEscrow"),
	rw("shipStaking"),
	ro("scoreVarsShip"),
	ro("scoreVars"),
	rw("playerResourceTokenAccount"),
	ro("resourceMint"),
	ro("shipMint"),
	tokenProgramRole,
	systemProgramRole,
	rentSysvarRole,
}

// compose - build a descriptor from an operation's layout
//
// accounts must cover exactly the non-fixed roles of the layout;
// any mismatch is a programming error in the calling builder
func (p Program) compose(tag OpTag, accounts map[string]solana.PublicKey, payload []byte) (*Descriptor, error) {
	layout, ok := operationLayout[tag]
	if !ok {
		return nil, fault.ErrUnknownOperation
	}

	supplied := 0
	metas := make([]*solana.AccountMeta, 0, len(layout))
	for _, role := range layout {
		key := role.fixed
		if key.IsZero() {
			key, ok = accounts[role.name]
			if !ok || key.IsZero() {
				return nil, fault.ErrMissingAccountRole
			}
			supplied += 1
		}
		metas = append(metas, &solana.AccountMeta{
			PublicKey:  key,
			IsWritable: role.isWritable,
			IsSigner:   role.isSigner,
		})
	}
	if supplied != len(accounts) {
		return nil, fault.ErrWrongAccountCount
	}

	return &Descriptor{
		Program:     p.id,
		AccountList: metas,
		Payload:     payload,
	}, nil
}
