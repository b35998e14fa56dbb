// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"github.com/gagliardetto/solana-go"

	"github.com/galactic-foundry/fleetstake/fault"
	"github.com/galactic-foundry/fleetstake/pda"
	"github.com/galactic-foundry/fleetstake/resource"
)

// reject zero-value caller identities before any derivation
func allNonZero(keys ...solana.PublicKey) error {
	for _, key := range keys {
		if key.IsZero() {
			return fault.ErrZeroIdentity
		}
	}
	return nil
}

// Initialize - create the protocol wide singletons
//
// run once per program identity; the five mints are recorded in
// ScoreVars as the protocol whitelist
func (p Program) Initialize(updateAuthority solana.PublicKey, rewardMint solana.PublicKey, fuelMint solana.PublicKey, foodMint solana.PublicKey, armsMint solana.PublicKey, toolkitMint solana.PublicKey) (*Descriptor, error) {
	err := allNonZero(updateAuthority, rewardMint, fuelMint, foodMint, armsMint, toolkitMint)
	if nil != err {
		return nil, err
	}

	scoreVars, scoreVarsBump, err := pda.ScoreVars(p.id)
	if nil != err {
		return nil, err
	}
	treasury, _, err := pda.Treasury(p.id)
	if nil != err {
		return nil, err
	}
	treasuryAuthority, _, err := pda.TreasuryAuthority(p.id)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(InitializeTag, &InitializeArgs{
		ScoreVarsBump: scoreVarsBump,
	})
	if nil != err {
		return nil, err
	}

	return p.compose(InitializeTag, map[string]solana.PublicKey{
		"updateAuthority":   updateAuthority,
		"scoreVars":         scoreVars,
		"treasury":          treasury,
		"treasuryAuthority": treasuryAuthority,
		"rewardMint":        rewardMint,
		"fuelMint":          fuelMint,
		"foodMint":          foodMint,
		"armsMint":          armsMint,
		"toolkitMint":       toolkitMint,
	}, payload)
}

// ShipClassParams - per ship class economics for RegisterShip
type ShipClassParams struct {
	RewardRatePerSecond          uint64
	FuelMaxReserve               uint32
	FoodMaxReserve               uint32
	ArmsMaxReserve               uint32
	ToolkitMaxReserve            uint32
	MillisecondsToBurnOneFuel    uint32
	MillisecondsToBurnOneFood    uint32
	MillisecondsToBurnOneArms    uint32
	MillisecondsToBurnOneToolkit uint32
}

// RegisterShip - create the configuration for one ship class
func (p Program) RegisterShip(updateAuthority solana.PublicKey, shipMint solana.PublicKey, params ShipClassParams) (*Descriptor, error) {
	err := allNonZero(updateAuthority, shipMint)
	if nil != err {
		return nil, err
	}

	scoreVarsShip, scoreVarsShipBump, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVars, _, err := pda.ScoreVars(p.id)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(RegisterShipTag, &RegisterShipArgs{
		ScoreVarsShipBump:            scoreVarsShipBump,
		RewardRatePerSecond:          params.RewardRatePerSecond,
		FuelMaxReserve:               params.FuelMaxReserve,
		FoodMaxReserve:               params.FoodMaxReserve,
		ArmsMaxReserve:               params.ArmsMaxReserve,
		ToolkitMaxReserve:            params.ToolkitMaxReserve,
		MillisecondsToBurnOneFuel:    params.MillisecondsToBurnOneFuel,
		MillisecondsToBurnOneFood:    params.MillisecondsToBurnOneFood,
		MillisecondsToBurnOneArms:    params.MillisecondsToBurnOneArms,
		MillisecondsToBurnOneToolkit: params.MillisecondsToBurnOneToolkit,
	})
	if nil != err {
		return nil, err
	}

	return p.compose(RegisterShipTag, map[string]solana.PublicKey{
		"updateAuthority": updateAuthority,
		"scoreVarsShip":   scoreVarsShip,
		"scoreVars":       scoreVars,
		"shipMint":        shipMint,
	}, payload)
}

// InitialDeposit - stake ships, creating the staking position
//
// faction is the player's faction account resolved by the external
// registry; Client.InitialDeposit resolves it automatically
func (p Program) InitialDeposit(player solana.PublicKey, faction solana.PublicKey, shipMint solana.PublicKey, playerShipTokenAccount solana.PublicKey, shipQuantity uint64) (*Descriptor, error) {
	err := allNonZero(player, faction, shipMint, playerShipTokenAccount)
	if nil != err {
		return nil, err
	}

	escrowAuthority, _, err := pda.EscrowAuthority(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	shipEscrow, escrowBump, err := pda.Escrow(p.id, player, shipMint, pda.ShipCustody())
	if nil != err {
		return nil, err
	}
	shipStaking, stakingBump, err := pda.ShipStaking(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVarsShip, _, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(InitialDepositTag, &InitialDepositArgs{
		ShipStakingBump: stakingBump,
		EscrowBump:      escrowBump,
		ShipQuantity:    shipQuantity,
	})
	if nil != err {
		return nil, err
	}

	return p.compose(InitialDepositTag, map[string]solana.PublicKey{
		"player":                 player,
		"faction":                faction,
		"escrowAuthority":        escrowAuthority,
		"shipEscrow":             shipEscrow,
		"shipStaking":            shipStaking,
		"scoreVarsShip":          scoreVarsShip,
		"playerShipTokenAccount": playerShipTokenAccount,
		"shipMint":               shipMint,
	}, payload)
}

// PartialDeposit - stake more ships on an existing position
func (p Program) PartialDeposit(player solana.PublicKey, shipMint solana.PublicKey, playerShipTokenAccount solana.PublicKey, shipQuantity uint64) (*Descriptor, error) {
	err := allNonZero(player, shipMint, playerShipTokenAccount)
	if nil != err {
		return nil, err
	}

	escrowAuthority, _, err := pda.EscrowAuthority(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	shipEscrow, _, err := pda.Escrow(p.id, player, shipMint, pda.ShipCustody())
	if nil != err {
		return nil, err
	}
	shipStaking, _, err := pda.ShipStaking(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVarsShip, _, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(PartialDepositTag, &PartialDepositArgs{
		ShipQuantity: shipQuantity,
	})
	if nil != err {
		return nil, err
	}

	return p.compose(PartialDepositTag, map[string]solana.PublicKey{
		"player":                 player,
		"escrowAuthority":        escrowAuthority,
		"shipEscrow":             shipEscrow,
		"shipStaking":            shipStaking,
		"scoreVarsShip":          scoreVarsShip,
		"playerShipTokenAccount": playerShipTokenAccount,
		"shipMint":               shipMint,
	}, payload)
}

// Refuel - escrow fuel for a staked position
func (p Program) Refuel(player solana.PublicKey, shipMint solana.PublicKey, fuelMint solana.PublicKey, playerFuelTokenAccount solana.PublicKey, quantity uint64) (*Descriptor, error) {
	return p.depositResource(RefuelTag, player, shipMint, fuelMint, playerFuelTokenAccount, quantity)
}

// Refeed - escrow food for a staked position
func (p Program) Refeed(player solana.PublicKey, shipMint solana.PublicKey, foodMint solana.PublicKey, playerFoodTokenAccount solana.PublicKey, quantity uint64) (*Descriptor, error) {
	return p.depositResource(RefeedTag, player, shipMint, foodMint, playerFoodTokenAccount, quantity)
}

// Rearm - escrow arms for a staked position
func (p Program) Rearm(player solana.PublicKey, shipMint solana.PublicKey, armsMint solana.PublicKey, playerArmsTokenAccount solana.PublicKey, quantity uint64) (*Descriptor, error) {
	return p.depositResource(RearmTag, player, shipMint, armsMint, playerArmsTokenAccount, quantity)
}

// DepositResource - escrow deposit selected by resource kind
//
// Toolkit is rejected: toolkits are consumed through Repair, they are
// never escrowed
func (p Program) DepositResource(r resource.Resource, player solana.PublicKey, shipMint solana.PublicKey, resourceMint solana.PublicKey, playerResourceTokenAccount solana.PublicKey, quantity uint64) (*Descriptor, error) {
	tag, ok := ResourceDepositTag(r)
	if !ok {
		return nil, fault.ErrInvalidResource
	}
	return p.depositResource(tag, player, shipMint, resourceMint, playerResourceTokenAccount, quantity)
}

// the three escrow deposits share every step except the discriminator
func (p Program) depositResource(tag OpTag, player solana.PublicKey, shipMint solana.PublicKey, resourceMint solana.PublicKey, playerResourceTokenAccount solana.PublicKey, quantity uint64) (*Descriptor, error) {
	err := allNonZero(player, shipMint, playerResourceTokenAccount)
	if nil != err {
		return nil, err
	}
	if resourceMint.IsZero() {
		return nil, fault.ErrMissingResourceMint
	}

	escrowAuthority, _, err := pda.EscrowAuthority(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	resourceEscrow, escrowBump, err := pda.Escrow(p.id, player, shipMint, pda.ResourceCustody(resourceMint))
	if nil != err {
		return nil, err
	}
	shipStaking, _, err := pda.ShipStaking(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVarsShip, _, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVars, _, err := pda.ScoreVars(p.id)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(tag, &ResourceDepositArgs{
		EscrowBump: escrowBump,
		Quantity:   quantity,
	})
	if nil != err {
		return nil, err
	}

	return p.compose(tag, map[string]solana.PublicKey{
		"player":                     player,
		"escrowAuthority":            escrowAuthority,
		"resourceEscrow":             resourceEscrow,
		"shipStaking":                shipStaking,
		"scoreVarsShip":              scoreVarsShip,
		"scoreVars":                  scoreVars,
		"playerResourceTokenAccount": playerResourceTokenAccount,
		"resourceMint":               resourceMint,
		"shipMint":                   shipMint,
	}, payload)
}

// Repair - burn toolkits against the position's health reserve
//
// no escrow is involved: burnDestination receives the burned supply
func (p Program) Repair(player solana.PublicKey, shipMint solana.PublicKey, toolkitMint solana.PublicKey, playerToolkitTokenAccount solana.PublicKey, burnDestination solana.PublicKey, quantity uint64) (*Descriptor, error) {
	err := allNonZero(player, shipMint, playerToolkitTokenAccount, burnDestination)
	if nil != err {
		return nil, err
	}
	if toolkitMint.IsZero() {
		return nil, fault.ErrMissingResourceMint
	}

	shipStaking, _, err := pda.ShipStaking(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVarsShip, _, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVars, _, err := pda.ScoreVars(p.id)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(RepairTag, &RepairArgs{
		Quantity: quantity,
	})
	if nil != err {
		return nil, err
	}

	return p.compose(RepairTag, map[string]solana.PublicKey{
		"player":                    player,
		"shipStaking":               shipStaking,
		"scoreVarsShip":             scoreVarsShip,
		"scoreVars":                 scoreVars,
		"playerToolkitTokenAccount": playerToolkitTokenAccount,
		"burnDestination":           burnDestination,
		"toolkitMint":               toolkitMint,
		"shipMint":                  shipMint,
	}, payload)
}

// Settle - recompute the accrued reward for one position
//
// player is key material for the position derivation only; the update
// authority signs.  A settle must precede harvest for a consistent
// balance.
func (p Program) Settle(updateAuthority solana.PublicKey, player solana.PublicKey, shipMint solana.PublicKey) (*Descriptor, error) {
	err := allNonZero(updateAuthority, player, shipMint)
	if nil != err {
		return nil, err
	}

	shipStaking, _, err := pda.ShipStaking(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVarsShip, _, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVars, _, err := pda.ScoreVars(p.id)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(SettleTag, nil)
	if nil != err {
		return nil, err
	}

	return p.compose(SettleTag, map[string]solana.PublicKey{
		"updateAuthority": updateAuthority,
		"shipStaking":     shipStaking,
		"scoreVarsShip":   scoreVarsShip,
		"scoreVars":       scoreVars,
		"shipMint":        shipMint,
	}, payload)
}

// Harvest - pay the accrued reward out of the treasury
func (p Program) Harvest(player solana.PublicKey, shipMint solana.PublicKey, playerRewardTokenAccount solana.PublicKey) (*Descriptor, error) {
	err := allNonZero(player, shipMint, playerRewardTokenAccount)
	if nil != err {
		return nil, err
	}

	shipStaking, _, err := pda.ShipStaking(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVarsShip, _, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}
	treasury, _, err := pda.Treasury(p.id)
	if nil != err {
		return nil, err
	}
	treasuryAuthority, _, err := pda.TreasuryAuthority(p.id)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(HarvestTag, nil)
	if nil != err {
		return nil, err
	}

	return p.compose(HarvestTag, map[string]solana.PublicKey{
		"player":                   player,
		"shipStaking":              shipStaking,
		"scoreVarsShip":            scoreVarsShip,
		"treasury":                 treasury,
		"treasuryAuthority":        treasuryAuthority,
		"playerRewardTokenAccount": playerRewardTokenAccount,
	}, payload)
}

// WithdrawShips - return staked ships from escrow to the player
func (p Program) WithdrawShips(player solana.PublicKey, shipMint solana.PublicKey, playerShipTokenAccount solana.PublicKey) (*Descriptor, error) {
	err := allNonZero(player, shipMint, playerShipTokenAccount)
	if nil != err {
		return nil, err
	}

	escrowAuthority, _, err := pda.EscrowAuthority(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	shipEscrow, _, err := pda.Escrow(p.id, player, shipMint, pda.ShipCustody())
	if nil != err {
		return nil, err
	}
	shipStaking, _, err := pda.ShipStaking(p.id, player, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVarsShip, _, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVars, _, err := pda.ScoreVars(p.id)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(WithdrawShipsTag, nil)
	if nil != err {
		return nil, err
	}

	return p.compose(WithdrawShipsTag, map[string]solana.PublicKey{
		"player":                 player,
		"escrowAuthority":        escrowAuthority,
		"shipEscrow":             shipEscrow,
		"shipStaking":            shipStaking,
		"scoreVarsShip":          scoreVarsShip,
		"scoreVars":              scoreVars,
		"playerShipTokenAccount": playerShipTokenAccount,
		"shipMint":               shipMint,
	}, payload)
}

// UpdateRewardRate - change the reward rate of one ship class
func (p Program) UpdateRewardRate(updateAuthority solana.PublicKey, shipMint solana.PublicKey, newRewardRatePerSecond uint64) (*Descriptor, error) {
	err := allNonZero(updateAuthority, shipMint)
	if nil != err {
		return nil, err
	}

	scoreVarsShip, _, err := pda.ScoreVarsShip(p.id, shipMint)
	if nil != err {
		return nil, err
	}
	scoreVars, _, err := pda.ScoreVars(p.id)
	if nil != err {
		return nil, err
	}

	payload, err := encodePayload(UpdateRewardRateTag, &UpdateRewardRateArgs{
		NewRewardRatePerSecond: newRewardRatePerSecond,
	})
	if nil != err {
		return nil, err
	}

	return p.compose(UpdateRewardRateTag, map[string]solana.PublicKey{
		"updateAuthority": updateAuthority,
		"scoreVarsShip":   scoreVarsShip,
		"scoreVars":       scoreVars,
		"shipMint":        shipMint,
	}, payload)
}
