// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/galactic-foundry/fleetstake/fault"
	"github.com/galactic-foundry/fleetstake/resource"
)

// on-chain account layouts
//
// Field order is the wire order after the 8 byte account
// discriminator.  These are read-only mirrors: the executor is the
// sole writer.

// ScoreVars - protocol wide configuration singleton
type ScoreVars struct {
	UpdateAuthorityMaster solana.PublicKey
	RewardMint            solana.PublicKey
	FuelMint              solana.PublicKey
	FoodMint              solana.PublicKey
	ArmsMint              solana.PublicKey
	ToolkitMint           solana.PublicKey
	ScoreVarsBump         uint8
}

// HasResourceMint - advisory whitelist check
//
// Assembly never enforces this: whether a supplied resource mint is
// registered is the executor's rule.  Callers that want an early
// answer can consult fetched state through this helper.
func (vars *ScoreVars) HasResourceMint(mint solana.PublicKey) bool {
	switch mint {
	case vars.FuelMint, vars.FoodMint, vars.ArmsMint, vars.ToolkitMint:
		return true
	default:
		return false
	}
}

// ResourceMint - the registered mint for a resource kind
func (vars *ScoreVars) ResourceMint(r resource.Resource) (solana.PublicKey, error) {
	switch r {
	case resource.Fuel:
		return vars.FuelMint, nil
	case resource.Food:
		return vars.FoodMint, nil
	case resource.Arms:
		return vars.ArmsMint, nil
	case resource.Toolkit:
		return vars.ToolkitMint, nil
	default:
		return solana.PublicKey{}, fault.ErrInvalidResource
	}
}

// ScoreVarsShip - per ship class economics
type ScoreVarsShip struct {
	ShipMint                     solana.PublicKey
	RewardRatePerSecond          uint64
	FuelMaxReserve               uint32
	FoodMaxReserve               uint32
	ArmsMaxReserve               uint32
	ToolkitMaxReserve            uint32
	MillisecondsToBurnOneFuel    uint32
	MillisecondsToBurnOneFood    uint32
	MillisecondsToBurnOneArms    uint32
	MillisecondsToBurnOneToolkit uint32
	ScoreVarsShipBump            uint8
}

// ShipStaking - one player's staking position for one ship class
type ShipStaking struct {
	Player                   solana.PublicKey
	ShipMint                 solana.PublicKey
	ShipQuantityInEscrow     uint64
	FuelQuantityInEscrow     uint64
	FoodQuantityInEscrow     uint64
	ArmsQuantityInEscrow     uint64
	FuelCurrentCapacity      uint64
	FoodCurrentCapacity      uint64
	ArmsCurrentCapacity      uint64
	HealthCurrentCapacity    uint64
	StakedAtTimestamp        int64
	CurrentCapacityTimestamp int64
	TotalTimeStaked          uint64
	StakedTimePaid           uint64
	PendingRewards           uint64
	TotalRewardsPaid         uint64
}

// account layout names fixed by the executor's ABI
const (
	scoreVarsAccountName     = "ScoreVars"
	scoreVarsShipAccountName = "ScoreVarsShip"
	shipStakingAccountName   = "ShipStaking"
)

// strip and verify the discriminator prefix
func accountBody(name string, data []byte) ([]byte, error) {
	if len(data) < DiscriminatorLength {
		return nil, fault.ErrWrongDiscriminator
	}
	if !bytes.Equal(AccountDiscriminator(name), data[:DiscriminatorLength]) {
		return nil, fault.ErrWrongDiscriminator
	}
	return data[DiscriminatorLength:], nil
}

// DecodeScoreVars - decode a fetched ScoreVars account
func DecodeScoreVars(data []byte) (*ScoreVars, error) {
	body, err := accountBody(scoreVarsAccountName, data)
	if nil != err {
		return nil, err
	}
	vars := &ScoreVars{}
	if err := bin.NewBorshDecoder(body).Decode(vars); nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	return vars, nil
}

// DecodeScoreVarsShip - decode a fetched ScoreVarsShip account
func DecodeScoreVarsShip(data []byte) (*ScoreVarsShip, error) {
	body, err := accountBody(scoreVarsShipAccountName, data)
	if nil != err {
		return nil, err
	}
	ship := &ScoreVarsShip{}
	if err := bin.NewBorshDecoder(body).Decode(ship); nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	return ship, nil
}

// DecodeShipStaking - decode a fetched ShipStaking account
func DecodeShipStaking(data []byte) (*ShipStaking, error) {
	body, err := accountBody(shipStakingAccountName, data)
	if nil != err {
		return nil, err
	}
	staking := &ShipStaking{}
	if err := bin.NewBorshDecoder(body).Decode(staking); nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	return staking, nil
}
