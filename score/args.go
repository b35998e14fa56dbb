// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"bytes"

	bin "github.com/gagliardetto/binary"

	"github.com/galactic-foundry/fleetstake/fault"
)

// operation parameter layouts
//
// Field order is the wire order.  Bumps appear only on operations
// that create the account they disambiguate.

// InitializeArgs - parameters for process_initialize
type InitializeArgs struct {
	ScoreVarsBump uint8
}

// RegisterShipArgs - parameters for process_register_ship
type RegisterShipArgs struct {
	ScoreVarsShipBump            uint8
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

// InitialDepositArgs - parameters for process_initial_deposit
type InitialDepositArgs struct {
	ShipStakingBump uint8
	EscrowBump      uint8
	ShipQuantity    uint64
}

// PartialDepositArgs - parameters for process_partial_deposit
type PartialDepositArgs struct {
	ShipQuantity uint64
}

// ResourceDepositArgs - parameters for process_rearm / refeed / refuel
type ResourceDepositArgs struct {
	EscrowBump uint8
	Quantity   uint64
}

// RepairArgs - parameters for process_repair
type RepairArgs struct {
	Quantity uint64
}

// UpdateRewardRateArgs - parameters for process_update_reward_rate
type UpdateRewardRateArgs struct {
	NewRewardRatePerSecond uint64
}

// encodePayload - discriminator followed by Borsh encoded args
//
// args may be nil for parameterless operations
func encodePayload(tag OpTag, args interface{}) ([]byte, error) {
	if !tag.IsValid() {
		return nil, fault.ErrUnknownOperation
	}

	buffer := new(bytes.Buffer)
	buffer.Write(Discriminator(tag))

	if nil != args {
		encoder := bin.NewBorshEncoder(buffer)
		if err := encoder.Encode(args); nil != err {
			return nil, fault.ErrCannotEncodeParameters
		}
	}
	return buffer.Bytes(), nil
}
