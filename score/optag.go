// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"github.com/galactic-foundry/fleetstake/resource"
)

// OpTag - type code for protocol operations
type OpTag uint64

// enumerate the possible operations
const (
	// null marks beginning of list - not used as an operation
	NullTag = OpTag(iota)

	// valid operations
	InitializeTag       = OpTag(iota) // create protocol singletons
	RegisterShipTag     = OpTag(iota) // create per ship class config
	InitialDepositTag   = OpTag(iota) // create staking position, stake ships
	PartialDepositTag   = OpTag(iota) // stake more ships on an open position
	RearmTag            = OpTag(iota) // escrow arms
	RefeedTag           = OpTag(iota) // escrow food
	RefuelTag           = OpTag(iota) // escrow fuel
	RepairTag           = OpTag(iota) // burn toolkits, no escrow
	SettleTag           = OpTag(iota) // recompute accrued reward
	HarvestTag          = OpTag(iota) // pay accrued reward from treasury
	WithdrawShipsTag    = OpTag(iota) // return staked ships to the player
	UpdateRewardRateTag = OpTag(iota) // change a ship class reward rate

	// this item must be last
	InvalidTag = OpTag(iota)
)

// wire names drive the payload discriminator - never change these
var opNames = map[OpTag]string{
	InitializeTag:       "process_initialize",
	RegisterShipTag:     "process_register_ship",
	InitialDepositTag:   "process_initial_deposit",
	PartialDepositTag:   "process_partial_deposit",
	RearmTag:            "process_rearm",
	RefeedTag:           "process_refeed",
	RefuelTag:           "process_refuel",
	RepairTag:           "process_repair",
	SettleTag:           "process_settle",
	HarvestTag:          "process_harvest",
	WithdrawShipsTag:    "process_withdraw_ships",
	UpdateRewardRateTag: "process_update_reward_rate",
}

// Name - the operation's wire name
//
// empty for out of range tags
func (tag OpTag) Name() string {
	return opNames[tag]
}

// IsValid - operation in the assembleable range
func (tag OpTag) IsValid() bool {
	return tag > NullTag && tag < InvalidTag
}

// map a resource to its escrow deposit operation
//
// Toolkit is not an escrow deposit: toolkits burn through repair
var resourceOps = map[resource.Resource]OpTag{
	resource.Fuel: RefuelTag,
	resource.Food: RefeedTag,
	resource.Arms: RearmTag,
}

// ResourceDepositTag - the escrow deposit operation for a resource
//
// ok is false for Toolkit and out of range values
func ResourceDepositTag(r resource.Resource) (OpTag, bool) {
	tag, ok := resourceOps[r]
	return tag, ok
}
