// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/galactic-foundry/fleetstake/score"
)

func runInitialize(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	updateAuthority, err := requiredKey(m, c, "update-authority")
	if nil != err {
		return err
	}
	rewardMint, err := optionalKey(m, c, "reward-mint", m.config.RewardMint)
	if nil != err {
		return err
	}
	fuelMint, err := m.config.key(m.config.FuelMint)
	if nil != err {
		return err
	}
	foodMint, err := m.config.key(m.config.FoodMint)
	if nil != err {
		return err
	}
	armsMint, err := m.config.key(m.config.ArmsMint)
	if nil != err {
		return err
	}
	toolkitMint, err := m.config.key(m.config.ToolkitMint)
	if nil != err {
		return err
	}

	descriptor, err := m.program.Initialize(updateAuthority, rewardMint, fuelMint, foodMint, armsMint, toolkitMint)
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}

func runRegisterShip(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	updateAuthority, err := requiredKey(m, c, "update-authority")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}

	params := score.ShipClassParams{
		RewardRatePerSecond:          c.Uint64("reward-rate"),
		FuelMaxReserve:               uint32(c.Uint("fuel-reserve")),
		FoodMaxReserve:               uint32(c.Uint("food-reserve")),
		ArmsMaxReserve:               uint32(c.Uint("arms-reserve")),
		ToolkitMaxReserve:            uint32(c.Uint("toolkit-reserve")),
		MillisecondsToBurnOneFuel:    uint32(c.Uint("fuel-burn")),
		MillisecondsToBurnOneFood:    uint32(c.Uint("food-burn")),
		MillisecondsToBurnOneArms:    uint32(c.Uint("arms-burn")),
		MillisecondsToBurnOneToolkit: uint32(c.Uint("toolkit-burn")),
	}

	descriptor, err := m.program.RegisterShip(updateAuthority, shipMint, params)
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}

func runUpdateRewardRate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	updateAuthority, err := requiredKey(m, c, "update-authority")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}

	descriptor, err := m.program.UpdateRewardRate(updateAuthority, shipMint, c.Uint64("reward-rate"))
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}

func runSettle(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	updateAuthority, err := requiredKey(m, c, "update-authority")
	if nil != err {
		return err
	}
	player, err := requiredKey(m, c, "player")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}

	descriptor, err := m.program.Settle(updateAuthority, player, shipMint)
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}
