// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/galactic-foundry/fleetstake/fault"
	"github.com/galactic-foundry/fleetstake/resource"
)

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	player, err := requiredKey(m, c, "player")
	if nil != err {
		return err
	}
	faction, err := requiredKey(m, c, "faction")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}
	tokenAccount, err := requiredKey(m, c, "token-account")
	if nil != err {
		return err
	}

	descriptor, err := m.program.InitialDeposit(player, faction, shipMint, tokenAccount, c.Uint64("quantity"))
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}

func runPartialDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	player, err := requiredKey(m, c, "player")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}
	tokenAccount, err := requiredKey(m, c, "token-account")
	if nil != err {
		return err
	}

	descriptor, err := m.program.PartialDeposit(player, shipMint, tokenAccount, c.Uint64("quantity"))
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	player, err := requiredKey(m, c, "player")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}
	tokenAccount, err := requiredKey(m, c, "token-account")
	if nil != err {
		return err
	}

	descriptor, err := m.program.WithdrawShips(player, shipMint, tokenAccount)
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}

// map the resource commands to their resource kind and configured mint
func commandResource(m *metadata, command string) (resource.Resource, string, error) {
	switch command {
	case "refuel":
		return resource.Fuel, m.config.FuelMint, nil
	case "refeed":
		return resource.Food, m.config.FoodMint, nil
	case "rearm":
		return resource.Arms, m.config.ArmsMint, nil
	default:
		return resource.Nothing, "", fault.ErrInvalidResource
	}
}

func runResourceDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	r, configuredMint, err := commandResource(m, c.Command.Name)
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
	mint, err := optionalKey(m, c, "mint", configuredMint)
	if nil != err {
		return err
	}
	tokenAccount, err := requiredKey(m, c, "token-account")
	if nil != err {
		return err
	}

	descriptor, err := m.program.DepositResource(r, player, shipMint, mint, tokenAccount, c.Uint64("quantity"))
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}

func runRepair(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	player, err := requiredKey(m, c, "player")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}
	toolkitMint, err := optionalKey(m, c, "mint", m.config.ToolkitMint)
	if nil != err {
		return err
	}
	tokenAccount, err := requiredKey(m, c, "token-account")
	if nil != err {
		return err
	}
	burnDestination, err := requiredKey(m, c, "burn-destination")
	if nil != err {
		return err
	}

	descriptor, err := m.program.Repair(player, shipMint, toolkitMint, tokenAccount, burnDestination, c.Uint64("quantity"))
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}

func runHarvest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	player, err := requiredKey(m, c, "player")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}
	tokenAccount, err := requiredKey(m, c, "token-account")
	if nil != err {
		return err
	}

	descriptor, err := m.program.Harvest(player, shipMint, tokenAccount)
	if nil != err {
		return err
	}

	return printJson(m.w, descriptor)
}
