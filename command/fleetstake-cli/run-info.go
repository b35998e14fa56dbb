// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/urfave/cli"

	"github.com/galactic-foundry/fleetstake/score"
)

const rpcTimeout = 30 * time.Second

func infoClient(m *metadata) *score.Client {
	return score.NewClient(m.program, rpc.New(m.config.RPCEndpoint), nil)
}

func runVars(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	vars, err := infoClient(m).ScoreVars(ctx)
	if nil != err {
		return err
	}

	return printJson(m.w, vars)
}

func runShipClass(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	ship, err := infoClient(m).ScoreVarsShip(ctx, shipMint)
	if nil != err {
		return err
	}

	return printJson(m.w, ship)
}

func runStaking(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	player, err := requiredKey(m, c, "player")
	if nil != err {
		return err
	}
	shipMint, err := requiredKey(m, c, "ship-mint")
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	staking, err := infoClient(m).ShipStaking(ctx, player, shipMint)
	if nil != err {
		return err
	}

	return printJson(m.w, staking)
}
