// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli"

	"github.com/galactic-foundry/fleetstake/fault"
)

// flags shared by all fleet commands
func fleetFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "player, p",
			Value: "",
			Usage: "*player wallet `KEY`",
		},
		cli.StringFlag{
			Name:  "ship-mint, s",
			Value: "",
			Usage: "*ship class mint `KEY`",
		},
		cli.StringFlag{
			Name:  "token-account, t",
			Value: "",
			Usage: "*player ship token account `KEY`",
		},
	}
}

// flags shared by the resource deposit commands
func resourceFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "player, p",
			Value: "",
			Usage: "*player wallet `KEY`",
		},
		cli.StringFlag{
			Name:  "ship-mint, s",
			Value: "",
			Usage: "*ship class mint `KEY`",
		},
		cli.StringFlag{
			Name:  "mint, m",
			Value: "",
			Usage: " resource mint `KEY` [configured value]",
		},
		cli.StringFlag{
			Name:  "token-account, t",
			Value: "",
			Usage: "*player resource token account `KEY`",
		},
		cli.Uint64Flag{
			Name:  "quantity, q",
			Usage: "*resource units `COUNT`",
		},
	}
}

// requiredKey - decode a required public key flag
func requiredKey(m *metadata, c *cli.Context, name string) (solana.PublicKey, error) {
	value := c.String(name)
	if "" == value {
		return solana.PublicKey{}, fault.InvalidError(fmt.Sprintf("missing argument: --%s", name))
	}
	return m.config.key(value)
}

// optionalKey - decode a public key flag with a configured fallback
func optionalKey(m *metadata, c *cli.Context, name string, fallback string) (solana.PublicKey, error) {
	value := c.String(name)
	if "" == value {
		value = fallback
	}
	return m.config.key(value)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
