// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/galactic-foundry/fleetstake/score"
)

type metadata struct {
	file    string
	config  *Configuration
	program score.Program
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "fleetstake-cli"
	app.Usage = "assemble and inspect fleet staking program operations"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` (default: $XDG_CONFIG_HOME/fleetstake/fleetstake.conf if present)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "initialize",
			Usage:     "assemble the one-time program initialisation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "update-authority, u",
					Value: "",
					Usage: "*program update authority `KEY`",
				},
				cli.StringFlag{
					Name:  "reward-mint",
					Value: "",
					Usage: " reward token mint `KEY` [configured value]",
				},
			},
			Action: runInitialize,
		},
		{
			Name:      "register-ship",
			Usage:     "assemble registration of one ship class",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "update-authority, u",
					Value: "",
					Usage: "*program update authority `KEY`",
				},
				cli.StringFlag{
					Name:  "ship-mint, s",
					Value: "",
					Usage: "*ship class mint `KEY`",
				},
				cli.Uint64Flag{
					Name:  "reward-rate, r",
					Usage: "*reward rate in token units per second `RATE`",
				},
				cli.UintFlag{
					Name:  "fuel-reserve",
					Usage: "*fuel capacity `UNITS`",
				},
				cli.UintFlag{
					Name:  "food-reserve",
					Usage: "*food capacity `UNITS`",
				},
				cli.UintFlag{
					Name:  "arms-reserve",
					Usage: "*arms capacity `UNITS`",
				},
				cli.UintFlag{
					Name:  "toolkit-reserve",
					Usage: "*toolkit capacity `UNITS`",
				},
				cli.UintFlag{
					Name:  "fuel-burn",
					Usage: "*milliseconds to burn one fuel `MS`",
				},
				cli.UintFlag{
					Name:  "food-burn",
					Usage: "*milliseconds to burn one food `MS`",
				},
				cli.UintFlag{
					Name:  "arms-burn",
					Usage: "*milliseconds to burn one arms `MS`",
				},
				cli.UintFlag{
					Name:  "toolkit-burn",
					Usage: "*milliseconds to burn one toolkit `MS`",
				},
			},
			Action: runRegisterShip,
		},
		{
			Name:      "update-reward-rate",
			Usage:     "assemble a reward rate change for one ship class",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "update-authority, u",
					Value: "",
					Usage: "*program update authority `KEY`",
				},
				cli.StringFlag{
					Name:  "ship-mint, s",
					Value: "",
					Usage: "*ship class mint `KEY`",
				},
				cli.Uint64Flag{
					Name:  "reward-rate, r",
					Usage: "*new reward rate in token units per second `RATE`",
				},
			},
			Action: runUpdateRewardRate,
		},
		{
			Name:      "settle",
			Usage:     "assemble a reward settlement for one staking account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "update-authority, u",
					Value: "",
					Usage: "*program update authority `KEY`",
				},
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
			},
			Action: runSettle,
		},
		{
			Name:      "deposit",
			Usage:     "assemble the first ship deposit creating the staking account",
			ArgsUsage: "\n   (* = required)",
			Flags: append(fleetFlags(),
				cli.StringFlag{
					Name:  "faction, f",
					Value: "",
					Usage: "*player faction account `KEY`",
				},
				cli.Uint64Flag{
					Name:  "quantity, q",
					Usage: "*number of ships `COUNT`",
				},
			),
			Action: runDeposit,
		},
		{
			Name:      "partial-deposit",
			Usage:     "assemble an additional ship deposit to an existing staking account",
			ArgsUsage: "\n   (* = required)",
			Flags: append(fleetFlags(),
				cli.Uint64Flag{
					Name:  "quantity, q",
					Usage: "*number of ships `COUNT`",
				},
			),
			Action: runPartialDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "assemble the full fleet withdrawal",
			ArgsUsage: "\n   (* = required)",
			Flags:     fleetFlags(),
			Action:    runWithdraw,
		},
		{
			Name:      "refuel",
			Usage:     "assemble a fuel deposit",
			ArgsUsage: "\n   (* = required)",
			Flags:     resourceFlags(),
			Action:    runResourceDeposit,
		},
		{
			Name:      "refeed",
			Usage:     "assemble a food deposit",
			ArgsUsage: "\n   (* = required)",
			Flags:     resourceFlags(),
			Action:    runResourceDeposit,
		},
		{
			Name:      "rearm",
			Usage:     "assemble an arms deposit",
			ArgsUsage: "\n   (* = required)",
			Flags:     resourceFlags(),
			Action:    runResourceDeposit,
		},
		{
			Name:      "repair",
			Usage:     "assemble a toolkit burn",
			ArgsUsage: "\n   (* = required)",
			Flags: append(resourceFlags(),
				cli.StringFlag{
					Name:  "burn-destination, b",
					Value: "",
					Usage: "*toolkit burn destination token account `KEY`",
				},
			),
			Action: runRepair,
		},
		{
			Name:      "harvest",
			Usage:     "assemble a reward withdrawal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
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
					Usage: "*player reward token account `KEY`",
				},
			},
			Action: runHarvest,
		},
		{
			Name:   "vars",
			Usage:  "fetch and display the global program configuration",
			Action: runVars,
		},
		{
			Name:      "ship-class",
			Usage:     "fetch and display one ship class configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "ship-mint, s",
					Value: "",
					Usage: "*ship class mint `KEY`",
				},
			},
			Action: runShipClass,
		},
		{
			Name:      "staking",
			Usage:     "fetch and display one staking account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
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
			},
			Action: runStaking,
		},
		{
			Name:   "version",
			Usage:  "display version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file for certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			if p := os.Getenv("XDG_CONFIG_HOME"); "" != p {
				candidate := path.Join(p, "fleetstake", "fleetstake.conf")
				if _, err := os.Stat(candidate); nil == err {
					file = candidate
				}
			}
		}

		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := getConfiguration(file)
		if nil != err {
			return err
		}

		if "" != config.Logging.Directory {
			if err := logger.Initialise(config.Logging); nil != err {
				return err
			}
		}

		program, err := config.program()
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			program: program,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && "" != m.config.Logging.Directory {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
