// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/galactic-foundry/fleetstake/configuration"
	"github.com/galactic-foundry/fleetstake/fault"
	"github.com/galactic-foundry/fleetstake/score"
)

// mainnet token mints used when the configuration file does not
// override them
const (
	defaultFuelMint    = "fueL3hBZjLLLJHiFH9cqZoozTG3XQZ53diwFPwbzNim"
	defaultFoodMint    = "foodQJAztMzX1DKpLaiounNe2BDMds5RNuPC6jsNrDG"
	defaultArmsMint    = "ammoK8AkX2wnebQb35cDAZtTkvsXQbi82cGeTnUvvfK"
	defaultToolkitMint = "tooLsNYLiVqzg8o4m3L2Uetbn62mvMWRqkog6PQeYKL"
)

// Configuration - fleetstake-cli settings from the Lua configuration
// file
type Configuration struct {
	ProgramID       string               `gluamapper:"program_id" json:"program_id"`
	RPCEndpoint     string               `gluamapper:"rpc_endpoint" json:"rpc_endpoint"`
	UpdateAuthority string               `gluamapper:"update_authority" json:"update_authority"`
	RewardMint      string               `gluamapper:"reward_mint" json:"reward_mint"`
	FuelMint        string               `gluamapper:"fuel_mint" json:"fuel_mint"`
	FoodMint        string               `gluamapper:"food_mint" json:"food_mint"`
	ArmsMint        string               `gluamapper:"arms_mint" json:"arms_mint"`
	ToolkitMint     string               `gluamapper:"toolkit_mint" json:"toolkit_mint"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		ProgramID:   score.MainnetProgramID.String(),
		RPCEndpoint: rpc.MainNetBeta_RPC,
		RewardMint:  score.MainnetRewardMint.String(),
		FuelMint:    defaultFuelMint,
		FoodMint:    defaultFoodMint,
		ArmsMint:    defaultArmsMint,
		ToolkitMint: defaultToolkitMint,
		Logging: logger.Configuration{
			Count: 10,
			Size:  1048576,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}
}

// getConfiguration - defaults overlaid with the Lua file if one is
// present
func getConfiguration(fileName string) (*Configuration, error) {

	options := defaultConfiguration()

	if "" != fileName {
		if _, err := os.Stat(fileName); nil != err {
			return nil, err
		}
		if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// program - the configured program handle
func (config *Configuration) program() (score.Program, error) {
	id, err := config.key(config.ProgramID)
	if nil != err {
		return score.Program{}, err
	}
	return score.NewProgram(id)
}

// key - decode a base58 public key from the configuration or a
// command line flag
func (config *Configuration) key(value string) (solana.PublicKey, error) {
	if "" == value {
		return solana.PublicKey{}, fault.ErrZeroIdentity
	}
	key, err := solana.PublicKeyFromBase58(value)
	if nil != err {
		return solana.PublicKey{}, fault.InvalidError(err.Error())
	}
	return key, nil
}
