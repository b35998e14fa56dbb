// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score_test

import (
	"bytes"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactic-foundry/fleetstake/fault"
	"github.com/galactic-foundry/fleetstake/resource"
	"github.com/galactic-foundry/fleetstake/score"
)

// build account data the way the executor lays it down
func encodeAccount(t *testing.T, name string, v interface{}) []byte {
	t.Helper()
	buffer := new(bytes.Buffer)
	buffer.Write(score.AccountDiscriminator(name))
	require.NoError(t, bin.NewBorshEncoder(buffer).Encode(v))
	return buffer.Bytes()
}

func TestDecodeScoreVars(t *testing.T) {
	original := score.ScoreVars{
		UpdateAuthorityMaster: updateAuthority,
		RewardMint:            rewardMint,
		FuelMint:              fuelMint,
		FoodMint:              foodMint,
		ArmsMint:              armsMint,
		ToolkitMint:           toolkitMint,
		ScoreVarsBump:         254,
	}

	decoded, err := score.DecodeScoreVars(encodeAccount(t, "ScoreVars", original))
	require.NoError(t, err)
	assert.Equal(t, &original, decoded)

	assert.True(t, decoded.HasResourceMint(fuelMint))
	assert.True(t, decoded.HasResourceMint(toolkitMint))
	assert.False(t, decoded.HasResourceMint(shipMint))
	assert.False(t, decoded.HasResourceMint(rewardMint))

	mint, err := decoded.ResourceMint(resource.Arms)
	require.NoError(t, err)
	assert.Equal(t, armsMint, mint)

	_, err = decoded.ResourceMint(resource.Nothing)
	assert.Equal(t, fault.ErrInvalidResource, err)
}

func TestDecodeScoreVarsShip(t *testing.T) {
	original := score.ScoreVarsShip{
		ShipMint:                     shipMint,
		RewardRatePerSecond:          120,
		FuelMaxReserve:               2000,
		FoodMaxReserve:               2100,
		ArmsMaxReserve:               2200,
		ToolkitMaxReserve:            2300,
		MillisecondsToBurnOneFuel:    360000,
		MillisecondsToBurnOneFood:    370000,
		MillisecondsToBurnOneArms:    380000,
		MillisecondsToBurnOneToolkit: 390000,
		ScoreVarsShipBump:            253,
	}

	decoded, err := score.DecodeScoreVarsShip(encodeAccount(t, "ScoreVarsShip", original))
	require.NoError(t, err)
	assert.Equal(t, &original, decoded)
}

func TestDecodeShipStaking(t *testing.T) {
	original := score.ShipStaking{
		Player:                   player,
		ShipMint:                 shipMint,
		ShipQuantityInEscrow:     5,
		FuelQuantityInEscrow:     1000,
		FoodQuantityInEscrow:     900,
		ArmsQuantityInEscrow:     800,
		FuelCurrentCapacity:      700,
		FoodCurrentCapacity:      600,
		ArmsCurrentCapacity:      500,
		HealthCurrentCapacity:    400,
		StakedAtTimestamp:        1700000000,
		CurrentCapacityTimestamp: 1700005000,
		TotalTimeStaked:          86400,
		StakedTimePaid:           43200,
		PendingRewards:           12345,
		TotalRewardsPaid:         67890,
	}

	decoded, err := score.DecodeShipStaking(encodeAccount(t, "ShipStaking", original))
	require.NoError(t, err)
	assert.Equal(t, &original, decoded)
}

func TestDecodeRejectsBadData(t *testing.T) {
	// short data
	_, err := score.DecodeScoreVars([]byte{0x01, 0x02})
	assert.Equal(t, fault.ErrWrongDiscriminator, err)

	// wrong discriminator: a ShipStaking prefix on ScoreVars data
	data := encodeAccount(t, "ShipStaking", score.ScoreVars{})
	_, err = score.DecodeScoreVars(data)
	assert.Equal(t, fault.ErrWrongDiscriminator, err)

	// truncated body
	data = encodeAccount(t, "ScoreVars", score.ScoreVars{})
	_, err = score.DecodeScoreVars(data[:len(data)-4])
	assert.Equal(t, fault.ErrCannotDecodeAccount, err)
}
