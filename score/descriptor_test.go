// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score_test

import (
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactic-foundry/fleetstake/score"
	"github.com/galactic-foundry/fleetstake/util"
)

// the descriptor must slot straight into a transaction builder
var _ solana.Instruction = (*score.Descriptor)(nil)

func TestDescriptorJSON(t *testing.T) {
	p := testProgram(t)

	d, err := p.Settle(updateAuthority, player, shipMint)
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded struct {
		ProgramID string `json:"programId"`
		Accounts  []struct {
			Pubkey     string `json:"pubkey"`
			IsWritable bool   `json:"isWritable"`
			IsSigner   bool   `json:"isSigner"`
		} `json:"accounts"`
		Data string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, programID.String(), decoded.ProgramID)
	require.Equal(t, len(d.AccountList), len(decoded.Accounts))
	for i, meta := range d.AccountList {
		assert.Equal(t, meta.PublicKey.String(), decoded.Accounts[i].Pubkey, "account %d", i)
		assert.Equal(t, meta.IsWritable, decoded.Accounts[i].IsWritable, "account %d", i)
		assert.Equal(t, meta.IsSigner, decoded.Accounts[i].IsSigner, "account %d", i)
	}
	assert.Equal(t, util.ToBase58(d.Payload), decoded.Data)

	data, err := d.Data()
	require.NoError(t, err)
	assert.Equal(t, d.Payload, data)
	assert.Equal(t, programID, d.ProgramID())
}
