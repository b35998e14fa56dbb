// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"encoding/json"

	"github.com/gagliardetto/solana-go"

	"github.com/galactic-foundry/fleetstake/util"
)

// Descriptor - an assembled, unsigned instruction
//
// Ephemeral value object: executor identity, ordered account metas
// and the opaque parameter payload.  Implements the solana-go
// Instruction interface so a transaction builder consumes it
// directly.  Never persisted.
type Descriptor struct {
	Program     solana.PublicKey
	AccountList []*solana.AccountMeta
	Payload     []byte
}

// ProgramID - the executor identity
func (d *Descriptor) ProgramID() solana.PublicKey {
	return d.Program
}

// Accounts - ordered account metas with writable and signer flags
func (d *Descriptor) Accounts() []*solana.AccountMeta {
	return d.AccountList
}

// Data - the serialized parameter payload
func (d *Descriptor) Data() ([]byte, error) {
	return d.Payload, nil
}

// JSON shapes follow the explorer convention: keys in base58,
// payload in base58
type descriptorJSON struct {
	ProgramID string            `json:"programId"`
	Accounts  []accountMetaJSON `json:"accounts"`
	Data      string            `json:"data"`
}

type accountMetaJSON struct {
	Pubkey     string `json:"pubkey"`
	IsWritable bool   `json:"isWritable"`
	IsSigner   bool   `json:"isSigner"`
}

// MarshalJSON - explorer-style rendering for logging and CLI output
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	accounts := make([]accountMetaJSON, len(d.AccountList))
	for i, meta := range d.AccountList {
		accounts[i] = accountMetaJSON{
			Pubkey:     meta.PublicKey.String(),
			IsWritable: meta.IsWritable,
			IsSigner:   meta.IsSigner,
		}
	}
	return json.Marshal(descriptorJSON{
		ProgramID: d.Program.String(),
		Accounts:  accounts,
		Data:      util.ToBase58(d.Payload),
	})
}
