// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pda

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/galactic-foundry/fleetstake/fault"
)

// escrow custody classes
type custodyClass int

const (
	shipCustody custodyClass = iota
	resourceCustody
)

// EscrowKind - which asset an escrow account holds custody of
//
// Ship custody carries no extra seed component; resource custody
// appends the resource mint as a trailing seed.  Construct only with
// ShipCustody or ResourceCustody so the two cases stay exhaustively
// distinguishable and no nil checks are needed.
type EscrowKind struct {
	class custodyClass
	mint  solana.PublicKey
}

// ShipCustody - escrow holding the staked ship asset itself
func ShipCustody() EscrowKind {
	return EscrowKind{class: shipCustody}
}

// ResourceCustody - escrow holding a single consumable resource
func ResourceCustody(resourceMint solana.PublicKey) EscrowKind {
	return EscrowKind{
		class: resourceCustody,
		mint:  resourceMint,
	}
}

// IsResource - true for resource custody escrow
func (kind EscrowKind) IsResource() bool {
	return resourceCustody == kind.class
}

// ResourceMint - the escrowed resource mint
//
// ok is false for ship custody
func (kind EscrowKind) ResourceMint() (solana.PublicKey, bool) {
	if resourceCustody != kind.class {
		return solana.PublicKey{}, false
	}
	return kind.mint, true
}

// for debugging
func (kind EscrowKind) GoString() string {
	if resourceCustody == kind.class {
		return fmt.Sprintf("<EscrowKind:resource:%s>", kind.mint)
	}
	return "<EscrowKind:ship>"
}

// validate the kind and return the trailing seed components it adds
func (kind EscrowKind) trailingSeeds() ([][]byte, error) {
	switch kind.class {
	case shipCustody:
		return nil, nil
	case resourceCustody:
		if kind.mint.IsZero() {
			return nil, fault.ErrMissingResourceMint
		}
		return [][]byte{kind.mint.Bytes()}, nil
	default:
		return nil, fault.ErrInvalidResource
	}
}
