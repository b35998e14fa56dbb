// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small helpers shared across the SDK
package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode bytes in the explorer-conventional alphabet
func ToBase58(in []byte) string {
	return base58.Encode(in)
}

// FromBase58 - decode a base58 string
//
// returns an empty slice on malformed input
func FromBase58(in string) []byte {
	out, err := base58.Decode(in)
	if nil != err {
		return []byte{}
	}
	return out
}
