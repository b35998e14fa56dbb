// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"crypto/sha256"
)

// discriminator namespaces fixed by the executor's ABI
const (
	instructionNamespace = "global"
	accountNamespace     = "account"
)

// length of the payload and account data prefix
const DiscriminatorLength = 8

// first 8 bytes of sha256("namespace:name")
func sighash(namespace string, name string) []byte {
	digest := sha256.Sum256([]byte(namespace + ":" + name))
	return digest[:DiscriminatorLength]
}

// Discriminator - payload prefix identifying an operation
func Discriminator(tag OpTag) []byte {
	return sighash(instructionNamespace, tag.Name())
}

// AccountDiscriminator - data prefix identifying a state account layout
func AccountDiscriminator(name string) []byte {
	return sighash(accountNamespace, name)
}
