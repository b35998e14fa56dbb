// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// fleetstake-cli - command line tool for the fleet staking program
//
// assembles instructions for every program operation and prints them
// as JSON ready for signing, and fetches on-chain program state over
// RPC for the info commands
package main
