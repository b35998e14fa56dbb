// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/galactic-foundry/fleetstake/util"
)

func TestBase58(t *testing.T) {
	testList := []struct {
		raw     []byte
		encoded string
	}{
		{[]byte{}, ""},
		{[]byte{0x00}, "1"},
		{[]byte{0x61}, "2g"},
		{[]byte{0x62, 0x62, 0x62}, "a3gV"},
		{[]byte("simply a long string"), "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	}

	for index, test := range testList {
		encoded := util.ToBase58(test.raw)
		if test.encoded != encoded {
			t.Errorf("%d: encode: %q  expected: %q", index, encoded, test.encoded)
		}
		decoded := util.FromBase58(test.encoded)
		if !bytes.Equal(test.raw, decoded) {
			t.Errorf("%d: decode: %x  expected: %x", index, decoded, test.raw)
		}
	}
}

func TestFromBase58Malformed(t *testing.T) {
	for index, test := range []string{"0", "O", "I", "l", "!"} {
		decoded := util.FromBase58(test)
		if 0 != len(decoded) {
			t.Errorf("%d: malformed input %q decoded to: %x", index, test, decoded)
		}
	}
}
