// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/galactic-foundry/fleetstake/resource"
)

type resourceTest struct {
	str string
	r   resource.Resource
	j   string
}

var valid = []resourceTest{
	{"fuel", resource.Fuel, `"FUEL"`},
	{"FUEL", resource.Fuel, `"FUEL"`},
	{"Fuel", resource.Fuel, `"FUEL"`},
	{"food", resource.Food, `"FOOD"`},
	{"FOOD", resource.Food, `"FOOD"`},
	{"arms", resource.Arms, `"ARMS"`},
	{"ARMS", resource.Arms, `"ARMS"`},
	{"ammo", resource.Arms, `"ARMS"`},
	{"Armament", resource.Arms, `"ARMS"`},
	{"toolkit", resource.Toolkit, `"TOOLKIT"`},
	{"TOOLKIT", resource.Toolkit, `"TOOLKIT"`},
	{"tools", resource.Toolkit, `"TOOLKIT"`},
}

var invalid = []string{
	"389749837598",
	"null",
	"a b",
	"ore",
}

func TestValidString(t *testing.T) {
	for index, test := range valid {

		var r resource.Resource
		n, err := fmt.Sscan(test.str, &r)
		if nil != err {
			t.Fatalf("%d: string to resource error: %s", index, err)
		}

		if 1 != n {
			t.Fatalf("%d: scanned %d items expected to scan 1", index, n)
		}

		if r != test.r {
			t.Errorf("%d: %q converted to: %#v  expected: %#v", index, test.str, r, test.r)
		}

		buffer, err := json.Marshal(r)
		if nil != err {
			t.Fatalf("%d: resource to JSON error: %s", index, err)
		}

		if test.j != string(buffer) {
			t.Errorf("%d: %#v converted to JSON: %q  expected: %q", index, r, buffer, test.j)
		}

		var back resource.Resource
		err = json.Unmarshal(buffer, &back)
		if nil != err {
			t.Fatalf("%d: JSON to resource error: %s", index, err)
		}
		if back != test.r {
			t.Errorf("%d: JSON %q converted to: %#v  expected: %#v", index, buffer, back, test.r)
		}
	}
}

func TestInvalidString(t *testing.T) {
	for index, test := range invalid {
		var r resource.Resource
		_, err := fmt.Sscan(test, &r)
		if nil == err {
			t.Errorf("%d: %q converted without error to: %#v", index, test, r)
		}
	}
}

func TestValidity(t *testing.T) {
	if resource.Nothing.IsValid() {
		t.Errorf("Nothing is valid")
	}
	if resource.Count != 4 {
		t.Errorf("resource count: %d  expected: 4", resource.Count)
	}

	indexes := make(map[int]bool)
	for r := resource.First; r <= resource.Last; r += 1 {
		if !r.IsValid() {
			t.Errorf("%#v is not valid", r)
		}
		index := r.Index()
		if index < 0 || index >= resource.Count {
			t.Errorf("%#v index out of range: %d", r, index)
		}
		if indexes[index] {
			t.Errorf("%#v duplicates index: %d", r, index)
		}
		indexes[index] = true
	}
}
