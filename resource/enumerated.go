// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/galactic-foundry/fleetstake/fault"
)

// resource enumeration
type Resource uint64

// possible resource values
const (
	Nothing      Resource = iota // this must be the first value
	Fuel         Resource = iota
	Food         Resource = iota
	Arms         Resource = iota
	Toolkit      Resource = iota
	maximumValue Resource = iota // this must be the last value
	First        Resource = Nothing + 1
	Last         Resource = maximumValue - 1
	Count        int      = int(Last) // count of resources
)

// internal conversion
func toString(r Resource) ([]byte, error) {
	switch r {
	case Nothing:
		return []byte{}, nil
	case Fuel:
		return []byte("FUEL"), nil
	case Food:
		return []byte("FOOD"), nil
	case Arms:
		return []byte("ARMS"), nil
	case Toolkit:
		return []byte("TOOLKIT"), nil
	default:
		return []byte{}, fault.ErrInvalidResource
	}
}

// convert a string to a resource
func fromString(in string) (Resource, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "fuel":
		return Fuel, nil
	case "food":
		return Food, nil
	case "arms", "ammo", "armament":
		return Arms, nil
	case "toolkit", "tool", "tools":
		return Toolkit, nil
	default:
		return Nothing, fault.ErrInvalidResource
	}
}

// convert a resource to its string symbol
func (resource Resource) String() string {
	s, err := toString(resource)
	if nil != err {
		logger.Panicf("invalid resource enumeration: %d", resource)
	}
	return string(s)
}

// convert both enum value and symbol, for debugging
func (resource Resource) GoString() string {
	return fmt.Sprintf("<Resource#%d:%q>", resource, resource.String())
}

// convert a resource string
func (resource *Resource) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := fromString(string(token))
	if nil != err {
		return err
	}

	*resource = parsed
	return nil
}

// valid resource if in range of First to Last
// Nothing is not considered as valid
func (resource Resource) IsValid() bool {
	return resource >= First && resource <= Last
}

// convert a valid resource to a zero based array index
func (resource Resource) Index() int {
	if !resource.IsValid() {
		logger.Panicf("resource.Index: invalid resource: %d", resource)
	}
	return int(resource - First) // zero based index
}

// underlying value for payload encoding
func (resource Resource) Uint64() uint64 {
	return uint64(resource)
}
