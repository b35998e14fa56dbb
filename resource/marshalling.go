// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource

// convert a resource into JSON
func (resource Resource) MarshalText() ([]byte, error) {
	return []byte(resource.String()), nil
}

// convert resource string to a resource enumeration value from JSON
func (resource *Resource) UnmarshalText(s []byte) error {
	r, err := fromString(string(s))
	if nil != err {
		return err
	}
	*resource = r
	return nil
}
