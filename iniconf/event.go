// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf

import "github.com/solidcoredata/miniconf/value"

// Value is one decoded scalar leaf (Bool, I64, F64 or String) ready to be
// handed to a Sink. Parse never constructs an Array or Table Value
// directly; those are built by the StartSection/StartArray/End* calls.
type Value struct {
	Kind value.Kind
	B    bool
	I    int64
	F    float64
	S    string
}

// Sink receives the stream of structural events Parse emits as it walks
// an INI document, and answers the duplicate-key/section queries the FSM
// needs in order to apply the configured policy without knowing the
// sink's internal representation. dynconfig.Tree implements Sink to
// build the default in-memory result, which binconfig.FromTree can then
// compile into the compact binary format.
type Sink interface {
	// ContainsKey reports whether key already exists directly in the
	// current table: exists is false if it doesn't, exists && isSection
	// if it does and is itself a table, exists && !isSection if it does
	// and is a leaf or array.
	ContainsKey(key string) (isSection, exists bool)

	// StartSection opens the child table named key under the current
	// table and makes it current, pushing the prior current table onto
	// an implicit stack. overwrite clears any existing entry of that
	// name first (DupSectionsLast / DupKeysLast).
	StartSection(key string, overwrite bool)
	// EndSection pops back to the table that was current before the
	// matching StartSection.
	EndSection()

	// AddValue adds a scalar key/value pair to the current table.
	// overwrite clears any existing entry of that name first.
	AddValue(key string, v Value, overwrite bool)

	// StartArray begins a new, empty array value under key in the
	// current table. overwrite clears any existing entry of that name
	// first.
	StartArray(key string, overwrite bool)
	// AddArrayValue appends a scalar to the most recently started array
	// that hasn't yet been closed by EndArray.
	AddArrayValue(v Value)
	// EndArray closes the array opened by the matching StartArray.
	EndArray(key string)
}
