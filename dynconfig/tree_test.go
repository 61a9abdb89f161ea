// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynconfig

import (
	"testing"

	"github.com/solidcoredata/miniconf/iniconf"
	"github.com/solidcoredata/miniconf/value"
)

func TestTreeContainsKey(t *testing.T) {
	tr := NewTree()
	tr.AddValue("a", iniconf.Value{Kind: value.I64, I: 1}, true)

	isSection, exists := tr.ContainsKey("a")
	if !exists || isSection {
		t.Fatalf("ContainsKey(a) = %v, %v, want false, true", isSection, exists)
	}
	_, exists = tr.ContainsKey("missing")
	if exists {
		t.Fatal("ContainsKey(missing) reported exists")
	}
}

func TestTreeSectionNesting(t *testing.T) {
	tr := NewTree()
	tr.StartSection("outer", true)
	tr.AddValue("x", iniconf.Value{Kind: value.I64, I: 1}, true)
	tr.StartSection("inner", true)
	tr.AddValue("y", iniconf.Value{Kind: value.I64, I: 2}, true)
	tr.EndSection()
	tr.EndSection()

	outer, err := tr.Root().GetTable("outer")
	if err != nil {
		t.Fatalf("GetTable(outer): %v", err)
	}
	x, err := outer.GetI64("x")
	if err != nil || x != 1 {
		t.Fatalf("outer.x = %d, %v, want 1, nil", x, err)
	}
	inner, err := outer.GetTable("inner")
	if err != nil {
		t.Fatalf("GetTable(inner): %v", err)
	}
	y, err := inner.GetI64("y")
	if err != nil || y != 2 {
		t.Fatalf("inner.y = %d, %v, want 2, nil", y, err)
	}
}

func TestTreeAddValueNoOverwriteKeepsFirst(t *testing.T) {
	tr := NewTree()
	tr.AddValue("a", iniconf.Value{Kind: value.I64, I: 1}, true)
	// overwrite=false against an existing key must leave the first value.
	tr.AddValue("a", iniconf.Value{Kind: value.I64, I: 2}, false)

	got, err := tr.Root().GetI64("a")
	if err != nil || got != 1 {
		t.Fatalf("a = %d, %v, want 1, nil", got, err)
	}
}

func TestTreeArrayRoundTrip(t *testing.T) {
	tr := NewTree()
	tr.StartArray("arr", true)
	tr.AddArrayValue(iniconf.Value{Kind: value.I64, I: 1})
	tr.AddArrayValue(iniconf.Value{Kind: value.I64, I: 2})
	tr.EndArray("arr")

	arr, err := tr.Root().GetArray("arr")
	if err != nil {
		t.Fatalf("GetArray: %v", err)
	}
	if arr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", arr.Len())
	}
	v, err := arr.GetI64(0)
	if err != nil || v != 1 {
		t.Fatalf("arr[0] = %d, %v, want 1, nil", v, err)
	}
}

func TestTreeEndArrayReplacesOnOverwrite(t *testing.T) {
	tr := NewTree()
	tr.StartArray("arr", true)
	tr.AddArrayValue(iniconf.Value{Kind: value.I64, I: 1})
	tr.EndArray("arr")

	// A second array under the same key, started with overwrite, replaces
	// the first rather than appending to it.
	tr.StartArray("arr", true)
	tr.AddArrayValue(iniconf.Value{Kind: value.I64, I: 9})
	tr.EndArray("arr")

	arr, err := tr.Root().GetArray("arr")
	if err != nil {
		t.Fatalf("GetArray: %v", err)
	}
	if arr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", arr.Len())
	}
	v, _ := arr.GetI64(0)
	if v != 9 {
		t.Fatalf("arr[0] = %d, want 9", v)
	}
}

func TestTreeSinkInterface(t *testing.T) {
	var _ iniconf.Sink = NewTree()
}
