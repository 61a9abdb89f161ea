// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynconfig

import "testing"

func TestTableDump(t *testing.T) {
	root := NewTable()
	mustSet(t, root, "name", StringNode("widget"))

	arr := NewArray()
	mustPush(t, arr, I64Node(1))
	mustPush(t, arr, I64Node(2))
	mustSet(t, root, "values", ArrayNode(arr))

	inner := NewTable()
	mustSet(t, inner, "leaf", BoolNode(true))
	mustSet(t, root, "section", TableNode(inner))

	want := "name = \"widget\"\n" +
		"values = [1, 2]\n" +
		"section:\n" +
		"  leaf = true\n"

	got := root.Dump()
	if got != want {
		t.Fatalf("Dump() =\n%q\nwant\n%q", got, want)
	}
}
