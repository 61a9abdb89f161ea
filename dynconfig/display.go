// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynconfig

import (
	"fmt"
	"strings"

	"github.com/solidcoredata/miniconf/value"
)

// Dump renders t as an indented debug tree, in table insertion order.
// It is meant for logging and test failure output, not round-tripping.
func (t *Table) Dump() string {
	var b strings.Builder
	dumpTable(&b, t, 0)
	return b.String()
}

func dumpTable(b *strings.Builder, t *Table, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range t.Keys() {
		n, _ := t.Get(key)
		dumpNode(b, key, n, depth, indent)
	}
}

func dumpNode(b *strings.Builder, key string, n Node, depth int, indent string) {
	switch n.Kind {
	case value.Table:
		fmt.Fprintf(b, "%s%s:\n", indent, key)
		sub, _ := n.Table()
		dumpTable(b, sub, depth+1)
	case value.Array:
		a, _ := n.Array()
		fmt.Fprintf(b, "%s%s = [", indent, key)
		for i := 0; i < a.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			elem, _ := a.Get(uint32(i))
			b.WriteString(elem.GoString())
		}
		b.WriteString("]\n")
	default:
		fmt.Fprintf(b, "%s%s = %s\n", indent, key, n.GoString())
	}
}
