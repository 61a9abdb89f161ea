// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynconfig implements a mutable, heap-allocated configuration
// tree: the default destination for a parsed .ini document, and a
// convenient API for building or editing configuration data
// programmatically before writing it out as .ini or as a binary config.
package dynconfig

import (
	"fmt"

	"github.com/solidcoredata/miniconf/iniconf"
	"github.com/solidcoredata/miniconf/value"
)

// Node is one value in the tree: a leaf (Bool/I64/F64/String) or a
// composite (Array/Table).
type Node struct {
	Kind value.Kind

	b bool
	i int64
	f float64
	s string
	a *Array
	t *Table
}

func BoolNode(b bool) Node     { return Node{Kind: value.Bool, b: b} }
func I64Node(i int64) Node     { return Node{Kind: value.I64, i: i} }
func F64Node(f float64) Node   { return Node{Kind: value.F64, f: f} }
func StringNode(s string) Node { return Node{Kind: value.String, s: s} }
func ArrayNode(a *Array) Node  { return Node{Kind: value.Array, a: a} }
func TableNode(t *Table) Node  { return Node{Kind: value.Table, t: t} }

// Bool, I64, F64, String, Array and Table return the node's payload and
// whether its Kind matches; I64/F64 also succeed when the stored Kind is
// compatible per value.Kind.IsCompatible (I64<->F64), converting the
// payload.
func (n Node) Bool() (bool, bool)     { return n.b, n.Kind == value.Bool }
func (n Node) String() (string, bool) { return n.s, n.Kind == value.String }

func (n Node) I64() (int64, bool) {
	switch n.Kind {
	case value.I64:
		return n.i, true
	case value.F64:
		return int64(n.f), true
	default:
		return 0, false
	}
}

func (n Node) F64() (float64, bool) {
	switch n.Kind {
	case value.F64:
		return n.f, true
	case value.I64:
		return float64(n.i), true
	default:
		return 0, false
	}
}

func (n Node) Array() (*Array, bool) { return n.a, n.Kind == value.Array }
func (n Node) Table() (*Table, bool) { return n.t, n.Kind == value.Table }

func (n Node) GoString() string {
	switch n.Kind {
	case value.Bool:
		return fmt.Sprintf("%v", n.b)
	case value.I64:
		return fmt.Sprintf("%d", n.i)
	case value.F64:
		return fmt.Sprintf("%g", n.f)
	case value.String:
		return fmt.Sprintf("%q", n.s)
	case value.Array:
		return fmt.Sprintf("array[%d]", n.a.Len())
	case value.Table:
		return fmt.Sprintf("table[%d]", n.t.Len())
	default:
		return "<invalid>"
	}
}

func nodeFromValue(v iniconf.Value) Node {
	switch v.Kind {
	case value.Bool:
		return BoolNode(v.B)
	case value.I64:
		return I64Node(v.I)
	case value.F64:
		return F64Node(v.F)
	default:
		return StringNode(v.S)
	}
}
