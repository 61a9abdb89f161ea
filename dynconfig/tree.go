// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynconfig

import (
	"github.com/solidcoredata/miniconf/iniconf"
	"github.com/solidcoredata/miniconf/value"
)

// Tree is the default destination for iniconf.Parse: a mutable,
// nested table/array structure built up from the parser's event stream.
// It implements iniconf.Sink.
type Tree struct {
	root *Table

	// tableStack holds the chain of tables from root to the currently
	// open section, root first. It always has at least one entry.
	tableStack []*Table
	// arrayStack holds the arrays currently being filled, outermost
	// first, so AddArrayValue always appends to the last entry.
	arrayStack []*Array
	// arrayKeyStack remembers the key each open array in arrayStack was
	// started under, so EndArray can box it back into its table.
	arrayKeyStack []string
}

// NewTree returns an empty Tree ready to be passed to iniconf.Parse.
func NewTree() *Tree {
	root := NewTable()
	return &Tree{root: root, tableStack: []*Table{root}}
}

// Root returns the tree's top-level table.
func (t *Tree) Root() *Table { return t.root }

func (t *Tree) current() *Table {
	return t.tableStack[len(t.tableStack)-1]
}

func (t *Tree) ContainsKey(key string) (isSection, exists bool) {
	n, ok := t.current().Get(key)
	if !ok {
		return false, false
	}
	return n.Kind == value.Table, true
}

func (t *Tree) StartSection(key string, overwrite bool) {
	cur := t.current()
	var sub *Table
	if overwrite {
		sub = NewTable()
		cur.Set(key, TableNode(sub))
	} else if n, ok := cur.Get(key); ok {
		sub, _ = n.Table()
	} else {
		sub = NewTable()
		cur.Set(key, TableNode(sub))
	}
	t.tableStack = append(t.tableStack, sub)
}

func (t *Tree) EndSection() {
	if len(t.tableStack) > 1 {
		t.tableStack = t.tableStack[:len(t.tableStack)-1]
	}
}

func (t *Tree) AddValue(key string, v iniconf.Value, overwrite bool) {
	cur := t.current()
	if !overwrite {
		if _, ok := cur.Get(key); ok {
			// Policy decisions (Forbid/First) are already enforced by the
			// parser before AddValue is ever called with overwrite=false
			// against an existing key; a collision here means First, so
			// the existing value wins and this one is dropped.
			return
		}
	}
	cur.Set(key, nodeFromValue(v))
}

func (t *Tree) StartArray(key string, overwrite bool) {
	a := NewArray()
	cur := t.current()
	if overwrite {
		cur.Set(key, ArrayNode(a))
	} else if _, ok := cur.Get(key); !ok {
		cur.Set(key, ArrayNode(a))
	}
	t.arrayStack = append(t.arrayStack, a)
	t.arrayKeyStack = append(t.arrayKeyStack, key)
}

func (t *Tree) AddArrayValue(v iniconf.Value) {
	if len(t.arrayStack) == 0 {
		return
	}
	a := t.arrayStack[len(t.arrayStack)-1]
	a.Push(nodeFromValue(v))
}

func (t *Tree) EndArray(key string) {
	if len(t.arrayStack) == 0 {
		return
	}
	a := t.arrayStack[len(t.arrayStack)-1]
	t.arrayStack = t.arrayStack[:len(t.arrayStack)-1]
	t.arrayKeyStack = t.arrayKeyStack[:len(t.arrayKeyStack)-1]

	cur := t.current()
	if n, ok := cur.Get(key); ok {
		if existing, isArr := n.Array(); isArr && existing == a {
			return
		}
	}
	cur.Set(key, ArrayNode(a))
}

var _ iniconf.Sink = (*Tree)(nil)
