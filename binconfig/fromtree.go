// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binconfig

import (
	"github.com/solidcoredata/miniconf/dynconfig"
	"github.com/solidcoredata/miniconf/value"
)

// FromTree compiles a dynconfig.Table into a binary-config buffer by
// driving a Writer: every container's child count is known up front,
// since dynconfig.Table and dynconfig.Array already carry it.
func FromTree(root *dynconfig.Table) ([]byte, error) {
	w := New(root.Len())
	writeTreeTable(w, root)
	return w.Finish()
}

func writeTreeTable(w *Writer, t *dynconfig.Table) {
	for _, key := range t.Keys() {
		n, _ := t.Get(key)
		writeTreeNode(w, key, n)
	}
}

func writeTreeArray(w *Writer, a *dynconfig.Array) {
	for i := 0; i < a.Len(); i++ {
		n, _ := a.Get(uint32(i))
		writeTreeNode(w, "", n)
	}
}

func writeTreeNode(w *Writer, key string, n dynconfig.Node) {
	switch n.Kind {
	case value.Bool:
		v, _ := n.Bool()
		w.Bool(key, v)
	case value.I64:
		v, _ := n.I64()
		w.I64(key, v)
	case value.F64:
		v, _ := n.F64()
		w.F64(key, v)
	case value.String:
		v, _ := n.String()
		w.String(key, v)
	case value.Array:
		a, _ := n.Array()
		w.Array(key, a.Len())
		writeTreeArray(w, a)
		w.End()
	case value.Table:
		sub, _ := n.Table()
		w.Table(key, sub.Len())
		writeTreeTable(w, sub)
		w.End()
	}
}
