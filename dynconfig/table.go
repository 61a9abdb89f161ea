// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynconfig

import (
	"fmt"

	"github.com/solidcoredata/miniconf/value"
)

// TableGetError reports why a Table lookup failed.
type TableGetError struct {
	KeyDoesNotExist bool
	IncorrectType   value.Kind // valid when !KeyDoesNotExist
}

func (e *TableGetError) Error() string {
	if e.KeyDoesNotExist {
		return "key does not exist in the table"
	}
	return fmt.Sprintf("value is of incorrect type (%s)", e.IncorrectType)
}

// TableSetError reports why Table.Set or Table.Remove failed.
type TableSetError struct {
	KeyDoesNotExist bool
	EmptyKey        bool
}

func (e *TableSetError) Error() string {
	if e.EmptyKey {
		return "table key is empty"
	}
	return "tried to remove a non-existent value from the table"
}

// Table is an insertion-ordered, string-keyed mapping to Nodes.
type Table struct {
	keys   []string
	values map[string]Node
}

func NewTable() *Table {
	return &Table{values: make(map[string]Node)}
}

func (t *Table) Len() int { return len(t.keys) }

// Keys returns the table's keys in insertion order. The returned slice
// must not be mutated.
func (t *Table) Keys() []string { return t.keys }

func (t *Table) Get(key string) (Node, bool) {
	n, ok := t.values[key]
	return n, ok
}

func (t *Table) getTyped(key string, kind value.Kind) (Node, error) {
	n, ok := t.values[key]
	if !ok {
		return Node{}, &TableGetError{KeyDoesNotExist: true}
	}
	if !kind.IsCompatible(n.Kind) {
		return Node{}, &TableGetError{IncorrectType: n.Kind}
	}
	return n, nil
}

func (t *Table) GetBool(key string) (bool, error) {
	n, err := t.getTyped(key, value.Bool)
	if err != nil {
		return false, err
	}
	v, _ := n.Bool()
	return v, nil
}

func (t *Table) GetI64(key string) (int64, error) {
	n, err := t.getTyped(key, value.I64)
	if err != nil {
		return 0, err
	}
	v, _ := n.I64()
	return v, nil
}

func (t *Table) GetF64(key string) (float64, error) {
	n, err := t.getTyped(key, value.F64)
	if err != nil {
		return 0, err
	}
	v, _ := n.F64()
	return v, nil
}

func (t *Table) GetString(key string) (string, error) {
	n, err := t.getTyped(key, value.String)
	if err != nil {
		return "", err
	}
	v, _ := n.String()
	return v, nil
}

func (t *Table) GetArray(key string) (*Array, error) {
	n, err := t.getTyped(key, value.Array)
	if err != nil {
		return nil, err
	}
	a, _ := n.Array()
	return a, nil
}

func (t *Table) GetTable(key string) (*Table, error) {
	n, err := t.getTyped(key, value.Table)
	if err != nil {
		return nil, err
	}
	sub, _ := n.Table()
	return sub, nil
}

// Set inserts or overwrites key with n, preserving key's original
// position in iteration order if it already existed.
func (t *Table) Set(key string, n Node) error {
	if key == "" {
		return &TableSetError{EmptyKey: true}
	}
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	if t.values == nil {
		t.values = make(map[string]Node)
	}
	t.values[key] = n
	return nil
}

// Remove deletes key, reporting TableSetError if it isn't present.
func (t *Table) Remove(key string) error {
	if _, exists := t.values[key]; !exists {
		return &TableSetError{KeyDoesNotExist: true}
	}
	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return nil
}

// GetPathError reports why Table.GetPath failed.
type GetPathError struct {
	Path            []string
	PathDoesNotExist bool
	NotATable       bool
	ValueType       value.Kind
}

func (e *GetPathError) Error() string {
	switch {
	case e.PathDoesNotExist:
		return fmt.Sprintf("path %v does not exist in the table", e.Path)
	case e.NotATable:
		return fmt.Sprintf("value at %v is not a table, but a %s", e.Path, e.ValueType)
	default:
		return fmt.Sprintf("value at %v is of incorrect type (%s)", e.Path, e.ValueType)
	}
}

// GetPath walks a `.`-style sequence of table keys, requiring every
// non-terminal element to be itself a table.
func (t *Table) GetPath(path ...string) (Node, error) {
	cur := t
	for i, key := range path {
		n, ok := cur.values[key]
		if !ok {
			return Node{}, &GetPathError{Path: path[:i+1], PathDoesNotExist: true}
		}
		if i == len(path)-1 {
			return n, nil
		}
		sub, ok := n.Table()
		if !ok {
			return Node{}, &GetPathError{Path: path[:i+1], NotATable: true, ValueType: n.Kind}
		}
		cur = sub
	}
	return Node{}, &GetPathError{Path: path, PathDoesNotExist: true}
}
