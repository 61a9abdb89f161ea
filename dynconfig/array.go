// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynconfig

import (
	"fmt"

	"github.com/solidcoredata/miniconf/value"
)

// ArrayGetError reports why an Array.Get or Pop failed.
type ArrayGetError struct {
	IndexOutOfBounds bool
	Len              uint32 // valid when IndexOutOfBounds
	Empty            bool
	IncorrectType    bool
	ValueType        value.Kind // valid when IncorrectType
}

func (e *ArrayGetError) Error() string {
	switch {
	case e.Empty:
		return "array is empty"
	case e.IndexOutOfBounds:
		return fmt.Sprintf("index out of bounds (length %d)", e.Len)
	case e.IncorrectType:
		return fmt.Sprintf("value is of incorrect type (%s)", e.ValueType)
	default:
		return "array get error"
	}
}

// ArraySetError reports why an Array.Push failed.
type ArraySetError struct {
	IndexOutOfBounds bool
	InvalidValueType bool
}

func (e *ArraySetError) Error() string {
	if e.IndexOutOfBounds {
		return "index out of bounds"
	}
	return "value type does not match the array's element type"
}

// Array is a homogeneous, order-preserving list of Nodes: every element
// must share the same Kind (I64 and F64 are considered compatible, same
// as elsewhere in the module), matching the parser's array dialect.
type Array struct {
	values      []Node
	elemKind    value.Kind
	hasElemKind bool
}

func NewArray() *Array { return &Array{} }

func (a *Array) Len() int { return len(a.values) }

func (a *Array) Get(i uint32) (Node, error) {
	if i >= uint32(len(a.values)) {
		return Node{}, &ArrayGetError{IndexOutOfBounds: true, Len: uint32(len(a.values))}
	}
	return a.values[i], nil
}

func (a *Array) getTyped(i uint32, kind value.Kind) (Node, error) {
	n, err := a.Get(i)
	if err != nil {
		return Node{}, err
	}
	if !kind.IsCompatible(n.Kind) {
		return Node{}, &ArrayGetError{IncorrectType: true, ValueType: n.Kind}
	}
	return n, nil
}

func (a *Array) GetBool(i uint32) (bool, error) {
	n, err := a.getTyped(i, value.Bool)
	if err != nil {
		return false, err
	}
	v, _ := n.Bool()
	return v, nil
}

func (a *Array) GetI64(i uint32) (int64, error) {
	n, err := a.getTyped(i, value.I64)
	if err != nil {
		return 0, err
	}
	v, _ := n.I64()
	return v, nil
}

func (a *Array) GetF64(i uint32) (float64, error) {
	n, err := a.getTyped(i, value.F64)
	if err != nil {
		return 0, err
	}
	v, _ := n.F64()
	return v, nil
}

func (a *Array) GetString(i uint32) (string, error) {
	n, err := a.getTyped(i, value.String)
	if err != nil {
		return "", err
	}
	v, _ := n.String()
	return v, nil
}

// Push appends n, rejecting it if it is incompatible with the type of
// elements already in the array.
func (a *Array) Push(n Node) error {
	if a.hasElemKind && !a.elemKind.IsCompatible(n.Kind) {
		return &ArraySetError{InvalidValueType: true}
	}
	if !a.hasElemKind {
		a.elemKind = n.Kind
		a.hasElemKind = true
	}
	a.values = append(a.values, n)
	return nil
}

// Pop removes and returns the last element.
func (a *Array) Pop() (Node, error) {
	if len(a.values) == 0 {
		return Node{}, &ArrayGetError{Empty: true}
	}
	n := a.values[len(a.values)-1]
	a.values = a.values[:len(a.values)-1]
	if len(a.values) == 0 {
		a.hasElemKind = false
	}
	return n, nil
}
