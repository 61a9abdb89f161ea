// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynconfig

import "testing"

func TestArrayPushGet(t *testing.T) {
	a := NewArray()
	if err := a.Push(I64Node(1)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := a.Push(I64Node(2)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	v, err := a.GetI64(1)
	if err != nil || v != 2 {
		t.Fatalf("GetI64(1) = %d, %v, want 2, nil", v, err)
	}
}

func TestArrayHomogeneityRejectsMismatch(t *testing.T) {
	a := NewArray()
	if err := a.Push(I64Node(1)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	err := a.Push(StringNode("x"))
	if err == nil {
		t.Fatal("expected an error")
	}
	setErr, ok := err.(*ArraySetError)
	if !ok || !setErr.InvalidValueType {
		t.Fatalf("got %#v, want InvalidValueType", err)
	}
}

func TestArrayHomogeneityAllowsI64F64Mix(t *testing.T) {
	a := NewArray()
	if err := a.Push(I64Node(1)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := a.Push(F64Node(2.5)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
}

func TestArrayGetOutOfBounds(t *testing.T) {
	a := NewArray()
	mustPush(t, a, I64Node(1))

	_, err := a.Get(5)
	getErr, ok := err.(*ArrayGetError)
	if !ok || !getErr.IndexOutOfBounds || getErr.Len != 1 {
		t.Fatalf("got %#v, want IndexOutOfBounds Len=1", err)
	}
}

func TestArrayPopEmptiesElementKind(t *testing.T) {
	a := NewArray()
	mustPush(t, a, I64Node(1))

	if _, err := a.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
	// With the array empty again, a different element kind is accepted.
	if err := a.Push(StringNode("x")); err != nil {
		t.Fatalf("Push after drain: %v", err)
	}
}

func TestArrayPopEmpty(t *testing.T) {
	a := NewArray()
	_, err := a.Pop()
	getErr, ok := err.(*ArrayGetError)
	if !ok || !getErr.Empty {
		t.Fatalf("got %#v, want Empty", err)
	}
}

func mustPush(t *testing.T, a *Array, n Node) {
	t.Helper()
	if err := a.Push(n); err != nil {
		t.Fatalf("Push: %v", err)
	}
}
