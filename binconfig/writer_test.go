// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binconfig

import (
	"encoding/binary"
	"testing"
)

func TestWriterRootTableOffsetIsHeaderSize(t *testing.T) {
	w := New(1)
	w.String("k", "v")
	buf, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	rootOffset := binary.LittleEndian.Uint32(buf[20:24])
	if rootOffset != headerSize {
		t.Fatalf("root table offset = %d, want %d", rootOffset, headerSize)
	}
}

func TestWriterScalarRoundTrip(t *testing.T) {
	w := New(2)
	w.Bool("a", true)
	w.I64("b", 7)
	buf, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	r, err := NewReader(buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	a, err := r.Root().Get("a")
	if err != nil {
		t.Fatalf("Get(a): %v", err)
	}
	av, err := a.Bool()
	if err != nil || !av {
		t.Fatalf("a = %v, %v, want true, nil", av, err)
	}
	b, err := r.Root().Get("b")
	if err != nil {
		t.Fatalf("Get(b): %v", err)
	}
	bv, err := b.I64()
	if err != nil || bv != 7 {
		t.Fatalf("b = %d, %v, want 7, nil", bv, err)
	}
}

func TestWriterArrayRoundTrip(t *testing.T) {
	w := New(1)
	w.Array("a", 2)
	w.I64("", 1)
	w.I64("", 2)
	w.End()
	buf, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	r, err := NewReader(buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	v, err := r.Root().Get("a")
	if err != nil {
		t.Fatalf("Get(a): %v", err)
	}
	arr, err := v.Array()
	if err != nil {
		t.Fatalf("Array(): %v", err)
	}
	if arr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", arr.Len())
	}
	e0, err := arr.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	i0, err := e0.I64()
	if err != nil || i0 != 1 {
		t.Fatalf("arr[0] = %d, %v, want 1, nil", i0, err)
	}
}

func TestWriterNestedTableRoundTrip(t *testing.T) {
	w := New(1)
	w.Table("outer", 1)
	w.String("inner", "x")
	w.End()
	buf, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	r, err := NewReader(buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	v, err := r.Root().Get("outer")
	if err != nil {
		t.Fatalf("Get(outer): %v", err)
	}
	tbl, err := v.Table()
	if err != nil {
		t.Fatalf("Table(): %v", err)
	}
	inner, err := tbl.Get("inner")
	if err != nil {
		t.Fatalf("Get(inner): %v", err)
	}
	s, err := inner.String()
	if err != nil || s != "x" {
		t.Fatalf("inner = %q, %v, want %q, nil", s, err, "x")
	}
}

func TestWriterArrayLengthMismatch(t *testing.T) {
	w := New(1)
	w.Array("a", 2)
	w.I64("", 1)
	w.End()
	_, err := w.Finish()
	if err == nil {
		t.Fatal("expected an error")
	}
	werr, ok := err.(*WriterError)
	if !ok || werr.Kind != ArrayOrTableLengthMismatch || werr.Expected != 2 || werr.Found != 1 {
		t.Fatalf("got %#v, want ArrayOrTableLengthMismatch Expected=2 Found=1", err)
	}
}

func TestWriterEmptyRootTable(t *testing.T) {
	w := New(0)
	_, err := w.Finish()
	werr, ok := err.(*WriterError)
	if !ok || werr.Kind != EmptyRootTable {
		t.Fatalf("got %#v, want EmptyRootTable", err)
	}
}

func TestWriterTableKeyRequired(t *testing.T) {
	w := New(1)
	w.I64("", 1)
	_, err := w.Finish()
	werr, ok := err.(*WriterError)
	if !ok || werr.Kind != TableKeyRequired {
		t.Fatalf("got %#v, want TableKeyRequired", err)
	}
}

func TestWriterArrayKeyNotRequired(t *testing.T) {
	w := New(1)
	w.Array("a", 1)
	w.I64("x", 1)
	_, err := w.Finish()
	werr, ok := err.(*WriterError)
	if !ok || werr.Kind != ArrayKeyNotRequired || werr.Key != "x" {
		t.Fatalf("got %#v, want ArrayKeyNotRequired Key=x", err)
	}
}

func TestWriterNonUniqueKey(t *testing.T) {
	w := New(2)
	w.I64("a", 1)
	w.I64("a", 2)
	_, err := w.Finish()
	werr, ok := err.(*WriterError)
	if !ok || werr.Kind != NonUniqueKey || werr.Key != "a" {
		t.Fatalf("got %#v, want NonUniqueKey Key=a", err)
	}
}

func TestWriterEndCallMismatch(t *testing.T) {
	w := New(1)
	w.I64("a", 1)
	w.End()
	_, err := w.Finish()
	werr, ok := err.(*WriterError)
	if !ok || werr.Kind != EndCallMismatch {
		t.Fatalf("got %#v, want EndCallMismatch", err)
	}
}

func TestWriterUnfinishedArraysOrTables(t *testing.T) {
	w := New(1)
	w.Table("a", 1)
	w.I64("x", 1)
	_, err := w.Finish()
	werr, ok := err.(*WriterError)
	if !ok || werr.Kind != UnfinishedArraysOrTables || werr.Depth != 1 {
		t.Fatalf("got %#v, want UnfinishedArraysOrTables Depth=1", err)
	}
}

func TestWriterStickyErrorIgnoresLaterCalls(t *testing.T) {
	w := New(0)
	w.I64("a", 1) // no-op: writer already failed
	_, err := w.Finish()
	werr, ok := err.(*WriterError)
	if !ok || werr.Kind != EmptyRootTable {
		t.Fatalf("got %#v, want EmptyRootTable", err)
	}
}
