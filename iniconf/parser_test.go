// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf_test

import (
	"testing"

	"github.com/solidcoredata/miniconf/dynconfig"
	"github.com/solidcoredata/miniconf/iniconf"
)

func TestParseEmptyInput(t *testing.T) {
	tree := dynconfig.NewTree()
	if err := iniconf.Parse("", iniconf.DefaultOptions(), tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Root().Len() != 0 {
		t.Fatalf("expected empty root table, got %d entries", tree.Root().Len())
	}
}

func TestParseUnquotedString(t *testing.T) {
	tree := dynconfig.NewTree()
	if err := iniconf.Parse("k=v\n", iniconf.DefaultOptions(), tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tree.Root().GetString("k")
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if got != "v" {
		t.Fatalf("k = %q, want %q", got, "v")
	}
}

func TestParseHexInteger(t *testing.T) {
	tree := dynconfig.NewTree()
	if err := iniconf.Parse("k=0x17\n", iniconf.DefaultOptions(), tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tree.Root().GetI64("k")
	if err != nil {
		t.Fatalf("GetI64: %v", err)
	}
	if got != 23 {
		t.Fatalf("k = %d, want 23", got)
	}
}

func TestParseBoolAndFloat(t *testing.T) {
	tree := dynconfig.NewTree()
	src := "bool = true\nfloat = 3.14\n"
	if err := iniconf.Parse(src, iniconf.DefaultOptions(), tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := tree.Root().GetBool("bool")
	if err != nil || !b {
		t.Fatalf("bool = %v, %v, want true, nil", b, err)
	}
	f, err := tree.Root().GetF64("float")
	if err != nil || f != 3.14 {
		t.Fatalf("float = %v, %v, want 3.14, nil", f, err)
	}
}

func TestParseDuplicateSectionForbid(t *testing.T) {
	tree := dynconfig.NewTree()
	opts := iniconf.DefaultOptions()
	opts.DuplicateSections = iniconf.DupSectionsForbid

	err := iniconf.Parse("[a]\nx = 1\n[a]\ny = 2\n", opts, tree)
	if err == nil {
		t.Fatal("expected an error")
	}
	iniErr, ok := err.(*iniconf.Error)
	if !ok {
		t.Fatalf("expected *iniconf.Error, got %T", err)
	}
	if iniErr.Kind != iniconf.DuplicateSection {
		t.Fatalf("Kind = %v, want DuplicateSection", iniErr.Kind)
	}
}

func TestParseDuplicateSectionErrorPosition(t *testing.T) {
	tree := dynconfig.NewTree()
	opts := iniconf.DefaultOptions()
	opts.DuplicateSections = iniconf.DupSectionsForbid

	err := iniconf.Parse("[a]\n[a]\nk=1", opts, tree)
	iniErr, ok := err.(*iniconf.Error)
	if !ok {
		t.Fatalf("expected *iniconf.Error, got %T", err)
	}
	if iniErr.Line != 2 || iniErr.Column != 3 {
		t.Fatalf("Line:Column = %d:%d, want 2:3 (the closing ']' of the duplicate header)", iniErr.Line, iniErr.Column)
	}
}

func TestParseMixedArray(t *testing.T) {
	tree := dynconfig.NewTree()
	opts := iniconf.DefaultOptions()
	opts.Arrays = true

	err := iniconf.Parse(`arr = [1, "a"]`+"\n", opts, tree)
	if err == nil {
		t.Fatal("expected an error")
	}
	iniErr, ok := err.(*iniconf.Error)
	if !ok {
		t.Fatalf("expected *iniconf.Error, got %T", err)
	}
	if iniErr.Kind != iniconf.MixedArray {
		t.Fatalf("Kind = %v, want MixedArray", iniErr.Kind)
	}
}

func TestParseArrayRoundTrip(t *testing.T) {
	tree := dynconfig.NewTree()
	opts := iniconf.DefaultOptions()
	opts.Arrays = true

	if err := iniconf.Parse("arr = [1, 2, 3]\n", opts, tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, err := tree.Root().GetArray("arr")
	if err != nil {
		t.Fatalf("GetArray: %v", err)
	}
	if arr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", arr.Len())
	}
	for i, want := range []int64{1, 2, 3} {
		got, err := arr.GetI64(uint32(i))
		if err != nil || got != want {
			t.Fatalf("arr[%d] = %d, %v, want %d, nil", i, got, err, want)
		}
	}
}

func TestParseMissingParentSection(t *testing.T) {
	tree := dynconfig.NewTree()
	opts := iniconf.DefaultOptions()
	opts.NestedSectionDepth = 2

	err := iniconf.Parse("[a/b]\nx = 1\n", opts, tree)
	if err == nil {
		t.Fatal("expected an error")
	}
	iniErr, ok := err.(*iniconf.Error)
	if !ok {
		t.Fatalf("expected *iniconf.Error, got %T", err)
	}
	if iniErr.Kind != iniconf.InvalidParentSection {
		t.Fatalf("Kind = %v, want InvalidParentSection", iniErr.Kind)
	}
}

func TestParseImplicitParentSection(t *testing.T) {
	tree := dynconfig.NewTree()
	opts := iniconf.DefaultOptions()
	opts.NestedSectionDepth = 2
	opts.ImplicitParentSections = true

	if err := iniconf.Parse("[a/b]\nx = 1\n", opts, tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := tree.Root().GetTable("a")
	if err != nil {
		t.Fatalf("GetTable(a): %v", err)
	}
	b, err := a.GetTable("b")
	if err != nil {
		t.Fatalf("GetTable(b): %v", err)
	}
	x, err := b.GetI64("x")
	if err != nil || x != 1 {
		t.Fatalf("x = %d, %v, want 1, nil", x, err)
	}
}

func TestParseEscapeSequencesInQuotedString(t *testing.T) {
	tree := dynconfig.NewTree()
	src := "k = \"a\\tb\\x41c\"\n"
	if err := iniconf.Parse(src, iniconf.DefaultOptions(), tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tree.Root().GetString("k")
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	want := "a\tbAc"
	if got != want {
		t.Fatalf("k = %q, want %q", got, want)
	}
}

func TestSerializeParseIdempotence(t *testing.T) {
	opts := iniconf.DefaultOptions()
	opts.Arrays = true
	opts.NestedSectionDepth = 2

	root := dynconfig.NewTable()
	mustSet(t, root, "name", dynconfig.StringNode("widget"))
	mustSet(t, root, "count", dynconfig.I64Node(7))
	mustSet(t, root, "ratio", dynconfig.F64Node(1.5))
	mustSet(t, root, "enabled", dynconfig.BoolNode(true))

	arr := dynconfig.NewArray()
	if err := arr.Push(dynconfig.I64Node(1)); err != nil {
		t.Fatal(err)
	}
	if err := arr.Push(dynconfig.I64Node(2)); err != nil {
		t.Fatal(err)
	}
	mustSet(t, root, "values", dynconfig.ArrayNode(arr))

	section := dynconfig.NewTable()
	mustSet(t, section, "sub", dynconfig.StringNode("s p a c e d"))
	mustSet(t, root, "section", dynconfig.TableNode(section))

	text, err := dynconfig.Serialize(root, opts)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	tree := dynconfig.NewTree()
	if err := iniconf.Parse(text, opts, tree); err != nil {
		t.Fatalf("re-parsing serialized output: %v\n---\n%s", err, text)
	}

	name, err := tree.Root().GetString("name")
	if err != nil || name != "widget" {
		t.Fatalf("name = %q, %v, want %q, nil", name, err, "widget")
	}
	sub, err := tree.Root().GetTable("section")
	if err != nil {
		t.Fatalf("GetTable(section): %v", err)
	}
	s, err := sub.GetString("sub")
	if err != nil || s != "s p a c e d" {
		t.Fatalf("section.sub = %q, %v, want %q, nil", s, err, "s p a c e d")
	}

	text2, err := dynconfig.Serialize(tree.Root(), opts)
	if err != nil {
		t.Fatalf("second Serialize: %v", err)
	}
	if text != text2 {
		t.Fatalf("serialize -> parse -> serialize is not idempotent:\n---\n%s\n---\n%s", text, text2)
	}
}

func mustSet(t *testing.T, table *dynconfig.Table, key string, n dynconfig.Node) {
	t.Helper()
	if err := table.Set(key, n); err != nil {
		t.Fatalf("Set(%q): %v", key, err)
	}
}
