// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynconfig

import (
	"strconv"
	"strings"

	"github.com/solidcoredata/miniconf/iniconf"
	"github.com/solidcoredata/miniconf/value"
)

// Serialize renders t as an INI document under opts: the key/value and
// array lines of t itself, followed by one bracketed section per nested
// table, recursively. Parsing the result back under the same opts
// reproduces an equivalent tree (the round-trip property I1 depends on).
func Serialize(t *Table, opts iniconf.Options) (string, error) {
	var b strings.Builder
	if err := writeTableBody(&b, t, nil, 0, &opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeTableBody writes t's scalar and array entries as key = value
// lines, then each nested table as its own section at path/key,
// recursing. path is the section path that leads to t; it is empty at
// the document root, which is never itself bracketed.
func writeTableBody(b *strings.Builder, t *Table, path []string, level uint32, o *iniconf.Options) error {
	wroteAny := false
	for _, key := range t.Keys() {
		n, _ := t.Get(key)
		if n.Kind == value.Table {
			continue
		}
		var err error
		if n.Kind == value.Array {
			err = writeArrayLine(b, key, n, o)
		} else {
			err = writeScalarLine(b, key, n, o)
		}
		if err != nil {
			return err
		}
		wroteAny = true
	}

	for _, key := range t.Keys() {
		n, _ := t.Get(key)
		sub, ok := n.Table()
		if !ok {
			continue
		}
		if wroteAny {
			b.WriteByte('\n')
		}
		wroteAny = true
		if err := writeSection(b, key, sub, path, level, o); err != nil {
			return err
		}
	}
	return nil
}

func writeScalarLine(b *strings.Builder, key string, n Node, o *iniconf.Options) error {
	if err := iniconf.WriteKey(b, key, o); err != nil {
		return err
	}
	b.WriteString(" = ")
	if err := writeScalarValue(b, n, o); err != nil {
		return err
	}
	b.WriteByte('\n')
	return nil
}

func writeScalarValue(b *strings.Builder, n Node, o *iniconf.Options) error {
	switch n.Kind {
	case value.Bool:
		v, _ := n.Bool()
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
		return nil
	case value.I64:
		v, _ := n.I64()
		b.WriteString(strconv.FormatInt(v, 10))
		return nil
	case value.F64:
		v, _ := n.F64()
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		return nil
	default: // value.String
		s, _ := n.String()
		return iniconf.WriteQuotedString(b, s, o)
	}
}

func writeArrayLine(b *strings.Builder, key string, n Node, o *iniconf.Options) error {
	if !o.Arrays {
		return &iniconf.SerializeError{Kind: iniconf.SerializeArraysNotAllowed}
	}
	arr, _ := n.Array()
	if err := iniconf.WriteKey(b, key, o); err != nil {
		return err
	}
	b.WriteString(" = [")
	for i := uint32(0); i < uint32(arr.Len()); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		el, err := arr.Get(i)
		if err != nil {
			return err
		}
		if err := writeScalarValue(b, el, o); err != nil {
			return err
		}
	}
	b.WriteString("]\n")
	return nil
}

// writeSection writes t as the bracketed section named by path+key
// (unless it holds only further sub-tables and o.ImplicitParentSections
// lets the header be inferred from its children's own paths), then
// recurses into its body.
func writeSection(b *strings.Builder, key string, t *Table, path []string, level uint32, o *iniconf.Options) error {
	if level >= o.NestedSectionDepth {
		return &iniconf.SerializeError{Kind: iniconf.SerializeNestedSectionDepthExceeded}
	}
	sectionPath := append(append(make([]string, 0, len(path)+1), path...), key)

	hasNonTables := false
	for _, k := range t.Keys() {
		n, _ := t.Get(k)
		if n.Kind != value.Table {
			hasNonTables = true
			break
		}
	}
	empty := t.Len() == 0

	if hasNonTables || !o.ImplicitParentSections || empty {
		if err := iniconf.WriteSections(b, sectionPath, o.NestedSections(), o); err != nil {
			return err
		}
		b.WriteByte('\n')
	}

	if !empty {
		return writeTableBody(b, t, sectionPath, level+1, o)
	}
	return nil
}
