// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf

import (
	"strconv"
	"strings"
)

// PathKey is one element of a Path: either a section/table key or, in an
// error reported while parsing an array value, the index of that value.
type PathKey struct {
	Section string
	IsIndex bool
	Index   uint32
}

func (k PathKey) String() string {
	if k.IsIndex {
		return "[" + strconv.Itoa(int(k.Index)) + "]"
	}
	return `"` + k.Section + `"`
}

// Path is the bounded sequence of keys leading from the root to the current
// parser position. Depth is bounded by Options.NestedSectionDepth. An empty
// path denotes the root table.
type Path []PathKey

func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	var b strings.Builder
	for i, k := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(k.String())
	}
	return b.String()
}
