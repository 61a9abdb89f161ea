// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binconfig implements the compact binary-config container
// format: a streaming Writer that validates structural integrity as it
// goes, and a Reader offering O(1) array indexing and O(log n) table
// lookup directly over a byte buffer, with no intermediate owning
// structures.
package binconfig

import "github.com/solidcoredata/miniconf/value"

const (
	magic      uint32 = 0xBC0C0BBC
	headerSize        = 24
	// valueSlotSize is the fixed-width (key_hash, key_len_and_type,
	// value_payload) record spec section 6.3 describes: 4 + 4 + 8 bytes.
	// Array elements are stored back-to-back at this width (key_hash
	// always 0, key_len always 0).
	valueSlotSize = 16
	// tableEntrySize is a valueSlotSize slot immediately followed by a
	// 4-byte key-pool offset — the spec's "12-byte slot plus an 8-byte
	// key-offset" entry, restated at a width that keeps the slot itself
	// self-contained (see DESIGN.md for why: the prose byte ranges in
	// section 6.3 sum to 16, not the 12 the same paragraph labels them
	// with, so the literal ranges are taken as authoritative).
	tableEntrySize = valueSlotSize + 4
	align          = 8
)

// typeTag is the 4-bit value-type tag packed into the high bits of a
// value slot's key_len_and_type word.
type typeTag uint32

const (
	tagBool typeTag = iota
	tagI64
	tagF64
	tagString
	tagArray
	tagTable
)

func tagFromKind(k value.Kind) typeTag {
	switch k {
	case value.Bool:
		return tagBool
	case value.I64:
		return tagI64
	case value.F64:
		return tagF64
	case value.String:
		return tagString
	case value.Array:
		return tagArray
	default: // value.Table
		return tagTable
	}
}

func (t typeTag) kind() value.Kind {
	switch t {
	case tagBool:
		return value.Bool
	case tagI64:
		return value.I64
	case tagF64:
		return value.F64
	case tagString:
		return value.String
	case tagArray:
		return value.Array
	default: // tagTable
		return value.Table
	}
}

// alignUp rounds n up to the next multiple of align.
func alignUp(n int) int {
	if r := n % align; r != 0 {
		n += align - r
	}
	return n
}

// fnv1a32 hashes b with 32-bit FNV-1a, the algorithm §6.3 specifies for
// key hashing and entry ordering.
func fnv1a32(b []byte) uint32 {
	const (
		offsetBasis uint32 = 2166136261
		prime       uint32 = 16777619
	)
	h := offsetBasis
	for _, c := range b {
		h ^= uint32(c)
		h *= prime
	}
	return h
}

// packKeyLenAndType combines a key's byte length (low 28 bits) with a
// value type tag (high 4 bits), per §6.3's value slot layout.
func packKeyLenAndType(keyLen int, t typeTag) uint32 {
	return uint32(keyLen)&0x0FFFFFFF | uint32(t)<<28
}

func unpackKeyLenAndType(w uint32) (keyLen int, t typeTag) {
	return int(w & 0x0FFFFFFF), typeTag(w >> 28)
}
