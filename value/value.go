// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value defines the type tag shared by the .ini parser, the
// binary config format, and the dynamic config tree.
package value

// Kind identifies one of the six variants a config value can take.
// Bool, I64, F64 and String are leaves; Array and Table are composite.
type Kind uint8

const (
	Bool Kind = iota
	I64
	F64
	String
	Array
	Table
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case I64:
		return "i64"
	case F64:
		return "f64"
	case String:
		return "string"
	case Array:
		return "array"
	case Table:
		return "table"
	default:
		return "unknown"
	}
}

// IsCompatible reports whether a value of kind `other` may occupy a slot
// already typed as `k`. Every kind is only compatible with itself, except
// that I64 and F64 freely mix: an array or a binary-config accessor may
// read an I64 slot as a float (via conversion) or an F64 slot as an
// integer (via truncation) without it being a type error.
func (k Kind) IsCompatible(other Kind) bool {
	switch k {
	case I64, F64:
		return other == I64 || other == F64
	default:
		return k == other
	}
}
