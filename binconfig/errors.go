// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binconfig

import (
	"fmt"

	"github.com/solidcoredata/miniconf/value"
)

// WriterErrorKind identifies a structural violation reported by Writer.
type WriterErrorKind uint8

const (
	EmptyRootTable WriterErrorKind = iota
	TableKeyRequired
	ArrayKeyNotRequired
	NonUniqueKey
	ArrayOrTableLengthMismatch
	EndCallMismatch
	UnfinishedArraysOrTables
)

// WriterError is returned by any Writer method or by Finish once the
// writer has entered a failed state; every later call is then a no-op
// that returns the same error.
type WriterError struct {
	Kind     WriterErrorKind
	Key      string
	Expected int // ArrayOrTableLengthMismatch
	Found    int // ArrayOrTableLengthMismatch
	Depth    int // UnfinishedArraysOrTables
}

func (e *WriterError) Error() string {
	switch e.Kind {
	case EmptyRootTable:
		return "binconfig: root table must declare at least one child"
	case TableKeyRequired:
		return fmt.Sprintf("binconfig: value inside a table requires a key (got %q)", e.Key)
	case ArrayKeyNotRequired:
		return fmt.Sprintf("binconfig: value inside an array must not have a key (got %q)", e.Key)
	case NonUniqueKey:
		return fmt.Sprintf("binconfig: duplicate key %q within table", e.Key)
	case ArrayOrTableLengthMismatch:
		return fmt.Sprintf("binconfig: container declared %d children, received %d", e.Expected, e.Found)
	case EndCallMismatch:
		return "binconfig: End called with no open container"
	case UnfinishedArraysOrTables:
		return fmt.Sprintf("binconfig: %d container(s) still open at Finish", e.Depth)
	default:
		return "binconfig: writer error"
	}
}

// ReaderErrorKind identifies why a buffer failed validation, or why a
// typed accessor on a valid buffer failed.
type ReaderErrorKind uint8

const (
	InvalidBinaryConfig ReaderErrorKind = iota
	IndexOutOfBounds
	KeyDoesNotExist
	IncorrectValueType
)

// ReaderError is returned by NewReader and by the typed TableView/
// ArrayView accessors.
type ReaderError struct {
	Kind   ReaderErrorKind
	Reason string     // InvalidBinaryConfig
	Key    string     // KeyDoesNotExist
	Index  uint32     // IndexOutOfBounds
	Len    uint32     // IndexOutOfBounds
	Found  value.Kind // IncorrectValueType
}

func (e *ReaderError) Error() string {
	switch e.Kind {
	case InvalidBinaryConfig:
		return fmt.Sprintf("binconfig: invalid buffer: %s", e.Reason)
	case IndexOutOfBounds:
		return fmt.Sprintf("binconfig: index %d out of bounds (length %d)", e.Index, e.Len)
	case KeyDoesNotExist:
		return fmt.Sprintf("binconfig: key %q does not exist", e.Key)
	case IncorrectValueType:
		return fmt.Sprintf("binconfig: incorrect value type (found %s)", e.Found)
	default:
		return "binconfig: reader error"
	}
}
