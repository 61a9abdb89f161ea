// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binconfig

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/solidcoredata/miniconf/value"
)

// Reader wraps an immutable binary-config buffer. Once constructed it
// performs no further validation; every TableView/ArrayView it hands
// out borrows directly from buf and must not outlive it. Readers are
// safe for concurrent use by multiple goroutines.
type Reader struct {
	buf []byte
}

// NewReader validates buf against the layout in spec section 6.3 and
// returns a Reader over it, or a ReaderError describing the first
// inconsistency found.
func NewReader(buf []byte) (*Reader, error) {
	if len(buf) < headerSize {
		return nil, invalid("buffer shorter than header")
	}
	if binary.LittleEndian.Uint32(buf[0:4]) != magic {
		return nil, invalid("bad magic")
	}
	payloadLen := binary.LittleEndian.Uint32(buf[4:8])
	if int(payloadLen) != len(buf)-headerSize {
		return nil, invalid("payload length does not match buffer size")
	}

	r := &Reader{buf: buf}
	rootLen := binary.LittleEndian.Uint32(buf[12:16])
	_, tag := unpackKeyLenAndType(binary.LittleEndian.Uint32(buf[16:20]))
	if tag != tagTable {
		return nil, invalid("root descriptor is not a table")
	}
	rootOffset := binary.LittleEndian.Uint32(buf[20:24])

	if err := r.validateTable(int(rootOffset), int(rootLen)); err != nil {
		return nil, err
	}
	return r, nil
}

func invalid(reason string) error {
	return &ReaderError{Kind: InvalidBinaryConfig, Reason: reason}
}

func (r *Reader) inRange(off, n int) bool {
	return off >= 0 && n >= 0 && off%align == 0 && off+n <= len(r.buf)
}

func (r *Reader) validateTable(offset, count int) error {
	if !r.inRange(offset, count*tableEntrySize) {
		return invalid("table entries out of range or misaligned")
	}
	var prevHash uint32
	var prevKey string
	for i := 0; i < count; i++ {
		entOff := offset + i*tableEntrySize
		hash := binary.LittleEndian.Uint32(r.buf[entOff : entOff+4])
		keyLen, tag := unpackKeyLenAndType(binary.LittleEndian.Uint32(r.buf[entOff+4 : entOff+8]))
		keyOff := int(binary.LittleEndian.Uint32(r.buf[entOff+valueSlotSize : entOff+tableEntrySize]))
		if keyOff < 0 || keyOff+keyLen > len(r.buf) {
			return invalid("key bytes out of range")
		}
		key := string(r.buf[keyOff : keyOff+keyLen])
		if fnv1a32([]byte(key)) != hash {
			return invalid("key hash does not match key bytes")
		}
		if i > 0 {
			if hash < prevHash || (hash == prevHash && key < prevKey) {
				return invalid("table entries not sorted by (key_hash, key_bytes)")
			}
		}
		prevHash, prevKey = hash, key

		if err := r.validatePayload(entOff+8, tag); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) validateArray(offset, count int) error {
	if !r.inRange(offset, count*valueSlotSize) {
		return invalid("array slots out of range or misaligned")
	}
	for i := 0; i < count; i++ {
		slotOff := offset + i*valueSlotSize
		_, tag := unpackKeyLenAndType(binary.LittleEndian.Uint32(r.buf[slotOff+4 : slotOff+8]))
		if err := r.validatePayload(slotOff+8, tag); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) validatePayload(payloadOff int, tag typeTag) error {
	switch tag {
	case tagBool, tagI64, tagF64:
		// Fixed 8-byte payload already covered by the slot's own bounds.
		return nil
	case tagString:
		length := int(binary.LittleEndian.Uint32(r.buf[payloadOff : payloadOff+4]))
		off := int(binary.LittleEndian.Uint32(r.buf[payloadOff+4 : payloadOff+8]))
		if off < 0 || off+length > len(r.buf) {
			return invalid("string payload out of range")
		}
		return nil
	case tagArray:
		n := int(binary.LittleEndian.Uint32(r.buf[payloadOff : payloadOff+4]))
		off := int(binary.LittleEndian.Uint32(r.buf[payloadOff+4 : payloadOff+8]))
		return r.validateArray(off, n)
	case tagTable:
		n := int(binary.LittleEndian.Uint32(r.buf[payloadOff : payloadOff+4]))
		off := int(binary.LittleEndian.Uint32(r.buf[payloadOff+4 : payloadOff+8]))
		return r.validateTable(off, n)
	default:
		return invalid("unknown value type tag")
	}
}

// Root returns a view of the buffer's top-level table.
func (r *Reader) Root() TableView {
	rootLen := binary.LittleEndian.Uint32(r.buf[12:16])
	rootOffset := binary.LittleEndian.Uint32(r.buf[20:24])
	return TableView{r: r, offset: int(rootOffset), count: int(rootLen)}
}

// ValueView is the common shape of a decoded value slot, shared by a
// TableView entry and an ArrayView element before the caller narrows it
// to a concrete accessor.
type ValueView struct {
	r          *Reader
	payloadOff int
	kind       value.Kind
}

func (v ValueView) typed(want value.Kind) (ValueView, error) {
	if !want.IsCompatible(v.kind) {
		return ValueView{}, &ReaderError{Kind: IncorrectValueType, Found: v.kind}
	}
	return v, nil
}

func (v ValueView) Kind() value.Kind { return v.kind }

func (v ValueView) Bool() (bool, error) {
	tv, err := v.typed(value.Bool)
	if err != nil {
		return false, err
	}
	return tv.r.buf[tv.payloadOff] != 0, nil
}

func (v ValueView) I64() (int64, error) {
	tv, err := v.typed(value.I64)
	if err != nil {
		return 0, err
	}
	if tv.kind == value.F64 {
		return int64(math.Float64frombits(binary.LittleEndian.Uint64(tv.r.buf[tv.payloadOff : tv.payloadOff+8]))), nil
	}
	return int64(binary.LittleEndian.Uint64(tv.r.buf[tv.payloadOff : tv.payloadOff+8])), nil
}

func (v ValueView) F64() (float64, error) {
	tv, err := v.typed(value.F64)
	if err != nil {
		return 0, err
	}
	if tv.kind == value.I64 {
		return float64(int64(binary.LittleEndian.Uint64(tv.r.buf[tv.payloadOff : tv.payloadOff+8]))), nil
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(tv.r.buf[tv.payloadOff : tv.payloadOff+8])), nil
}

func (v ValueView) String() (string, error) {
	tv, err := v.typed(value.String)
	if err != nil {
		return "", err
	}
	length := binary.LittleEndian.Uint32(tv.r.buf[tv.payloadOff : tv.payloadOff+4])
	off := binary.LittleEndian.Uint32(tv.r.buf[tv.payloadOff+4 : tv.payloadOff+8])
	return string(tv.r.buf[off : off+length]), nil
}

func (v ValueView) Array() (ArrayView, error) {
	tv, err := v.typed(value.Array)
	if err != nil {
		return ArrayView{}, err
	}
	n := binary.LittleEndian.Uint32(tv.r.buf[tv.payloadOff : tv.payloadOff+4])
	off := binary.LittleEndian.Uint32(tv.r.buf[tv.payloadOff+4 : tv.payloadOff+8])
	return ArrayView{r: tv.r, offset: int(off), count: int(n)}, nil
}

func (v ValueView) Table() (TableView, error) {
	tv, err := v.typed(value.Table)
	if err != nil {
		return TableView{}, err
	}
	n := binary.LittleEndian.Uint32(tv.r.buf[tv.payloadOff : tv.payloadOff+4])
	off := binary.LittleEndian.Uint32(tv.r.buf[tv.payloadOff+4 : tv.payloadOff+8])
	return TableView{r: tv.r, offset: int(off), count: int(n)}, nil
}

// TableView is a read-only, O(log n)-keyed view of one table within the
// buffer.
type TableView struct {
	r      *Reader
	offset int
	count  int
}

func (t TableView) Len() int { return t.count }

// Get looks up key by hashing it and binary-searching the entry table
// for (hash, key bytes), per spec section 6.4.
func (t TableView) Get(key string) (ValueView, error) {
	hash := fnv1a32([]byte(key))
	buf := t.r.buf

	lo, hi := 0, t.count
	for lo < hi {
		mid := (lo + hi) / 2
		entOff := t.offset + mid*tableEntrySize
		h := binary.LittleEndian.Uint32(buf[entOff : entOff+4])
		switch {
		case h < hash:
			lo = mid + 1
		case h > hash:
			hi = mid
		default:
			keyLen, _ := unpackKeyLenAndType(binary.LittleEndian.Uint32(buf[entOff+4 : entOff+8]))
			keyOff := binary.LittleEndian.Uint32(buf[entOff+valueSlotSize : entOff+tableEntrySize])
			entKey := string(buf[keyOff : keyOff+uint32(keyLen)])
			switch bytes.Compare([]byte(entKey), []byte(key)) {
			case 0:
				_, tag := unpackKeyLenAndType(binary.LittleEndian.Uint32(buf[entOff+4 : entOff+8]))
				return ValueView{r: t.r, payloadOff: entOff + 8, kind: tag.kind()}, nil
			case -1:
				lo = mid + 1
			default:
				hi = mid
			}
		}
	}
	return ValueView{}, &ReaderError{Kind: KeyDoesNotExist, Key: key}
}

// Keys returns every key in the table, in the buffer's sorted
// (hash, bytes) order.
func (t TableView) Keys() []string {
	keys := make([]string, t.count)
	buf := t.r.buf
	for i := 0; i < t.count; i++ {
		entOff := t.offset + i*tableEntrySize
		keyLen, _ := unpackKeyLenAndType(binary.LittleEndian.Uint32(buf[entOff+4 : entOff+8]))
		keyOff := binary.LittleEndian.Uint32(buf[entOff+valueSlotSize : entOff+tableEntrySize])
		keys[i] = string(buf[keyOff : keyOff+uint32(keyLen)])
	}
	return keys
}

// ArrayView is a read-only, O(1)-indexable view of one array within the
// buffer.
type ArrayView struct {
	r      *Reader
	offset int
	count  int
}

func (a ArrayView) Len() int { return a.count }

func (a ArrayView) Get(i uint32) (ValueView, error) {
	if i >= uint32(a.count) {
		return ValueView{}, &ReaderError{Kind: IndexOutOfBounds, Index: i, Len: uint32(a.count)}
	}
	slotOff := a.offset + int(i)*valueSlotSize
	_, tag := unpackKeyLenAndType(binary.LittleEndian.Uint32(a.r.buf[slotOff+4 : slotOff+8]))
	return ValueView{r: a.r, payloadOff: slotOff + 8, kind: tag.kind()}, nil
}
