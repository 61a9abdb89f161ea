// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binconfig

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/solidcoredata/miniconf/value"
)

// leaf is one child awaiting serialization: either a scalar, or a
// container whose own children have already been validated and
// collected.
type leaf struct {
	key  string // "" inside an array
	kind value.Kind

	b bool
	i int64
	f float64
	s string

	// children holds this leaf's own children, populated when kind is
	// Array or Table.
	children []leaf
}

// container tracks one open Table or Array: the key it will be stored
// under in its parent (empty for the root and for array elements), the
// declared child count, and the children received so far.
type container struct {
	key         string
	isTable     bool
	declaredLen int
	children    []leaf
	keysSeen    map[string]bool // isTable only
}

// Writer is a streaming builder for a binary-config buffer. It accepts
// the same shape of calls the INI parser's Sink does (Table/Array/End)
// plus typed leaf writes, validating every structural rule in spec
// section 4.5 as each call arrives. Once any call fails, err is sticky:
// every later call is a no-op and Finish returns the same error.
type Writer struct {
	err   error
	stack []*container
	done  bool
}

// New starts a Writer whose root table declares n children. n must be
// at least 1: an empty root table is rejected immediately.
func New(n int) *Writer {
	w := &Writer{}
	if n <= 0 {
		w.err = &WriterError{Kind: EmptyRootTable}
		return w
	}
	w.stack = []*container{{isTable: true, declaredLen: n, keysSeen: make(map[string]bool, n)}}
	return w
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) top() *container {
	return w.stack[len(w.stack)-1]
}

// checkKey validates key against the current container's kind (table
// children require a non-empty, unique key; array children must not
// have one) and returns false if a structural error was recorded.
func (w *Writer) checkKey(key string) bool {
	if w.err != nil {
		return false
	}
	cur := w.top()
	if cur.isTable {
		if key == "" {
			w.fail(&WriterError{Kind: TableKeyRequired})
			return false
		}
		if cur.keysSeen[key] {
			w.fail(&WriterError{Kind: NonUniqueKey, Key: key})
			return false
		}
	} else if key != "" {
		w.fail(&WriterError{Kind: ArrayKeyNotRequired, Key: key})
		return false
	}
	return true
}

func (w *Writer) addChild(l leaf) {
	cur := w.top()
	if cur.isTable {
		cur.keysSeen[l.key] = true
	}
	cur.children = append(cur.children, l)
}

// Bool, I64, F64, and String add a leaf value to the currently open
// container, keyed by key (which must be "" inside an array).
func (w *Writer) Bool(key string, v bool) {
	if !w.checkKey(key) {
		return
	}
	w.addChild(leaf{key: key, kind: value.Bool, b: v})
}

func (w *Writer) I64(key string, v int64) {
	if !w.checkKey(key) {
		return
	}
	w.addChild(leaf{key: key, kind: value.I64, i: v})
}

func (w *Writer) F64(key string, v float64) {
	if !w.checkKey(key) {
		return
	}
	w.addChild(leaf{key: key, kind: value.F64, f: v})
}

func (w *Writer) String(key string, v string) {
	if !w.checkKey(key) {
		return
	}
	w.addChild(leaf{key: key, kind: value.String, s: v})
}

// Table opens a new child table under key, declaring it will receive
// exactly n children before the matching End.
func (w *Writer) Table(key string, n int) {
	if !w.checkKey(key) {
		return
	}
	w.stack = append(w.stack, &container{key: key, isTable: true, declaredLen: n, keysSeen: make(map[string]bool, n)})
}

// Array opens a new child array under key, declaring it will receive
// exactly n children before the matching End.
func (w *Writer) Array(key string, n int) {
	if !w.checkKey(key) {
		return
	}
	w.stack = append(w.stack, &container{key: key, isTable: false, declaredLen: n})
}

// End closes the most recently opened container, failing if it did not
// receive exactly its declared number of children.
func (w *Writer) End() {
	if w.err != nil {
		return
	}
	if len(w.stack) <= 1 {
		w.fail(&WriterError{Kind: EndCallMismatch})
		return
	}
	cur := w.stack[len(w.stack)-1]
	if len(cur.children) != cur.declaredLen {
		w.fail(&WriterError{Kind: ArrayOrTableLengthMismatch, Expected: cur.declaredLen, Found: len(cur.children)})
		return
	}
	w.stack = w.stack[:len(w.stack)-1]

	kind := value.Table
	if !cur.isTable {
		kind = value.Array
	}
	w.addChild(leaf{key: cur.key, kind: kind, children: cur.children})
}

// Finish validates the root was fully populated and closed, then
// serializes the tree into a binary-config buffer per spec section 6.3.
func (w *Writer) Finish() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.done {
		return nil, w.err
	}
	if len(w.stack) != 1 {
		w.fail(&WriterError{Kind: UnfinishedArraysOrTables, Depth: len(w.stack) - 1})
		return nil, w.err
	}
	root := w.stack[0]
	if len(root.children) != root.declaredLen {
		w.fail(&WriterError{Kind: ArrayOrTableLengthMismatch, Expected: root.declaredLen, Found: len(root.children)})
		return nil, w.err
	}
	w.done = true

	b := newBuilder()
	b.grow(headerSize)
	strPool := newStringInterner()

	rootOffset, rootLen := b.emitTable(root.children, strPool)

	buf := b.buf
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(buf)-headerSize))
	binary.LittleEndian.PutUint32(buf[8:12], 0)
	// Root table descriptor (12 bytes): entry count, a packed
	// zero-key-length/Table type tag word (so the descriptor parses the
	// same way a value slot's back half does), and the table's offset.
	binary.LittleEndian.PutUint32(buf[12:16], uint32(rootLen))
	binary.LittleEndian.PutUint32(buf[16:20], packKeyLenAndType(0, tagTable))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(rootOffset))

	return buf, nil
}

// builder accumulates the output buffer by doubling, per the memory
// discipline in spec section 5.
type builder struct {
	buf []byte
}

func newBuilder() *builder {
	return &builder{buf: make([]byte, 0, 256)}
}

// grow appends n zero bytes, returning the offset they start at.
func (b *builder) grow(n int) int {
	off := len(b.buf)
	if cap(b.buf) < off+n {
		next := make([]byte, off, doubleUntil(cap(b.buf), off+n))
		copy(next, b.buf)
		b.buf = next
	}
	b.buf = b.buf[:off+n]
	return off
}

func doubleUntil(c, need int) int {
	if c == 0 {
		c = 256
	}
	for c < need {
		c *= 2
	}
	return c
}

func (b *builder) padToAlign() {
	if r := len(b.buf) % align; r != 0 {
		b.grow(align - r)
	}
}

// stringInterner deduplicates string content, returning the same
// (length, offset) pair for repeated writes of identical bytes.
type stringInterner struct {
	offsets map[string]int
}

func newStringInterner() *stringInterner {
	return &stringInterner{offsets: make(map[string]int)}
}

func (si *stringInterner) intern(b *builder, s string) (length, offset int) {
	if off, ok := si.offsets[s]; ok {
		return len(s), off
	}
	b.padToAlign()
	off := b.grow(len(s))
	copy(b.buf[off:], s)
	si.offsets[s] = off
	return len(s), off
}

// emitTable lays out one table as tableEntrySize-wide entries — a value
// slot (key_hash, key_len_and_type, value_payload) plus a trailing
// key-pool offset — sorted by (key hash, key bytes) per spec section
// 4.5 step 4, then recursively emits each child's own body and string
// bytes after the entry table, per step 2. Returns the entry table's
// offset and length.
func (b *builder) emitTable(children []leaf, si *stringInterner) (offset int, count int) {
	type entry struct {
		hash uint32
		l    leaf
	}
	// hash is computed straight off the key string; it needs no pool
	// entry, so sorting can happen before anything is written at all.
	entries := make([]entry, len(children))
	for i, c := range children {
		entries[i] = entry{hash: fnv1a32([]byte(c.key)), l: c}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].hash != entries[j].hash {
			return entries[i].hash < entries[j].hash
		}
		return entries[i].l.key < entries[j].l.key
	})

	// Reserve the entry table before interning any key bytes or
	// recursing into child bodies, so a table's offset always points at
	// its own entries first — the root table lands at exactly
	// headerSize.
	b.padToAlign()
	offset = b.grow(len(entries) * tableEntrySize)
	for i, e := range entries {
		entOff := offset + i*tableEntrySize
		keyLen, keyOff := si.intern(b, e.l.key)
		binary.LittleEndian.PutUint32(b.buf[entOff:entOff+4], e.hash)
		binary.LittleEndian.PutUint32(b.buf[entOff+4:entOff+8], packKeyLenAndType(keyLen, tagFromKind(e.l.kind)))
		binary.LittleEndian.PutUint32(b.buf[entOff+valueSlotSize:entOff+tableEntrySize], uint32(keyOff))
		b.writePayload(entOff+8, e.l, si)
	}
	return offset, len(entries)
}

// emitArray lays out an array's consecutive valueSlotSize slots in
// insertion order (no keys, no sorting), recursively emitting child
// bodies after.
func (b *builder) emitArray(children []leaf, si *stringInterner) (offset int, count int) {
	b.padToAlign()
	offset = b.grow(len(children) * valueSlotSize)
	for i, c := range children {
		slotOff := offset + i*valueSlotSize
		binary.LittleEndian.PutUint32(b.buf[slotOff:slotOff+4], 0)
		binary.LittleEndian.PutUint32(b.buf[slotOff+4:slotOff+8], packKeyLenAndType(0, tagFromKind(c.kind)))
		b.writePayload(slotOff+8, c, si)
	}
	return offset, len(children)
}

// writePayload fills the 8-byte value_payload region starting at
// payloadOff, recursing into emitTable/emitArray for composite kinds.
func (b *builder) writePayload(payloadOff int, l leaf, si *stringInterner) {
	switch l.kind {
	case value.Bool:
		v := byte(0)
		if l.b {
			v = 1
		}
		b.buf[payloadOff] = v
	case value.I64:
		binary.LittleEndian.PutUint64(b.buf[payloadOff:payloadOff+8], uint64(l.i))
	case value.F64:
		binary.LittleEndian.PutUint64(b.buf[payloadOff:payloadOff+8], math.Float64bits(l.f))
	case value.String:
		length, off := si.intern(b, l.s)
		binary.LittleEndian.PutUint32(b.buf[payloadOff:payloadOff+4], uint32(length))
		binary.LittleEndian.PutUint32(b.buf[payloadOff+4:payloadOff+8], uint32(off))
	case value.Array:
		off, n := b.emitArray(l.children, si)
		binary.LittleEndian.PutUint32(b.buf[payloadOff:payloadOff+4], uint32(n))
		binary.LittleEndian.PutUint32(b.buf[payloadOff+4:payloadOff+8], uint32(off))
	case value.Table:
		off, n := b.emitTable(l.children, si)
		binary.LittleEndian.PutUint32(b.buf[payloadOff:payloadOff+4], uint32(n))
		binary.LittleEndian.PutUint32(b.buf[payloadOff+4:payloadOff+8], uint32(off))
	}
}
