// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf

import "unicode/utf8"

// Substr returns the substring of the source string occupying the
// inclusive byte range [start, end]. The parser only ever calls it with
// ranges that fall on UTF-8 boundaries.
type Substr func(start, end int) string

type parsedStringKind uint8

const (
	psCleared parsedStringKind = iota
	psBorrowed
	psOwned
)

// parsedString is the scratch buffer the FSM accumulates a key, section
// name, or value into. It holds either nothing, a contiguous byte range
// into the source (no escapes decoded), or an owned buffer (at least one
// escape decoded, or the token was promoted for some other reason).
type parsedString struct {
	kind       parsedStringKind
	start, end int // valid when kind == psBorrowed, inclusive
	buf        []byte
}

func (p *parsedString) isEmpty() bool {
	switch p.kind {
	case psCleared:
		return true
	case psBorrowed:
		return false
	default: // psOwned
		return false
	}
}

func (p *parsedString) clear() {
	p.kind = psCleared
	p.buf = p.buf[:0]
}

// push appends the character at source byte index i. From psCleared or
// psBorrowed it starts or widens the borrowed range, which assumes i is
// contiguous with the prior push (the FSM always calls push with the
// index of the rune it just read, and ranges are widened to include each
// rune's full encoding via end); contiguity is not checked. From psOwned
// it appends c to the owned buffer.
func (p *parsedString) push(c rune, i int) {
	width := utf8.RuneLen(c)
	switch p.kind {
	case psCleared:
		p.kind = psBorrowed
		p.start = i
		p.end = i + width - 1
	case psBorrowed:
		p.end = i + width - 1
	case psOwned:
		p.buf = utf8.AppendRune(p.buf, c)
	}
}

// pushOwned promotes the string to owned (copying any existing borrowed
// range through substr), then appends c.
func (p *parsedString) pushOwned(c rune, substr Substr) {
	p.toOwnedImpl(substr, true)
	p.buf = utf8.AppendRune(p.buf, c)
}

// toOwned promotes a borrowed string to owned without appending anything.
// From Cleared it is a no-op (only toOwnedImpl with force set promotes
// Cleared to an empty Owned value; pushOwned does so before appending).
func (p *parsedString) toOwned(substr Substr) {
	p.toOwnedImpl(substr, false)
}

func (p *parsedString) toOwnedImpl(substr Substr, force bool) {
	switch p.kind {
	case psCleared:
		if force {
			p.kind = psOwned
		}
	case psOwned:
	case psBorrowed:
		p.buf = append(p.buf[:0], substr(p.start, p.end)...)
		p.kind = psOwned
	}
}

// key materializes a non-empty result, or ("", false) if nothing was ever
// pushed.
func (p *parsedString) key(substr Substr) (string, bool) {
	switch p.kind {
	case psCleared:
		return "", false
	case psBorrowed:
		return substr(p.start, p.end), true
	default: // psOwned
		return string(p.buf), true
	}
}

// value materializes a possibly-empty result.
func (p *parsedString) value(substr Substr) string {
	switch p.kind {
	case psCleared:
		return ""
	case psBorrowed:
		return substr(p.start, p.end)
	default: // psOwned
		return string(p.buf)
	}
}
