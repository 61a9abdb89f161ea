// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iniconf implements a single-pass, character-driven parser for a
// configurable dialect of INI, and the complementary plain-text
// serializer. The parser drives a Sink (see event.go) with a stream of
// structural events rather than building a tree itself, so callers can
// parse straight into whatever representation they need.
package iniconf

import (
	"unicode/utf8"

	"github.com/solidcoredata/miniconf/value"
)

// runeReader walks the source string one rune at a time, tracking the
// 1-based line and column the next unread rune sits at. A CRLF pair is
// counted as a single newline; a lone CR or LF each count as one too.
type runeReader struct {
	src    string
	pos    int // byte offset of the next unread rune
	line   int
	column int
	// sawCR records that the previously returned rune was '\r', so a
	// following '\n' is swallowed into the same newline instead of
	// incrementing the line count a second time.
	sawCR bool
}

func newRuneReader(src string) *runeReader {
	return &runeReader{src: src, pos: 0, line: 1, column: 1}
}

// peek returns the next rune and its byte offset without consuming it.
func (r *runeReader) peek() (rune, int, bool) {
	if r.pos >= len(r.src) {
		return 0, 0, false
	}
	c, _ := utf8.DecodeRuneInString(r.src[r.pos:])
	return c, r.pos, true
}

// advance consumes the rune peek last returned, updating position
// tracking. It is a no-op at EOF.
func (r *runeReader) advance() {
	if r.pos >= len(r.src) {
		return
	}
	c, size := utf8.DecodeRuneInString(r.src[r.pos:])
	r.pos += size

	if r.sawCR && c == '\n' {
		r.sawCR = false
		return
	}
	r.sawCR = false

	switch c {
	case '\r':
		r.sawCR = true
		r.line++
		r.column = 1
	case '\n':
		r.line++
		r.column = 1
	default:
		r.column++
	}
}

// next consumes and returns the next rune, matching the shape
// tryParseEscapeSequence pulls further characters with.
func (r *runeReader) next() (rune, bool) {
	c, _, ok := r.peek()
	if !ok {
		return 0, false
	}
	r.advance()
	return c, true
}

// substr returns source[start:end+1] — the inclusive byte range a
// parsedString borrowed.
func (r *runeReader) substr(start, end int) string {
	return r.src[start : end+1]
}

// position returns the line/column of the rune about to be read (i.e.
// the position as of the last peek that has not yet been advance()'d
// past).
func (r *runeReader) position() (line, column int) {
	return r.line, r.column
}

// Parse walks src as an INI document under opts, driving sink with the
// resulting stream of events. Parse normalizes its own copy of opts (see
// Options.Normalize) before parsing begins; the caller's value is left
// unchanged.
func Parse(src string, opts Options, sink Sink) error {
	opts.Normalize()

	p := &parseState{
		opts: &opts,
		sink: sink,
		r:    newRuneReader(src),
		st:   stStartLineState,
	}

	for {
		c, idx, ok := p.r.peek()
		if !ok {
			break
		}
		line, column := p.r.position() // c's own position, before advance moves past it
		p.r.advance()

		next, perr := p.st.process(p, c, idx)
		if perr != nil {
			return p.err(perr, line, column)
		}
		p.st = next
	}

	if perr := p.st.finish(p); perr != nil {
		line, column := p.r.position()
		return p.err(perr, line, column)
	}

	p.clearPath()
	return nil
}

// parseState is the mutable state threaded through the FSM: the
// accumulated key/value scratch buffers, the path of sections (and the
// in-flight key) leading to the current position, and the per-section
// and per-key duplicate bookkeeping the Rust source calls
// IniParserPersistentState.
type parseState struct {
	opts *Options
	sink Sink
	r    *runeReader
	st   state

	key   parsedString
	value parsedString
	path  []string

	isKeyUnique bool
	skipSection bool
	skipValue   bool

	// arrayType/arrayTypeSet track the homogeneity of the array
	// currently being parsed, mirroring Option<IniValueType> in the
	// source: arrayTypeSet is false until the first element is added.
	arrayType    value.Kind
	arrayTypeSet bool
}

func (p *parseState) err(pe *parseErr, line, column int) error {
	if pe.offset {
		column--
	}
	path := make(Path, len(p.path))
	for i, s := range p.path {
		path[i] = PathKey{Section: s}
	}
	return &Error{Line: uint32(line), Column: uint32(column), Kind: pe.kind, Path: path, Char: pe.char}
}

// clearPath closes every section currently open in the sink, in the
// order the Rust source's IniParserPersistentState::clear_path does:
// once per remaining path entry, then empties the path. By the time this
// runs (a new `[section]` header, or EOF) any pending value key has
// already been popped off the path by add_value_to_config/
// add_array_to_config's callers, so every remaining entry names a
// section.
func (p *parseState) clearPath() {
	for range p.path {
		p.sink.EndSection()
	}
	p.path = p.path[:0]
}
