// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/solidcoredata/miniconf/value"
)

type stateKind uint8

const (
	stStartLine stateKind = iota
	stBeforeSection
	stSection
	stQuotedSection
	stAfterSection
	stSkipLine
	stSkipLineWhitespaceOrComments
	stKey
	stQuotedKey
	stKeyValueSeparator
	stBeforeValue
	stValue
	stQuotedValue
	stBeforeArrayValue
	stArrayValue
	stQuotedArrayValue
	stAfterArrayValue
)

// state is one of the 17 FSM states. quote carries the opening quote
// character for the four Quoted* states; the array states consult
// parseState.arrayType/arrayTypeSet instead of carrying their own
// payload, since at most one array is ever open at a time.
type state struct {
	kind  stateKind
	quote rune
}

var stStartLineState = state{kind: stStartLine}

// process advances the FSM by one character, mirroring
// IniParserFSMState::process almost line for line, modulo the
// Result/enum-payload idioms Go doesn't have.
func (st state) process(p *parseState, c rune, idx int) (state, *parseErr) {
	o := p.opts
	self := st

	switch st.kind {

	case stStartLine:
		p.isKeyUnique = true
		p.skipValue = false

		switch {
		case unicode.IsSpace(c):
			return self, nil

		case o.isSectionStart(c):
			if o.NestedSectionDepth == 0 {
				return self, errf(NestedSectionDepthExceeded, false)
			}
			p.clearPath()
			p.skipSection = false
			return state{kind: stBeforeSection}, nil

		case o.isCommentChar(c):
			return state{kind: stSkipLine}, nil
		}

		if quote, ok := o.isStringQuoteChar(c); ok {
			return state{kind: stQuotedKey, quote: quote}, nil
		}
		if o.isEscapeChar(c) {
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				return self, errf(UnexpectedNewLineInKey, false)
			}
			p.key.pushOwned(res.r, p.r.substr)
			return state{kind: stKey}, nil
		}
		if o.isKeyOrValueChar(c, false, nil) {
			p.key.push(c, idx)
			return state{kind: stKey}, nil
		}
		if o.isKeyValueSeparatorChar(c) {
			return self, errf(EmptyKey, true)
		}
		return self, errc(InvalidCharacterAtLineStart, c, false)

	case stBeforeSection:
		if unicode.IsSpace(c) {
			if o.isNewLine(c) {
				return self, errf(UnexpectedNewLineInSectionName, true)
			}
			return self, nil
		}
		if quote, ok := o.isStringQuoteChar(c); ok {
			return state{kind: stQuotedSection, quote: quote}, nil
		}
		if o.isNestedSectionSeparator(c) {
			return self, errf(EmptySectionName, false)
		}
		if o.isEscapeChar(c) {
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.key.toOwned(p.r.substr)
				return self, nil
			}
			p.key.pushOwned(res.r, p.r.substr)
			return state{kind: stSection}, nil
		}
		if o.isKeyOrValueChar(c, false, nil) {
			p.key.push(c, idx)
			return state{kind: stSection}, nil
		}
		if o.isSectionEnd(c) {
			return self, errf(EmptySectionName, false)
		}
		return self, errc(InvalidCharacterInSectionName, c, false)

	case stSection:
		switch {
		case o.isNewLine(c):
			return self, errf(UnexpectedNewLineInSectionName, true)

		case o.isNestedSectionSeparator(c):
			section, _ := p.key.key(p.r.substr)
			return p.pushParentSection(section)

		case o.isEscapeChar(c):
			res, perr := tryParseEscapeSequence(p.r.next, true, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.key.toOwned(p.r.substr)
			} else {
				p.key.pushOwned(res.r, p.r.substr)
			}
			return self, nil

		case o.isKeyOrValueChar(c, true, nil):
			p.key.push(c, idx)
			return self, nil

		case o.isSectionEnd(c):
			section, _ := p.key.key(p.r.substr)
			p.path = append(p.path, section)
			skip, perr := p.startSection(section)
			if perr != nil {
				return self, perr
			}
			p.skipSection = skip
			p.key.clear()
			return state{kind: stSkipLineWhitespaceOrComments}, nil

		case unicode.IsSpace(c):
			return state{kind: stAfterSection}, nil

		default:
			return self, errc(InvalidCharacterInSectionName, c, false)
		}

	case stQuotedSection:
		quote := st.quote
		switch {
		case o.isNewLine(c):
			return self, errf(UnexpectedNewLineInSectionName, true)
		case o.isMatchingStringQuoteChar(quote, c):
			return state{kind: stAfterSection}, nil
		case o.isEscapeChar(c):
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.key.toOwned(p.r.substr)
			} else {
				p.key.pushOwned(res.r, p.r.substr)
			}
			return self, nil
		case o.isNonMatchingStringQuoteChar(quote, c):
			p.key.push(c, idx)
			return self, nil
		case c == ' ' || o.isKeyOrValueChar(c, true, &quote):
			p.key.push(c, idx)
			return self, nil
		default:
			return self, errc(InvalidCharacterInSectionName, c, false)
		}

	case stAfterSection:
		switch {
		case unicode.IsSpace(c):
			if o.isNewLine(c) {
				return self, errf(UnexpectedNewLineInSectionName, true)
			}
			return self, nil

		case o.isSectionEnd(c):
			section, ok := p.key.key(p.r.substr)
			if !ok {
				return self, errf(EmptySectionName, true)
			}
			p.path = append(p.path, section)
			skip, perr := p.startSection(section)
			if perr != nil {
				return self, perr
			}
			p.skipSection = skip
			p.key.clear()
			return state{kind: stSkipLineWhitespaceOrComments}, nil

		case o.isNestedSectionSeparator(c):
			section, ok := p.key.key(p.r.substr)
			if !ok {
				return self, errf(EmptySectionName, true)
			}
			return p.pushParentSection(section)

		default:
			if section, ok := p.key.key(p.r.substr); ok {
				p.path = append(p.path, section)
			}
			return self, errc(InvalidCharacterAfterSectionName, c, false)
		}

	case stSkipLine:
		if o.isNewLine(c) {
			return stStartLineState, nil
		}
		return self, nil

	case stSkipLineWhitespaceOrComments:
		switch {
		case o.isNewLine(c):
			return stStartLineState, nil
		case unicode.IsSpace(c):
			return self, nil
		case o.isInlineCommentChar(c):
			return state{kind: stSkipLine}, nil
		default:
			return self, errc(InvalidCharacterAtLineEnd, c, false)
		}

	case stKey:
		switch {
		case o.isKeyValueSeparatorChar(c):
			key, _ := p.key.key(p.r.substr)
			p.path = append(p.path, key)
			if perr := p.checkIsKeyDuplicate(key); perr != nil {
				return self, perr
			}
			return state{kind: stBeforeValue}, nil

		case unicode.IsSpace(c):
			if o.isNewLine(c) {
				return self, errf(UnexpectedNewLineInKey, true)
			}
			key, _ := p.key.key(p.r.substr)
			p.path = append(p.path, key)
			if perr := p.checkIsKeyDuplicate(key); perr != nil {
				return self, perr
			}
			return state{kind: stKeyValueSeparator}, nil

		case o.isEscapeChar(c):
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.key.toOwned(p.r.substr)
			} else {
				p.key.pushOwned(res.r, p.r.substr)
			}
			return self, nil

		case o.isKeyOrValueChar(c, false, nil):
			p.key.push(c, idx)
			return self, nil

		default:
			return self, errc(InvalidCharacterInKey, c, false)
		}

	case stQuotedKey:
		quote := st.quote
		switch {
		case o.isNewLine(c):
			return self, errf(UnexpectedNewLineInKey, true)
		case o.isMatchingStringQuoteChar(quote, c):
			key, ok := p.key.key(p.r.substr)
			if !ok {
				return self, errf(EmptyKey, false)
			}
			p.path = append(p.path, key)
			if perr := p.checkIsKeyDuplicate(key); perr != nil {
				return self, perr
			}
			return state{kind: stKeyValueSeparator}, nil
		case o.isEscapeChar(c):
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.key.toOwned(p.r.substr)
			} else {
				p.key.pushOwned(res.r, p.r.substr)
			}
			return self, nil
		case o.isNonMatchingStringQuoteChar(quote, c):
			p.key.push(c, idx)
			return self, nil
		case c == ' ' || o.isKeyOrValueChar(c, false, &quote):
			p.key.push(c, idx)
			return self, nil
		default:
			return self, errc(InvalidCharacterInKey, c, false)
		}

	case stKeyValueSeparator:
		switch {
		case o.isKeyValueSeparatorChar(c):
			return state{kind: stBeforeValue}, nil
		case unicode.IsSpace(c):
			if o.isNewLine(c) {
				return self, errf(UnexpectedNewLineInKey, true)
			}
			return self, nil
		default:
			return self, errc(InvalidKeyValueSeparator, c, false)
		}

	case stBeforeValue:
		if unicode.IsSpace(c) {
			if o.isNewLine(c) {
				if perr := p.finishScalarValue(false); perr != nil {
					return self, perr
				}
				return stStartLineState, nil
			}
			return self, nil
		}
		if o.isInlineCommentChar(c) {
			if perr := p.finishScalarValue(false); perr != nil {
				return self, perr
			}
			return state{kind: stSkipLine}, nil
		}
		if quote, ok := o.isStringQuoteChar(c); ok {
			return state{kind: stQuotedValue, quote: quote}, nil
		}
		if o.isEscapeChar(c) {
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				return self, nil
			}
			p.value.pushOwned(res.r, p.r.substr)
			return state{kind: stValue}, nil
		}
		if o.isArrayStart(c) {
			key, _ := p.key.key(p.r.substr)
			if !p.skipSection && !p.skipValue {
				p.sink.StartArray(key, !p.isKeyUnique)
			}
			p.arrayTypeSet = false
			return state{kind: stBeforeArrayValue}, nil
		}
		if o.isKeyOrValueChar(c, false, nil) {
			p.value.push(c, idx)
			return state{kind: stValue}, nil
		}
		return self, errc(InvalidCharacterInValue, c, false)

	case stValue:
		switch {
		case unicode.IsSpace(c):
			if perr := p.finishScalarValue(false); perr != nil {
				return self, perr
			}
			if o.isNewLine(c) {
				return stStartLineState, nil
			}
			return state{kind: stSkipLineWhitespaceOrComments}, nil

		case o.isInlineCommentChar(c):
			if perr := p.finishScalarValue(false); perr != nil {
				return self, perr
			}
			return state{kind: stSkipLine}, nil

		case o.isEscapeChar(c):
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.value.toOwned(p.r.substr)
			} else {
				p.value.pushOwned(res.r, p.r.substr)
			}
			return self, nil

		case o.isKeyOrValueChar(c, false, nil):
			p.value.push(c, idx)
			return self, nil

		default:
			return self, errc(InvalidCharacterInValue, c, false)
		}

	case stQuotedValue:
		quote := st.quote
		switch {
		case o.isNewLine(c):
			return self, errf(UnexpectedNewLineInQuotedValue, true)
		case o.isMatchingStringQuoteChar(quote, c):
			if perr := p.finishScalarValue(true); perr != nil {
				return self, perr
			}
			return state{kind: stSkipLineWhitespaceOrComments}, nil
		case o.isEscapeChar(c):
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.value.toOwned(p.r.substr)
			} else {
				p.value.pushOwned(res.r, p.r.substr)
			}
			return self, nil
		case o.isNonMatchingStringQuoteChar(quote, c):
			p.value.push(c, idx)
			return self, nil
		case c == ' ' || o.isKeyOrValueChar(c, false, &quote):
			p.value.push(c, idx)
			return self, nil
		default:
			return self, errc(InvalidCharacterInValue, c, false)
		}

	case stBeforeArrayValue:
		if unicode.IsSpace(c) {
			if o.isNewLine(c) {
				return self, errf(UnexpectedNewLineInArray, true)
			}
			return self, nil
		}
		if o.isArrayEnd(c) {
			key, _ := p.key.key(p.r.substr)
			if !p.skipSection && !p.skipValue {
				p.sink.EndArray(key)
			}
			if len(p.path) > 0 {
				p.path = p.path[:len(p.path)-1]
			}
			p.key.clear()
			return state{kind: stSkipLineWhitespaceOrComments}, nil
		}
		if quote, ok := o.isStringQuoteChar(c); ok {
			if p.arrayTypeSet && !p.arrayType.IsCompatible(value.String) {
				return self, errf(MixedArray, false)
			}
			return state{kind: stQuotedArrayValue, quote: quote}, nil
		}
		if o.isEscapeChar(c) {
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				return self, nil
			}
			p.value.pushOwned(res.r, p.r.substr)
			return state{kind: stArrayValue}, nil
		}
		if o.isKeyOrValueChar(c, false, nil) {
			p.value.push(c, idx)
			return state{kind: stArrayValue}, nil
		}
		return self, errc(InvalidCharacterInArray, c, false)

	case stArrayValue:
		switch {
		case unicode.IsSpace(c):
			if o.isNewLine(c) {
				return self, errf(UnexpectedNewLineInArray, true)
			}
			if perr := p.addValueToArray(p.value.value(p.r.substr), false); perr != nil {
				return self, perr
			}
			p.value.clear()
			return state{kind: stAfterArrayValue}, nil

		case o.isArrayValueSeparator(c):
			if perr := p.addValueToArray(p.value.value(p.r.substr), false); perr != nil {
				return self, perr
			}
			p.value.clear()
			return state{kind: stBeforeArrayValue}, nil

		case o.isArrayEnd(c):
			if perr := p.addValueToArray(p.value.value(p.r.substr), false); perr != nil {
				return self, perr
			}
			p.value.clear()
			key, _ := p.key.key(p.r.substr)
			if !p.skipSection && !p.skipValue {
				p.sink.EndArray(key)
			}
			if len(p.path) > 0 {
				p.path = p.path[:len(p.path)-1]
			}
			p.key.clear()
			return state{kind: stSkipLineWhitespaceOrComments}, nil

		case o.isEscapeChar(c):
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.value.toOwned(p.r.substr)
			} else {
				p.value.pushOwned(res.r, p.r.substr)
			}
			return self, nil

		case o.isKeyOrValueChar(c, false, nil):
			p.value.push(c, idx)
			return self, nil

		default:
			return self, errc(InvalidCharacterInValue, c, false)
		}

	case stQuotedArrayValue:
		quote := st.quote
		switch {
		case o.isNewLine(c):
			return self, errf(UnexpectedNewLineInQuotedValue, true)
		case o.isMatchingStringQuoteChar(quote, c):
			if perr := p.addValueToArray(p.value.value(p.r.substr), true); perr != nil {
				return self, perr
			}
			p.value.clear()
			return state{kind: stAfterArrayValue}, nil
		case o.isEscapeChar(c):
			res, perr := tryParseEscapeSequence(p.r.next, false, o)
			if perr != nil {
				return self, perr
			}
			if res.isLineContinuation {
				p.value.toOwned(p.r.substr)
			} else {
				p.value.pushOwned(res.r, p.r.substr)
			}
			return self, nil
		case o.isNonMatchingStringQuoteChar(quote, c):
			p.value.push(c, idx)
			return self, nil
		case c == ' ' || o.isKeyOrValueChar(c, false, &quote):
			p.value.push(c, idx)
			return self, nil
		default:
			return self, errc(InvalidCharacterInValue, c, false)
		}

	case stAfterArrayValue:
		switch {
		case unicode.IsSpace(c):
			if o.isNewLine(c) {
				return self, errf(UnexpectedNewLineInArray, true)
			}
			return self, nil
		case o.isArrayValueSeparator(c):
			return state{kind: stBeforeArrayValue}, nil
		case o.isArrayEnd(c):
			key, _ := p.key.key(p.r.substr)
			if !p.skipSection && !p.skipValue {
				p.sink.EndArray(key)
			}
			if len(p.path) > 0 {
				p.path = p.path[:len(p.path)-1]
			}
			p.key.clear()
			return state{kind: stSkipLineWhitespaceOrComments}, nil
		default:
			return self, errc(InvalidCharacterInArray, c, false)
		}
	}

	return self, errc(InvalidCharacterAtLineStart, c, false)
}

// finish handles EOF in whatever state the FSM was left in, mirroring
// IniParserFSMState::finish.
func (st state) finish(p *parseState) *parseErr {
	switch st.kind {
	case stBeforeSection, stSection, stQuotedSection, stAfterSection:
		return errf(UnexpectedEndOfFileInSectionName, false)
	case stKey, stQuotedKey, stKeyValueSeparator:
		return errf(UnexpectedEndOfFileBeforeKeyValueSeparator, false)
	case stQuotedValue:
		return errf(UnexpectedEndOfFileInQuotedString, false)
	case stValue, stBeforeValue:
		return p.finishScalarValue(false)
	case stBeforeArrayValue, stArrayValue, stAfterArrayValue:
		return errf(UnexpectedEndOfFileInArray, false)
	case stQuotedArrayValue:
		return errf(UnexpectedEndOfFileInQuotedArrayValue, false)
	default: // stStartLine, stSkipLine, stSkipLineWhitespaceOrComments
		return nil
	}
}

// pushParentSection is shared by Section and AfterSection's nested
// separator handling: it records the segment in the path, enforces the
// depth limit, requires (or allows, if ImplicitParentSections) the
// parent to already exist, enters it, and returns to BeforeSection.
func (p *parseState) pushParentSection(section string) (state, *parseErr) {
	p.path = append(p.path, section)

	o := p.opts
	if len(p.path) >= int(o.NestedSectionDepth) {
		return state{kind: stSection}, errf(NestedSectionDepthExceeded, false)
	}

	isSection, exists := p.sink.ContainsKey(section)
	switch {
	case exists && isSection:
		// Parent section already exists.
	case !exists && o.ImplicitParentSections:
		// Parent doesn't exist, but we're allowed to create it.
	default:
		return state{kind: stSection}, errf(InvalidParentSection, true)
	}

	p.sink.StartSection(section, false)
	p.key.clear()
	return state{kind: stBeforeSection}, nil
}

// startSection applies the configured DuplicateSections policy for the
// final segment of a section path (the one closed by `]`), mirroring
// start_section in fsm_state.rs.
func (p *parseState) startSection(section string) (skip bool, perr *parseErr) {
	o := p.opts
	isSection, exists := p.sink.ContainsKey(section)

	if exists && isSection {
		switch o.DuplicateSections {
		case DupSectionsForbid:
			return false, errf(DuplicateSection, false)
		case DupSectionsFirst:
			return true, nil
		case DupSectionsLast:
			p.sink.StartSection(section, true)
			return false, nil
		default: // DupSectionsMerge
			p.sink.StartSection(section, false)
			return false, nil
		}
	}

	if exists && !isSection {
		switch o.DuplicateKeys {
		case DupKeysForbid:
			return false, errf(DuplicateKey, true)
		case DupKeysFirst:
			return true, nil
		default: // DupKeysLast
			p.sink.StartSection(section, true)
			return false, nil
		}
	}

	p.sink.StartSection(section, false)
	return false, nil
}

// checkIsKeyDuplicate applies the configured DuplicateKeys policy once a
// key (not a section) has been fully parsed, mirroring
// check_is_key_duplicate.
func (p *parseState) checkIsKeyDuplicate(key string) *parseErr {
	if p.skipSection {
		p.skipValue = true
		p.isKeyUnique = false
		return nil
	}

	_, exists := p.sink.ContainsKey(key)
	isUnique := !exists

	switch p.opts.DuplicateKeys {
	case DupKeysForbid:
		if isUnique {
			p.skipValue = false
			p.isKeyUnique = true
			return nil
		}
		return errf(DuplicateKey, true)
	case DupKeysFirst:
		p.skipValue = !isUnique
		p.isKeyUnique = isUnique
		return nil
	default: // DupKeysLast
		p.skipValue = false
		p.isKeyUnique = isUnique
		return nil
	}
}

// finishScalarValue interprets the accumulated value buffer (quoted
// forces a String result regardless of its text) and, unless the
// current key/section is being skipped per duplicate policy, adds it to
// the sink at the current key. It always pops the key off the path and
// clears the key/value scratch buffers on success, mirroring
// add_value_to_config and its call sites' cleanup.
func (p *parseState) finishScalarValue(quoted bool) *parseErr {
	key, _ := p.key.key(p.r.substr)

	if !(p.skipSection || p.skipValue) {
		v, kind, ok := parseValueString(p.value.value(p.r.substr), quoted, p.opts.UnquotedStrings)
		if !ok {
			return errf(kind, false)
		}
		p.sink.AddValue(key, v, !p.isKeyUnique)
	}

	p.key.clear()
	p.value.clear()
	if len(p.path) > 0 {
		p.path = p.path[:len(p.path)-1]
	}
	return nil
}

// addValueToArray interprets text as the next array element, checks it
// against the array's homogeneity type (setting the type on the first
// element), and appends it, mirroring add_value_to_array.
func (p *parseState) addValueToArray(text string, quoted bool) *parseErr {
	if p.skipSection || p.skipValue {
		return nil
	}

	v, kind, ok := parseValueString(text, quoted, p.opts.UnquotedStrings)
	if !ok {
		return errf(kind, false)
	}

	if p.arrayTypeSet {
		if !p.arrayType.IsCompatible(v.Kind) {
			return errf(MixedArray, true)
		}
	} else {
		p.arrayType = v.Kind
		p.arrayTypeSet = true
	}

	p.sink.AddArrayValue(v)
	return nil
}

// parseValueString interprets a raw token as a bool, integer, float, or
// string, mirroring parse_value_string. The final bool reports success;
// UnquotedString is the only failure mode.
func parseValueString(s string, quoted bool, unquotedStrings bool) (Value, ErrorKind, bool) {
	switch {
	case s == "" || quoted:
		return Value{Kind: value.String, S: s}, 0, true
	case s == "true":
		return Value{Kind: value.Bool, B: true}, 0, true
	case s == "false":
		return Value{Kind: value.Bool, B: false}, 0, true
	}

	if i, ok := tryParseInteger(s); ok {
		return Value{Kind: value.I64, I: i}, 0, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Value{Kind: value.F64, F: f}, 0, true
	}
	if !unquotedStrings {
		return Value{}, UnquotedString, false
	}
	return Value{Kind: value.String, S: s}, 0, true
}

// tryParseInteger parses an optionally-signed decimal, 0x-hex, or
// 0o-octal i64 literal, mirroring try_parse_integer. It rejects anything
// with a fractional part or exponent, since those aren't valid digits
// for strconv.ParseInt in any of the three bases.
func tryParseInteger(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	sign := int64(1)
	rest := s
	switch {
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		sign = -1
		rest = rest[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(rest, "0x"):
		base = 16
		rest = rest[2:]
	case strings.HasPrefix(rest, "0o"):
		base = 8
		rest = rest[2:]
	}

	n, err := strconv.ParseInt(rest, base, 64)
	if err != nil {
		return 0, false
	}
	return sign * n, true
}
