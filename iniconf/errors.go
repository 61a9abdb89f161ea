// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf

import "fmt"

// ErrorKind identifies the specific way a parse failed. Values are grouped
// the way spec section 7 groups them: structural, lexical, newline, escape,
// and end-of-file errors.
type ErrorKind uint8

const (
	// Structural.
	EmptyKey ErrorKind = iota
	EmptySectionName
	DuplicateKey
	DuplicateSection
	InvalidParentSection
	NestedSectionDepthExceeded
	MixedArray
	UnquotedString

	// Lexical. The offending rune is carried in Error.Char.
	InvalidCharacterAtLineStart
	InvalidCharacterInSectionName
	InvalidCharacterAfterSectionName
	InvalidCharacterAtLineEnd
	InvalidCharacterInKey
	InvalidKeyValueSeparator
	InvalidCharacterInValue
	InvalidCharacterInArray

	// Newline-in-the-wrong-place.
	UnexpectedNewLineInSectionName
	UnexpectedNewLineInKey
	UnexpectedNewLineInQuotedValue
	UnexpectedNewLineInArray
	UnexpectedNewLineInEscapeSequence
	UnexpectedNewLineInUnicodeEscapeSequence

	// Escape sequences.
	InvalidEscapeCharacter
	InvalidUnicodeEscapeSequence
	InvalidCharacterInUnicodeEscapeSequence
	UnexpectedEndOfFileInEscapeSequence
	UnexpectedEndOfFileInUnicodeEscapeSequence

	// End of file.
	UnexpectedEndOfFileInSectionName
	UnexpectedEndOfFileBeforeKeyValueSeparator
	UnexpectedEndOfFileInQuotedString
	UnexpectedEndOfFileInQuotedArrayValue
	UnexpectedEndOfFileInArray
)

var errorKindNames = map[ErrorKind]string{
	EmptyKey:                                 "empty key",
	EmptySectionName:                         "empty section name",
	DuplicateKey:                             "duplicate key",
	DuplicateSection:                         "duplicate section",
	InvalidParentSection:                     "invalid parent section",
	NestedSectionDepthExceeded:               "nested section depth exceeded",
	MixedArray:                               "mixed array",
	UnquotedString:                           "unquoted string not allowed",
	InvalidCharacterAtLineStart:              "invalid character at line start",
	InvalidCharacterInSectionName:            "invalid character in section name",
	InvalidCharacterAfterSectionName:         "invalid character after section name",
	InvalidCharacterAtLineEnd:                "invalid character at line end",
	InvalidCharacterInKey:                    "invalid character in key",
	InvalidKeyValueSeparator:                 "invalid key/value separator",
	InvalidCharacterInValue:                  "invalid character in value",
	InvalidCharacterInArray:                  "invalid character in array",
	UnexpectedNewLineInSectionName:           "unexpected new line in section name",
	UnexpectedNewLineInKey:                   "unexpected new line in key",
	UnexpectedNewLineInQuotedValue:           "unexpected new line in quoted value",
	UnexpectedNewLineInArray:                 "unexpected new line in array",
	UnexpectedNewLineInEscapeSequence:        "unexpected new line in escape sequence",
	UnexpectedNewLineInUnicodeEscapeSequence: "unexpected new line in unicode escape sequence",
	InvalidEscapeCharacter:                   "invalid escape character",
	InvalidUnicodeEscapeSequence:             "invalid unicode escape sequence",
	InvalidCharacterInUnicodeEscapeSequence:  "invalid character in unicode escape sequence",
	UnexpectedEndOfFileInEscapeSequence:      "unexpected end of file in escape sequence",
	UnexpectedEndOfFileInUnicodeEscapeSequence: "unexpected end of file in unicode escape sequence",
	UnexpectedEndOfFileInSectionName:           "unexpected end of file in section name",
	UnexpectedEndOfFileBeforeKeyValueSeparator: "unexpected end of file before key/value separator",
	UnexpectedEndOfFileInQuotedString:          "unexpected end of file in quoted string",
	UnexpectedEndOfFileInQuotedArrayValue:      "unexpected end of file in quoted array value",
	UnexpectedEndOfFileInArray:                 "unexpected end of file in array",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown error"
}

// Error is returned by Parse. It carries the 1-based source position, the
// path of sections (and array indices) that led to the error site, and the
// offending character where the error kind names one.
type Error struct {
	Line   uint32
	Column uint32
	Kind   ErrorKind
	Path   Path
	Char   rune // zero if the error kind doesn't carry one
}

func (e *Error) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("%d:%d: %s (%q) at %s", e.Line, e.Column, e.Kind, e.Char, e.Path)
	}
	return fmt.Sprintf("%d:%d: %s at %s", e.Line, e.Column, e.Kind, e.Path)
}

// parseErr is the internal error shape threaded through the FSM: a kind, an
// optional offending character, and whether the reported column must be
// offset one character back (the char has already been consumed from the
// reader by the time the error is raised).
type parseErr struct {
	kind   ErrorKind
	char   rune
	offset bool
}

func errf(kind ErrorKind, offset bool) *parseErr {
	return &parseErr{kind: kind, offset: offset}
}

func errc(kind ErrorKind, c rune, offset bool) *parseErr {
	return &parseErr{kind: kind, char: c, offset: offset}
}
