// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf

import "unicode"

// DuplicateSections chooses what happens when a section header is seen a
// second time at the same path.
type DuplicateSections uint8

const (
	// DupSectionsMerge adds the new key/value pairs to the existing
	// section. The default.
	DupSectionsMerge DuplicateSections = iota
	// DupSectionsForbid raises DuplicateSection.
	DupSectionsForbid
	// DupSectionsFirst keeps the first instance and skips every later one.
	DupSectionsFirst
	// DupSectionsLast overwrites earlier instances with the last one seen.
	DupSectionsLast
)

// DuplicateKeys chooses what happens when a key is seen a second time
// within the same table.
type DuplicateKeys uint8

const (
	// DupKeysForbid raises DuplicateKey. The default.
	DupKeysForbid DuplicateKeys = iota
	// DupKeysFirst keeps the first value and skips every later one.
	DupKeysFirst
	// DupKeysLast overwrites earlier values with the last one seen.
	DupKeysLast
)

// Options configures the INI dialect accepted by Parse. The zero value is
// not a valid configuration; use DefaultOptions and override fields, or
// call Normalize before parsing (Parse does this for you).
type Options struct {
	// Comments is the set of line-comment leader characters. Drawn from
	// {';', '#'}. Defaults to {';'}.
	Comments map[rune]bool
	// InlineComments allows a comment to follow a value on the same line.
	InlineComments bool
	// KeyValueSeparator is the set of characters accepted between a key
	// and its value. Drawn from {'=', ':'}. An empty set coerces to {'='}.
	KeyValueSeparator map[rune]bool
	// StringQuotes is the set of characters that open/close a quoted
	// string. Drawn from {'"', '\''}. An empty set forces UnquotedStrings.
	StringQuotes map[rune]bool
	// UnquotedStrings allows string values that are not quoted and do not
	// parse as a bool/int/float.
	UnquotedStrings bool
	// Escape enables the backslash escape grammar.
	Escape bool
	// LineContinuation enables a backslash followed by a newline to
	// continue a token onto the next line. Ignored unless Escape is set.
	LineContinuation bool
	// DuplicateSections chooses the policy for a repeated section header.
	DuplicateSections DuplicateSections
	// DuplicateKeys chooses the policy for a repeated key.
	DuplicateKeys DuplicateKeys
	// Arrays enables bracketed, comma-separated array values.
	Arrays bool
	// NestedSectionDepth bounds how deep `/`-separated section paths may
	// go. 0 disables sections entirely, 1 disables nesting (the default).
	NestedSectionDepth uint32
	// ImplicitParentSections allows a nested section path to name a
	// parent that was never declared on its own.
	ImplicitParentSections bool
}

// DefaultOptions returns the dialect described in spec section 4.4's
// defaults column.
func DefaultOptions() Options {
	return Options{
		Comments:           map[rune]bool{';': true},
		InlineComments:     false,
		KeyValueSeparator:  map[rune]bool{'=': true},
		StringQuotes:       map[rune]bool{'"': true},
		UnquotedStrings:    true,
		Escape:             true,
		LineContinuation:   false,
		DuplicateSections:  DupSectionsMerge,
		DuplicateKeys:      DupKeysForbid,
		Arrays:             false,
		NestedSectionDepth: 1,
	}
}

// Normalize applies the two coercion rules spec section 4.4 requires
// before parsing: an empty key/value separator set becomes {'='}, and an
// empty string-quote set forces unquoted strings on.
func (o *Options) Normalize() {
	if len(o.KeyValueSeparator) == 0 {
		o.KeyValueSeparator = map[rune]bool{'=': true}
	}
	if len(o.StringQuotes) == 0 {
		o.UnquotedStrings = true
	}
}

// NestedSections reports whether `/` acts as a path separator in section
// names (NestedSectionDepth > 1).
func (o *Options) NestedSections() bool {
	return o.NestedSectionDepth > 1
}

func (o *Options) isCommentChar(c rune) bool {
	return o.Comments[c]
}

func (o *Options) isInlineCommentChar(c rune) bool {
	return o.InlineComments && o.Comments[c]
}

func (o *Options) isKeyValueSeparatorChar(c rune) bool {
	return o.KeyValueSeparator[c]
}

// isStringQuoteChar reports whether c opens a quoted token under the
// configured dialect.
func (o *Options) isStringQuoteChar(c rune) (rune, bool) {
	if o.StringQuotes[c] {
		return c, true
	}
	return 0, false
}

func (o *Options) isMatchingStringQuoteChar(quote, c rune) bool {
	return c == quote
}

// isNonMatchingStringQuoteChar reports whether c is a configured quote
// character other than the one currently open (such a character is a
// literal inside the open quoted token).
func (o *Options) isNonMatchingStringQuoteChar(quote, c rune) bool {
	return o.StringQuotes[c] && c != quote
}

func isNewLineRune(c rune) bool {
	return c == '\n' || c == '\r'
}

func (o *Options) isNewLine(c rune) bool {
	return isNewLineRune(c)
}

func (o *Options) isSectionStart(c rune) bool {
	return c == '['
}

func (o *Options) isSectionEnd(c rune) bool {
	return c == ']'
}

func (o *Options) isArrayStart(c rune) bool {
	return o.Arrays && c == '['
}

func (o *Options) isArrayEnd(c rune) bool {
	return c == ']'
}

func (o *Options) isArrayValueSeparator(c rune) bool {
	return c == ','
}

func (o *Options) isNestedSectionSeparator(c rune) bool {
	return o.NestedSections() && c == '/'
}

func (o *Options) isEscapeChar(c rune) bool {
	return o.Escape && c == '\\'
}

// isKeyOrValueChar reports whether c may appear, unescaped, as part of an
// unquoted key, section name, or value, or as a literal inside a quoted
// token (quote != nil). Whitespace, newlines, the configured comment
// leaders, key/value separators, string quotes, section delimiters, the
// array separator (when arrays are enabled) and, inside an unquoted
// section name when nesting is enabled, the nested-section separator, all
// require escaping instead. Quoted tokens accept any character here; the
// matching quote, newline, and escape-introducer cases are all handled by
// the caller before falling through to this check.
func (o *Options) isKeyOrValueChar(c rune, inSectionName bool, quote *rune) bool {
	if quote != nil {
		return true
	}
	if unicode.IsSpace(c) {
		return false
	}
	if o.isEscapeChar(c) {
		return false
	}
	if o.isCommentChar(c) {
		return false
	}
	if o.isKeyValueSeparatorChar(c) {
		return false
	}
	if _, ok := o.isStringQuoteChar(c); ok {
		return false
	}
	if c == '[' || c == ']' {
		return false
	}
	if o.Arrays && c == ',' {
		return false
	}
	if inSectionName && o.isNestedSectionSeparator(c) {
		return false
	}
	return true
}
