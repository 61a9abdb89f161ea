// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf

// escapeResult is what tryParseEscapeSequence decoded: either a literal
// rune to push, or a signal that the backslash introduced a line
// continuation (nothing to push; the single newline character already
// consumed ends the continuation, whatever follows is parsed normally in
// the caller's current state).
type escapeResult struct {
	isLineContinuation bool
	r                  rune
}

const maxUnicodeEscapeHexDigits = 6

// tryParseEscapeSequence decodes the character(s) following a backslash
// already consumed by the caller, pulling further characters one at a
// time from next. inSectionName distinguishes an unquoted section name,
// the only context where the nested-section separator `/` may be
// escaped.
func tryParseEscapeSequence(next func() (rune, bool), inSectionName bool, o *Options) (escapeResult, *parseErr) {
	readHexDigit := func(c rune, ok bool, bracketed bool, digits *[maxUnicodeEscapeHexDigits]uint32, n *int) (bool, *parseErr) {
		if !ok {
			return false, errf(UnexpectedEndOfFileInUnicodeEscapeSequence, false)
		}
		if isNewLineRune(c) {
			return false, errc(UnexpectedNewLineInUnicodeEscapeSequence, c, true)
		}
		if bracketed && c == '}' {
			return false, nil
		}
		d, isHex := tryCharToHexDigit(c)
		if !isHex {
			return false, errc(InvalidCharacterInUnicodeEscapeSequence, c, false)
		}
		digits[*n] = d
		*n++
		return true, nil
	}

	c, ok := next()
	if !ok {
		return escapeResult{}, errf(UnexpectedEndOfFileInEscapeSequence, false)
	}

	if isNewLineRune(c) {
		if o.LineContinuation {
			return escapeResult{isLineContinuation: true}, nil
		}
		return escapeResult{}, errc(UnexpectedNewLineInEscapeSequence, c, true)
	}

	switch c {
	case '\\', '\'', '"':
		return escapeResult{r: c}, nil
	case '0':
		return escapeResult{r: 0}, nil
	case 'a':
		return escapeResult{r: '\a'}, nil
	case 'b':
		return escapeResult{r: '\b'}, nil
	case 't':
		return escapeResult{r: '\t'}, nil
	case 'r':
		return escapeResult{r: '\r'}, nil
	case 'n':
		return escapeResult{r: '\n'}, nil
	case 'v':
		return escapeResult{r: '\v'}, nil
	case 'f':
		return escapeResult{r: '\f'}, nil
	case ' ':
		return escapeResult{r: ' '}, nil
	case '[', ']', ';', '#', '=', ':':
		return escapeResult{r: c}, nil
	case '/':
		if o.NestedSections() && inSectionName {
			return escapeResult{r: c}, nil
		}
		return escapeResult{}, errc(InvalidEscapeCharacter, c, false)

	case 'x':
		var digits [maxUnicodeEscapeHexDigits]uint32
		n := 0
		for i := 0; i < 2; i++ {
			cc, ok := next()
			cont, perr := readHexDigit(cc, ok, false, &digits, &n)
			if perr != nil {
				return escapeResult{}, perr
			}
			_ = cont
		}
		return escapeResult{r: rune(hexDigitsToNumber(digits[:n]))}, nil

	case 'u':
		cc, ok := next()
		if !ok {
			return escapeResult{}, errf(UnexpectedEndOfFileInUnicodeEscapeSequence, false)
		}
		if isNewLineRune(cc) {
			return escapeResult{}, errc(UnexpectedNewLineInUnicodeEscapeSequence, cc, true)
		}

		var digits [maxUnicodeEscapeHexDigits]uint32
		n := 0
		if cc == '{' {
			for i := 0; i < maxUnicodeEscapeHexDigits; i++ {
				c2, ok2 := next()
				cont, perr := readHexDigit(c2, ok2, true, &digits, &n)
				if perr != nil {
					return escapeResult{}, perr
				}
				if !cont {
					break
				}
			}
		} else {
			if _, perr := readHexDigit(cc, true, false, &digits, &n); perr != nil {
				return escapeResult{}, perr
			}
			for i := 0; i < 3; i++ {
				c2, ok2 := next()
				if _, perr := readHexDigit(c2, ok2, false, &digits, &n); perr != nil {
					return escapeResult{}, perr
				}
			}
		}

		if n == 0 {
			return escapeResult{}, errf(InvalidUnicodeEscapeSequence, false)
		}
		cp := hexDigitsToNumber(digits[:n])
		r, valid := validRune(cp)
		if !valid {
			return escapeResult{}, errf(InvalidUnicodeEscapeSequence, false)
		}
		return escapeResult{r: r}, nil

	default:
		return escapeResult{}, errc(InvalidEscapeCharacter, c, false)
	}
}

func tryCharToHexDigit(c rune) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}

func hexDigitsToNumber(digits []uint32) uint32 {
	var n uint32
	for _, d := range digits {
		n = n<<4 | d
	}
	return n
}

// validRune reports whether cp is a valid, encodable Unicode scalar
// value: not a surrogate, not beyond the maximum code point.
func validRune(cp uint32) (rune, bool) {
	if cp > 0x10FFFF {
		return 0, false
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		return 0, false
	}
	return rune(cp), true
}
