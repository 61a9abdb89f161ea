// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iniconf

import "testing"

func TestTryParseInteger(t *testing.T) {
	ok := []struct {
		in   string
		want int64
	}{
		{"7", 7}, {"+7", 7}, {"-7", -7},
		{"0x17", 23}, {"+0x17", 23}, {"-0x17", -23},
		{"0o17", 15}, {"+0o17", 15}, {"-0o17", -15},
	}
	for _, c := range ok {
		got, isOK := tryParseInteger(c.in)
		if !isOK {
			t.Errorf("tryParseInteger(%q): expected ok, got not-ok", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("tryParseInteger(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	bad := []string{
		"-", "+", "0x", "+0x", "-0x", "0o", "+0o", "-0o",
		"+7.", "-7.", "7.", ".0", "+.0", "-.0",
		"7e2", "7e+2", "7e-2", "7.0e2", "7.0e+2", "7.0e-2",
	}
	for _, in := range bad {
		if _, isOK := tryParseInteger(in); isOK {
			t.Errorf("tryParseInteger(%q): expected not-ok", in)
		}
	}
}

func runesNext(s string) func() (rune, bool) {
	rs := []rune(s)
	i := 0
	return func() (rune, bool) {
		if i >= len(rs) {
			return 0, false
		}
		r := rs[i]
		i++
		return r, true
	}
}

func TestTryParseEscapeSequenceHex(t *testing.T) {
	o := DefaultOptions()
	cases := []struct {
		in   string
		want rune
	}{
		{"x20", ' '}, {"x24", '$'}, {"x2c", ','}, {"x59", 'Y'}, {"x66", 'f'},
		{"xb5", 'µ'}, {"xb6", '¶'}, {"xc6", 'Æ'}, {"xe9", 'é'},
	}
	for _, c := range cases {
		res, perr := tryParseEscapeSequence(runesNext(c.in), false, &o)
		if perr != nil {
			t.Errorf("tryParseEscapeSequence(%q): unexpected error %v", c.in, perr.kind)
			continue
		}
		if res.r != c.want {
			t.Errorf("tryParseEscapeSequence(%q) = %q, want %q", c.in, res.r, c.want)
		}
	}
}

func TestTryParseEscapeSequenceUnicode(t *testing.T) {
	o := DefaultOptions()
	cases := []struct {
		in   string
		want rune
	}{
		{"u0020", ' '}, {"u0024", '$'}, {"u002c", ','}, {"u0059", 'Y'}, {"u0066", 'f'},
		{"u00b5", 'µ'}, {"u00b6", '¶'}, {"u00c6", 'Æ'}, {"u00e9", 'é'},
		{"u0117", 'ė'}, {"u0133", 'ĳ'},
	}
	for _, c := range cases {
		res, perr := tryParseEscapeSequence(runesNext(c.in), false, &o)
		if perr != nil {
			t.Errorf("tryParseEscapeSequence(%q): unexpected error %v", c.in, perr.kind)
			continue
		}
		if res.r != c.want {
			t.Errorf("tryParseEscapeSequence(%q) = %q, want %q", c.in, res.r, c.want)
		}
	}
}

func TestTryParseEscapeSequenceNamed(t *testing.T) {
	o := DefaultOptions()
	cases := []struct {
		in   string
		want rune
	}{
		{"\\", '\\'}, {"'", '\''}, {`"`, '"'},
		{"0", 0}, {"a", '\a'}, {"b", '\b'}, {"t", '\t'},
		{"r", '\r'}, {"n", '\n'}, {"v", '\v'}, {"f", '\f'},
		{" ", ' '},
		{"[", '['}, {"]", ']'}, {";", ';'}, {"#", '#'}, {"=", '='}, {":", ':'},
	}
	for _, c := range cases {
		res, perr := tryParseEscapeSequence(runesNext(c.in), false, &o)
		if perr != nil {
			t.Errorf("tryParseEscapeSequence(%q): unexpected error %v", c.in, perr.kind)
			continue
		}
		if res.r != c.want {
			t.Errorf("tryParseEscapeSequence(%q) = %q, want %q", c.in, res.r, c.want)
		}
	}
}

func TestTryParseEscapeSequenceLineContinuation(t *testing.T) {
	o := DefaultOptions()
	o.LineContinuation = true
	res, perr := tryParseEscapeSequence(runesNext("\n"), false, &o)
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr.kind)
	}
	if !res.isLineContinuation {
		t.Fatal("expected isLineContinuation")
	}
}
