// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vlog

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		bits   int
		base   rune
		digits string
	}{
		{"12'habc", 12, 'h', "abc"},
		{"12'HABC", 12, 'h', "abc"},
		{"8'b1010_1010", 8, 'b', "10101010"},
		{"6'o52", 6, 'o', "52"},
		{"'d42", 0, 'd', "42"},
		{"42", 0, 'd', "42"},
		{"16'hBeEf", 16, 'h', "beef"},
	}
	for _, test := range tests {
		lit, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.in, err)
			continue
		}
		if lit.Bits != test.bits || lit.Base != test.base || lit.Digits != test.digits {
			t.Errorf("Parse(%q) = %+v", test.in, lit)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "'", "12'", "12'q1", "8'b102", "8'o8", "8'd1a", "8'hfg", "abc"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected an error", in)
		}
	}
}

func TestBaseLog2(t *testing.T) {
	for _, test := range []struct {
		base rune
		want int
	}{{'b', 1}, {'o', 3}, {'h', 4}, {'d', 0}} {
		l := Literal{Base: test.base}
		if got := l.BaseLog2(); got != test.want {
			t.Errorf("BaseLog2(%c) = %d, want %d", test.base, got, test.want)
		}
	}
}
