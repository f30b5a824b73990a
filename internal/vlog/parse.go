// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vlog parses Verilog style sized based literals like 12'habc,
// 8'b1010_1010 or 'd42.
//
package vlog

import (
	"github.com/pkg/errors"
)

// Literal is the result of parsing a based literal: the declared width in
// bits (0 when unsized), the base letter and the digit characters with
// underscore separators removed.
//
type Literal struct {
	Bits   int
	Base   rune
	Digits string
}

// BaseLog2 returns the number of bits encoded by one digit, or 0 for
// decimal literals.
//
func (l *Literal) BaseLog2() int {
	switch l.Base {
	case 'b':
		return 1
	case 'o':
		return 3
	case 'h':
		return 4
	}
	return 0
}

// Parse parses a based literal. A missing size makes Bits 0; a bare number
// with no base is taken as decimal.
//
func Parse(input string) (Literal, error) {
	var lit Literal
	s := []rune(input)
	pos := 0

	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		lit.Bits = lit.Bits*10 + int(s[pos]-'0')
		pos++
	}
	if pos == len(s) && pos > 0 { // bare decimal number
		return Literal{Base: 'd', Digits: input}, nil
	}
	if pos >= len(s) || s[pos] != '\'' {
		return lit, parseError(input, pos, "expected ' before base")
	}
	pos++
	if pos >= len(s) {
		return lit, parseError(input, pos, "expected base after '")
	}
	switch b := lower(s[pos]); b {
	case 'b', 'o', 'd', 'h':
		lit.Base = b
	default:
		return lit, parseError(input, pos, "base must be one of b, o, d, h")
	}
	pos++
	start := pos
	var digits []rune
	for ; pos < len(s); pos++ {
		r := lower(s[pos])
		if r == '_' {
			continue
		}
		if !digitValid(r, lit.Base) {
			return lit, parseError(input, pos, "invalid digit for base")
		}
		digits = append(digits, r)
	}
	if len(digits) == 0 {
		return lit, parseError(input, start, "expected digits after base")
	}
	lit.Digits = string(digits)
	return lit, nil
}

// DigitValue returns the numeric value of a digit character.
//
func DigitValue(r rune) uint32 {
	if r >= 'a' {
		return uint32(r-'a') + 10
	}
	return uint32(r - '0')
}

func digitValid(r rune, base rune) bool {
	switch base {
	case 'b':
		return r == '0' || r == '1'
	case 'o':
		return '0' <= r && r <= '7'
	case 'd':
		return '0' <= r && r <= '9'
	case 'h':
		return '0' <= r && r <= '9' || 'a' <= r && r <= 'f'
	}
	return false
}

func lower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
