// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

import (
	"github.com/db47h/hwnum/internal/vlog"
	"github.com/pkg/errors"
)

// MaxLiteralBits bounds the width accepted by ParseLiteral, which allocates
// its result from the declared size.
const MaxLiteralBits = MaxOpWords * WordBits

// ParseBased fills o, a wide value of width obits, from the digits of a
// based literal. baseLog2 is the number of bits per digit (1 for binary, 3
// for octal, 4 for hex). Digits beyond the declared width are shifted out
// at the top. The result is clean.
//
func ParseBased(obits int, o []uint32, baseLog2 int, digits string) []uint32 {
	ZeroW(o[:Words(obits)])
	for _, r := range digits {
		if r == '_' {
			continue
		}
		shlInPlaceW(obits, o, uint(baseLog2))
		o[0] |= vlog.DigitValue(r) & Mask32(baseLog2)
	}
	return MaskW(obits, o)
}

// ParseDecimal fills o, a wide value of width obits, from decimal digits.
// The result is clean.
//
func ParseDecimal(obits int, o []uint32, digits string) []uint32 {
	n := Words(obits)
	ZeroW(o[:n])
	for _, r := range digits {
		if r == '_' {
			continue
		}
		carry := uint64(r - '0')
		for i := 0; i < n; i++ {
			carry += uint64(o[i]) * 10
			o[i] = uint32(carry)
			carry >>= 32
		}
	}
	return MaskW(obits, o)
}

// ParseLiteral parses a Verilog style literal like "12'habc", "8'b1010_1010"
// or "42" and returns its declared width and value. Unsized literals get a
// width of 32 bits. This is a convenience for tools and tests; unlike the
// rest of the package it allocates the result.
//
func ParseLiteral(s string) (bits int, w []uint32, err error) {
	lit, err := vlog.Parse(s)
	if err != nil {
		return 0, nil, err
	}
	bits = lit.Bits
	if bits == 0 {
		bits = 32
	}
	if bits > MaxLiteralBits {
		return 0, nil, errors.Errorf("literal %q wider than %d bits", s, MaxLiteralBits)
	}
	w = make([]uint32, Words(bits))
	if lit.Base == 'd' {
		ParseDecimal(bits, w, lit.Digits)
	} else {
		ParseBased(bits, w, lit.BaseLog2(), lit.Digits)
	}
	return bits, w, nil
}

// FormatW returns the hexadecimal representation of a clean wide value of
// the given width, without a size prefix.
//
func FormatW(bits int, w []uint32) string {
	n := (bits + 3) / 4
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		d := w[i>>3] >> ((uint(i) & 7) * 4) & 0xf
		buf[n-1-i] = "0123456789abcdef"[d]
	}
	return string(buf)
}
