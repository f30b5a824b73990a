// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

import "math"

// ToFloat64W converts a clean wide value of the given width to a float64,
// rounding when the value exceeds the float64 mantissa.
//
func ToFloat64W(bits int, l []uint32) float64 {
	var d float64
	for i := Words(bits) - 1; i >= 0; i-- {
		d = d*4294967296.0 + float64(l[i])
	}
	return d
}

// ToFloat64SW converts a clean wide value of the given width to a float64,
// interpreting it as a signed integer. Widths above MaxOpWords words are
// not supported.
//
func ToFloat64SW(bits int, l []uint32) float64 {
	if !SignW(bits, l) {
		return ToFloat64W(bits, l)
	}
	n := Words(bits)
	var t [MaxOpWords]uint32
	MaskW(bits, NegW(t[:n], l[:n]))
	return -ToFloat64W(bits, t[:n])
}

// RoundToW converts a float64 to a clean wide value of the given width,
// rounding halves away from zero and wrapping modulo 2^bits. The mantissa
// is placed by range insertion at the position given by the exponent;
// negative values are negated after placement.
//
func RoundToW(bits int, o []uint32, v float64) []uint32 {
	n := Words(bits)
	ZeroW(o[:n])
	v = math.Round(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return o
	}
	q := math.Float64bits(v)
	exp := int(q>>52&0x7ff) - 1023 - 52
	man := q&Mask64(52) | 1<<52
	switch {
	case exp < 0:
		hi := 63
		if hi > bits-1 {
			hi = bits - 1
		}
		InsertW64(bits, o, man>>uint(-exp), hi, 0)
	case exp < bits:
		hi := exp + 52
		if hi > bits-1 {
			hi = bits - 1
		}
		InsertW64(bits, o, man, hi, exp)
	}
	MaskW(bits, o[:n])
	if v < 0 {
		MaskW(bits, NegInPlaceW(o[:n]))
	}
	return o
}
