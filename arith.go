// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// AndW stores the bitwise and of two wide values into o.
//
func AndW(o, l, r []uint32) []uint32 {
	for i := range o {
		o[i] = l[i] & r[i]
	}
	return o
}

// OrW stores the bitwise or of two wide values into o.
//
func OrW(o, l, r []uint32) []uint32 {
	for i := range o {
		o[i] = l[i] | r[i]
	}
	return o
}

// XorW stores the bitwise xor of two wide values into o.
//
func XorW(o, l, r []uint32) []uint32 {
	for i := range o {
		o[i] = l[i] ^ r[i]
	}
	return o
}

// NotW stores the bitwise complement of a wide value into o. The result is
// dirty.
//
func NotW(o, l []uint32) []uint32 {
	for i := range o {
		o[i] = ^l[i]
	}
	return o
}

// AddW adds two clean wide values of equal word count with ripple carry and
// stores the sum into o. The top word of the result is dirty.
//
func AddW(o, l, r []uint32) []uint32 {
	var carry uint64
	for i := range o {
		carry += uint64(l[i]) + uint64(r[i])
		o[i] = uint32(carry)
		carry >>= 32
	}
	return o
}

// SubW subtracts r from l, both clean wide values of equal word count, and
// stores the difference into o. Subtraction adds the complement of r with an
// extra carry folded into the lowest word. The top word of the result is
// dirty.
//
func SubW(o, l, r []uint32) []uint32 {
	carry := uint64(1)
	for i := range o {
		carry += uint64(l[i]) + uint64(^r[i])
		o[i] = uint32(carry)
		carry >>= 32
	}
	return o
}

// NegW stores the two's complement negation of l into o. The top word of
// the result is dirty. o may alias l.
//
func NegW(o, l []uint32) []uint32 {
	carry := uint32(1)
	for i := range o {
		w := l[i]
		o[i] = ^w + carry
		if w != 0 {
			carry = 0
		}
	}
	return o
}

// NegInPlaceW negates w in place. The top word of the result is dirty.
//
func NegInPlaceW(w []uint32) []uint32 {
	return NegW(w, w)
}

// MulW multiplies two clean wide values and stores the low len(o) words of
// the product into o, schoolbook style. o must not alias l or r. The top
// word of the result is dirty.
//
func MulW(o, l, r []uint32) []uint32 {
	n := len(o)
	for i := 0; i < n; i++ {
		o[i] = 0
	}
	for i := 0; i < n; i++ {
		var carry uint64
		lv := uint64(l[i])
		for j := 0; i+j < n; j++ {
			carry += uint64(o[i+j]) + lv*uint64(r[j])
			o[i+j] = uint32(carry)
			carry >>= 32
		}
	}
	return o
}

// MulSW multiplies two clean wide values of the given width as signed
// integers and stores the low Words(bits) words of the product into o.
// Negative operands are negated into scratch storage, the magnitudes are
// multiplied, and the product is negated back when the operand signs
// differ. Widths above MaxOpWords words are not supported. The top word of
// the result is dirty when the product is negative.
//
func MulSW(bits int, o, l, r []uint32) []uint32 {
	n := Words(bits)
	var ls, rs [MaxOpWords]uint32
	lu, ru := l[:n], r[:n]
	lneg, rneg := SignW(bits, l), SignW(bits, r)
	if lneg {
		lu = MaskW(bits, NegW(ls[:n], l[:n]))
	}
	if rneg {
		ru = MaskW(bits, NegW(rs[:n], r[:n]))
	}
	MulW(o[:n], lu, ru)
	MaskW(bits, o[:n])
	if lneg != rneg {
		NegInPlaceW(o[:n])
	}
	return o
}
