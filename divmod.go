// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

import "math/bits"

// Div32 divides two clean narrow values. Division by zero yields 0.
//
func Div32(l, r uint32) uint32 {
	if r == 0 {
		return 0
	}
	return l / r
}

// Div64 divides two clean medium values. Division by zero yields 0.
//
func Div64(l, r uint64) uint64 {
	if r == 0 {
		return 0
	}
	return l / r
}

// Mod32 returns the remainder of two clean narrow values. Modulus by zero
// yields 0.
//
func Mod32(l, r uint32) uint32 {
	if r == 0 {
		return 0
	}
	return l % r
}

// Mod64 returns the remainder of two clean medium values. Modulus by zero
// yields 0.
//
func Mod64(l, r uint64) uint64 {
	if r == 0 {
		return 0
	}
	return l % r
}

// DivS32 divides two clean narrow values of the given width as signed
// integers. Division by zero and division of the most negative value by -1
// both yield 0. The result is dirty.
//
func DivS32(bits int, l, r uint32) uint32 {
	if r == 0 {
		return 0
	}
	if l == 1<<uint(bits-1) && r == Mask32(bits) {
		return 0
	}
	return uint32(int32(SignExtend32(bits, l)) / int32(SignExtend32(bits, r)))
}

// ModS32 returns the signed remainder of two clean narrow values of the
// given width. The remainder takes the sign of the dividend. Modulus by
// zero and the most negative value modulo -1 both yield 0. The result is
// dirty.
//
func ModS32(bits int, l, r uint32) uint32 {
	if r == 0 {
		return 0
	}
	if l == 1<<uint(bits-1) && r == Mask32(bits) {
		return 0
	}
	return uint32(int32(SignExtend32(bits, l)) % int32(SignExtend32(bits, r)))
}

// DivS64 divides two clean medium values of the given width as signed
// integers. Division by zero and division of the most negative value by -1
// both yield 0. The result is dirty.
//
func DivS64(bits int, l, r uint64) uint64 {
	if r == 0 {
		return 0
	}
	if l == 1<<uint(bits-1) && r == Mask64(bits) {
		return 0
	}
	return uint64(int64(SignExtend64(bits, l)) / int64(SignExtend64(bits, r)))
}

// ModS64 returns the signed remainder of two clean medium values of the
// given width. Modulus by zero and the most negative value modulo -1 both
// yield 0. The result is dirty.
//
func ModS64(bits int, l, r uint64) uint64 {
	if r == 0 {
		return 0
	}
	if l == 1<<uint(bits-1) && r == Mask64(bits) {
		return 0
	}
	return uint64(int64(SignExtend64(bits, l)) % int64(SignExtend64(bits, r)))
}

// DivW divides two clean wide values of the given width and stores the
// quotient into o. Division by zero yields 0. Widths above MaxOpWords words
// are not supported. The result is clean.
//
func DivW(bits int, o, l, r []uint32) []uint32 {
	return divmodW(bits, o, l, r, false)
}

// ModW computes the remainder of two clean wide values of the given width
// and stores it into o. Modulus by zero yields 0. Widths above MaxOpWords
// words are not supported. The result is clean.
//
func ModW(bits int, o, l, r []uint32) []uint32 {
	return divmodW(bits, o, l, r, true)
}

// DivSW divides two clean wide values of the given width as signed
// integers. Negative operands are negated into scratch storage and the
// quotient is negated back when the signs differ. Division by zero and
// division of the most negative value by -1 both yield 0.
//
func DivSW(bits int, o, l, r []uint32) []uint32 {
	n := Words(bits)
	lneg, rneg := SignW(bits, l), SignW(bits, r)
	if lneg && rneg && isMostNegW(bits, l) && isOnesW(bits, r) {
		return ZeroW(o[:n])
	}
	var ls, rs, q [MaxOpWords]uint32
	lu, ru := l[:n], r[:n]
	if lneg {
		lu = MaskW(bits, NegW(ls[:n], l[:n]))
	}
	if rneg {
		ru = MaskW(bits, NegW(rs[:n], r[:n]))
	}
	if lneg != rneg {
		divmodW(bits, q[:n], lu, ru, false)
		return MaskW(bits, NegW(o[:n], q[:n]))
	}
	return divmodW(bits, o, lu, ru, false)
}

// ModSW computes the signed remainder of two clean wide values of the given
// width. The remainder takes the sign of the dividend. Modulus by zero and
// the most negative value modulo -1 both yield 0.
//
func ModSW(bits int, o, l, r []uint32) []uint32 {
	n := Words(bits)
	lneg, rneg := SignW(bits, l), SignW(bits, r)
	if lneg && rneg && isMostNegW(bits, l) && isOnesW(bits, r) {
		return ZeroW(o[:n])
	}
	var ls, rs, q [MaxOpWords]uint32
	lu, ru := l[:n], r[:n]
	if lneg {
		lu = MaskW(bits, NegW(ls[:n], l[:n]))
	}
	if rneg {
		ru = MaskW(bits, NegW(rs[:n], r[:n]))
	}
	if lneg {
		divmodW(bits, q[:n], lu, ru, true)
		return MaskW(bits, NegW(o[:n], q[:n]))
	}
	return divmodW(bits, o, lu, ru, true)
}

func isOnesW(bits int, w []uint32) bool {
	n := Words(bits)
	for i := 0; i < n-1; i++ {
		if w[i] != ^uint32(0) {
			return false
		}
	}
	return w[n-1] == Mask32(bits)
}

func isMostNegW(bits int, w []uint32) bool {
	n := Words(bits)
	for i := 0; i < n-1; i++ {
		if w[i] != 0 {
			return false
		}
	}
	return w[n-1] == 1<<(uint(bits-1)&wordMask)
}

// divmodW is the unsigned multiword long division at the bottom of all wide
// divide and modulus operations. Knuth algorithm D on 32 bit digits: the
// divisor is normalized so its top bit is set, then one quotient digit is
// estimated and corrected per step. Division is rare in synthesized
// designs, so this favors clarity over speed.
func divmodW(lbits int, o, l, r []uint32, modulus bool) []uint32 {
	words := Words(lbits)
	uw, vw := 1, 1
	for i := words - 1; i > 0; i-- {
		if l[i] != 0 {
			uw = i + 1
			break
		}
	}
	for i := words - 1; i > 0; i-- {
		if r[i] != 0 {
			vw = i + 1
			break
		}
	}
	if vw == 1 && r[0] == 0 { // division by zero
		return ZeroW(o[:words])
	}
	ZeroW(o[:words])
	if vw == 1 { // single digit divisor
		d := uint64(r[0])
		var rem uint64
		for i := uw - 1; i >= 0; i-- {
			cur := rem<<32 | uint64(l[i])
			o[i] = uint32(cur / d)
			rem = cur % d
		}
		if modulus {
			ZeroW(o[:words])
			o[0] = uint32(rem)
		}
		return o
	}
	if uw < vw { // quotient is zero, remainder is the dividend
		if modulus {
			copy(o[:uw], l[:uw])
		}
		return o
	}

	var un [MaxOpWords + 1]uint32
	var vn [MaxOpWords]uint32
	s := uint(bits.LeadingZeros32(r[vw-1]))
	for i := vw - 1; i > 0; i-- {
		vn[i] = uint32(uint64(r[i])<<s | uint64(r[i-1])>>(32-s))
	}
	vn[0] = r[0] << s
	un[uw] = uint32(uint64(l[uw-1]) >> (32 - s))
	for i := uw - 1; i > 0; i-- {
		un[i] = uint32(uint64(l[i])<<s | uint64(l[i-1])>>(32-s))
	}
	un[0] = l[0] << s

	for j := uw - vw; j >= 0; j-- {
		est := uint64(un[j+vw])<<32 | uint64(un[j+vw-1])
		qhat := est / uint64(vn[vw-1])
		rhat := est % uint64(vn[vw-1])
		for qhat >= 1<<32 || qhat*uint64(vn[vw-2]) > rhat<<32|uint64(un[j+vw-2]) {
			qhat--
			rhat += uint64(vn[vw-1])
			if rhat >= 1<<32 {
				break
			}
		}
		// multiply and subtract
		var k, t int64
		for i := 0; i < vw; i++ {
			p := qhat * uint64(vn[i])
			t = int64(un[i+j]) - k - int64(p&0xffffffff)
			un[i+j] = uint32(t)
			k = int64(p>>32) - t>>32
		}
		t = int64(un[j+vw]) - k
		un[j+vw] = uint32(t)
		if !modulus {
			o[j] = uint32(qhat)
		}
		if t < 0 { // estimate was one too large, add back
			if !modulus {
				o[j]--
			}
			var carry uint64
			for i := 0; i < vw; i++ {
				carry += uint64(un[i+j]) + uint64(vn[i])
				un[i+j] = uint32(carry)
				carry >>= 32
			}
			un[j+vw] += uint32(carry)
		}
	}
	if modulus { // denormalize the remainder
		for i := 0; i < vw-1; i++ {
			o[i] = uint32(uint64(un[i])>>s | uint64(un[i+1])<<(32-s))
		}
		o[vw-1] = un[vw-1] >> s
	}
	return o
}
