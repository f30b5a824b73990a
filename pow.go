// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// Pow32 raises a clean narrow base to a clean narrow exponent, modulo 2^32,
// by repeated squaring bounded by the exponent width. The result is dirty.
//
func Pow32(rbits int, l, r uint32) uint32 {
	if r == 0 {
		return 1
	}
	if l == 0 {
		return 0
	}
	power, out := l, uint32(1)
	for i := 0; i < rbits; i++ {
		if i > 0 {
			power *= power
		}
		if r>>uint(i)&1 != 0 {
			out *= power
		}
	}
	return out
}

// Pow64 raises a clean medium base to a clean medium exponent, modulo 2^64.
// The result is dirty.
//
func Pow64(rbits int, l, r uint64) uint64 {
	if r == 0 {
		return 1
	}
	if l == 0 {
		return 0
	}
	power, out := l, uint64(1)
	for i := 0; i < rbits; i++ {
		if i > 0 {
			power *= power
		}
		if r>>uint(i)&1 != 0 {
			out *= power
		}
	}
	return out
}

// PowW raises a clean wide base of width obits to a clean wide exponent of
// width rbits and stores the result, modulo 2^obits, into o. A zero
// exponent yields 1 and a zero base yields 0. Widths above MaxOpWords words
// are not supported. The result is clean.
//
func PowW(obits, rbits int, o, l, r []uint32) []uint32 {
	n := Words(obits)
	if !RedOrW(r[:Words(rbits)]) {
		ZeroW(o[:n])
		o[0] = 1
		return o
	}
	if !RedOrW(l[:n]) {
		return ZeroW(o[:n])
	}
	var power, tmp [MaxOpWords]uint32
	copy(power[:n], l[:n])
	ZeroW(o[:n])
	o[0] = 1
	for i := 0; i < rbits; i++ {
		if i > 0 {
			MulW(tmp[:n], power[:n], power[:n])
			copy(power[:n], MaskW(obits, tmp[:n]))
		}
		if r[i>>5]>>(uint(i)&wordMask)&1 != 0 {
			MulW(tmp[:n], o[:n], power[:n])
			copy(o[:n], MaskW(obits, tmp[:n]))
		}
	}
	return o
}

// PowW64 raises a clean wide base to a clean medium exponent.
//
func PowW64(obits, rbits int, o, l []uint32, r uint64) []uint32 {
	var rw [2]uint32
	SetW64(rw[:], r)
	return PowW(obits, rbits, o, l, rw[:])
}

// PowS32 raises a clean narrow base to a clean narrow exponent as signed
// values of widths lbits and rbits. A negative exponent yields 0 unless the
// base is 0 (0), 1 (1) or -1 (1 for even exponents, -1 masked to lbits for
// odd ones). The result is dirty for positive exponents.
//
func PowS32(lbits, rbits int, l, r uint32) uint32 {
	if r == 0 {
		return 1
	}
	if Sign32(rbits, r) {
		switch {
		case l == 0:
			return 0
		case l == 1:
			return 1
		case l == Mask32(lbits): // base is -1
			if r&1 != 0 {
				return l
			}
			return 1
		}
		return 0
	}
	return Pow32(rbits, l, r)
}

// PowS64 raises a clean medium base to a clean medium exponent as signed
// values of widths lbits and rbits.
//
func PowS64(lbits, rbits int, l, r uint64) uint64 {
	if r == 0 {
		return 1
	}
	if Sign64(rbits, r) {
		switch {
		case l == 0:
			return 0
		case l == 1:
			return 1
		case l == Mask64(lbits):
			if r&1 != 0 {
				return l
			}
			return 1
		}
		return 0
	}
	return Pow64(rbits, l, r)
}

// PowSW raises a clean wide base of width obits to a clean wide exponent of
// width rbits as signed values. A negative exponent yields 0 unless the
// base is 0, 1 or -1. The result is clean.
//
func PowSW(obits, rbits int, o, l, r []uint32) []uint32 {
	n := Words(obits)
	if !RedOrW(r[:Words(rbits)]) {
		ZeroW(o[:n])
		o[0] = 1
		return o
	}
	if SignW(rbits, r) {
		switch {
		case !RedOrW(l[:n]): // base is 0
			return ZeroW(o[:n])
		case l[0] == 1 && !RedOrW(l[1:n]): // base is 1
			ZeroW(o[:n])
			o[0] = 1
			return o
		case isOnesW(obits, l): // base is -1
			if r[0]&1 != 0 {
				return CleanW(obits, o, l)
			}
			ZeroW(o[:n])
			o[0] = 1
			return o
		}
		return ZeroW(o[:n])
	}
	return PowW(obits, rbits, o, l, r)
}
