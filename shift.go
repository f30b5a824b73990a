// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// ShiftAmountW collapses a clean wide shift amount into a uint64. Any bit
// set above bit 63 saturates the result, which then trips the overshift
// sentinel in the shift operations.
//
func ShiftAmountW(r []uint32) uint64 {
	for i := len(r) - 1; i >= 2; i-- {
		if r[i] != 0 {
			return ^uint64(0)
		}
	}
	if len(r) >= 2 {
		return ToUint64(r)
	}
	return uint64(r[0])
}

// Shl32 shifts a clean narrow value left. Shifting by 32 or more yields 0.
// The result is dirty.
//
func Shl32(l uint32, amt uint64) uint32 {
	if amt >= WordBits {
		return 0
	}
	return l << amt
}

// Shr32 shifts a clean narrow value right. Shifting by 32 or more yields 0.
//
func Shr32(l uint32, amt uint64) uint32 {
	if amt >= WordBits {
		return 0
	}
	return l >> amt
}

// ShrS32 arithmetically shifts a clean narrow value of width lbits right.
// Vacated positions fill with the sign bit; shifting by lbits or more
// yields the sign fill alone. The result is clean.
//
func ShrS32(lbits int, l uint32, amt uint64) uint32 {
	sign := -(l >> uint(lbits-1))
	if amt >= WordBits {
		return sign & Mask32(lbits)
	}
	signext := ^(Mask32(lbits) >> amt)
	return (l>>amt | sign&signext) & Mask32(lbits)
}

// Shl64 shifts a clean medium value left. Shifting by 64 or more yields 0.
// The result is dirty.
//
func Shl64(l uint64, amt uint64) uint64 {
	if amt >= 64 {
		return 0
	}
	return l << amt
}

// Shr64 shifts a clean medium value right. Shifting by 64 or more yields 0.
//
func Shr64(l uint64, amt uint64) uint64 {
	if amt >= 64 {
		return 0
	}
	return l >> amt
}

// ShrS64 arithmetically shifts a clean medium value of width lbits right.
// The result is clean.
//
func ShrS64(lbits int, l uint64, amt uint64) uint64 {
	sign := -(l >> uint(lbits-1))
	if amt >= 64 {
		return sign & Mask64(lbits)
	}
	signext := ^(Mask64(lbits) >> amt)
	return (l>>amt | sign&signext) & Mask64(lbits)
}

// ShlW shifts a clean wide value of width obits left and stores the result
// into o. Shifting by obits or more yields 0. o must not alias l. The
// result is clean.
//
func ShlW(obits int, o, l []uint32, amt uint64) []uint32 {
	n := Words(obits)
	if amt >= uint64(obits) {
		return ZeroW(o[:n])
	}
	if amt&wordMask == 0 { // word aligned
		ws := int(amt >> 5)
		for i := 0; i < ws; i++ {
			o[i] = 0
		}
		for i := ws; i < n; i++ {
			o[i] = l[i-ws]
		}
		return MaskW(obits, o)
	}
	ZeroW(o[:n])
	InsertWW(obits, o, l, obits-1, int(amt))
	return o
}

// ShrW shifts a clean wide value of width obits right and stores the result
// into o. Shifting by obits or more yields 0. o must not alias l. The
// result is clean.
//
func ShrW(obits int, o, l []uint32, amt uint64) []uint32 {
	n := Words(obits)
	if amt >= uint64(obits) {
		return ZeroW(o[:n])
	}
	ws := int(amt >> 5)
	if amt&wordMask == 0 { // word aligned
		for i := 0; i < n-ws; i++ {
			o[i] = l[i+ws]
		}
		for i := n - ws; i < n; i++ {
			o[i] = 0
		}
		return o
	}
	loff := uint(amt) & wordMask
	nbitsfromlow := WordBits - loff
	words := Words(obits - int(amt))
	for i := 0; i < words; i++ {
		o[i] = l[i+ws] >> loff
		if i+ws+1 < n {
			o[i] |= l[i+ws+1] << nbitsfromlow
		}
	}
	for i := words; i < n; i++ {
		o[i] = 0
	}
	return o
}

// ShrSW arithmetically shifts a clean wide value of width lbits right and
// stores the result into o. Vacated positions fill with the sign bit;
// shifting by lbits or more yields the sign fill alone. o must not alias l.
// The result is clean.
//
func ShrSW(lbits int, o, l []uint32, amt uint64) []uint32 {
	n := Words(lbits)
	var sign uint32
	if SignW(lbits, l) {
		sign = ^uint32(0)
	}
	if amt >= uint64(lbits) {
		for i := 0; i < n; i++ {
			o[i] = sign
		}
		return MaskW(lbits, o)
	}
	ws := int(amt >> 5)
	if amt&wordMask == 0 { // word aligned
		cw := n - ws
		for i := 0; i < cw; i++ {
			o[i] = l[i+ws]
		}
		o[cw-1] |= sign & ^Mask32(lbits)
		for i := cw; i < n; i++ {
			o[i] = sign
		}
		return MaskW(lbits, o)
	}
	loff := uint(amt) & wordMask
	nbitsfromlow := WordBits - loff
	words := Words(lbits - int(amt))
	for i := 0; i < words; i++ {
		o[i] = l[i+ws] >> loff
		if i+ws+1 < n {
			o[i] |= l[i+ws+1] << nbitsfromlow
		}
	}
	o[words-1] |= sign & ^Mask32(lbits-int(loff))
	for i := words; i < n; i++ {
		o[i] = sign
	}
	return MaskW(lbits, o)
}

// shlInPlaceW shifts w, a wide value of width obits, left in place by a
// static 1 to 31 bits. Used by the based literal reader to make room for
// the next digit.
func shlInPlaceW(obits int, w []uint32, n uint) {
	lins := Mask32(int(n))
	for i := Words(obits) - 1; i >= 1; i-- {
		w[i] = w[i]<<n&^lins | w[i-1]>>(WordBits-n)&lins
	}
	w[0] <<= n
	MaskW(obits, w)
}
