// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// BitW returns the given bit of a wide value of width lbits, in the low bit
// of the result. Selecting a bit at or above lbits yields all ones. The
// result is dirty.
//
func BitW(lbits int, l []uint32, bit int) uint32 {
	if bit >= lbits {
		return ^uint32(0)
	}
	return l[bit>>5] >> (uint(bit) & wordMask)
}

// Sel32 returns bits lsb..lsb+width-1 (at most 32 bits) of a wide value of
// width lbits. A range reaching at or above lbits yields all ones. The
// result is dirty.
//
func Sel32(lbits int, l []uint32, lsb, width int) uint32 {
	msb := lsb + width - 1
	if msb >= lbits {
		return ^uint32(0)
	}
	if msb>>5 == lsb>>5 {
		return l[lsb>>5] >> (uint(lsb) & wordMask)
	}
	// straddles a word boundary
	nbitsfromlow := WordBits - uint(lsb)&wordMask
	return l[msb>>5]<<nbitsfromlow | l[lsb>>5]>>(uint(lsb)&wordMask)
}

// Sel64 returns bits lsb..lsb+width-1 (at most 64 bits) of a wide value of
// width lbits. A range reaching at or above lbits yields all ones. The
// result is dirty.
//
func Sel64(lbits int, l []uint32, lsb, width int) uint64 {
	msb := lsb + width - 1
	if msb >= lbits {
		return ^uint64(0)
	}
	lword, hword := lsb>>5, msb>>5
	low := uint64(l[lword] >> (uint(lsb) & wordMask))
	if hword == lword {
		return low
	}
	nbitsfromlow := WordBits - uint(lsb)&wordMask
	if hword == lword+1 {
		return uint64(l[hword])<<nbitsfromlow | low
	}
	return uint64(l[hword])<<(nbitsfromlow+WordBits) |
		uint64(l[lword+1])<<nbitsfromlow | low
}

// SelW stores bits lsb..lsb+width-1 of a wide value of width lbits into o,
// a wide value of width obits (obits >= width). A range reaching at or
// above lbits yields all ones. The result is clean for in-range selections
// whose width is a multiple of 32, dirty otherwise.
//
func SelW(obits, lbits int, o, l []uint32, lsb, width int) []uint32 {
	msb := lsb + width - 1
	n := Words(obits)
	if msb >= lbits {
		return OnesW(obits, o)
	}
	if uint(lsb)&wordMask == 0 { // word aligned
		ws := lsb >> 5
		words := Words(width)
		for i := 0; i < words; i++ {
			o[i] = l[i+ws]
		}
		for i := words; i < n; i++ {
			o[i] = 0
		}
		return o
	}
	loff := uint(lsb) & wordMask
	nbitsfromlow := WordBits - loff
	words := Words(msb - lsb + 1)
	ws := lsb >> 5
	for i := 0; i < words; i++ {
		o[i] = l[i+ws] >> loff
		if i+ws+1 <= msb>>5 {
			o[i] |= l[i+ws+1] << nbitsfromlow
		}
	}
	for i := words; i < n; i++ {
		o[i] = 0
	}
	return o
}
