// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// StreamFast32 reverses the order of the power of two sized slices of a
// clean narrow value of width lbits: the least significant slice becomes
// the most significant one, bits within a slice keep their order. The slice
// size is given as its base 2 logarithm, 0 to 5.
//
// When lbits is not a multiple of the slice size, the partial most
// significant slice is pre shifted up so the swap cascade deposits it in
// the right place. The cascade itself is a masked shift and swap bit
// reversal over the full word, trimmed to lbits at the end. The result is
// clean.
//
func StreamFast32(lbits int, l uint32, sliceLog2 int) uint32 {
	ret := l
	if sliceLog2 != 0 {
		lbitsFloor := uint32(lbits) &^ Mask32(sliceLog2)
		lbitsRem := uint32(lbits) - lbitsFloor
		if lbitsFloor != WordBits {
			msbMask := Mask32(int(lbitsRem)) << lbitsFloor
			ret = ret&^msbMask | (ret&msbMask)<<(uint32(1)<<uint(sliceLog2)-lbitsRem)
		}
	}
	switch sliceLog2 {
	case 0:
		ret = ret>>1&0x55555555 | (ret&0x55555555)<<1
		fallthrough
	case 1:
		ret = ret>>2&0x33333333 | (ret&0x33333333)<<2
		fallthrough
	case 2:
		ret = ret>>4&0x0f0f0f0f | (ret&0x0f0f0f0f)<<4
		fallthrough
	case 3:
		ret = ret>>8&0x00ff00ff | (ret&0x00ff00ff)<<8
		fallthrough
	case 4:
		ret = ret>>16 | ret<<16
	}
	return ret >> (WordBits - uint(lbits))
}

// StreamFast64 is the medium variant of StreamFast32, with slice size
// logarithms 0 to 6.
//
func StreamFast64(lbits int, l uint64, sliceLog2 int) uint64 {
	ret := l
	if sliceLog2 != 0 {
		lbitsFloor := uint64(lbits) &^ Mask64(sliceLog2)
		lbitsRem := uint64(lbits) - lbitsFloor
		if lbitsFloor != 64 {
			msbMask := Mask64(int(lbitsRem)) << lbitsFloor
			ret = ret&^msbMask | (ret&msbMask)<<(uint64(1)<<uint(sliceLog2)-lbitsRem)
		}
	}
	switch sliceLog2 {
	case 0:
		ret = ret>>1&0x5555555555555555 | (ret&0x5555555555555555)<<1
		fallthrough
	case 1:
		ret = ret>>2&0x3333333333333333 | (ret&0x3333333333333333)<<2
		fallthrough
	case 2:
		ret = ret>>4&0x0f0f0f0f0f0f0f0f | (ret&0x0f0f0f0f0f0f0f0f)<<4
		fallthrough
	case 3:
		ret = ret>>8&0x00ff00ff00ff00ff | (ret&0x00ff00ff00ff00ff)<<8
		fallthrough
	case 4:
		ret = ret>>16&0x0000ffff0000ffff | (ret&0x0000ffff0000ffff)<<16
		fallthrough
	case 5:
		ret = ret>>32 | ret<<32
	}
	return ret >> (64 - uint(lbits))
}

// Stream32 is the generic slice reversal for clean narrow values: slices of
// any size are copied one at a time, most significant first. A partial
// least significant slice keeps its own bit order and lands at the top.
// The result is clean.
//
func Stream32(lbits int, l uint32, slice int) uint32 {
	if slice >= lbits {
		return l
	}
	var ret uint32
	mask := Mask32(slice)
	for istart := 0; istart < lbits; istart += slice {
		ostart := lbits - slice - istart
		if ostart < 0 {
			ostart = 0
		}
		ret |= l >> uint(istart) & mask << uint(ostart)
	}
	return ret & Mask32(lbits)
}

// Stream64 is the generic slice reversal for clean medium values.
//
func Stream64(lbits int, l uint64, slice int) uint64 {
	if slice >= lbits {
		return l
	}
	var ret uint64
	mask := Mask64(slice)
	for istart := 0; istart < lbits; istart += slice {
		ostart := lbits - slice - istart
		if ostart < 0 {
			ostart = 0
		}
		ret |= l >> uint(istart) & mask << uint(ostart)
	}
	return ret & Mask64(lbits)
}

// StreamW reverses the order of the slices of a clean wide value of width
// lbits, bit by bit, and stores the result into o. o must not alias l. The
// result is clean.
//
func StreamW(lbits int, o, l []uint32, slice int) []uint32 {
	ZeroW(o[:Words(lbits)])
	ssize := slice
	if ssize > lbits {
		ssize = lbits
	}
	for istart := 0; istart < lbits; istart += slice {
		ostart := lbits - slice - istart
		if ostart < 0 {
			ostart = 0
		}
		for sbit := 0; sbit < ssize && sbit < lbits-istart; sbit++ {
			bit := l[(istart+sbit)>>5] >> (uint(istart+sbit) & wordMask) & 1
			o[(ostart+sbit)>>5] |= bit << (uint(ostart+sbit) & wordMask)
		}
	}
	return o
}
