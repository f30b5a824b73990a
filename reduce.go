// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

import "math/bits"

// RedAnd32 reports whether all bits of a clean narrow value are set.
//
func RedAnd32(bits int, v uint32) bool {
	return v == Mask32(bits)
}

// RedAnd64 reports whether all bits of a clean medium value are set.
//
func RedAnd64(bits int, v uint64) bool {
	return v == Mask64(bits)
}

// RedAndW reports whether all bits of a clean wide value are set.
//
func RedAndW(bits int, l []uint32) bool {
	n := Words(bits)
	r := ^uint32(0)
	for i := 0; i < n-1; i++ {
		r &= l[i]
	}
	r &= l[n-1] | ^Mask32(bits)
	return r == ^uint32(0)
}

// RedOr32 reports whether any bit of a clean narrow value is set.
//
func RedOr32(v uint32) bool {
	return v != 0
}

// RedOr64 reports whether any bit of a clean medium value is set.
//
func RedOr64(v uint64) bool {
	return v != 0
}

// RedOrW reports whether any bit of a clean wide value is set.
//
func RedOrW(l []uint32) bool {
	var r uint32
	for _, w := range l {
		r |= w
	}
	return r != 0
}

// RedXor32 returns the bit parity of a clean narrow value.
//
func RedXor32(v uint32) bool {
	v ^= v >> 16
	v ^= v >> 8
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 != 0
}

// RedXor64 returns the bit parity of a clean medium value.
//
func RedXor64(v uint64) bool {
	return RedXor32(uint32(v>>32) ^ uint32(v))
}

// RedXorW returns the bit parity of a clean wide value. Words are folded
// together first, then the combined word is folded down to a single bit.
//
func RedXorW(l []uint32) bool {
	var r uint32
	for _, w := range l {
		r ^= w
	}
	return RedXor32(r)
}

// CountOnes32 returns the number of set bits in a clean narrow value.
//
func CountOnes32(v uint32) int {
	return bits.OnesCount32(v)
}

// CountOnes64 returns the number of set bits in a clean medium value.
//
func CountOnes64(v uint64) int {
	return bits.OnesCount64(v)
}

// CountOnesW returns the number of set bits in a clean wide value.
//
func CountOnesW(l []uint32) int {
	var n int
	for _, w := range l {
		n += bits.OnesCount32(w)
	}
	return n
}

// CountBits32 counts the bits of a clean narrow value matching the three
// control bits. With all controls set it counts ones, with none set it
// counts zeros within the declared width, and any other combination matches
// every bit position.
//
func CountBits32(lbits int, v uint32, c0, c1, c2 bool) int {
	switch n := b2i(c0) + b2i(c1) + b2i(c2); n {
	case 3:
		return CountOnes32(v)
	case 0:
		return CountOnes32(^v & Mask32(lbits))
	default:
		return lbits
	}
}

// CountBits64 counts the bits of a clean medium value matching the three
// control bits.
//
func CountBits64(lbits int, v uint64, c0, c1, c2 bool) int {
	switch n := b2i(c0) + b2i(c1) + b2i(c2); n {
	case 3:
		return CountOnes64(v)
	case 0:
		return CountOnes64(^v & Mask64(lbits))
	default:
		return lbits
	}
}

// CountBitsW counts the bits of a clean wide value matching the three
// control bits.
//
func CountBitsW(lbits int, l []uint32, c0, c1, c2 bool) int {
	n := Words(lbits)
	var c int
	for i := 0; i < n-1; i++ {
		c += CountBits32(WordBits, l[i], c0, c1, c2)
	}
	c += CountBits32(lbits-(n-1)*WordBits, l[n-1], c0, c1, c2)
	return c
}

// OneHot32 reports whether exactly one bit of a clean narrow value is set.
//
func OneHot32(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

// OneHot64 reports whether exactly one bit of a clean medium value is set.
//
func OneHot64(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// OneHotW reports whether exactly one bit of a clean wide value is set.
//
func OneHotW(l []uint32) bool {
	return CountOnesW(l) == 1
}

// OneHot032 reports whether at most one bit of a clean narrow value is set.
//
func OneHot032(v uint32) bool {
	return v&(v-1) == 0
}

// OneHot064 reports whether at most one bit of a clean medium value is set.
//
func OneHot064(v uint64) bool {
	return v&(v-1) == 0
}

// OneHot0W reports whether at most one bit of a clean wide value is set.
//
func OneHot0W(l []uint32) bool {
	return CountOnesW(l) <= 1
}

// Log2Up32 returns the ceiling of the base 2 logarithm of a clean narrow
// value, the number of address bits needed to index v entries.
// Log2Up32(0) and Log2Up32(1) are both 0.
//
func Log2Up32(v uint32) int {
	if v <= 1 {
		return 0
	}
	return bits.Len32(v - 1)
}

// Log2Up64 returns the ceiling of the base 2 logarithm of a clean medium
// value.
//
func Log2Up64(v uint64) int {
	if v <= 1 {
		return 0
	}
	return bits.Len64(v - 1)
}

// Log2UpW returns the ceiling of the base 2 logarithm of a clean wide value.
//
func Log2UpW(l []uint32) int {
	n := BitLenW(l)
	if n == 0 {
		return 0
	}
	if OneHotW(l) {
		return n - 1
	}
	return n
}

// BitLenW returns the position of the most significant set bit of a clean
// wide value, plus one. BitLenW of zero is 0.
//
func BitLenW(l []uint32) int {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] != 0 {
			return i*WordBits + bits.Len32(l[i])
		}
	}
	return 0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
