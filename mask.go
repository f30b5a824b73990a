// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// WordBits is the size in bits of a single storage word.
const WordBits = 32

const wordMask = WordBits - 1

// MaxOpWords is the maximum operand size in words supported by operations
// that need internal scratch storage: signed multiply, divide, modulus,
// power and the float conversions. All other operations have no width limit.
//
const MaxOpWords = 256

// Words returns the number of uint32 words needed to store a value of the
// given width in bits.
//
func Words(bits int) int {
	return (bits + wordMask) / WordBits
}

// Mask32 returns a mask with the low bits set, for widths 1 to 32.
// A width that is a multiple of 32 (including 0) yields an all ones mask.
//
func Mask32(bits int) uint32 {
	if b := uint(bits) & wordMask; b != 0 {
		return 1<<b - 1
	}
	return ^uint32(0)
}

// Mask64 returns a mask with the low bits set, for widths 1 to 64.
// A width that is a multiple of 64 (including 0) yields an all ones mask.
//
func Mask64(bits int) uint64 {
	if b := uint(bits) & 63; b != 0 {
		return 1<<b - 1
	}
	return ^uint64(0)
}

// Clean32 masks a narrow value to its declared width. The result is clean.
//
func Clean32(bits int, v uint32) uint32 {
	return v & Mask32(bits)
}

// Clean64 masks a medium value to its declared width. The result is clean.
//
func Clean64(bits int, v uint64) uint64 {
	return v & Mask64(bits)
}

// ZeroW sets all words of w to zero and returns w.
//
func ZeroW(w []uint32) []uint32 {
	for i := range w {
		w[i] = 0
	}
	return w
}

// OnesW sets w to the all ones value of the given width. The result is clean.
//
func OnesW(bits int, w []uint32) []uint32 {
	n := Words(bits)
	for i := 0; i < n-1; i++ {
		w[i] = ^uint32(0)
	}
	w[n-1] = Mask32(bits)
	return w
}

// MaskW masks the top word of w to the declared width, in place. Masking is
// idempotent: applying it to a clean value is a no-op.
//
func MaskW(bits int, w []uint32) []uint32 {
	w[Words(bits)-1] &= Mask32(bits)
	return w
}

// CleanW copies l into o, masking the top word to the declared width.
//
func CleanW(bits int, o, l []uint32) []uint32 {
	n := Words(bits)
	copy(o[:n-1], l)
	o[n-1] = l[n-1] & Mask32(bits)
	return o
}

// CopyW copies l into o, which must be at least as long.
//
func CopyW(o, l []uint32) []uint32 {
	copy(o, l)
	return o
}

// SetW64 stores a 64 bit value into the low two words of w.
//
func SetW64(w []uint32, v uint64) []uint32 {
	w[0] = uint32(v)
	w[1] = uint32(v >> 32)
	return w
}

// ToUint64 returns the low two words of w as a single uint64.
//
func ToUint64(w []uint32) uint64 {
	return uint64(w[1])<<32 | uint64(w[0])
}

// CondW copies a into o if cond is true, b otherwise.
//
func CondW(o []uint32, cond bool, a, b []uint32) []uint32 {
	if cond {
		copy(o, a[:len(o)])
	} else {
		copy(o, b[:len(o)])
	}
	return o
}
