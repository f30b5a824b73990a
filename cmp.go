// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// EqW reports whether two clean wide values of equal word count are equal.
//
func EqW(l, r []uint32) bool {
	var d uint32
	for i := range l {
		d |= l[i] ^ r[i]
	}
	return d == 0
}

// NeW reports whether two clean wide values of equal word count differ.
//
func NeW(l, r []uint32) bool {
	return !EqW(l, r)
}

// CmpW compares two clean wide values of equal word count as unsigned
// integers and returns -1, 0 or 1.
//
func CmpW(l, r []uint32) int {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] < r[i] {
			return -1
		}
		if l[i] > r[i] {
			return 1
		}
	}
	return 0
}

// CmpSW compares two clean wide values of the given width as signed
// integers and returns -1, 0 or 1. The sign bits decide first; operands of
// equal sign compare like unsigned values.
//
func CmpSW(bits int, l, r []uint32) int {
	ls, rs := SignW(bits, l), SignW(bits, r)
	if ls != rs {
		if ls {
			return -1
		}
		return 1
	}
	return CmpW(l[:Words(bits)], r[:Words(bits)])
}

// Cmp32S compares two clean narrow values of the given width as signed
// integers and returns -1, 0 or 1.
//
func Cmp32S(bits int, l, r uint32) int {
	ls, rs := int32(SignExtend32(bits, l)), int32(SignExtend32(bits, r))
	switch {
	case ls < rs:
		return -1
	case ls > rs:
		return 1
	}
	return 0
}

// Cmp64S compares two clean medium values of the given width as signed
// integers and returns -1, 0 or 1.
//
func Cmp64S(bits int, l, r uint64) int {
	ls, rs := int64(SignExtend64(bits, l)), int64(SignExtend64(bits, r))
	switch {
	case ls < rs:
		return -1
	case ls > rs:
		return 1
	}
	return 0
}
