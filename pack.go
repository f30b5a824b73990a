// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// Element order in packed arrays follows declaration order of unpacked
// hardware arrays: element 0 holds the most significant slice of the packed
// vector, the last element the least significant one. When the packed width
// is not a multiple of the element width, element 0 is the partial slice.

// Pack32 packs clean elements of width ebits into a narrow value of width
// obits = len(elems)*ebits (the top element may be partial). The result is
// clean.
//
func Pack32(obits, ebits int, elems []uint32) uint32 {
	var o uint32
	n := len(elems)
	for i := 0; i < n; i++ {
		o |= elems[n-1-i] << uint(i*ebits)
	}
	return o & Mask32(obits)
}

// Pack64 packs clean elements of width ebits into a medium value of width
// obits. The result is clean.
//
func Pack64(obits, ebits int, elems []uint64) uint64 {
	var o uint64
	n := len(elems)
	for i := 0; i < n; i++ {
		o |= elems[n-1-i] << uint(i*ebits)
	}
	return o & Mask64(obits)
}

// PackW packs clean narrow elements of width ebits into o, a wide value of
// width obits, by range insertion. The result is clean.
//
func PackW(obits, ebits int, o, elems []uint32) []uint32 {
	ZeroW(o[:Words(obits)])
	n := len(elems)
	for i := 0; i < n; i++ {
		hi := (i+1)*ebits - 1
		if hi > obits-1 { // partial top element
			hi = obits - 1
		}
		InsertW(obits, o, elems[n-1-i], hi, i*ebits)
	}
	return o
}

// PackW64 packs clean medium elements of width ebits into o, a wide value
// of width obits. The result is clean.
//
func PackW64(obits, ebits int, o []uint32, elems []uint64) []uint32 {
	ZeroW(o[:Words(obits)])
	n := len(elems)
	for i := 0; i < n; i++ {
		hi := (i+1)*ebits - 1
		if hi > obits-1 {
			hi = obits - 1
		}
		InsertW64(obits, o, elems[n-1-i], hi, i*ebits)
	}
	return o
}

// PackWW packs clean wide elements of width ebits into o, a wide value of
// width obits. The result is clean.
//
func PackWW(obits, ebits int, o []uint32, elems [][]uint32) []uint32 {
	ZeroW(o[:Words(obits)])
	n := len(elems)
	for i := 0; i < n; i++ {
		hi := (i+1)*ebits - 1
		if hi > obits-1 {
			hi = obits - 1
		}
		InsertWW(obits, o, elems[n-1-i], hi, i*ebits)
	}
	return o
}

// Unpack32 splits a clean narrow value of width lbits into clean elements
// of width ebits, most significant slice first. The top element holds the
// partial slice when lbits is not a multiple of ebits.
//
func Unpack32(lbits, ebits int, elems []uint32, l uint32) {
	mask := Mask32(ebits)
	n := len(elems)
	for i := 0; i < n; i++ {
		elems[n-1-i] = l >> uint(i*ebits) & mask
	}
	if rem := lbits - (n-1)*ebits; rem < ebits {
		elems[0] &= Mask32(rem)
	}
}

// Unpack64 splits a clean medium value of width lbits into clean elements
// of width ebits, most significant slice first.
//
func Unpack64(lbits, ebits int, elems []uint64, l uint64) {
	mask := Mask64(ebits)
	n := len(elems)
	for i := 0; i < n; i++ {
		elems[n-1-i] = l >> uint(i*ebits) & mask
	}
	if rem := lbits - (n-1)*ebits; rem < ebits {
		elems[0] &= Mask64(rem)
	}
}

// UnpackW splits a clean wide value of width lbits into clean narrow
// elements of width ebits, most significant slice first, by range
// selection.
//
func UnpackW(lbits, ebits int, elems []uint32, l []uint32) {
	n := len(elems)
	for i := 0; i < n-1; i++ {
		elems[n-1-i] = Sel32(lbits, l, i*ebits, ebits) & Mask32(ebits)
	}
	rem := lbits - (n-1)*ebits // top element may be partial
	elems[0] = Sel32(lbits, l, (n-1)*ebits, rem) & Mask32(rem)
}

// UnpackW64 splits a clean wide value of width lbits into clean medium
// elements of width ebits, most significant slice first.
//
func UnpackW64(lbits, ebits int, elems []uint64, l []uint32) {
	n := len(elems)
	for i := 0; i < n-1; i++ {
		elems[n-1-i] = Sel64(lbits, l, i*ebits, ebits) & Mask64(ebits)
	}
	rem := lbits - (n-1)*ebits
	elems[0] = Sel64(lbits, l, (n-1)*ebits, rem) & Mask64(rem)
}

// UnpackWW splits a clean wide value of width lbits into clean wide
// elements of width ebits, most significant slice first.
//
func UnpackWW(lbits, ebits int, elems [][]uint32, l []uint32) {
	n := len(elems)
	for i := 0; i < n-1; i++ {
		MaskW(ebits, SelW(ebits, lbits, elems[n-1-i], l, i*ebits, ebits))
	}
	rem := lbits - (n-1)*ebits
	ZeroW(elems[0][:Words(ebits)])
	MaskW(rem, SelW(rem, lbits, elems[0], l, (n-1)*ebits, rem))
}
