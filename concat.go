// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// Concat32 concatenates two clean narrow values: r occupies the low rbits,
// l sits immediately above it. The result is clean.
//
func Concat32(rbits int, l, r uint32) uint32 {
	return l<<uint(rbits) | r
}

// Concat64 concatenates two clean values into a medium result: r occupies
// the low rbits, l sits immediately above it. The result is clean.
//
func Concat64(rbits int, l, r uint64) uint64 {
	return l<<uint(rbits) | r
}

// ConcatW concatenates two clean wide values of widths lbits and rbits into
// o, a wide value of width obits = lbits+rbits: r occupies the low rbits, l
// is inserted immediately above it. The result is clean.
//
func ConcatW(obits, lbits, rbits int, o, l, r []uint32) []uint32 {
	rw := Words(rbits)
	copy(o[:rw], r)
	for i := rw; i < Words(obits); i++ {
		o[i] = 0
	}
	InsertWW(obits, o, l, rbits+lbits-1, rbits)
	return o
}

// ConcatW32 concatenates a clean narrow value above a clean wide value.
// The result is clean.
//
func ConcatW32(obits, lbits, rbits int, o []uint32, l uint32, r []uint32) []uint32 {
	rw := Words(rbits)
	copy(o[:rw], r)
	for i := rw; i < Words(obits); i++ {
		o[i] = 0
	}
	InsertW(obits, o, l, rbits+lbits-1, rbits)
	return o
}

// ConcatW64 concatenates a clean medium value above a clean wide value.
// The result is clean.
//
func ConcatW64(obits, lbits, rbits int, o []uint32, l uint64, r []uint32) []uint32 {
	rw := Words(rbits)
	copy(o[:rw], r)
	for i := rw; i < Words(obits); i++ {
		o[i] = 0
	}
	InsertW64(obits, o, l, rbits+lbits-1, rbits)
	return o
}

// Repl32 replicates a clean narrow value of width lbits rep times into a
// narrow result. The result is clean.
//
func Repl32(lbits int, l uint32, rep int) uint32 {
	var o uint32
	for i := 0; i < rep; i++ {
		o = o<<uint(lbits) | l
	}
	return o
}

// Repl64 replicates a clean value of width lbits rep times into a medium
// result. The result is clean.
//
func Repl64(lbits int, l uint64, rep int) uint64 {
	var o uint64
	for i := 0; i < rep; i++ {
		o = o<<uint(lbits) | l
	}
	return o
}

// ReplW replicates a clean wide value of width lbits rep times into o, a
// wide value of width obits = lbits*rep, by repeated range insertion. The
// result is clean.
//
func ReplW(obits, lbits int, o, l []uint32, rep int) []uint32 {
	ZeroW(o[:Words(obits)])
	for i := 0; i < rep; i++ {
		InsertWW(obits, o, l, (i+1)*lbits-1, i*lbits)
	}
	return o
}

// ReplW32 replicates a clean narrow value of width lbits rep times into o,
// a wide value of width obits = lbits*rep. The result is clean.
//
func ReplW32(obits, lbits int, o []uint32, l uint32, rep int) []uint32 {
	ZeroW(o[:Words(obits)])
	for i := 0; i < rep; i++ {
		InsertW(obits, o, l, (i+1)*lbits-1, i*lbits)
	}
	return o
}
