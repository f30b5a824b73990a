// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package numtest provides utility functions for testing fixed-width
// operations against a math/big reference model.
//
package numtest

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/db47h/hwnum"
)

// Big converts a clean wide value of the given width to a big.Int.
//
func Big(bits int, w []uint32) *big.Int {
	b := new(big.Int)
	for i := hwnum.Words(bits) - 1; i >= 0; i-- {
		b.Lsh(b, 32)
		b.Or(b, new(big.Int).SetUint64(uint64(w[i])))
	}
	return b.And(b, Mask(bits))
}

// BigS converts a clean wide value of the given width to a big.Int,
// interpreting it as a signed integer.
//
func BigS(bits int, w []uint32) *big.Int {
	b := Big(bits, w)
	if b.Bit(bits-1) != 0 {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	}
	return b
}

// ToSigned reinterprets an unsigned value of the given width as a signed
// one: values with the top bit set come out negative.
//
func ToSigned(bits int, x *big.Int) *big.Int {
	if x.Bit(bits-1) == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Sub(x, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
}

// Mask returns 2^bits - 1.
//
func Mask(bits int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return m.Sub(m, big.NewInt(1))
}

// SetW fills o with x modulo 2^bits. Negative x wraps like a two's
// complement value.
//
func SetW(bits int, o []uint32, x *big.Int) []uint32 {
	v := new(big.Int).And(x, Mask(bits))
	word := new(big.Int)
	m32 := big.NewInt(0xffffffff)
	for i := range o[:hwnum.Words(bits)] {
		o[i] = uint32(word.And(v, m32).Uint64())
		v.Rsh(v, 32)
	}
	return o
}

// Rand returns a new clean wide value of the given width filled from rnd.
//
func Rand(rnd *rand.Rand, bits int) []uint32 {
	w := make([]uint32, hwnum.Words(bits))
	for i := range w {
		w[i] = rnd.Uint32()
	}
	return hwnum.MaskW(bits, w)
}

// Corners returns the standard corner values of the given width: zero, one,
// all ones, the most negative value and its predecessor.
//
func Corners(bits int) [][]uint32 {
	n := hwnum.Words(bits)
	zero := make([]uint32, n)
	one := make([]uint32, n)
	one[0] = 1
	ones := hwnum.OnesW(bits, make([]uint32, n))
	mneg := make([]uint32, n)
	mneg[n-1] = 1 << (uint(bits-1) & 31)
	mpos := make([]uint32, n)
	hwnum.MaskW(bits, hwnum.SubW(mpos, mneg, one))
	return [][]uint32{zero, one, ones, mneg, mpos}
}

// CheckBinary compares a binary fixed-width operation against its math/big
// reference over corner values and random operands. eval writes its result
// into o; ref computes the reference into z. Both results are compared
// modulo 2^bits.
//
func CheckBinary(t *testing.T, name string, bits, iters int,
	eval func(o, l, r []uint32), ref func(z, x, y *big.Int)) {
	t.Helper()
	rnd := rand.New(rand.NewSource(int64(bits)))
	var operands [][]uint32
	operands = append(operands, Corners(bits)...)
	for i := 0; i < iters; i++ {
		operands = append(operands, Rand(rnd, bits))
	}
	o := make([]uint32, hwnum.Words(bits))
	for _, l := range operands {
		for _, r := range operands {
			eval(o, l, r)
			hwnum.MaskW(bits, o)
			got := Big(bits, o)
			want := new(big.Int)
			ref(want, Big(bits, l), Big(bits, r))
			want.And(want, Mask(bits))
			if got.Cmp(want) != 0 {
				t.Fatalf("%s (%d bits): %#x op %#x: got %#x, want %#x",
					name, bits, Big(bits, l), Big(bits, r), got, want)
			}
		}
	}
}

// CheckUnary compares a unary fixed-width operation against its math/big
// reference over corner values and random operands.
//
func CheckUnary(t *testing.T, name string, bits, iters int,
	eval func(o, l []uint32), ref func(z, x *big.Int)) {
	t.Helper()
	rnd := rand.New(rand.NewSource(int64(bits)))
	var operands [][]uint32
	operands = append(operands, Corners(bits)...)
	for i := 0; i < iters; i++ {
		operands = append(operands, Rand(rnd, bits))
	}
	o := make([]uint32, hwnum.Words(bits))
	for _, l := range operands {
		eval(o, l)
		hwnum.MaskW(bits, o)
		got := Big(bits, o)
		want := new(big.Int)
		ref(want, Big(bits, l))
		want.And(want, Mask(bits))
		if got.Cmp(want) != 0 {
			t.Fatalf("%s (%d bits): op %#x: got %#x, want %#x",
				name, bits, Big(bits, l), got, want)
		}
	}
}
