// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/db47h/hwnum"
	"github.com/db47h/hwnum/numtest"
)

func TestSelInsert(t *testing.T) {
	const bits = 100
	rnd := rand.New(rand.NewSource(42))
	w := numtest.Rand(rnd, bits)

	// read the top nibble of a 100 bit value, replace it and read it back
	org := hwnum.Sel32(bits, w, 96, 4) & 0xf
	hwnum.InsertW(bits, w, 0xa, 99, 96)
	if got := hwnum.Sel32(bits, w, 96, 4) & 0xf; got != 0xa {
		t.Errorf("top nibble after insert: got %#x, want 0xa", got)
	}
	hwnum.InsertW(bits, w, org, 99, 96)

	// insert then select returns the inserted bits, and touches nothing else
	for i := 0; i < 1000; i++ {
		lsb := rnd.Intn(bits)
		width := rnd.Intn(32) + 1
		if lsb+width > bits {
			width = bits - lsb
		}
		v := rnd.Uint32() & hwnum.Mask32(width)
		cp := append([]uint32(nil), w...)
		hwnum.InsertW(bits, cp, v, lsb+width-1, lsb)
		if got := hwnum.Sel32(bits, cp, lsb, width) & hwnum.Mask32(width); got != v {
			t.Fatalf("Sel32 after InsertW [%d:%d]: got %#x, want %#x", lsb+width-1, lsb, got, v)
		}
		// clear the range in both and compare the rest
		hwnum.InsertW(bits, cp, 0, lsb+width-1, lsb)
		ref := append([]uint32(nil), w...)
		hwnum.InsertW(bits, ref, 0, lsb+width-1, lsb)
		for j := range cp {
			if cp[j] != ref[j] {
				t.Fatalf("InsertW [%d:%d] touched bits outside the range", lsb+width-1, lsb)
			}
		}
	}
}

func TestSelInsertWide(t *testing.T) {
	const bits = 257
	rnd := rand.New(rand.NewSource(43))
	w := numtest.Rand(rnd, bits)
	v := numtest.Rand(rnd, 80)
	for _, lsb := range []int{0, 1, 31, 32, 63, 100, 177} {
		cp := append([]uint32(nil), w...)
		hwnum.InsertWW(bits, cp, v, lsb+79, lsb)
		o := make([]uint32, hwnum.Words(80))
		hwnum.MaskW(80, hwnum.SelW(80, bits, o, cp, lsb, 80))
		for j := range o {
			if o[j] != v[j] {
				t.Fatalf("SelW after InsertWW at lsb %d: got %x, want %x", lsb, o, v)
			}
		}
	}
	// medium insert
	cp := append([]uint32(nil), w...)
	hwnum.InsertW64(bits, cp, 0xfedcba9876543210, 100, 37)
	if got := hwnum.Sel64(bits, cp, 37, 64); got != 0xfedcba9876543210 {
		t.Errorf("Sel64 after InsertW64: got %#x", got)
	}
}

func TestSelOutOfRange(t *testing.T) {
	w := make([]uint32, hwnum.Words(100))
	if got := hwnum.Sel32(100, w, 97, 4); got != ^uint32(0) {
		t.Errorf("out of range Sel32: got %#x, want all ones", got)
	}
	if got := hwnum.Sel64(100, w, 40, 64); got != ^uint64(0) {
		t.Errorf("out of range Sel64: got %#x, want all ones", got)
	}
	o := make([]uint32, hwnum.Words(80))
	hwnum.SelW(80, 100, o, w, 24, 80)
	want := hwnum.OnesW(80, make([]uint32, hwnum.Words(80)))
	for i := range o {
		if o[i] != want[i] {
			t.Fatalf("out of range SelW: got %x, want all ones", o)
		}
	}
	if got := hwnum.BitW(100, w, 100); got != ^uint32(0) {
		t.Errorf("out of range BitW: got %#x, want all ones", got)
	}
	if got := hwnum.BitW(100, w, 99); got&1 != 0 {
		t.Errorf("BitW(99) of zero value: got %#x, want 0", got&1)
	}
	hwnum.SetBitW(w, 77, 1)
	if got := hwnum.BitW(100, w, 77) & 1; got != 1 {
		t.Errorf("BitW after SetBitW: got %d, want 1", got)
	}
	hwnum.SetBitW(w, 77, 0)
	if hwnum.RedOrW(w) {
		t.Errorf("SetBitW left stray bits: %x", w)
	}
	var v32 uint32 = 0xf0
	hwnum.SetBit32(&v32, 0, 1)
	hwnum.SetBit32(&v32, 4, 0)
	if v32 != 0xe1 {
		t.Errorf("SetBit32: got %#x, want 0xe1", v32)
	}
	var v64 uint64 = 1 << 40
	hwnum.SetBit64(&v64, 40, 0)
	if v64 != 0 {
		t.Errorf("SetBit64: got %#x, want 0", v64)
	}
}

func TestConcat(t *testing.T) {
	if got := hwnum.Concat32(4, 0xa, 0x5); got != 0xa5 {
		t.Errorf("Concat32: got %#x, want 0xa5", got)
	}
	if got := hwnum.Concat64(32, 0xdeadbeef, 0x12345678); got != 0xdeadbeef12345678 {
		t.Errorf("Concat64: got %#x", got)
	}
	rnd := rand.New(rand.NewSource(44))
	l, r := numtest.Rand(rnd, 70), numtest.Rand(rnd, 50)
	o := make([]uint32, hwnum.Words(120))
	hwnum.ConcatW(120, 70, 50, o, l, r)
	want := new(big.Int).Lsh(numtest.Big(70, l), 50)
	want.Or(want, numtest.Big(50, r))
	if got := numtest.Big(120, o); got.Cmp(want) != 0 {
		t.Errorf("ConcatW: got %#x, want %#x", got, want)
	}
	hwnum.ConcatW32(102, 32, 70, o, 0xcafef00d, l)
	want = new(big.Int).Lsh(big.NewInt(0xcafef00d), 70)
	want.Or(want, numtest.Big(70, l))
	if got := numtest.Big(102, o); got.Cmp(want) != 0 {
		t.Errorf("ConcatW32: got %#x, want %#x", got, want)
	}
}

func TestRepl(t *testing.T) {
	// {4{3'b101}} == 12'b101101101101
	if got := hwnum.Repl32(3, 0x5, 4); got != 0xb6d {
		t.Errorf("Repl32: got %#x, want 0xb6d", got)
	}
	if got := hwnum.Repl64(16, 0xabcd, 4); got != 0xabcdabcdabcdabcd {
		t.Errorf("Repl64: got %#x", got)
	}
	o := make([]uint32, hwnum.Words(96))
	hwnum.ReplW32(96, 3, o, 0x5, 32)
	want := hwnum.Repl32(3, 0x5, 4) // 12 bits, repeated 8 times
	for i := 0; i < 96; i += 12 {
		if got := hwnum.Sel32(96, o, i, 12) & 0xfff; got != want {
			t.Fatalf("ReplW32 slice at %d: got %#x, want %#x", i, got, want)
		}
	}
	l := []uint32{0x89abcdef, 0x1234567} // 60 bit pattern
	o2 := make([]uint32, hwnum.Words(120))
	hwnum.ReplW(120, 60, o2, l, 2)
	if got := hwnum.Sel64(120, o2, 60, 60) & hwnum.Mask64(60); got != 0x123456789abcdef {
		t.Errorf("ReplW high slice: got %#x", got)
	}
	if got := hwnum.Sel64(120, o2, 0, 60) & hwnum.Mask64(60); got != 0x123456789abcdef {
		t.Errorf("ReplW low slice: got %#x", got)
	}
}

func TestShift32(t *testing.T) {
	if got := hwnum.Shl32(0x80000001, 4); got != 0x10 {
		t.Errorf("Shl32: got %#x", got)
	}
	if got := hwnum.Shl32(1, 32); got != 0 {
		t.Errorf("overshift Shl32: got %#x, want 0", got)
	}
	if got := hwnum.Shr32(0x80000000, 31); got != 1 {
		t.Errorf("Shr32: got %#x", got)
	}
	if got := hwnum.Shr32(0x80000000, 40); got != 0 {
		t.Errorf("overshift Shr32: got %#x, want 0", got)
	}
	// 8 bit arithmetic shifts
	if got := hwnum.ShrS32(8, 0x80, 3); got != 0xf0 {
		t.Errorf("ShrS32(0x80 >> 3): got %#x, want 0xf0", got)
	}
	if got := hwnum.ShrS32(8, 0x80, 100); got != 0xff {
		t.Errorf("overshift ShrS32 of negative: got %#x, want 0xff", got)
	}
	if got := hwnum.ShrS32(8, 0x40, 100); got != 0 {
		t.Errorf("overshift ShrS32 of positive: got %#x, want 0", got)
	}
	if got := hwnum.ShrS64(33, 1<<32, 4); got != hwnum.Mask64(33)&^hwnum.Mask64(28) {
		t.Errorf("ShrS64: got %#x", got)
	}
}

func TestShiftW(t *testing.T) {
	for _, bits := range []int{65, 100, 128} {
		b := bits
		rnd := rand.New(rand.NewSource(int64(b)))
		mask := numtest.Mask(b)
		for i := 0; i < 200; i++ {
			l := numtest.Rand(rnd, b)
			x := numtest.Big(b, l)
			amt := uint64(rnd.Intn(b + 40))
			o := make([]uint32, hwnum.Words(b))

			hwnum.ShlW(b, o, l, amt)
			want := new(big.Int)
			if amt < uint64(b) {
				want.And(new(big.Int).Lsh(x, uint(amt)), mask)
			}
			if got := numtest.Big(b, o); got.Cmp(want) != 0 {
				t.Fatalf("ShlW(%d bits, %#x << %d) = %#x, want %#x", b, x, amt, got, want)
			}

			hwnum.ShrW(b, o, l, amt)
			want.SetInt64(0)
			if amt < uint64(b) {
				want.Rsh(x, uint(amt))
			}
			if got := numtest.Big(b, o); got.Cmp(want) != 0 {
				t.Fatalf("ShrW(%d bits, %#x >> %d) = %#x, want %#x", b, x, amt, got, want)
			}

			hwnum.ShrSW(b, o, l, amt)
			xs := numtest.ToSigned(b, x)
			if amt >= uint64(b) {
				want.SetInt64(0)
				if xs.Sign() < 0 {
					want.SetInt64(-1)
				}
			} else {
				want.Rsh(xs, uint(amt)) // big.Rsh floors, same as sign fill
			}
			want.And(want, mask)
			if got := numtest.Big(b, o); got.Cmp(want) != 0 {
				t.Fatalf("ShrSW(%d bits, %#x >> %d) = %#x, want %#x", b, xs, amt, got, want)
			}
		}
	}
}

func TestShiftAmountW(t *testing.T) {
	if got := hwnum.ShiftAmountW([]uint32{5}); got != 5 {
		t.Errorf("narrow amount: got %d", got)
	}
	if got := hwnum.ShiftAmountW([]uint32{1, 2, 0, 0}); got != 1|2<<32 {
		t.Errorf("medium amount: got %#x", got)
	}
	if got := hwnum.ShiftAmountW([]uint32{0, 0, 1}); got != ^uint64(0) {
		t.Errorf("huge amount must saturate: got %#x", got)
	}
}

func TestStreamNarrow(t *testing.T) {
	// fast and generic slice reversals agree on every 8 bit input
	for v := uint32(0); v < 256; v++ {
		for log2 := 0; log2 <= 3; log2++ {
			fast := hwnum.StreamFast32(8, v, log2)
			slow := hwnum.Stream32(8, v, 1<<uint(log2))
			if fast != slow {
				t.Fatalf("stream(8'h%02x, slice %d): fast %#x != generic %#x", v, 1<<uint(log2), fast, slow)
			}
		}
		// a wide value of one word streams like a narrow one
		o := make([]uint32, 1)
		hwnum.StreamW(8, o, []uint32{v}, 4)
		if want := hwnum.Stream32(8, v, 4); o[0] != want {
			t.Fatalf("StreamW(8'h%02x) = %#x, want %#x", v, o[0], want)
		}
	}
	// width not a multiple of the slice size
	for v := uint32(0); v < 128; v++ {
		for log2 := 0; log2 <= 2; log2++ {
			fast := hwnum.StreamFast32(7, v, log2)
			slow := hwnum.Stream32(7, v, 1<<uint(log2))
			if fast != slow {
				t.Fatalf("stream(7'h%02x, slice %d): fast %#x != generic %#x", v, 1<<uint(log2), fast, slow)
			}
		}
	}
	// single slice reversal is the identity
	if got := hwnum.Stream32(8, 0xa5, 8); got != 0xa5 {
		t.Errorf("full width slice: got %#x, want 0xa5", got)
	}
	if got := hwnum.StreamFast64(48, 0xbadc0ffee, 3); got != hwnum.Stream64(48, 0xbadc0ffee, 8) {
		t.Errorf("StreamFast64 disagrees with Stream64: %#x", got)
	}
}

func TestStreamW(t *testing.T) {
	const bits = 100
	rnd := rand.New(rand.NewSource(45))
	l := numtest.Rand(rnd, bits)
	o := make([]uint32, hwnum.Words(bits))
	for _, slice := range []int{1, 3, 4, 7, 32, 50} {
		hwnum.StreamW(bits, o, l, slice)
		// reference: move each slice, most significant output slice first
		want := new(big.Int)
		x := numtest.Big(bits, l)
		for istart := 0; istart < bits; istart += slice {
			ostart := bits - slice - istart
			if ostart < 0 {
				ostart = 0
			}
			n := slice
			if istart+n > bits {
				n = bits - istart
			}
			for b := 0; b < n; b++ {
				if x.Bit(istart+b) != 0 {
					want.SetBit(want, ostart+b, 1)
				}
			}
		}
		if got := numtest.Big(bits, o); got.Cmp(want) != 0 {
			t.Fatalf("StreamW slice %d: got %#x, want %#x", slice, got, want)
		}
	}
}
