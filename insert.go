// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// Insert32 replaces bits hi..lo of the narrow target with the low bits of
// v, leaving all other target bits untouched.
//
func Insert32(t *uint32, v uint32, hi, lo int) {
	mask := Mask32(hi-lo+1) << uint(lo)
	*t = *t&^mask | v<<uint(lo)&mask
}

// Insert64 replaces bits hi..lo of the medium target with the low bits of
// v, leaving all other target bits untouched.
//
func Insert64(t *uint64, v uint64, hi, lo int) {
	mask := Mask64(hi-lo+1) << uint(lo)
	*t = *t&^mask | v<<uint(lo)&mask
}

// InsertW replaces bits hi..lo (at most 32 bits) of a wide target of width
// tbits with the low bits of v. Target bits outside the range keep their
// value; bits of the top target word at or above tbits are cleared when the
// range reaches into that word, so inserting into a clean target leaves it
// clean.
//
func InsertW(tbits int, w []uint32, v uint32, hi, lo int) {
	hword, lword, rword := hi>>5, lo>>5, tbits>>5
	hoff, loff, roff := uint(hi)&wordMask, uint(lo)&wordMask, tbits&wordMask
	cleanmask := ^uint32(0)
	if hword == rword {
		cleanmask = Mask32(roff)
	}
	switch {
	case hoff == wordMask && loff == 0: // whole word
		w[lword] = v & cleanmask
	case hword == lword: // single word
		insmask := Mask32(hi-lo+1) << loff
		w[lword] = w[lword]&^insmask | v<<loff&insmask&cleanmask
	default: // straddles a word boundary
		hinsmask := Mask32(int(hoff) + 1)
		linsmask := Mask32(WordBits-int(loff)) << loff
		nbitsonright := WordBits - loff
		w[lword] = w[lword]&^linsmask | v<<loff&linsmask
		// do not touch the word holding bit tbits when the range ends
		// exactly at a word boundary, it may be out of bounds
		if hword != rword || roff != 0 {
			w[hword] = w[hword]&^hinsmask | v>>nbitsonright&hinsmask&cleanmask
		}
	}
}

// InsertW64 replaces bits hi..lo (at most 64 bits) of a wide target of
// width tbits with the low bits of v.
//
func InsertW64(tbits int, w []uint32, v uint64, hi, lo int) {
	var vw [2]uint32
	SetW64(vw[:], v)
	InsertWW(tbits, w, vw[:], hi, lo)
}

// InsertWW replaces bits hi..lo of a wide target of width tbits with the
// low bits of the wide value v. Target bits outside the range keep their
// value; bits of the top target word at or above tbits are cleared when the
// range reaches into that word.
//
func InsertWW(tbits int, w, v []uint32, hi, lo int) {
	hword, lword, rword := hi>>5, lo>>5, tbits>>5
	hoff, loff, roff := uint(hi)&wordMask, uint(lo)&wordMask, tbits&wordMask
	words := Words(hi - lo + 1)
	cleanmask := ^uint32(0)
	if hword == rword {
		cleanmask = Mask32(roff)
	}
	switch {
	case hoff == wordMask && loff == 0: // word aligned on both ends
		for i := 0; i < words-1; i++ {
			w[lword+i] = v[i]
		}
		w[hword] = v[words-1] & cleanmask
	case loff == 0: // word aligned at the bottom only
		for i := 0; i < words-1; i++ {
			w[lword+i] = v[i]
		}
		hinsmask := Mask32(int(hoff) + 1)
		w[hword] = w[hword]&^hinsmask | v[words-1]&hinsmask&cleanmask
	default:
		hinsmask := Mask32(int(hoff) + 1)
		linsmask := Mask32(WordBits-int(loff)) << loff
		nbitsonright := WordBits - loff
		for i := 0; i < words; i++ {
			ow := lword + i
			od := w[ow]&^linsmask | v[i]<<loff&linsmask
			if ow == hword {
				w[ow] = w[ow]&^hinsmask | od&hinsmask&cleanmask
			} else {
				w[ow] = od
			}
			ow++
			if ow > hword {
				continue
			}
			od = v[i]>>nbitsonright&^linsmask | w[ow]&linsmask
			if ow == hword {
				w[ow] = w[ow]&^hinsmask | od&hinsmask&cleanmask
			} else {
				w[ow] = od
			}
		}
	}
}

// SetBit32 sets bit of a narrow target to the low bit of v.
//
func SetBit32(t *uint32, bit int, v uint32) {
	*t = *t&^(1<<uint(bit)) | (v&1)<<uint(bit)
}

// SetBit64 sets bit of a medium target to the low bit of v.
//
func SetBit64(t *uint64, bit int, v uint64) {
	*t = *t&^(1<<uint(bit)) | (v&1)<<uint(bit)
}

// SetBitW sets bit of a wide target to the low bit of v.
//
func SetBitW(w []uint32, bit int, v uint32) {
	w[bit>>5] = w[bit>>5]&^(1<<(uint(bit)&wordMask)) | (v&1)<<(uint(bit)&wordMask)
}
