// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

// Sign32 reports whether the sign bit of a clean narrow value is set.
//
func Sign32(bits int, v uint32) bool {
	return v>>(uint(bits-1)&wordMask)&1 != 0
}

// Sign64 reports whether the sign bit of a clean medium value is set.
//
func Sign64(bits int, v uint64) bool {
	return v>>(uint(bits-1)&63)&1 != 0
}

// SignW reports whether the sign bit of a clean wide value is set.
//
func SignW(bits int, w []uint32) bool {
	return w[(bits-1)>>5]>>(uint(bits-1)&wordMask)&1 != 0
}

// SignExtend32 sign extends a clean value of the given width to the full
// uint32. The result is dirty.
//
func SignExtend32(bits int, v uint32) uint32 {
	return v | -(v & (1 << uint(bits-1)))
}

// SignExtend64 sign extends a clean value of the given width to the full
// uint64. The result is dirty.
//
func SignExtend64(bits int, v uint64) uint64 {
	return v | -(v & (1 << uint(bits-1)))
}

// ExtendW32 zero extends a narrow value into a wide value of width obits.
// The result is clean.
//
func ExtendW32(obits int, o []uint32, v uint32) []uint32 {
	o[0] = v
	for i := 1; i < Words(obits); i++ {
		o[i] = 0
	}
	return o
}

// ExtendW64 zero extends a medium value into a wide value of width obits.
// The result is clean.
//
func ExtendW64(obits int, o []uint32, v uint64) []uint32 {
	SetW64(o, v)
	for i := 2; i < Words(obits); i++ {
		o[i] = 0
	}
	return o
}

// ExtendWW zero extends a clean wide value of width lbits into a wider value
// of width obits. The result is clean.
//
func ExtendWW(obits, lbits int, o, l []uint32) []uint32 {
	lw := Words(lbits)
	copy(o[:lw], l)
	for i := lw; i < Words(obits); i++ {
		o[i] = 0
	}
	return o
}

// SignExtendW32 sign extends a clean narrow value of width lbits into a wide
// value of width obits. The result is clean.
//
func SignExtendW32(obits, lbits int, o []uint32, v uint32) []uint32 {
	o[0] = v
	n := Words(obits)
	if Sign32(lbits, v) {
		o[0] |= ^Mask32(lbits)
		for i := 1; i < n; i++ {
			o[i] = ^uint32(0)
		}
	} else {
		for i := 1; i < n; i++ {
			o[i] = 0
		}
	}
	return MaskW(obits, o)
}

// SignExtendW64 sign extends a clean medium value of width lbits into a wide
// value of width obits. The result is clean.
//
func SignExtendW64(obits, lbits int, o []uint32, v uint64) []uint32 {
	SetW64(o, v)
	n := Words(obits)
	if Sign64(lbits, v) {
		o[1] |= uint32(^Mask64(lbits) >> 32)
		for i := 2; i < n; i++ {
			o[i] = ^uint32(0)
		}
	} else {
		for i := 2; i < n; i++ {
			o[i] = 0
		}
	}
	return MaskW(obits, o)
}

// SignExtendWW sign extends a clean wide value of width lbits into a wider
// value of width obits. The result is clean.
//
func SignExtendWW(obits, lbits int, o, l []uint32) []uint32 {
	lw, n := Words(lbits), Words(obits)
	copy(o[:lw], l)
	if SignW(lbits, l) {
		o[lw-1] |= ^Mask32(lbits)
		for i := lw; i < n; i++ {
			o[i] = ^uint32(0)
		}
	} else {
		for i := lw; i < n; i++ {
			o[i] = 0
		}
	}
	return MaskW(obits, o)
}
