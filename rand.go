// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnum

import "math/rand"

// RandomW fills a wide value with random words. The result is dirty.
//
func RandomW(o []uint32) []uint32 {
	for i := range o {
		o[i] = rand.Uint32()
	}
	return o
}

// RandReset32 returns a random clean narrow value of the given width, for
// randomized register initialization.
//
func RandReset32(bits int) uint32 {
	return rand.Uint32() & Mask32(bits)
}

// RandReset64 returns a random clean medium value of the given width.
//
func RandReset64(bits int) uint64 {
	return rand.Uint64() & Mask64(bits)
}

// RandResetW fills o with a random clean wide value of the given width.
//
func RandResetW(bits int, o []uint32) []uint32 {
	return MaskW(bits, RandomW(o[:Words(bits)]))
}
