// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwcalc evaluates a binary operation on two Verilog style
// literals of arbitrary widths, e.g.
//
//	hwcalc 100'h123456789abcdef0123456789 + 12'hfff
//
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/db47h/hwnum"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hwcalc: ")
	if len(os.Args) != 4 {
		log.Fatal("usage: hwcalc <literal> <op> <literal>")
	}
	lbits, l, err := hwnum.ParseLiteral(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	rbits, r, err := hwnum.ParseLiteral(os.Args[3])
	if err != nil {
		log.Fatal(err)
	}
	bits := lbits
	if rbits > bits {
		bits = rbits
	}
	n := hwnum.Words(bits)
	lw := hwnum.ExtendWW(bits, lbits, make([]uint32, n), l)
	rw := hwnum.ExtendWW(bits, rbits, make([]uint32, n), r)
	o := make([]uint32, n)
	switch os.Args[2] {
	case "+":
		hwnum.AddW(o, lw, rw)
	case "-":
		hwnum.SubW(o, lw, rw)
	case "*":
		hwnum.MulW(o, lw, rw)
	case "/":
		hwnum.DivW(bits, o, lw, rw)
	case "%":
		hwnum.ModW(bits, o, lw, rw)
	case "&":
		hwnum.AndW(o, lw, rw)
	case "|":
		hwnum.OrW(o, lw, rw)
	case "^":
		hwnum.XorW(o, lw, rw)
	default:
		log.Fatalf("unknown operator %q", os.Args[2])
	}
	hwnum.MaskW(bits, o)
	fmt.Printf("%d'h%s\n", bits, hwnum.FormatW(bits, o))
}
