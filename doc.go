/*
Package hwnum implements fixed-width two's complement arithmetic and bit
manipulation for simulated hardware signals of arbitrary declared widths.

Values are stored in one of three categories depending on their declared
width W:

	narrow:  W <= 32, a single uint32
	medium:  32 < W <= 64, a single uint64
	wide:    W > 64, a []uint32 slice, least significant word first

A value is "clean" when every storage bit above W-1 is zero, and "dirty"
otherwise. Most operations require clean inputs; each function documents
whether its result is clean or dirty. Producers of dirty results (Add, Sub,
Mul, sign extension into a scalar, range selection) rely on a subsequent
masking step, which the language layer inserts only where the excess bits
could be observed.

Operations on wide values write into caller-provided slices sized with
Words(W) and never allocate. Signed multiply, divide and power use small
fixed scratch arrays and therefore support widths up to MaxOpWords words.

Failure cases produce sentinel results instead of errors: division or
modulus by zero yields 0, signed division of the most negative value by -1
yields 0, an out-of-range bit or part select yields all ones, and an
overshift yields 0 (or sign fill for arithmetic right shifts).
*/
package hwnum
