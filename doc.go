package bitpack

/*

# Packed field primitives (single word, in-memory)

This package packs multiple fixed-width unsigned integer fields into one
minimal-width storage word, with type-checked access to each field by
positional index. It is intended for packet header staging, flag registers
and compact in-memory record formats where hand-rolled shift/mask code is
easy to get wrong.

The package follows the style of small bit-arithmetic libraries:

- small, composable functions
- explicit validation at construction, cheap accessors afterwards
- a burden of knowledge on the caller for hot paths

## Layouts and field numbering

A [Layout] is an ordered list of field widths plus a storage preference.
Field 0 occupies the least significant bits of the word; each following
field sits immediately above the previous one, so shifts are strictly
consecutive and field masks never overlap:

	      field 2      field 1    field 0
	+----------------+----------+--------+
	| width w2       | width w1 | w0     |
	+----------------+----------+--------+
	bit w0+w1+w2-1 ...                bit 0

Layouts are validated once, at construction: every width must be positive
and the widths may not sum past 64 bits. The storage word's width class is
resolved from the total at the same time and cached, so Get and Set reduce
to a bounds check plus shift/mask arithmetic.

## Storage resolution

The total bit width selects the narrowest sufficient class from
{8, 16, 32, 64}. The FAST/SMALL preference mirrors the C distinction
between uint_fastN_t and uint_leastN_t; Go only has exact fixed-width
unsigned types, so both preferences resolve to the same class here. The
preference is retained on the Layout so layouts ported from platforms
where the distinction is real keep a stable constructor surface.

## Overflow is an error, never a truncation

Set rejects any value that needs more bits than its field has, returning
[ErrFieldOverflow] and leaving the word untouched. There is no build mode
in which the check is compiled out.

## Symbolic field indices

Callers that want named fields declare ordinary typed constants and
convert at the call site:

	type tcpField int

	const (
		fieldSrcPort tcpField = iota
		fieldDstPort
	)

	v, err := pack.Get(int(fieldDstPort))

The package only ever sees a plain integer index.

## Concurrency

A Layout is immutable after construction and safe to share between any
number of goroutines and packs. A [Pack] is a plain value type with no
internal locking: concurrent readers are fine, concurrent writers to the
same Pack must be serialized by the caller or given their own copies.

## What this package does NOT do

No byte-stream serialization, no endianness handling, no I/O. The storage
word is an in-memory scalar only; Raw and SetRaw are the seam an external
codec uses when it needs the whole word.

*/
