package bitpack

import "fmt"

// Pack is a single storage word laid out according to a Layout.
//
// Pack is a plain value type: copying one copies the word, and the zero
// word means every field reads zero. There is no internal locking;
// concurrent readers are safe, concurrent writers must be serialized by
// the caller.
//
// The caller must construct packs with [New] or [NewFromRaw]; the layout
// must not be nil.
type Pack struct {
	layout *Layout
	word   uint64
}

// New returns a zero-initialized pack for layout.
func New(layout *Layout) Pack {
	return Pack{layout: layout}
}

// NewFromRaw returns a pack whose word is raw. No per-field validation is
// performed: raw may encode any combination of field values, including
// ones never individually Set. Bits above the layout's resolved storage
// width fail with ErrFieldOverflow.
func NewFromRaw(layout *Layout, raw uint64) (Pack, error) {
	p := Pack{layout: layout}
	if err := p.SetRaw(raw); err != nil {
		return Pack{}, err
	}
	return p, nil
}

// Layout returns the layout the pack was constructed with.
func (p Pack) Layout() *Layout { return p.layout }

// Get returns the value of field i. The result is always within
// [0, 2^width(i) - 1].
func (p Pack) Get(i int) (uint64, error) {
	w, err := p.layout.Width(i)
	if err != nil {
		return 0, err
	}
	return (p.word >> p.layout.shifts[i]) & Bitmask(w), nil
}

// Set stores value into field i, leaving every other field untouched.
//
// A value needing more bits than the field has fails with
// ErrFieldOverflow and leaves the word unchanged; overflow is never
// silently truncated.
func (p *Pack) Set(i int, value uint64) error {
	w, err := p.layout.Width(i)
	if err != nil {
		return err
	}
	mask := Bitmask(w)
	if value&mask != value {
		return fmt.Errorf("%w: field %d is %d bits, got %#x", ErrFieldOverflow, i, w, value)
	}
	shift := p.layout.shifts[i]
	p.word &^= mask << shift
	p.word |= value << shift
	return nil
}

// Raw returns the whole storage word. Together with SetRaw this is the
// seam an external serialization collaborator uses; any byte encoding and
// endianness handling belongs to that collaborator.
func (p Pack) Raw() uint64 { return p.word }

// SetRaw replaces the whole storage word. Bits above the layout's
// resolved storage width fail with ErrFieldOverflow, keeping the raw seam
// consistent with the resolved word width.
func (p *Pack) SetRaw(raw uint64) error {
	if mask := Bitmask(p.layout.kind.Bits()); raw&mask != raw {
		return fmt.Errorf("%w: raw value %#x exceeds the %d bit storage word", ErrFieldOverflow, raw, p.layout.kind.Bits())
	}
	p.word = raw
	return nil
}
