package bitpack

import "fmt"

// Layout is the ordered list of field widths packed into a single storage
// word, together with the preference used to resolve that word's width
// class. Field 0 occupies the least significant bits.
//
// A Layout is immutable after construction and may be shared freely across
// goroutines and packs.
type Layout struct {
	widths []uint
	shifts []uint
	pref   StoragePreference
	total  uint
	kind   StorageKind
}

// NewLayout validates widths and resolves the storage kind with
// [ResolveStorage].
//
// Construction fails with ErrInvalidLayout if any width is zero or the
// widths sum past MaxTotalBits, and with ErrUnsupportedWidth for an empty
// layout (total width zero has no storage class).
func NewLayout(pref StoragePreference, widths ...uint) (*Layout, error) {
	return NewLayoutWithDetector(pref, ResolveStorage, widths...)
}

// NewFastLayout is shorthand for NewLayout(Fast, widths...).
func NewFastLayout(widths ...uint) (*Layout, error) {
	return NewLayout(Fast, widths...)
}

// NewSmallLayout is shorthand for NewLayout(Small, widths...).
func NewSmallLayout(widths ...uint) (*Layout, error) {
	return NewLayout(Small, widths...)
}

// NewLayoutWithDetector is NewLayout with a caller supplied storage
// detector. The detector result is re-checked against the layout's total
// width, so a defective detector surfaces here as ErrStorageTooSmall
// rather than as corrupt field arithmetic later.
func NewLayoutWithDetector(pref StoragePreference, detect Detector, widths ...uint) (*Layout, error) {
	l := &Layout{
		widths: make([]uint, len(widths)),
		shifts: make([]uint, len(widths)),
		pref:   pref,
	}
	for i, w := range widths {
		if w == 0 {
			return nil, fmt.Errorf("%w: field %d has zero width", ErrInvalidLayout, i)
		}
		l.widths[i] = w
		l.shifts[i] = l.total
		l.total += w
	}
	if l.total > MaxTotalBits {
		return nil, fmt.Errorf("%w: total width %d exceeds %d bits", ErrInvalidLayout, l.total, MaxTotalBits)
	}

	kind, err := detect(pref, l.total)
	if err != nil {
		return nil, err
	}
	if !kind.valid() {
		return nil, fmt.Errorf("%w: detector returned kind %d", ErrUnsupportedWidth, uint(kind))
	}
	if kind.Bits() < l.total {
		return nil, fmt.Errorf("%w: %s holds %d of %d bits", ErrStorageTooSmall, kind, kind.Bits(), l.total)
	}
	l.kind = kind
	return l, nil
}

// FieldCount returns the number of fields in the layout.
func (l *Layout) FieldCount() int { return len(l.widths) }

// TotalBits returns the sum of all field widths.
func (l *Layout) TotalBits() uint { return l.total }

// Preference returns the storage preference the layout was declared with.
func (l *Layout) Preference() StoragePreference { return l.pref }

// Storage returns the resolved width class of the layout's storage word.
func (l *Layout) Storage() StorageKind { return l.kind }

// Width returns the bit width of field i.
func (l *Layout) Width(i int) (uint, error) {
	if i < 0 || i >= len(l.widths) {
		return 0, fmt.Errorf("%w: field %d of %d", ErrIndexOutOfRange, i, len(l.widths))
	}
	return l.widths[i], nil
}

// Shift returns the bit offset of field i within the storage word: the sum
// of the widths of every field below it.
func (l *Layout) Shift(i int) (uint, error) {
	if i < 0 || i >= len(l.shifts) {
		return 0, fmt.Errorf("%w: field %d of %d", ErrIndexOutOfRange, i, len(l.shifts))
	}
	return l.shifts[i], nil
}

// Mask returns the unshifted mask for field i: Bitmask(width of i).
func (l *Layout) Mask(i int) (uint64, error) {
	w, err := l.Width(i)
	if err != nil {
		return 0, err
	}
	return Bitmask(w), nil
}
