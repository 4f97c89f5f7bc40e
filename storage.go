package bitpack

import "fmt"

// Bitmask returns a mask covering the low width bits.
//
// The caller is responsible for ensuring width <= 64; wider widths saturate
// to a full mask.
func Bitmask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<width - 1
}

// Detector maps a storage preference and a total bit width to the kind
// backing a layout's storage word. [ResolveStorage] is the default; a
// caller supplied detector may choose a wider kind than the default table,
// never a narrower one.
type Detector func(pref StoragePreference, totalBits uint) (StorageKind, error)

// ResolveStorage returns the narrowest kind whose capacity is at least
// totalBits.
//
// Go has no uint_fastN_t / uint_leastN_t split, so pref does not change
// the resolved kind; it is accepted so detectors keep a uniform signature.
func ResolveStorage(pref StoragePreference, totalBits uint) (StorageKind, error) {
	switch {
	case totalBits == 0:
		return 0, fmt.Errorf("%w: total width is zero", ErrUnsupportedWidth)
	case totalBits <= 8:
		return Uint8, nil
	case totalBits <= 16:
		return Uint16, nil
	case totalBits <= 32:
		return Uint32, nil
	case totalBits <= 64:
		return Uint64, nil
	default:
		return 0, fmt.Errorf("%w: total width %d exceeds %d bits", ErrUnsupportedWidth, totalBits, MaxTotalBits)
	}
}

// Bits returns the kind's capacity in bits.
func (k StorageKind) Bits() uint { return uint(k) }

// Bytes returns the kind's size in bytes.
func (k StorageKind) Bytes() uint { return uint(k) / 8 }

func (k StorageKind) valid() bool {
	switch k {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}
