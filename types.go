package bitpack

import "errors"

// MaxTotalBits is the widest layout a single storage word can hold.
const MaxTotalBits uint = 64

// StoragePreference expresses whether a layout favours the fastest usable
// or the smallest exact representation for its storage word.
type StoragePreference uint8

const (
	// Fast favours the representation that is cheapest to operate on.
	Fast StoragePreference = iota
	// Small favours the narrowest representation that holds the layout.
	Small
)

// StorageKind is the resolved width class of a pack's storage word. The
// numeric value of a kind is its capacity in bits.
type StorageKind uint8

const (
	Uint8  StorageKind = 8
	Uint16 StorageKind = 16
	Uint32 StorageKind = 32
	Uint64 StorageKind = 64
)

var (
	ErrInvalidLayout    = errors.New("bitpack: invalid layout")
	ErrUnsupportedWidth = errors.New("bitpack: width outside the supported storage range")
	ErrIndexOutOfRange  = errors.New("bitpack: field index out of range")
	ErrFieldOverflow    = errors.New("bitpack: value overflows the field width")
	ErrStorageTooSmall  = errors.New("bitpack: resolved storage cannot hold the layout")
)
