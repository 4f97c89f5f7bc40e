package bitpack

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	l, err := NewSmallLayout(8, 9)
	require.NoError(t, err)
	require.Equal(t, 2, l.FieldCount())
	require.Equal(t, uint(17), l.TotalBits())
	require.Equal(t, Small, l.Preference())
	require.Equal(t, Uint32, l.Storage())

	w, err := l.Width(0)
	require.NoError(t, err)
	require.Equal(t, uint(8), w)
	w, err = l.Width(1)
	require.NoError(t, err)
	require.Equal(t, uint(9), w)

	s, err := l.Shift(0)
	require.NoError(t, err)
	require.Equal(t, uint(0), s)
	s, err = l.Shift(1)
	require.NoError(t, err)
	require.Equal(t, uint(8), s)

	m, err := l.Mask(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0xff), m)
	m, err = l.Mask(1)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1ff), m)
}

func TestNewLayoutResolution(t *testing.T) {
	tests := []struct {
		widths []uint
		want   StorageKind
	}{
		{[]uint{1}, Uint8},
		{[]uint{4, 4}, Uint8},
		{[]uint{8, 8}, Uint16},
		{[]uint{8, 9}, Uint32},
		{[]uint{12, 8}, Uint32},
		{[]uint{4, 4, 4}, Uint16},
		{[]uint{16, 16}, Uint32},
		{[]uint{32, 1}, Uint64},
		{[]uint{64}, Uint64},
		{[]uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Uint64}, // total 55
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.widths), func(t *testing.T) {
			for _, pref := range []StoragePreference{Fast, Small} {
				l, err := NewLayout(pref, tt.widths...)
				require.NoError(t, err)
				require.Equal(t, tt.want, l.Storage())
				require.GreaterOrEqual(t, l.Storage().Bits(), l.TotalBits())
			}
		})
	}
}

func TestNewLayoutInvalid(t *testing.T) {
	_, err := NewFastLayout(8, 0, 4)
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = NewFastLayout(32, 32, 1)
	require.ErrorIs(t, err, ErrInvalidLayout)

	// A layout with no fields has no storage class.
	_, err = NewFastLayout()
	require.ErrorIs(t, err, ErrUnsupportedWidth)
}

func TestLayoutIndexBounds(t *testing.T) {
	l, err := NewSmallLayout(8, 9)
	require.NoError(t, err)

	for _, i := range []int{-1, 2, 100} {
		_, err = l.Width(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = l.Shift(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = l.Mask(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestNewLayoutWithDetector(t *testing.T) {
	// Widening past the table is allowed.
	wide := func(pref StoragePreference, totalBits uint) (StorageKind, error) {
		return Uint64, nil
	}
	l, err := NewLayoutWithDetector(Fast, wide, 4, 4)
	require.NoError(t, err)
	require.Equal(t, Uint64, l.Storage())

	// A detector too narrow for the layout is a storage defect.
	narrow := func(pref StoragePreference, totalBits uint) (StorageKind, error) {
		return Uint8, nil
	}
	_, err = NewLayoutWithDetector(Fast, narrow, 8, 9)
	require.ErrorIs(t, err, ErrStorageTooSmall)

	// Kinds outside the width classes are rejected.
	bogus := func(pref StoragePreference, totalBits uint) (StorageKind, error) {
		return StorageKind(13), nil
	}
	_, err = NewLayoutWithDetector(Fast, bogus, 4, 4)
	require.ErrorIs(t, err, ErrUnsupportedWidth)

	// Detector errors propagate unchanged.
	failing := func(pref StoragePreference, totalBits uint) (StorageKind, error) {
		return 0, ErrUnsupportedWidth
	}
	_, err = NewLayoutWithDetector(Fast, failing, 4, 4)
	require.ErrorIs(t, err, ErrUnsupportedWidth)
}

func TestLayoutString(t *testing.T) {
	l, err := NewSmallLayout(8, 9)
	require.NoError(t, err)
	require.Equal(t, "small uint32 [8 9]", l.String())

	l, err = NewFastLayout(12, 8)
	require.NoError(t, err)
	require.Equal(t, "fast uint32 [12 8]", l.String())
}
