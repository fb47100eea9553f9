package rawspeed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel-lawrence-lu/rawspeed/internal/bits"
)

func mustTable(t *testing.T, counts, values []byte) *Table {
	t.Helper()
	tbl, err := NewTable(mustHistogram(t, counts...), values)
	require.NoError(t, err)
	return tbl
}

func TestNewTableSymbolCount(t *testing.T) {
	h := mustHistogram(t, 1, 1)
	require.Equal(t, 2, h.CodeCount())

	for _, size := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			values := make([]byte, size)
			_, err := NewTable(h, values)
			if size == h.CodeCount() {
				require.NoError(t, err)
				return
			}
			var tableErr *InvalidTableError
			require.ErrorAs(t, err, &tableErr)
			assert.Contains(t, tableErr.Reason, "wrong symbol count")
		})
	}
}

func TestNewTableSymbolValueRange(t *testing.T) {
	// A symbol value is a magnitude-bit count, capped at 16; the rest
	// of the byte range is invalid however the table is otherwise
	// shaped.
	h := mustHistogram(t, 1)

	for v := 0; v < 256; v++ {
		_, err := NewTable(h, []byte{byte(v)})
		if v <= MaxCodeLength {
			require.NoError(t, err, "value %d", v)
			continue
		}
		var tableErr *InvalidTableError
		require.ErrorAs(t, err, &tableErr, "value %d", v)
		assert.Equal(t, fmt.Sprintf("symbol value %d out of range", v), tableErr.Reason)
	}
}

func TestNewTableNilHistogram(t *testing.T) {
	require.Panics(t, func() {
		_, _ = NewTable(nil, nil)
	})
}

func TestTableEqual(t *testing.T) {
	tests := []struct {
		name   string
		countsA, valsA []byte
		countsB, valsB []byte
		want   bool
	}{
		{"identical", []byte{1}, []byte{0}, []byte{1}, []byte{0}, true},
		{"identical_other_value", []byte{1}, []byte{1}, []byte{1}, []byte{1}, true},
		{"trailing_zero_right", []byte{1}, []byte{0}, []byte{1, 0}, []byte{0}, true},
		{"trailing_zero_both", []byte{1, 0}, []byte{0}, []byte{1, 0}, []byte{0}, true},

		{"different_value", []byte{1}, []byte{0}, []byte{1}, []byte{1}, false},
		{"different_value_trimmed", []byte{1}, []byte{0}, []byte{1, 0}, []byte{1}, false},
		{"different_lengths", []byte{1}, []byte{0}, []byte{0, 1}, []byte{0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustTable(t, tt.countsA, tt.valsA)
			b := mustTable(t, tt.countsB, tt.valsB)
			assert.Equal(t, tt.want, a.Equal(b))
			assert.Equal(t, tt.want, b.Equal(a))
		})
	}
}

func TestTableHistogram(t *testing.T) {
	h := mustHistogram(t, 1, 1)
	tbl, err := NewTable(h, []byte{0, 3})
	require.NoError(t, err)
	assert.Same(t, h, tbl.Histogram())
}

func TestDecodeSymbolSingleCode(t *testing.T) {
	// One 1-bit codeword: "0" decodes to the only symbol.
	tbl := mustTable(t, []byte{1}, []byte{0})

	r := bits.NewReader([]byte{0x00}, bits.MSBFirst)
	sym, err := tbl.DecodeSymbol(r)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), sym)
	assert.Equal(t, uint(1), r.BitsRead())
}

func TestDecodeSymbolTwoLengths(t *testing.T) {
	// Canonical assignment for counts {1, 1}:
	//   "0"  -> values[0] = 0
	//   "10" -> values[1] = 3
	// "11" matches nothing at any length.
	tbl := mustTable(t, []byte{1, 1}, []byte{0, 3})

	tests := []struct {
		name     string
		data     []byte
		want     uint8
		wantBits uint
	}{
		{"shortest_codeword", []byte{0x00}, 0, 1}, // 0b00000000
		{"second_length", []byte{0x80}, 3, 2},     // 0b10000000
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bits.NewReader(tt.data, bits.MSBFirst)
			sym, err := tbl.DecodeSymbol(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sym)
			assert.Equal(t, tt.wantBits, r.BitsRead())
		})
	}

	t.Run("no_matching_code", func(t *testing.T) {
		r := bits.NewReader([]byte{0xC0}, bits.MSBFirst) // 0b11000000
		_, err := tbl.DecodeSymbol(r)

		var streamErr *CorruptStreamError
		require.ErrorAs(t, err, &streamErr)
		assert.Equal(t, "no matching huffman code", streamErr.Reason)
		// The full 16-bit search window is consumed; nothing is
		// rolled back on failure.
		assert.Equal(t, uint(MaxCodeLength), r.BitsRead())
	})
}
