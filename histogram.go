package rawspeed

import "fmt"

// Histogram records, per codeword length 1..MaxCodeLength, how many
// codewords of that length a canonical Huffman table defines. It is
// the validated form of the 16 count bytes that open a table
// definition in the container.
type Histogram struct {
	counts [MaxCodeLength]uint8
	total  int
}

// NewHistogram validates the 16 per-length count bytes of a table
// definition. counts[i] is the number of codewords of length i+1 bits.
//
// counts must be exactly MaxCodeLength bytes; any other size is a
// caller bug and panics. Malformed count data returns an
// *InvalidTableError: a length with more codewords than a canonical
// code of that length can hold, a table with no codewords at all, or a
// total above MaxCodeCount.
func NewHistogram(counts []byte) (*Histogram, error) {
	if len(counts) != MaxCodeLength {
		panic(fmt.Sprintf("rawspeed: NewHistogram requires %d count bytes, got %d", MaxCodeLength, len(counts)))
	}

	h := &Histogram{}
	for i, c := range counts {
		length := uint(i + 1)

		// A canonical code of length L has at most 2^L - 1 codewords:
		// at least one L-bit pattern must remain as a prefix for the
		// longer codes.
		if uint(c) > 1<<length-1 {
			return nil, &InvalidTableError{Reason: fmt.Sprintf("too many codes for length %d", length)}
		}

		h.counts[i] = c
		h.total += int(c)
	}

	if h.total == 0 {
		return nil, &InvalidTableError{Reason: "empty table"}
	}
	if h.total > MaxCodeCount {
		return nil, &InvalidTableError{Reason: "too many total codes"}
	}

	return h, nil
}

// CodeCount returns the total number of codewords the table defines,
// which is also the number of symbol-value bytes NewTable expects.
func (h *Histogram) CodeCount() int {
	return h.total
}

// Count returns the number of codewords of the given length (1-based).
func (h *Histogram) Count(length int) int {
	if length < 1 || length > MaxCodeLength {
		panic(fmt.Sprintf("rawspeed: code length %d out of range", length))
	}
	return int(h.counts[length-1])
}

// lastLength returns the longest codeword length with a non-zero
// count, or 0 for a (never constructed) empty histogram.
func (h *Histogram) lastLength() int {
	for i := MaxCodeLength - 1; i >= 0; i-- {
		if h.counts[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// Equal reports whether two histograms define the same code lengths.
// Trailing zero-count lengths are irrelevant: a table with one 1-bit
// code equals a table with one 1-bit code and zero 2-bit codes.
func (h *Histogram) Equal(other *Histogram) bool {
	n := h.lastLength()
	if n != other.lastLength() {
		return false
	}
	for i := 0; i < n; i++ {
		if h.counts[i] != other.counts[i] {
			return false
		}
	}
	return true
}
