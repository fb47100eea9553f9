package rawspeed

import (
	"bytes"
	"fmt"
)

// Table is a frozen canonical Huffman decode table. It pairs a
// Histogram with the ordered symbol values assigned to the codewords
// and the derived per-length numeric boundaries used during decode.
//
// A Table is immutable after NewTable returns and may be shared by
// reference across concurrent decode calls without locking.
type Table struct {
	hist   *Histogram
	values []byte

	// Per length i (codewords of i+1 bits): the smallest and largest
	// numeric codeword of that length, and the index into values of
	// the first symbol of that length. All three are -1 for lengths
	// with no codewords.
	minCode    [MaxCodeLength]int32
	maxCode    [MaxCodeLength]int32
	valueIndex [MaxCodeLength]int32
}

// NewTable builds the decode table for hist from the symbol-value
// bytes that follow the counts in the container. Each value is the
// number of magnitude bits announced by its codeword, so it may not
// exceed MaxCodeLength.
//
// values must hold exactly hist.CodeCount() bytes, in canonical order:
// symbols of shorter codewords first, construction order within a
// length. Violations return an *InvalidTableError.
func NewTable(hist *Histogram, values []byte) (*Table, error) {
	if hist == nil {
		panic("rawspeed: NewTable requires a histogram")
	}

	if len(values) != hist.CodeCount() {
		return nil, &InvalidTableError{Reason: fmt.Sprintf("wrong symbol count: got %d, table defines %d codes", len(values), hist.CodeCount())}
	}
	// Unreachable through a valid Histogram; kept as a safety net
	// against a histogram invariant bypass.
	if len(values) > MaxCodeCount {
		return nil, &InvalidTableError{Reason: "too many symbols"}
	}
	for _, v := range values {
		if v > MaxCodeLength {
			return nil, &InvalidTableError{Reason: fmt.Sprintf("symbol value %d out of range", v)}
		}
	}

	t := &Table{
		hist:   hist,
		values: bytes.Clone(values),
	}

	// Canonical numbering: codewords of each length are consecutive,
	// starting where the previous length left off shifted one bit
	// left. The per-length count limits enforced by NewHistogram
	// guarantee no code is a prefix of another.
	var code, index int32
	for i := 0; i < MaxCodeLength; i++ {
		n := int32(t.hist.counts[i])
		if n == 0 {
			t.minCode[i] = -1
			t.maxCode[i] = -1
			t.valueIndex[i] = -1
		} else {
			t.minCode[i] = code
			t.maxCode[i] = code + n - 1
			t.valueIndex[i] = index
			code += n
			index += n
		}
		code <<= 1
	}

	return t, nil
}

// Histogram returns the code-length histogram the table was built from.
func (t *Table) Histogram() *Histogram {
	return t.hist
}

// Equal reports whether two tables decode identically: same code
// lengths (ignoring trailing zero-count lengths) and same symbol
// values.
func (t *Table) Equal(other *Table) bool {
	return t.hist.Equal(other.hist) && bytes.Equal(t.values, other.values)
}

// DecodeSymbol reads one codeword from src and returns its symbol
// value, the magnitude category of the difference that follows.
//
// The codeword is consumed bit by bit: after each bit the running code
// is checked against the numeric range assigned to codewords of that
// length. If no codeword matches within MaxCodeLength bits the stream
// is either corrupt or desynchronized from the table and a
// *CorruptStreamError is returned. Bits consumed before a failure are
// not restored; the stream is already unusable.
func (t *Table) DecodeSymbol(src BitSource) (uint8, error) {
	var code int32
	for i := 0; i < MaxCodeLength; i++ {
		code = code<<1 | int32(src.GetBits(1))
		if t.maxCode[i] >= 0 && code >= t.minCode[i] && code <= t.maxCode[i] {
			return t.values[t.valueIndex[i]+code-t.minCode[i]], nil
		}
	}
	return 0, &CorruptStreamError{Reason: "no matching huffman code"}
}
