package rawspeed

import (
	"errors"

	"github.com/daniel-lawrence-lu/rawspeed/internal/bits"
)

// ErrStripGeometry indicates strip dimensions the decompressor cannot
// work with: non-positive width or height, or an odd width (samples
// are predicted from the same-color neighbour two positions away, so
// rows must pair up).
var ErrStripGeometry = errors.New("rawspeed: invalid strip geometry")

// DecompressStrip reconstructs a width×height grid of 16-bit samples
// from the Huffman-coded differences in data, using the difference
// predictor shared by the PEF-style vendor formats: a sample is
// predicted from the sample two to its left (its same-color CFA
// neighbour); the first two samples of each row are predicted from the
// two samples directly above, starting from zero in the first row.
// Sample arithmetic wraps modulo 2^16.
//
// order is the bit order mandated by the format. The returned slice
// holds rows top to bottom; on any decode error no samples are
// returned. Exhausting data before the last difference is reported as
// a *CorruptStreamError.
func DecompressStrip(t *Table, data []byte, order BitOrder, width, height int) ([]uint16, error) {
	if t == nil {
		panic("rawspeed: DecompressStrip requires a table")
	}
	if width <= 0 || height <= 0 || width%2 != 0 {
		return nil, ErrStripGeometry
	}

	r := bits.NewReader(data, order.readerOrder())
	out := make([]uint16, width*height)

	for y := 0; y < height; y++ {
		row := out[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			diff, err := t.DecodeDifference(r)
			if err != nil {
				return nil, err
			}

			var pred int32
			switch {
			case x >= 2:
				pred = int32(row[x-2])
			case y >= 1:
				pred = int32(out[(y-1)*width+x])
			}
			row[x] = uint16(pred + diff)
		}
	}

	if r.Overrun() {
		return nil, &CorruptStreamError{Reason: "bitstream exhausted"}
	}
	return out, nil
}

func (o BitOrder) readerOrder() bits.Order {
	if o == LSBFirst {
		return bits.LSBFirst
	}
	return bits.MSBFirst
}
