// Package bits reads a byte buffer as a stream of bits, in either bit
// order used by camera RAW formats.
package bits

// Order selects which end of each byte is consumed first.
type Order uint8

// Supported bit orders.
const (
	MSBFirst Order = iota // most significant bit first
	LSBFirst              // least significant bit first
)

// Reader reads bits from a byte buffer.
//
// It keeps up to 64 bits in an accumulator and refills it a byte at a
// time. Reads past the end of the buffer yield zero bits and set a
// sticky overrun flag; decoding is never interrupted mid-read, the
// caller checks Overrun once the segment is done. Peeks past the end
// do not set the flag, only consuming does.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	buffer []byte
	pos    int    // next byte to load into the accumulator
	acc    uint64 // buffered bits
	fill   uint   // number of valid bits in acc
	order  Order
	read   uint // total bits consumed so far
	over   bool // consumed past the end of buffer
}

// NewReader creates a Reader over data, consuming bits in the given
// order.
func NewReader(data []byte, order Order) *Reader {
	return &Reader{buffer: data, order: order}
}

// refill tops the accumulator up to at least 57 bits or to the end of
// the buffer, whichever comes first. With n capped at 32 everywhere, a
// short accumulator after refill means the buffer is exhausted.
func (r *Reader) refill() {
	for r.fill <= 56 && r.pos < len(r.buffer) {
		b := uint64(r.buffer[r.pos])
		r.pos++
		if r.order == MSBFirst {
			r.acc = r.acc<<8 | b
		} else {
			r.acc |= b << r.fill
		}
		r.fill += 8
	}
}

// ShowBits returns the next n bits without consuming them. n must be
// 0-32. Bits beyond the end of the buffer read as zero.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	r.refill()

	mask := uint64(1)<<n - 1
	if r.order == LSBFirst {
		// Low bits of the accumulator are next; missing bits are
		// already zero.
		return uint32(r.acc & mask)
	}
	if n <= r.fill {
		return uint32(r.acc >> (r.fill - n) & mask)
	}
	// Buffer exhausted mid-read: pad with zeros on the right.
	return uint32(r.acc << (n - r.fill) & mask)
}

// FlushBits discards n bits. Discarding more bits than the buffer
// holds sets the overrun flag.
func (r *Reader) FlushBits(n uint) {
	r.read += n
	r.refill()

	if n > r.fill {
		r.over = true
		r.acc = 0
		r.fill = 0
		return
	}
	r.fill -= n
	if r.order == LSBFirst {
		r.acc >>= n
	} else {
		r.acc &= uint64(1)<<r.fill - 1
	}
}

// GetBits reads and returns the next n bits. n must be 0-32.
func (r *Reader) GetBits(n uint) uint32 {
	ret := r.ShowBits(n)
	r.FlushBits(n)
	return ret
}

// Get1Bit reads and returns a single bit.
func (r *Reader) Get1Bit() uint8 {
	return uint8(r.GetBits(1))
}

// BitsRead returns the total number of bits consumed so far.
func (r *Reader) BitsRead() uint {
	return r.read
}

// Overrun reports whether more bits were consumed than the buffer
// holds.
func (r *Reader) Overrun() bool {
	return r.over
}
