package rawspeed

// MaxCodeLength is the longest codeword, in bits, a decode table may
// define. Code lengths are catalogued as exactly MaxCodeLength
// per-length counts, and a symbol value (the number of magnitude bits
// that follow a codeword) may not exceed it either.
const MaxCodeLength = 16

// MaxCodeCount is the ceiling on the total number of codewords in one
// table. It is the historical limit for entropy-coded symbol tables in
// this domain (16 length classes of up to ~10 magnitude categories,
// plus reserved escape codes).
const MaxCodeCount = 162

// BitOrder selects the order in which a strip's bytes are consumed as
// bits. The order is mandated by the originating RAW format, not by
// this package; callers must pick it per format rather than assume one.
type BitOrder uint8

// Supported bit orders.
const (
	MSBFirst BitOrder = iota // most significant bit of each byte first
	LSBFirst                 // least significant bit of each byte first
)

// BitSource supplies bits from one entropy-coded segment. The bit
// order behind the interface is the implementation's concern; decode
// tables consume whatever order the source delivers.
//
// A BitSource is owned by a single goroutine for the duration of a
// decode; implementations need not be safe for concurrent use. Reads
// past the end of the underlying data must yield zero bits rather than
// fail, so that a desynchronized stream surfaces as a decode error at
// the point where no codeword matches.
type BitSource interface {
	// ShowBits returns the next n bits without consuming them.
	ShowBits(n uint) uint32

	// FlushBits discards n bits.
	FlushBits(n uint)

	// GetBits reads and returns the next n bits.
	GetBits(n uint) uint32
}
