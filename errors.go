package rawspeed

// InvalidTableError reports table-definition bytes that violate a
// structural constraint: a per-length codeword count that cannot exist
// in a canonical code, an empty or oversized table, a wrong number of
// symbol values, or a symbol value outside the magnitude-category
// range.
//
// The error is fatal to the segment whose table was being built.
// Retrying cannot help; callers should treat the segment as
// undecodable rather than abort the whole file.
type InvalidTableError struct {
	// Reason describes the violated constraint.
	Reason string
}

// Error implements the error interface.
func (e *InvalidTableError) Error() string {
	return "rawspeed: invalid huffman table: " + e.Reason
}

// CorruptStreamError reports a bitstream that a well-formed table could
// not decode: no codeword matched within MaxCodeLength bits, or the
// stream ran out of bits mid-segment. It indicates either corrupt data
// or a table/bitstream desynchronization.
//
// The error is fatal to the segment being decoded but does not
// invalidate the table; the same table may decode other segments
// correctly.
type CorruptStreamError struct {
	// Reason describes the decode failure.
	Reason string
}

// Error implements the error interface.
func (e *CorruptStreamError) Error() string {
	return "rawspeed: corrupt bitstream: " + e.Reason
}
