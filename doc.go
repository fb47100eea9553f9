// Package rawspeed provides the entropy-decoding core of a camera RAW
// decoder: canonical Huffman decode tables and the difference decoding
// built on top of them.
//
// Most proprietary RAW formats compress pixel data with a lossless-JPEG
// style scheme: each sample is stored as a Huffman-coded "magnitude
// category" followed by that many raw magnitude bits, and the decoded
// value is a signed difference against a predicted neighbour sample.
// This package builds and validates the decode tables from untrusted
// table-definition bytes found in the container, decodes single
// differences from a bitstream, and reconstructs whole strips of
// samples.
//
// # Basic Usage
//
// A table is built in two steps, matching how the data appears in the
// container: first the 16 per-length codeword counts, then the symbol
// values:
//
//	hist, err := rawspeed.NewHistogram(lengths) // exactly 16 bytes
//	if err != nil {
//	    // table-definition data is structurally invalid
//	}
//	table, err := rawspeed.NewTable(hist, values) // hist.CodeCount() bytes
//	if err != nil {
//	    // symbol values are invalid
//	}
//
//	samples, err := rawspeed.DecompressStrip(table, data, rawspeed.MSBFirst, width, height)
//
// # Validation
//
// All table-definition input is treated as attacker-controlled.
// Structural violations are reported as *InvalidTableError; a
// well-formed table that fails to match any codeword while decoding
// reports *CorruptStreamError. The first error kind means the data can
// never produce a usable decoder; the second invalidates only the
// segment being decoded, not the table.
//
// # Thread Safety
//
// A Table is frozen once constructed and may be shared by reference
// across any number of concurrent decode calls without locking. A
// BitSource is never shared: exactly one goroutine advances a given
// bitstream cursor at a time.
package rawspeed
