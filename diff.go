package rawspeed

// DecodeDifference reads one Huffman-coded pixel difference from src:
// a magnitude category decoded through the table, then that many raw
// magnitude bits, sign-extended into a signed value.
//
// Category 0 means "no change" and consumes no magnitude bits. Errors
// from DecodeSymbol propagate unchanged.
func (t *Table) DecodeDifference(src BitSource) (int32, error) {
	category, err := t.DecodeSymbol(src)
	if err != nil {
		return 0, err
	}
	if category == 0 {
		return 0, nil
	}
	diff := src.GetBits(uint(category))
	return signExtended(diff, uint32(category)), nil
}

// signExtended recovers a signed difference from length magnitude bits.
// The entropy coder transmits no sign bit: bit pattern families with a
// clear high bit encode the negative range, everything else is the
// value itself. length must be 1..MaxCodeLength; callers guarantee it
// (category 0 never reaches here).
func signExtended(diff uint32, length uint32) int32 {
	if length == 0 {
		panic("rawspeed: signExtended requires a positive bit length")
	}
	ret := int32(diff)
	if diff&(1<<(length-1)) == 0 {
		ret -= 1<<length - 1
	}
	return ret
}
