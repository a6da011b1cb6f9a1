package fixedarray

func bitmapBytes(n int) int { return (n + 7) >> 3 }

func setBitLSB0(bitset []byte, j int) {
	bitset[j>>3] |= 1 << uint8(j&7)
}

func clearBitLSB0(bitset []byte, j int) {
	bitset[j>>3] &^= 1 << uint8(j&7)
}

func testBitLSB0(bitset []byte, j int) bool {
	return bitset[j>>3]&(1<<uint8(j&7)) != 0
}
