package btcbytes_sdk

import "encoding/binary"

// ToBigEndian returns a reversed copy of b. The input is left untouched.
func ToBigEndian(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// SwapEndianU32 returns the little-endian bytes of v, least significant first.
func SwapEndianU32(v uint32) [4]byte {
	var out [4]byte
	binary.LittleEndian.PutUint32(out[:], v)
	return out
}

// ReverseHex flips the byte order of a hex string, e.g. a txid between its
// display and wire order.
func ReverseHex(s string) (string, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return "", err
	}
	return BytesToHex(ToBigEndian(b)), nil
}
