package btcbytes_sdk

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// BytesToHex encodes b as lowercase hex, two characters per byte.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hex string. Upper and lower case digits are accepted.
// The length is checked before the characters, so an odd-length string always
// fails with ErrInvalidHexLength.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidHexLength, "got %d characters", len(s))
	}
	if s == "" {
		return []byte{}, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidHexChar, "%s", err)
	}
	return b, nil
}

// DecodeHex is HexToBytes under the name used for hash-like inputs.
func DecodeHex(s string) ([]byte, error) {
	return HexToBytes(s)
}
