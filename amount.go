package btcbytes_sdk

import (
	"math"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"
)

// ParseSatoshis parses a plain decimal satoshi count. Signs, separators,
// decimal points and whitespace are rejected, as is anything past the uint64
// range. The supply cap is not enforced here, see WithinSupply.
func ParseSatoshis(s string) (uint64, error) {
	if s == "" {
		return 0, errors.Wrap(ErrInvalidAmount, "empty amount")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.Wrapf(ErrInvalidAmount, "%q has a non-digit at %d", s, i)
		}
	}
	sats, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q: %s", s, err)
	}
	return sats, nil
}

// WithinSupply reports whether sats does not exceed the 21M coin supply.
func WithinSupply(sats uint64) bool {
	return sats <= uint64(btcutil.MaxSatoshi)
}

// FormatBTC renders a satoshi count in whole coins, e.g. "0.5 BTC".
func FormatBTC(sats uint64) (string, error) {
	if sats > math.MaxInt64 {
		return "", errors.Wrapf(ErrValueOverflow, "%d satoshis", sats)
	}
	return btcutil.Amount(int64(sats)).String(), nil
}
