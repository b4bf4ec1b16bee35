package btcbytes_sdk

import "github.com/pkg/errors"

var (
	ErrInvalidHexLength = errors.New("invalid hex length")
	ErrInvalidHexChar   = errors.New("invalid hex character")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrUnknownOpcode    = errors.New("unknown opcode")

	ErrValueOverflow     = errors.New("value overflow")
	ErrUnsupportedScript = errors.New("unsupported script")
	ErrMissingUtxo       = errors.New("missing utxo")
	ErrInvalidTxid       = errors.New("invalid txid")
)
