package btcbytes_sdk

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/pkg/errors"
)

type ScriptType int

const (
	UnknownScript ScriptType = iota
	P2PKH
	P2WPKH
)

func (t ScriptType) String() string {
	switch t {
	case P2PKH:
		return "P2PKH"
	case P2WPKH:
		return "P2WPKH"
	}
	return "Unknown"
}

// Class maps the script type onto the btcd script class of the same pattern.
func (t ScriptType) Class() txscript.ScriptClass {
	switch t {
	case P2PKH:
		return txscript.PubKeyHashTy
	case P2WPKH:
		return txscript.WitnessV0PubKeyHashTy
	}
	return txscript.NonStandardTy
}

// ClassifyScript looks only at the leading bytes of script. P2PKH is checked
// before P2WPKH; scripts shorter than a prefix never match it.
func ClassifyScript(script []byte) ScriptType {
	switch {
	case bytes.HasPrefix(script, p2pkhPrefix):
		return P2PKH
	case bytes.HasPrefix(script, p2wpkhPrefix):
		return P2WPKH
	}
	return UnknownScript
}

// ReadPushdata returns a copy of everything after the two byte header. It
// does not look at the opcodes, the caller is expected to have classified
// the script already.
func ReadPushdata(script []byte) []byte {
	if len(script) < pushdataOffset {
		return []byte{}
	}
	return append([]byte{}, script[pushdataOffset:]...)
}

// PushdataAddress returns the address paid by a complete P2PKH or P2WPKH
// script.
func PushdataAddress(script []byte, params *chaincfg.Params) (btcutil.Address, error) {
	switch ClassifyScript(script) {
	case P2PKH:
		if len(script) == p2pkhScriptLen &&
			script[23] == txscript.OP_EQUALVERIFY && script[24] == txscript.OP_CHECKSIG {
			return btcutil.NewAddressPubKeyHash(script[3:3+hash160Size], params)
		}
	case P2WPKH:
		if len(script) == p2wpkhScriptLen {
			return btcutil.NewAddressWitnessPubKeyHash(ReadPushdata(script), params)
		}
	}
	return nil, errors.Wrapf(ErrUnsupportedScript, "script %s", BytesToHex(script))
}
