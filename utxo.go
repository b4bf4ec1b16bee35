package btcbytes_sdk

import (
	"bytes"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
)

// Outpoint references an output by its display-order txid and index.
type Outpoint struct {
	Txid string `json:"txid"`
	Vout uint32 `json:"vout"`
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.Txid, o.Vout)
}

// FormatTxid labels a txid for display, e.g. "txid: deadbeef".
func FormatTxid(txid string) string {
	return "txid: " + txid
}

// IsNull reports whether o is the all-zero outpoint used by coinbase inputs.
func (o Outpoint) IsNull() bool {
	return o.Txid == NullTxId && o.Vout == math.MaxUint32
}

// WireOutPoint parses the display-order txid into a wire outpoint.
func (o Outpoint) WireOutPoint() (*wire.OutPoint, error) {
	txHash, err := chainhash.NewHashFromStr(o.Txid)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTxid, "%s: %s", o.Txid, err)
	}
	return wire.NewOutPoint(txHash, o.Vout), nil
}

// UTXO is a spendable output. Txid holds the hash in wire (internal) order.
type UTXO struct {
	Txid  []byte `json:"txid"`
	Vout  uint32 `json:"vout"`
	Value uint64 `json:"value"`
}

// Equal compares u and other by value.
func (u UTXO) Equal(other UTXO) bool {
	return u.Vout == other.Vout && u.Value == other.Value && bytes.Equal(u.Txid, other.Txid)
}

// Clone returns a copy of u that shares no memory with it.
func (u UTXO) Clone() UTXO {
	c := u
	if u.Txid != nil {
		c.Txid = make([]byte, len(u.Txid))
		copy(c.Txid, u.Txid)
	}
	return c
}

// ConsumeUTXO models a spend in this toy setting: the caller gets back an
// independent copy equal to u and u itself is unchanged.
func ConsumeUTXO(u UTXO) UTXO {
	return u.Clone()
}

// Outpoint renders the txid in display order, the way chainhash prints it.
func (u UTXO) Outpoint() Outpoint {
	return Outpoint{Txid: BytesToHex(ToBigEndian(u.Txid)), Vout: u.Vout}
}

// TxOut builds the wire output carrying u's value to pkScript.
func (u UTXO) TxOut(pkScript []byte) (*wire.TxOut, error) {
	if u.Value > math.MaxInt64 {
		return nil, errors.Wrapf(ErrValueOverflow, "%d satoshis", u.Value)
	}
	return wire.NewTxOut(int64(u.Value), pkScript), nil
}

// SumValues totals the values of utxos, failing instead of wrapping around.
func SumValues(utxos []UTXO) (uint64, error) {
	var total uint64
	for i, u := range utxos {
		if u.Value > math.MaxUint64-total {
			return 0, errors.Wrapf(ErrValueOverflow, "at utxo %d (%s)", i, u.Outpoint())
		}
		total += u.Value
	}
	return total, nil
}
