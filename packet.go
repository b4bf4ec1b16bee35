package btcbytes_sdk

import (
	"bytes"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/pkg/errors"
)

// Decode a hex encoded psbt
func DecodePacket(psbtHex string) (*psbt.Packet, error) {
	b, err := HexToBytes(psbtHex)
	if err != nil {
		return nil, err
	}
	p, err := psbt.NewFromRawBytes(bytes.NewReader(b), false)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PacketUTXOs lists the outputs spent by the packet's inputs. The value comes
// from the witness utxo when present, otherwise from the referenced output of
// the non-witness utxo, which must hash to the outpoint's txid.
func PacketUTXOs(psbtHex string) ([]UTXO, error) {
	p, err := DecodePacket(psbtHex)
	if err != nil {
		return nil, err
	}

	utxos := make([]UTXO, 0, len(p.UnsignedTx.TxIn))
	for i, txIn := range p.UnsignedTx.TxIn {
		prevOut := txIn.PreviousOutPoint
		in := p.Inputs[i]

		var value int64
		switch {
		case in.WitnessUtxo != nil:
			value = in.WitnessUtxo.Value
		case in.NonWitnessUtxo != nil:
			if txHash := in.NonWitnessUtxo.TxHash(); !txHash.IsEqual(&prevOut.Hash) {
				return nil, errors.Wrapf(ErrMissingUtxo, "Index-[%d] %s, non-witness utxo is %s", i, prevOut.String(), txHash.String())
			}
			if int(prevOut.Index) >= len(in.NonWitnessUtxo.TxOut) {
				return nil, errors.Wrapf(ErrMissingUtxo, "Index-[%d] %s, non-witness utxo has %d outputs", i, prevOut.String(), len(in.NonWitnessUtxo.TxOut))
			}
			value = in.NonWitnessUtxo.TxOut[prevOut.Index].Value
		default:
			return nil, errors.Wrapf(ErrMissingUtxo, "Index-[%d] %s", i, prevOut.String())
		}
		if value < 0 {
			return nil, errors.Wrapf(ErrInvalidAmount, "Index-[%d] value %d", i, value)
		}

		utxos = append(utxos, UTXO{
			Txid:  append([]byte(nil), prevOut.Hash[:]...),
			Vout:  prevOut.Index,
			Value: uint64(value),
		})
	}
	return utxos, nil
}

func PacketOutputTypes(psbtHex string) ([]ScriptType, error) {
	p, err := DecodePacket(psbtHex)
	if err != nil {
		return nil, err
	}
	types := make([]ScriptType, len(p.UnsignedTx.TxOut))
	for i, txOut := range p.UnsignedTx.TxOut {
		types[i] = ClassifyScript(txOut.PkScript)
	}
	return types, nil
}
