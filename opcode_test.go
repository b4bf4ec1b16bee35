package btcbytes_sdk

import (
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcodeFromByte(t *testing.T) {
	op, err := OpcodeFromByte(0xac)
	require.NoError(t, err)
	assert.Equal(t, OP_CHECKSIG, op)

	op, err = OpcodeFromByte(0x76)
	require.NoError(t, err)
	assert.Equal(t, OP_DUP, op)

	op, err = OpcodeFromByte(0x51)
	require.NoError(t, err)
	assert.Equal(t, OP_1, op)

	op, err = OpcodeFromByte(0x60)
	require.NoError(t, err)
	assert.Equal(t, OP_16, op)
}

// 0x00 pushes an empty value on the real network but is rejected here.
func TestOpcodeFromByteRejectsZero(t *testing.T) {
	_, err := OpcodeFromByte(0x00)
	require.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestOpcodeFromByteUnknown(t *testing.T) {
	for _, b := range []byte{0x01, 0x14, 0x4c, 0x50, 0xab, 0xff} {
		_, err := OpcodeFromByte(b)
		require.ErrorIs(t, err, ErrUnknownOpcode, "0x%02x", b)
	}
}

func TestOpcodeTable(t *testing.T) {
	recognized := 0
	for i := 0; i <= 0xff; i++ {
		op, err := OpcodeFromByte(byte(i))
		if err != nil {
			continue
		}
		recognized++
		assert.Equal(t, byte(i), op.Byte())

		// Names and values agree with btcd.
		value, ok := txscript.OpcodeByName[op.String()]
		require.True(t, ok, op.String())
		assert.Equal(t, byte(i), value, op.String())
	}
	assert.Equal(t, len(opcodeNames), recognized)
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "OP_CHECKSIG", OP_CHECKSIG.String())
	assert.Equal(t, "OP_HASH160", OP_HASH160.String())
	assert.Equal(t, "OP_UNKNOWN<0x00>", Opcode(0x00).String())
}
