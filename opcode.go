package btcbytes_sdk

import (
	"fmt"

	"github.com/pkg/errors"
)

// Opcode is a script operation recognized by OpcodeFromByte. Byte values
// outside the table below have no Opcode.
type Opcode byte

const (
	OP_1NEGATE             Opcode = 0x4f // 79
	OP_1                   Opcode = 0x51 // 81
	OP_2                   Opcode = 0x52 // 82
	OP_3                   Opcode = 0x53 // 83
	OP_4                   Opcode = 0x54 // 84
	OP_5                   Opcode = 0x55 // 85
	OP_6                   Opcode = 0x56 // 86
	OP_7                   Opcode = 0x57 // 87
	OP_8                   Opcode = 0x58 // 88
	OP_9                   Opcode = 0x59 // 89
	OP_10                  Opcode = 0x5a // 90
	OP_11                  Opcode = 0x5b // 91
	OP_12                  Opcode = 0x5c // 92
	OP_13                  Opcode = 0x5d // 93
	OP_14                  Opcode = 0x5e // 94
	OP_15                  Opcode = 0x5f // 95
	OP_16                  Opcode = 0x60 // 96
	OP_NOP                 Opcode = 0x61 // 97
	OP_VERIFY              Opcode = 0x69 // 105
	OP_RETURN              Opcode = 0x6a // 106
	OP_DROP                Opcode = 0x75 // 117
	OP_DUP                 Opcode = 0x76 // 118
	OP_EQUAL               Opcode = 0x87 // 135
	OP_EQUALVERIFY         Opcode = 0x88 // 136
	OP_SHA256              Opcode = 0xa8 // 168
	OP_HASH160             Opcode = 0xa9 // 169
	OP_CHECKSIG            Opcode = 0xac // 172
	OP_CHECKMULTISIG       Opcode = 0xae // 174
	OP_CHECKLOCKTIMEVERIFY Opcode = 0xb1 // 177
	OP_CHECKSEQUENCEVERIFY Opcode = 0xb2 // 178
)

// 0x00 is deliberately absent: the empty push is not an Opcode here.
var opcodeNames = map[Opcode]string{
	OP_1NEGATE:             "OP_1NEGATE",
	OP_1:                   "OP_1",
	OP_2:                   "OP_2",
	OP_3:                   "OP_3",
	OP_4:                   "OP_4",
	OP_5:                   "OP_5",
	OP_6:                   "OP_6",
	OP_7:                   "OP_7",
	OP_8:                   "OP_8",
	OP_9:                   "OP_9",
	OP_10:                  "OP_10",
	OP_11:                  "OP_11",
	OP_12:                  "OP_12",
	OP_13:                  "OP_13",
	OP_14:                  "OP_14",
	OP_15:                  "OP_15",
	OP_16:                  "OP_16",
	OP_NOP:                 "OP_NOP",
	OP_VERIFY:              "OP_VERIFY",
	OP_RETURN:              "OP_RETURN",
	OP_DROP:                "OP_DROP",
	OP_DUP:                 "OP_DUP",
	OP_EQUAL:               "OP_EQUAL",
	OP_EQUALVERIFY:         "OP_EQUALVERIFY",
	OP_SHA256:              "OP_SHA256",
	OP_HASH160:             "OP_HASH160",
	OP_CHECKSIG:            "OP_CHECKSIG",
	OP_CHECKMULTISIG:       "OP_CHECKMULTISIG",
	OP_CHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
	OP_CHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY",
}

// OpcodeFromByte looks b up in the opcode table, failing with ErrUnknownOpcode
// for values it does not name.
func OpcodeFromByte(b byte) (Opcode, error) {
	op := Opcode(b)
	if _, ok := opcodeNames[op]; !ok {
		return 0, errors.Wrapf(ErrUnknownOpcode, "0x%02x", b)
	}
	return op, nil
}

// Byte returns the script encoding of op.
func (op Opcode) Byte() byte {
	return byte(op)
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OP_UNKNOWN<0x%02x>", byte(op))
}
