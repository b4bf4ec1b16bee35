package btcbytes_sdk

const (
	// pushdataOffset is the size of the opcode + push length header that
	// ReadPushdata skips.
	pushdataOffset = 2

	hash160Size = 20

	p2pkhScriptLen  = 25 // OP_DUP OP_HASH160 <20> OP_EQUALVERIFY OP_CHECKSIG
	p2wpkhScriptLen = 22 // OP_0 <20>
)

var (
	p2pkhPrefix  = []byte{0x76, 0xa9, 0x14}
	p2wpkhPrefix = []byte{0x00, 0x14}
)

const (
	NullTxId string = "0000000000000000000000000000000000000000000000000000000000000000"
)
