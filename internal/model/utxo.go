package model

// UnknownConfirmations is reported when the backend exposes no block height for an output.
// Treat it as unconfirmed.
const UnknownConfirmations int64 = -1

// ScriptPubKey is a decoded locking script.
type ScriptPubKey struct {
	Hex     string
	Address string
	Type    string
}

// UTXO is an unspent output. SafeToSpend is false when the output carries an
// inscription or another protocol asset; such outputs must never fund fees.
type UTXO struct {
	TxID         string
	Vout         uint32
	Sats         uint64
	ScriptPubKey ScriptPubKey
	SafeToSpend  bool
	Confirmation int64
}

// Unspents partitions the outputs of an address.
type Unspents struct {
	Total       int
	Spendable   []UTXO
	Unspendable []UTXO
}

// SignOptions are passed to a wallet when it signs a PSBT.
type SignOptions struct {
	IsRevealTx bool
}
