package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/bitseed-inscriber/pkg/safe"
)

const (
	// MaxStandardTxWeight is the relay policy limit on transaction weight.
	MaxStandardTxWeight = 400_000
	// DustLimit is the smallest output value created by the inscriber.
	DustLimit uint64 = 546

	schnorrSignatureSize = 64
	ecdsaSignatureSize   = 72
	compressedPubKeySize = 33
)

// Weight returns the BIP141 weight of tx.
func Weight(tx *wire.MsgTx) int64 {
	return blockchain.GetTransactionWeight(btcutil.NewTx(tx))
}

// VirtualSize returns the virtual size of tx rounded up to whole vbytes.
func VirtualSize(tx *wire.MsgTx) int64 {
	return (Weight(tx) + blockchain.WitnessScaleFactor - 1) / blockchain.WitnessScaleFactor
}

// Fee is vsize times feeRate in sats.
func Fee(vsize int64, feeRate uint64) (uint64, error) {
	size, err := safe.Uint64(vsize)
	if err != nil {
		return 0, err
	}
	return safe.Mul(size, feeRate)
}

// EstimateVirtualSize returns the vsize tx will have once every input is
// signed. prevScripts holds the locking script spent by each input.
func EstimateVirtualSize(tx *wire.MsgTx, prevScripts [][]byte) (int64, error) {
	if len(prevScripts) != len(tx.TxIn) {
		return 0, fmt.Errorf("have %d previous scripts for %d inputs", len(prevScripts), len(tx.TxIn))
	}
	signed := tx.Copy()
	for i, script := range prevScripts {
		in := signed.TxIn[i]
		switch class := txscript.GetScriptClass(script); class {
		case txscript.WitnessV1TaprootTy:
			in.Witness = wire.TxWitness{make([]byte, schnorrSignatureSize)}
		case txscript.WitnessV0PubKeyHashTy:
			in.Witness = wire.TxWitness{make([]byte, ecdsaSignatureSize), make([]byte, compressedPubKeySize)}
		case txscript.ScriptHashTy:
			// nested P2WPKH: push of the 22-byte witness program
			in.SignatureScript = make([]byte, 23)
			in.Witness = wire.TxWitness{make([]byte, ecdsaSignatureSize), make([]byte, compressedPubKeySize)}
		case txscript.PubKeyHashTy:
			in.SignatureScript = make([]byte, 1+ecdsaSignatureSize+1+compressedPubKeySize)
		default:
			return 0, fmt.Errorf("input %d: unsupported script class %s", i, class)
		}
	}
	return VirtualSize(signed), nil
}
