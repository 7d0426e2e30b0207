// Package wallet holds a single taproot key and signs the PSBTs the inscriber
// produces: key-path deposits and the script-path reveal.
package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/bitcoin"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/tyler-smith/go-bip39"
)

// bip86Purpose is the BIP86 purpose level of a single-key taproot path.
const bip86Purpose = 86

var (
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrWrongNetwork    = errors.New("key belongs to another network")
)

// KeyWallet signs with one private key whose BIP86 taproot address is the
// wallet's only address.
type KeyWallet struct {
	key     *btcec.PrivateKey
	network model.Network
	params  *chaincfg.Params
	address *btcutil.AddressTaproot
	script  []byte
}

// NewFromWIF loads a key from wallet import format.
func NewFromWIF(wif string, network model.Network) (*KeyWallet, error) {
	params, err := bitcoin.ChainParams(network)
	if err != nil {
		return nil, err
	}
	decoded, err := btcutil.DecodeWIF(strings.TrimSpace(wif))
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	if !decoded.IsForNet(params) {
		return nil, fmt.Errorf("%w: wif is not for %s", ErrWrongNetwork, network)
	}
	return newKeyWallet(decoded.PrivKey, network, params)
}

// NewFromMnemonic derives the first receive key of the BIP86 account
// m/86'/coin'/0'/0/0 from a BIP39 mnemonic.
func NewFromMnemonic(mnemonic, passphrase string, network model.Network) (*KeyWallet, error) {
	params, err := bitcoin.ChainParams(network)
	if err != nil {
		return nil, err
	}
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}

	path := []uint32{
		hdkeychain.HardenedKeyStart + bip86Purpose,
		hdkeychain.HardenedKeyStart + params.HDCoinType,
		hdkeychain.HardenedKeyStart,
		0,
		0,
	}
	child := master
	for _, index := range path {
		child, err = child.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("derive %d: %w", index, err)
		}
	}
	key, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	return newKeyWallet(key, network, params)
}

func newKeyWallet(key *btcec.PrivateKey, network model.Network, params *chaincfg.Params) (*KeyWallet, error) {
	outputKey := txscript.ComputeTaprootKeyNoScript(key.PubKey())
	address, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), params)
	if err != nil {
		return nil, fmt.Errorf("taproot address: %w", err)
	}
	script, err := txscript.PayToAddrScript(address)
	if err != nil {
		return nil, fmt.Errorf("taproot script: %w", err)
	}
	return &KeyWallet{
		key:     key,
		network: network,
		params:  params,
		address: address,
		script:  script,
	}, nil
}

func (w *KeyWallet) SelectedAddress() string {
	return w.address.EncodeAddress()
}

func (w *KeyWallet) Network() model.Network {
	return w.network
}

// PublicKey returns the untweaked x-only key. It is the key the reveal leaf
// checks and the internal key of the commit address.
func (w *KeyWallet) PublicKey() string {
	return hex.EncodeToString(schnorr.SerializePubKey(w.key.PubKey()))
}

// SignPsbt signs every input and returns the finalized transaction as hex.
// Inputs carrying a tapscript leaf are signed on the script path, the rest on
// the key path of the wallet address.
func (w *KeyWallet) SignPsbt(ctx context.Context, psbtHex string, opts model.SignOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	packet, err := bitcoin.DecodePSBT(psbtHex)
	if err != nil {
		return "", err
	}
	tx, err := w.sign(packet, opts)
	if err != nil {
		return "", err
	}
	return bitcoin.EncodeTx(tx)
}

func (w *KeyWallet) sign(packet *psbt.Packet, opts model.SignOptions) (*wire.MsgTx, error) {
	tx := packet.UnsignedTx.Copy()
	prevOuts := make(map[wire.OutPoint]*wire.TxOut, len(tx.TxIn))
	for i, in := range packet.Inputs {
		if in.WitnessUtxo == nil {
			return nil, fmt.Errorf("input %d: missing witness utxo", i)
		}
		prevOuts[tx.TxIn[i].PreviousOutPoint] = in.WitnessUtxo
	}
	fetcher := txscript.NewMultiPrevOutFetcher(prevOuts)
	sigHashes := txscript.NewTxSigHashes(tx, fetcher)

	for i := range packet.Inputs {
		in := &packet.Inputs[i]
		var (
			witness wire.TxWitness
			err     error
		)
		switch {
		case len(in.TaprootLeafScript) > 0:
			witness, err = w.scriptPathWitness(tx, sigHashes, i, in)
		case opts.IsRevealTx:
			err = errors.New("reveal input has no tapscript leaf")
		default:
			witness, err = w.keyPathWitness(tx, sigHashes, i, in)
		}
		if err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		tx.TxIn[i].Witness = witness
	}
	return tx, nil
}

func (w *KeyWallet) keyPathWitness(tx *wire.MsgTx, sigHashes *txscript.TxSigHashes, idx int, in *psbt.PInput) (wire.TxWitness, error) {
	if string(in.WitnessUtxo.PkScript) != string(w.script) {
		return nil, fmt.Errorf("output script %x is not %s", in.WitnessUtxo.PkScript, w.SelectedAddress())
	}
	return txscript.TaprootWitnessSignature(
		tx, sigHashes, idx, in.WitnessUtxo.Value, in.WitnessUtxo.PkScript,
		txscript.SigHashDefault, w.key,
	)
}

func (w *KeyWallet) scriptPathWitness(tx *wire.MsgTx, sigHashes *txscript.TxSigHashes, idx int, in *psbt.PInput) (wire.TxWitness, error) {
	leaf := in.TaprootLeafScript[0]
	tapLeaf := txscript.NewTapLeaf(leaf.LeafVersion, leaf.Script)
	sig, err := txscript.RawTxInTapscriptSignature(
		tx, sigHashes, idx, in.WitnessUtxo.Value, in.WitnessUtxo.PkScript,
		tapLeaf, txscript.SigHashDefault, w.key,
	)
	if err != nil {
		return nil, err
	}
	return wire.TxWitness{sig, leaf.Script, leaf.ControlBlock}, nil
}
