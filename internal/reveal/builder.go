// Package reveal builds reveal transactions: the inscription tapscript, the
// commit address it is funded at and the finalized PSBT spending it.
package reveal

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/bitcoin"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/goodnatureofminers/bitseed-inscriber/pkg/safe"
)

const schnorrSignatureSize = 64

// Builder plans and finalizes reveal transactions for one network.
type Builder struct {
	decoder *bitcoin.ScriptDecoder
}

// NewBuilder creates a Builder encoding addresses with decoder.
func NewBuilder(decoder *bitcoin.ScriptDecoder) *Builder {
	return &Builder{decoder: decoder}
}

// ParseInternalKey accepts a 32 byte x-only or 33 byte compressed key in hex.
func ParseInternalKey(pubKeyHex string) (*btcec.PublicKey, error) {
	raw, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	switch len(raw) {
	case schnorr.PubKeyBytesLen:
		return schnorr.ParsePubKey(raw)
	case btcec.PubKeyBytesLenCompressed:
		return btcec.ParsePubKey(raw)
	default:
		return nil, fmt.Errorf("public key has %d bytes", len(raw))
	}
}

func buildErr(reason string, err error) error {
	return &model.TxBuildError{Reason: reason, Err: err}
}

// Plan derives the commit address of req and the sats it must hold. The
// address depends on the key, content, media type and meta only, so a retry
// with the same request finds the deposit of an earlier attempt.
func (b *Builder) Plan(req model.RevealRequest) (*model.RevealPlan, error) {
	if req.FeeRate == 0 {
		return nil, buildErr("fee rate must be positive", nil)
	}
	if req.Postage < bitcoin.DustLimit {
		return nil, buildErr(fmt.Sprintf("postage %d below dust limit %d", req.Postage, bitcoin.DustLimit), nil)
	}
	key, err := ParseInternalKey(req.PublicKey)
	if err != nil {
		return nil, buildErr("internal key", err)
	}
	xonly := schnorr.SerializePubKey(key)

	leafScript, err := InscriptionScript(xonly, req.Content, req.MediaType, req.Meta)
	if err != nil {
		return nil, buildErr("inscription script", err)
	}
	recoveryScript, err := RecoveryScript(xonly)
	if err != nil {
		return nil, buildErr("recovery script", err)
	}

	leaf := txscript.NewBaseTapLeaf(leafScript)
	tree := txscript.AssembleTaprootScriptTree(leaf, txscript.NewBaseTapLeaf(recoveryScript))
	proofIdx, ok := tree.LeafProofIndex[leaf.TapHash()]
	if !ok {
		return nil, buildErr("inscription leaf missing from tree", nil)
	}
	cb := tree.LeafMerkleProofs[proofIdx].ToControlBlock(key)
	controlBlock, err := cb.ToBytes()
	if err != nil {
		return nil, buildErr("control block", err)
	}
	root := tree.RootNode.TapHash()

	outputKey := txscript.ComputeTaprootOutputKey(key, root[:])
	commitAddr, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), b.decoder.Params())
	if err != nil {
		return nil, buildErr("commit address", err)
	}
	commitScript, err := txscript.PayToAddrScript(commitAddr)
	if err != nil {
		return nil, buildErr("commit script", err)
	}

	destScript, err := b.decoder.PayToAddress(req.Destination)
	if err != nil {
		return nil, buildErr("destination", err)
	}
	if req.ChangeAddress != "" {
		if _, err := b.decoder.PayToAddress(req.ChangeAddress); err != nil {
			return nil, buildErr("change address", err)
		}
	}

	plan := &model.RevealPlan{
		CommitAddress:  commitAddr.EncodeAddress(),
		CommitPkScript: commitScript,
		PostageSats:    req.Postage,
		FeeRate:        req.FeeRate,
		Content:        req.Content,
		MediaType:      req.MediaType,
		Meta:           req.Meta,
		Destination:    req.Destination,
		ChangeAddress:  req.ChangeAddress,
		InternalKey:    xonly,
		LeafScript:     leafScript,
		ControlBlock:   controlBlock,
		MerkleRoot:     root[:],
		State:          model.PlanPlanned,
	}

	template := wire.NewMsgTx(wire.TxVersion)
	template.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, 0), nil, revealWitness(plan)))
	template.AddTxOut(wire.NewTxOut(0, destScript))
	fee, err := feeOf(template, req.FeeRate)
	if err != nil {
		return nil, err
	}
	plan.RequiredFeeSats, err = safe.Add(fee, req.Postage)
	if err != nil {
		return nil, buildErr("required fee", err)
	}
	return plan, nil
}

// revealWitness is the spend witness with a placeholder signature of the
// final size.
func revealWitness(plan *model.RevealPlan) wire.TxWitness {
	return wire.TxWitness{make([]byte, schnorrSignatureSize), plan.LeafScript, plan.ControlBlock}
}

func feeOf(tx *wire.MsgTx, feeRate uint64) (uint64, error) {
	if w := bitcoin.Weight(tx); w > bitcoin.MaxStandardTxWeight {
		return 0, buildErr(fmt.Sprintf("reveal weight %d exceeds standard limit %d", w, bitcoin.MaxStandardTxWeight), nil)
	}
	fee, err := bitcoin.Fee(bitcoin.VirtualSize(tx), feeRate)
	if err != nil {
		return 0, buildErr("fee", err)
	}
	return fee, nil
}

func paysTo(plan *model.RevealPlan, utxo model.UTXO) bool {
	if utxo.ScriptPubKey.Address != "" {
		return utxo.ScriptPubKey.Address == plan.CommitAddress
	}
	script, err := hex.DecodeString(utxo.ScriptPubKey.Hex)
	return err == nil && bytes.Equal(script, plan.CommitPkScript)
}

// SelectFunding returns the smallest safe output at the commit address worth
// at least RequiredFeeSats. Without one the error wraps ErrNoSuitableFunding.
func (b *Builder) SelectFunding(plan *model.RevealPlan, utxos []model.UTXO) (model.UTXO, error) {
	var (
		candidates []model.UTXO
		available  uint64
	)
	for _, u := range utxos {
		if !u.SafeToSpend || !paysTo(plan, u) {
			continue
		}
		available = max(available, u.Sats)
		if u.Sats >= plan.RequiredFeeSats {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return model.UTXO{}, fmt.Errorf("%w: %w", model.ErrNoSuitableFunding,
			&model.InsufficientFundsError{Required: plan.RequiredFeeSats, Available: available})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Sats != candidates[j].Sats {
			return candidates[i].Sats < candidates[j].Sats
		}
		if candidates[i].TxID != candidates[j].TxID {
			return candidates[i].TxID < candidates[j].TxID
		}
		return candidates[i].Vout < candidates[j].Vout
	})
	return candidates[0], nil
}

// Finalize spends the commit output found in utxos into the unsigned reveal
// PSBT. The plan moves to FUNDED when a deposit is found and to FINALIZED
// once the PSBT is built; structural failures abort it.
func (b *Builder) Finalize(plan *model.RevealPlan, utxos []model.UTXO) (*psbt.Packet, error) {
	if plan.State != model.PlanAwaitingFunding && plan.State != model.PlanFunded {
		return nil, fmt.Errorf("%w: finalize in state %s", model.ErrInvalidTransition, plan.State)
	}
	funding, err := b.SelectFunding(plan, utxos)
	if err != nil {
		return nil, err
	}
	if plan.State == model.PlanAwaitingFunding {
		if err := plan.Advance(model.PlanFunded); err != nil {
			return nil, err
		}
	}

	packet, err := b.revealPacket(plan, funding)
	if err != nil {
		if errors.As(err, new(*model.TxBuildError)) {
			plan.Abort()
		}
		return nil, err
	}
	if err := plan.Advance(model.PlanFinalized); err != nil {
		return nil, err
	}
	return packet, nil
}

func (b *Builder) revealPacket(plan *model.RevealPlan, funding model.UTXO) (*psbt.Packet, error) {
	txid, err := chainhash.NewHashFromStr(funding.TxID)
	if err != nil {
		return nil, buildErr("funding txid", err)
	}
	fundingValue, err := safe.Int64(funding.Sats)
	if err != nil {
		return nil, buildErr("funding value", err)
	}
	postage, err := safe.Int64(plan.PostageSats)
	if err != nil {
		return nil, buildErr("postage", err)
	}
	destScript, err := b.decoder.PayToAddress(plan.Destination)
	if err != nil {
		return nil, buildErr("destination", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(txid, funding.Vout), nil, nil))
	tx.AddTxOut(wire.NewTxOut(postage, destScript))

	if plan.ChangeAddress != "" {
		if err := b.addChange(plan, tx, funding.Sats); err != nil {
			return nil, err
		}
	}

	signed := tx.Copy()
	signed.TxIn[0].Witness = revealWitness(plan)
	if w := bitcoin.Weight(signed); w > bitcoin.MaxStandardTxWeight {
		return nil, buildErr(fmt.Sprintf("reveal weight %d exceeds standard limit %d", w, bitcoin.MaxStandardTxWeight), nil)
	}

	packet, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, buildErr("psbt", err)
	}
	in := &packet.Inputs[0]
	in.WitnessUtxo = wire.NewTxOut(fundingValue, plan.CommitPkScript)
	in.TaprootInternalKey = plan.InternalKey
	in.TaprootMerkleRoot = plan.MerkleRoot
	in.TaprootLeafScript = []*psbt.TaprootTapLeafScript{{
		ControlBlock: plan.ControlBlock,
		Script:       plan.LeafScript,
		LeafVersion:  txscript.BaseLeafVersion,
	}}
	return packet, nil
}

// addChange appends a change output when the funding surplus over the fee of
// the extended transaction reaches dust.
func (b *Builder) addChange(plan *model.RevealPlan, tx *wire.MsgTx, fundingSats uint64) error {
	changeScript, err := b.decoder.PayToAddress(plan.ChangeAddress)
	if err != nil {
		return buildErr("change address", err)
	}
	extended := tx.Copy()
	extended.AddTxOut(wire.NewTxOut(0, changeScript))
	extended.TxIn[0].Witness = revealWitness(plan)
	fee, err := feeOf(extended, plan.FeeRate)
	if err != nil {
		return err
	}
	spent, err := safe.Add(fee, plan.PostageSats)
	if err != nil || fundingSats < spent {
		return nil
	}
	surplus := fundingSats - spent
	if surplus < bitcoin.DustLimit {
		return nil
	}
	value, err := safe.Int64(surplus)
	if err != nil {
		return buildErr("change value", err)
	}
	tx.AddTxOut(wire.NewTxOut(value, changeScript))
	return nil
}
