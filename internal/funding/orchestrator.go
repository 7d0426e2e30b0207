// Package funding pays commit addresses from the funding wallet and waits
// until the deposit can be spent by the reveal transaction.
package funding

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/bitcoin"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/clock"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/goodnatureofminers/bitseed-inscriber/pkg/safe"
	"go.uber.org/zap"
)

// Polling bounds how long AwaitReady waits for a deposit.
type Polling struct {
	MaxAttempts int
	Backoff     clock.Backoff
}

// DefaultPolling waits up to ten attempts, starting at 2s and growing by half
// each attempt up to 30s.
func DefaultPolling() Polling {
	return Polling{
		MaxAttempts: 10,
		Backoff:     clock.Backoff{Initial: 2 * time.Second, Max: 30 * time.Second, Multiplier: 1.5},
	}
}

// Orchestrator moves a reveal plan from PLANNED to FINALIZED.
type Orchestrator struct {
	source  DataSource
	wallet  Wallet
	builder Builder
	decoder *bitcoin.ScriptDecoder
	metrics Metrics
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
}

// NewOrchestrator wires the funding wallet to a data source and builder.
func NewOrchestrator(
	source DataSource,
	wallet Wallet,
	builder Builder,
	decoder *bitcoin.ScriptDecoder,
	metrics Metrics,
	logger *zap.Logger,
) (*Orchestrator, error) {
	if metrics == nil {
		return nil, errors.New("funding metrics is required")
	}
	return &Orchestrator{
		source:  source,
		wallet:  wallet,
		builder: builder,
		decoder: decoder,
		metrics: metrics,
		logger:  logger.Named("funding"),
		sleep:   clock.SleepWithContext,
	}, nil
}

// Deposit funds the commit address of plan unless an earlier attempt already
// left a suitable output there. It reports whether a new deposit was relayed.
func (o *Orchestrator) Deposit(ctx context.Context, plan *model.RevealPlan, commitFeeRate uint64) (bool, error) {
	logger := o.logger.With(zap.String("commit_address", plan.CommitAddress))

	existing, err := o.source.GetUnspents(ctx, plan.CommitAddress)
	if err != nil {
		return false, fmt.Errorf("check commit address: %w", err)
	}
	if utxo, err := o.builder.SelectFunding(plan, existing.Spendable); err == nil {
		logger.Info("reusing existing deposit",
			zap.String("txid", utxo.TxID),
			zap.Uint32("vout", utxo.Vout),
			zap.Uint64("sats", utxo.Sats))
		if err := plan.Advance(model.PlanAwaitingFunding); err != nil {
			return false, err
		}
		return false, plan.Advance(model.PlanFunded)
	} else if !errors.Is(err, model.ErrNoSuitableFunding) {
		return false, err
	}

	txid, err := o.Fund(ctx, plan, commitFeeRate)
	if err != nil {
		plan.Abort()
		return false, err
	}
	logger.Info("deposit relayed", zap.String("txid", txid), zap.Uint64("sats", plan.RequiredFeeSats))
	return true, plan.Advance(model.PlanAwaitingFunding)
}

// Fund pays exactly RequiredFeeSats to the commit address from the funding
// wallet's safe outputs. commitFeeRate falls back to the plan's fee rate.
// Nothing is relayed when the wallet cannot cover the deposit and its own fee.
func (o *Orchestrator) Fund(ctx context.Context, plan *model.RevealPlan, commitFeeRate uint64) (txid string, err error) {
	started := time.Now()
	defer func() { o.metrics.ObserveDeposit(err, started) }()

	address := o.wallet.SelectedAddress()
	if address == "" {
		return "", &model.WalletNotSelectedError{Role: "funding"}
	}
	if commitFeeRate == 0 {
		commitFeeRate = plan.FeeRate
	}

	unspents, err := o.source.GetUnspents(ctx, address)
	if err != nil {
		return "", fmt.Errorf("funding wallet unspents: %w", err)
	}
	changeScript, err := o.decoder.PayToAddress(address)
	if err != nil {
		return "", fmt.Errorf("funding address: %w", err)
	}

	packet, err := o.depositPacket(plan, unspents.Spendable, changeScript, commitFeeRate)
	if err != nil {
		return "", err
	}
	packetHex, err := bitcoin.EncodePSBT(packet)
	if err != nil {
		return "", err
	}
	signed, err := o.wallet.SignPsbt(ctx, packetHex, model.SignOptions{IsRevealTx: false})
	if err != nil {
		return "", fmt.Errorf("sign deposit: %w", err)
	}
	return o.source.Relay(ctx, signed)
}

type fundingInput struct {
	utxo   model.UTXO
	script []byte
}

// depositPacket selects inputs largest first until they cover the deposit and
// the fee of the transaction spending them.
func (o *Orchestrator) depositPacket(plan *model.RevealPlan, utxos []model.UTXO, changeScript []byte, feeRate uint64) (*psbt.Packet, error) {
	candidates := make([]model.UTXO, 0, len(utxos))
	for _, u := range utxos {
		if u.SafeToSpend {
			candidates = append(candidates, u)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Sats > candidates[j].Sats })

	deposit, err := safe.Int64(plan.RequiredFeeSats)
	if err != nil {
		return nil, &model.TxBuildError{Reason: "deposit value", Err: err}
	}

	var (
		selected []fundingInput
		total    uint64
		needed   = plan.RequiredFeeSats
	)
	for _, u := range candidates {
		script := changeScript
		if u.ScriptPubKey.Hex != "" {
			if script, err = hex.DecodeString(u.ScriptPubKey.Hex); err != nil {
				return nil, fmt.Errorf("funding output %s:%d script: %w", u.TxID, u.Vout, err)
			}
		}
		selected = append(selected, fundingInput{utxo: u, script: script})
		if total, err = safe.Add(total, u.Sats); err != nil {
			return nil, err
		}

		tx, err := depositTx(selected, plan.CommitPkScript, deposit)
		if err != nil {
			return nil, err
		}
		prevScripts := make([][]byte, len(selected))
		for i, in := range selected {
			prevScripts[i] = in.script
		}

		withChange := tx.Copy()
		withChange.AddTxOut(wire.NewTxOut(0, changeScript))
		changeFee, err := estimateFee(withChange, prevScripts, feeRate)
		if err != nil {
			return nil, err
		}
		if spent, err := safe.Add(plan.RequiredFeeSats, changeFee); err == nil && total >= spent && total-spent >= bitcoin.DustLimit {
			change, err := safe.Int64(total - spent)
			if err != nil {
				return nil, err
			}
			withChange.TxOut[1].Value = change
			return depositPSBT(withChange, selected)
		}

		fee, err := estimateFee(tx, prevScripts, feeRate)
		if err != nil {
			return nil, err
		}
		if needed, err = safe.Add(plan.RequiredFeeSats, fee); err != nil {
			return nil, err
		}
		if total >= needed {
			return depositPSBT(tx, selected)
		}
	}
	return nil, &model.InsufficientFundsError{Required: needed, Available: total}
}

func depositTx(inputs []fundingInput, commitScript []byte, deposit int64) (*wire.MsgTx, error) {
	tx := wire.NewMsgTx(wire.TxVersion)
	for _, in := range inputs {
		hash, err := chainhash.NewHashFromStr(in.utxo.TxID)
		if err != nil {
			return nil, fmt.Errorf("funding output txid %q: %w", in.utxo.TxID, err)
		}
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(hash, in.utxo.Vout), nil, nil))
	}
	tx.AddTxOut(wire.NewTxOut(deposit, commitScript))
	return tx, nil
}

func estimateFee(tx *wire.MsgTx, prevScripts [][]byte, feeRate uint64) (uint64, error) {
	vsize, err := bitcoin.EstimateVirtualSize(tx, prevScripts)
	if err != nil {
		return 0, &model.TxBuildError{Reason: "estimate deposit size", Err: err}
	}
	return bitcoin.Fee(vsize, feeRate)
}

func depositPSBT(tx *wire.MsgTx, inputs []fundingInput) (*psbt.Packet, error) {
	packet, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, &model.TxBuildError{Reason: "deposit psbt", Err: err}
	}
	for i, in := range inputs {
		value, err := safe.Int64(in.utxo.Sats)
		if err != nil {
			return nil, err
		}
		packet.Inputs[i].WitnessUtxo = wire.NewTxOut(value, in.script)
	}
	return packet, nil
}

// IsReady probes the commit address for a safe output worth at least
// RequiredFeeSats.
func (o *Orchestrator) IsReady(ctx context.Context, plan *model.RevealPlan) (bool, []model.UTXO, error) {
	utxos, err := o.source.GetSpendables(ctx, plan.CommitAddress, plan.RequiredFeeSats)
	if err != nil {
		return false, nil, err
	}
	ready := make([]model.UTXO, 0, len(utxos))
	for _, u := range utxos {
		if u.SafeToSpend && u.Sats >= plan.RequiredFeeSats {
			ready = append(ready, u)
		}
	}
	return len(ready) > 0, ready, nil
}

// AwaitReady polls until the reveal can be finalized against the deposit.
// A missing deposit and network failures are retried; any other error aborts
// the plan. Cancellation returns the context error and leaves the deposit in
// place for a later retry.
func (o *Orchestrator) AwaitReady(ctx context.Context, plan *model.RevealPlan, polling Polling) (packet *psbt.Packet, err error) {
	started := time.Now()
	attempts := 0
	defer func() { o.metrics.ObserveAwait(attempts, err, started) }()

	maxAttempts := max(polling.MaxAttempts, 1)
	logger := o.logger.With(zap.String("commit_address", plan.CommitAddress))
	logger.Debug("awaiting deposit",
		zap.Int("max_attempts", maxAttempts),
		zap.Duration("max_wait", polling.Backoff.Total(maxAttempts)))

	for attempts < maxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		attempts++

		packet, err := o.attempt(ctx, plan)
		if err == nil {
			logger.Info("reveal finalized", zap.Int("attempts", attempts))
			return packet, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !retryable(err) {
			plan.Abort()
			return nil, err
		}

		if attempts == maxAttempts {
			break
		}
		wait := polling.Backoff.Duration(attempts - 1)
		logger.Debug("deposit not spendable yet",
			zap.Int("attempt", attempts),
			zap.Duration("sleep", wait),
			zap.Error(err))
		if err := o.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
	return nil, &model.FundingTimeoutError{CommitAddress: plan.CommitAddress, Attempts: attempts}
}

// attempt finalizes from the commit address unspents and falls back to the
// explicit readiness probe, which may see the deposit before the unspent
// index does.
func (o *Orchestrator) attempt(ctx context.Context, plan *model.RevealPlan) (*psbt.Packet, error) {
	unspents, probeErr := o.source.GetUnspents(ctx, plan.CommitAddress)
	if probeErr == nil {
		packet, err := o.builder.Finalize(plan, unspents.Spendable)
		if err == nil || !errors.Is(err, model.ErrNoSuitableFunding) {
			return packet, err
		}
		probeErr = err
	} else if !retryable(probeErr) {
		return nil, probeErr
	}

	ready, utxos, err := o.IsReady(ctx, plan)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, probeErr
	}
	return o.builder.Finalize(plan, utxos)
}

func retryable(err error) bool {
	var netErr *model.NetworkError
	return errors.Is(err, model.ErrNoSuitableFunding) ||
		errors.Is(err, model.ErrNotFound) ||
		errors.As(err, &netErr)
}
