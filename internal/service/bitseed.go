// Package service implements the bitseed token operations on top of the
// commit/reveal inscription workflow.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/bitcoin"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/funding"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	opGenerator = "generator"
	opDeploy    = "deploy"
	opMint      = "mint"
	opMerge     = "merge"
	opSplit     = "split"

	mediaTypeWasm = "application/wasm"
	mediaTypeJSON = "application/json"
)

// content produces the inscription body and its media type from resolved options.
type content func(ctx context.Context, opts Options) ([]byte, string, error)

// Service inscribes generators, tick deploys and mints.
type Service struct {
	primary Wallet
	funder  Wallet
	source  DataSource
	loader  GeneratorLoader
	builder Builder
	funding Funding
	polling funding.Polling
	metrics Metrics
	logger  *zap.Logger
}

// NewService builds the token operation layer. The primary wallet receives
// inscriptions and signs reveals, the funding wallet pays the commit deposits.
func NewService(
	primary Wallet,
	funder Wallet,
	source DataSource,
	loader GeneratorLoader,
	builder Builder,
	orchestrator Funding,
	polling funding.Polling,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	switch {
	case primary == nil:
		return nil, errors.New("primary wallet is required")
	case funder == nil:
		return nil, errors.New("funding wallet is required")
	case source == nil:
		return nil, errors.New("data source is required")
	case loader == nil:
		return nil, errors.New("generator loader is required")
	case builder == nil:
		return nil, errors.New("reveal builder is required")
	case orchestrator == nil:
		return nil, errors.New("funding orchestrator is required")
	case metrics == nil:
		return nil, errors.New("operation metrics is required")
	}
	if primary.Network() != funder.Network() {
		return nil, fmt.Errorf("wallet networks differ: primary %s, funding %s", primary.Network(), funder.Network())
	}
	if polling.MaxAttempts <= 0 {
		return nil, fmt.Errorf("polling attempts must be positive, got %d", polling.MaxAttempts)
	}
	return &Service{
		primary: primary,
		funder:  funder,
		source:  source,
		loader:  loader,
		builder: builder,
		funding: orchestrator,
		polling: polling,
		metrics: metrics,
		logger:  logger.Named("bitseed"),
	}, nil
}

// Generator inscribes a WASM generator program.
func (s *Service) Generator(ctx context.Context, wasm []byte, opts Options) (model.InscriptionID, error) {
	return s.inscribe(ctx, opGenerator, opts, func(context.Context, Options) ([]byte, string, error) {
		if len(wasm) == 0 {
			return nil, "", &model.TxBuildError{Reason: "empty generator program"}
		}
		return wasm, mediaTypeWasm, nil
	})
}

// Deploy inscribes a tick definition pointing at generator. A zero maxSupply
// deploys a tick without an upper bound.
func (s *Service) Deploy(ctx context.Context, tick string, maxSupply uint64, generator model.InscriptionID, opts Options) (model.InscriptionID, error) {
	return s.inscribe(ctx, opDeploy, opts, func(_ context.Context, opts Options) ([]byte, string, error) {
		if strings.TrimSpace(tick) == "" {
			return nil, "", &model.TxBuildError{Reason: "empty tick"}
		}
		def := model.Tick{
			Tick:         tick,
			Generator:    generator.URI(),
			Repeat:       opts.Repeat,
			HasUserInput: opts.HasUserInput,
			DeployArgs:   opts.DeployArgs,
		}
		if maxSupply > 0 {
			def.Max = &maxSupply
		}
		body, err := json.Marshal(def)
		if err != nil {
			return nil, "", &model.TxBuildError{Reason: "encode tick", Err: err}
		}
		return body, mediaTypeJSON, nil
	})
}

// Mint runs the tick's generator for opts.Satpoint and userInput and inscribes
// the metadata it returns.
func (s *Service) Mint(ctx context.Context, tickID model.InscriptionID, userInput string, opts Options) (model.InscriptionID, error) {
	return s.inscribe(ctx, opMint, opts, func(ctx context.Context, opts Options) ([]byte, string, error) {
		if opts.Satpoint == "" {
			return nil, "", model.ErrMissingSatpoint
		}
		tick, err := s.GetTick(ctx, tickID)
		if err != nil {
			return nil, "", err
		}
		meta, err := s.generate(ctx, tick, opts.Satpoint, userInput)
		if err != nil {
			return nil, "", err
		}
		return meta, mediaTypeJSON, nil
	})
}

// GetTick reads a deploy inscription back into its tick definition.
func (s *Service) GetTick(ctx context.Context, id model.InscriptionID) (model.Tick, error) {
	return LookupTick(ctx, s.source, id)
}

// LookupTick reads the deploy inscription id from source and decodes it.
func LookupTick(ctx context.Context, source DataSource, id model.InscriptionID) (model.Tick, error) {
	record, err := source.GetInscription(ctx, id.String(), false)
	if err != nil {
		return model.Tick{}, fmt.Errorf("get tick %s: %w", id, err)
	}
	tick, err := model.DecodeTick(record.MediaContent)
	if err != nil {
		return model.Tick{}, fmt.Errorf("tick %s: %w", id, err)
	}
	return tick, nil
}

// Merge is reserved for combining two mints of a tick.
func (s *Service) Merge(_ context.Context, _, _ model.InscriptionID) (model.InscriptionID, error) {
	return model.InscriptionID{}, &model.OperationError{Op: opMerge, Step: "merge", Err: model.ErrNotImplemented}
}

// Split is reserved for dividing a mint in two.
func (s *Service) Split(_ context.Context, _ model.InscriptionID) (model.InscriptionID, model.InscriptionID, error) {
	return model.InscriptionID{}, model.InscriptionID{}, &model.OperationError{Op: opSplit, Step: "split", Err: model.ErrNotImplemented}
}

func (s *Service) generate(ctx context.Context, tick model.Tick, satpoint, userInput string) ([]byte, error) {
	handle, err := s.loader.Load(ctx, tick.Generator)
	if err != nil {
		return nil, asGeneratorError(tick.Generator, err)
	}
	out, err := handle.InscribeGenerate(ctx, tick.DeployArgs, satpoint, userInput)
	if err != nil {
		return nil, asGeneratorError(tick.Generator, err)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, out); err != nil {
		return nil, asGeneratorError(tick.Generator, fmt.Errorf("generator output: %w", err))
	}
	return buf.Bytes(), nil
}

func asGeneratorError(uri string, err error) error {
	var genErr *model.GeneratorExecutionError
	if errors.As(err, &genErr) {
		return err
	}
	return &model.GeneratorExecutionError{URI: uri, Err: err}
}

// inscribe runs the shared pipeline: plan, deposit, await funding, sign the
// reveal with the primary wallet and relay it.
func (s *Service) inscribe(ctx context.Context, op string, opts Options, body content) (id model.InscriptionID, err error) {
	started := time.Now()
	logger := s.logger.With(zap.String("operation", op), zap.String("op_id", uuid.NewString()))
	defer func() {
		s.metrics.ObserveOperation(op, err, started)
	}()

	address := s.primary.SelectedAddress()
	if address == "" {
		return id, &model.OperationError{Op: op, Step: "wallet", Err: &model.WalletNotSelectedError{Role: "primary"}}
	}
	if s.funder.SelectedAddress() == "" {
		return id, &model.OperationError{Op: op, Step: "wallet", Err: &model.WalletNotSelectedError{Role: "funding"}}
	}
	resolved := opts.Resolve(address)

	payload, mediaType, err := body(ctx, resolved)
	if err != nil {
		logger.Warn("prepare content failed", zap.Error(err))
		return id, &model.OperationError{Op: op, Step: "content", Err: err}
	}

	plan, err := s.builder.Plan(model.RevealRequest{
		Content:       payload,
		MediaType:     mediaType,
		Meta:          resolved.Meta,
		FeeRate:       resolved.FeeRate,
		Postage:       resolved.Postage,
		Destination:   resolved.Destination,
		ChangeAddress: address,
		PublicKey:     s.primary.PublicKey(),
	})
	if err != nil {
		logger.Warn("plan failed", zap.Error(err))
		return id, &model.OperationError{Op: op, Step: "plan", Err: err}
	}
	logger = logger.With(
		zap.String("commit_address", plan.CommitAddress),
		zap.Uint64("required_fee_sats", plan.RequiredFeeSats),
	)
	logger.Info("reveal planned",
		zap.String("media_type", mediaType),
		zap.Int("content_size", len(payload)),
	)

	txid, step, err := s.reveal(ctx, plan, resolved, logger)
	if err != nil {
		state := plan.State
		plan.Abort()
		logger.Error("operation failed", zap.String("step", step), zap.String("state", string(state)), zap.Error(err))
		return id, &model.OperationError{
			Op:            op,
			Step:          step,
			State:         state,
			CommitAddress: plan.CommitAddress,
			Err:           err,
		}
	}

	id = model.InscriptionID{TxID: txid, Index: 0}
	logger.Info("inscribed", zap.String("inscription_id", id.String()))
	return id, nil
}

func (s *Service) reveal(ctx context.Context, plan *model.RevealPlan, opts Options, logger *zap.Logger) (string, string, error) {
	deposited, err := s.funding.Deposit(ctx, plan, opts.CommitFeeRate)
	if err != nil {
		return "", "deposit", err
	}
	logger.Debug("commit address funded", zap.Bool("new_deposit", deposited))

	packet, err := s.funding.AwaitReady(ctx, plan, s.polling)
	if err != nil {
		return "", "await_funding", err
	}

	packetHex, err := bitcoin.EncodePSBT(packet)
	if err != nil {
		return "", "sign", err
	}
	signed, err := s.primary.SignPsbt(ctx, packetHex, model.SignOptions{IsRevealTx: true})
	if err != nil {
		return "", "sign", err
	}
	if err := plan.Advance(model.PlanSigned); err != nil {
		return "", "sign", err
	}

	txid, err := s.source.Relay(ctx, signed)
	if err != nil {
		return "", "relay", err
	}
	if err := plan.Advance(model.PlanBroadcast); err != nil {
		return "", "relay", err
	}
	return txid, "", nil
}
