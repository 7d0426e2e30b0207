package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/funding"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/generator"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Wallet interface {
		SelectedAddress() string
		Network() model.Network
		PublicKey() string
		SignPsbt(ctx context.Context, psbtHex string, opts model.SignOptions) (string, error)
	}
	DataSource interface {
		GetInscription(ctx context.Context, id string, decodeMetadata bool) (model.InscriptionRecord, error)
		Relay(ctx context.Context, signedTxHex string) (string, error)
	}
	GeneratorLoader interface {
		Load(ctx context.Context, uri string) (generator.Handle, error)
	}
	Builder interface {
		Plan(req model.RevealRequest) (*model.RevealPlan, error)
	}
	Funding interface {
		Deposit(ctx context.Context, plan *model.RevealPlan, commitFeeRate uint64) (bool, error)
		AwaitReady(ctx context.Context, plan *model.RevealPlan, polling funding.Polling) (*psbt.Packet, error)
	}
	Metrics interface {
		ObserveOperation(operation string, err error, started time.Time)
	}
)
