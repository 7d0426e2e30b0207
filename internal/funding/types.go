package funding

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	DataSource interface {
		GetSpendables(ctx context.Context, address string, minValue uint64) ([]model.UTXO, error)
		GetUnspents(ctx context.Context, address string) (model.Unspents, error)
		Relay(ctx context.Context, signedTxHex string) (string, error)
	}
	Wallet interface {
		SelectedAddress() string
		Network() model.Network
		PublicKey() string
		SignPsbt(ctx context.Context, psbtHex string, opts model.SignOptions) (string, error)
	}
	Builder interface {
		SelectFunding(plan *model.RevealPlan, utxos []model.UTXO) (model.UTXO, error)
		Finalize(plan *model.RevealPlan, utxos []model.UTXO) (*psbt.Packet, error)
	}
	Metrics interface {
		ObserveDeposit(err error, started time.Time)
		ObserveAwait(attempts int, err error, started time.Time)
	}
)
