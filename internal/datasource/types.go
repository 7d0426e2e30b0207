package datasource

import (
	"context"
	"time"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		GetBalance(ctx context.Context, address string) (uint64, error)
		GetSpendables(ctx context.Context, address string, minValue uint64) ([]model.UTXO, error)
		GetUnspents(ctx context.Context, address string) (model.Unspents, error)
		GetInscription(ctx context.Context, id string, decodeMetadata bool) (model.InscriptionRecord, error)
		GetInscriptions(ctx context.Context, filter model.InscriptionFilter, limit int) ([]model.InscriptionRecord, error)
		GetInscriptionUTXO(ctx context.Context, id string) (model.UTXO, error)
		Relay(ctx context.Context, signedTxHex string) (string, error)
	}
	Relayer interface {
		Relay(ctx context.Context, signedTxHex string) (string, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
