// Package datasource composes chain data backends and instruments their calls.
package datasource

import (
	"context"
	"time"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
)

// Observed records the outcome and latency of every Source call.
type Observed struct {
	source  Source
	metrics Metrics
}

func NewObserved(source Source, metrics Metrics) *Observed {
	return &Observed{source: source, metrics: metrics}
}

func (o *Observed) GetBalance(ctx context.Context, address string) (balance uint64, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_balance", err, started)
	}()
	return o.source.GetBalance(ctx, address)
}

func (o *Observed) GetSpendables(ctx context.Context, address string, minValue uint64) (utxos []model.UTXO, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_spendables", err, started)
	}()
	return o.source.GetSpendables(ctx, address, minValue)
}

func (o *Observed) GetUnspents(ctx context.Context, address string) (unspents model.Unspents, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_unspents", err, started)
	}()
	return o.source.GetUnspents(ctx, address)
}

func (o *Observed) GetInscription(ctx context.Context, id string, decodeMetadata bool) (record model.InscriptionRecord, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_inscription", err, started)
	}()
	return o.source.GetInscription(ctx, id, decodeMetadata)
}

func (o *Observed) GetInscriptions(ctx context.Context, filter model.InscriptionFilter, limit int) (records []model.InscriptionRecord, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_inscriptions", err, started)
	}()
	return o.source.GetInscriptions(ctx, filter, limit)
}

func (o *Observed) GetInscriptionUTXO(ctx context.Context, id string) (utxo model.UTXO, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_inscription_utxo", err, started)
	}()
	return o.source.GetInscriptionUTXO(ctx, id)
}

func (o *Observed) Relay(ctx context.Context, signedTxHex string) (txid string, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("relay", err, started)
	}()
	return o.source.Relay(ctx, signedTxHex)
}
