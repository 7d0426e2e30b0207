// Package node relays signed transactions through a bitcoind node.
package node

import (
	"context"
	"errors"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/bitcoin"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"go.uber.org/zap"
)

// Relayer submits transactions with sendrawtransaction after a
// testmempoolaccept dry run, so policy rejections carry the node's reason.
type Relayer struct {
	client RPCClient
	logger *zap.Logger
}

func NewRelayer(client RPCClient, logger *zap.Logger) *Relayer {
	return &Relayer{client: client, logger: logger.Named("node")}
}

// Relay broadcasts signedTxHex and returns its txid.
func (r *Relayer) Relay(ctx context.Context, signedTxHex string) (string, error) {
	tx, err := bitcoin.DecodeTx(signedTxHex)
	if err != nil {
		return "", &model.RelayError{Reason: err.Error()}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	results, err := r.client.TestMempoolAccept([]*wire.MsgTx{tx}, 0)
	if err != nil {
		return "", relayError("test_mempool_accept", err)
	}
	for _, res := range results {
		if !res.Allowed {
			return "", &model.RelayError{Reason: res.RejectReason}
		}
	}

	hash, err := r.client.SendRawTransaction(tx, false)
	if err != nil {
		return "", relayError("send_raw_transaction", err)
	}
	r.logger.Info("transaction relayed", zap.String("txid", hash.String()))
	return hash.String(), nil
}

// relayError maps a node JSON-RPC error to a rejection and anything else to a
// transport failure.
func relayError(op string, err error) error {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return &model.RelayError{Reason: rpcErr.Message}
	}
	return &model.NetworkError{Op: op, Err: err}
}
