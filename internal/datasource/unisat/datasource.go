package unisat

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/bitcoin"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/goodnatureofminers/bitseed-inscriber/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	inscriptionsPageSize = 100
	inscriptionsWorkers  = 4
)

// DataSource serves balances, outputs and inscriptions from the UniSat indexer.
type DataSource struct {
	api        API
	classifier *bitcoin.Classifier
	logger     *zap.Logger
}

// NewDataSource adapts api, classifying outputs for the decoder's network.
func NewDataSource(api API, decoder *bitcoin.ScriptDecoder, logger *zap.Logger) *DataSource {
	return &DataSource{
		api:        api,
		classifier: bitcoin.NewClassifier(decoder),
		logger:     logger.Named("unisat"),
	}
}

// mempoolHeight is the height the indexer reports for unconfirmed outputs.
const mempoolHeight = 4194303

func confirmed(u UTXO) bool {
	return u.Height > 0 && u.Height < mempoolHeight
}

func rawUTXO(u UTXO, tip int64) bitcoin.RawUTXO {
	inscriptions := make([]string, 0, len(u.Inscriptions))
	for _, ins := range u.Inscriptions {
		inscriptions = append(inscriptions, ins.InscriptionID)
	}
	raw := bitcoin.RawUTXO{
		TxID:           u.TxID,
		Vout:           u.Vout,
		Sats:           u.Satoshi,
		ScriptHex:      u.ScriptPk,
		Inscriptions:   inscriptions,
		ProtocolAssets: len(u.Atomicals) + len(u.Runes),
	}
	switch {
	case u.Height >= mempoolHeight:
		var zero int64
		raw.Confirmations = &zero
	case confirmed(u) && tip >= u.Height:
		n := tip - u.Height + 1
		raw.Confirmations = &n
	}
	return raw
}

// tipHeight returns the chain tip when any of utxos is confirmed, or 0. A
// failed lookup leaves confirmations unknown rather than failing the listing.
func (d *DataSource) tipHeight(ctx context.Context, utxos []UTXO) int64 {
	for _, u := range utxos {
		if !confirmed(u) {
			continue
		}
		info, err := d.api.BlockchainInfo(ctx)
		if err != nil {
			d.logger.Warn("chain tip lookup failed", zap.Error(err))
			return 0
		}
		return info.Blocks
	}
	return 0
}

// GetBalance returns the confirmed balance of address in sats.
func (d *DataSource) GetBalance(ctx context.Context, address string) (uint64, error) {
	balance, err := d.api.AddressBalance(ctx, address)
	if err != nil {
		return 0, err
	}
	return balance.Satoshi, nil
}

// GetSpendables returns the safe outputs of address worth at least minValue.
func (d *DataSource) GetSpendables(ctx context.Context, address string, minValue uint64) ([]model.UTXO, error) {
	unspents, err := d.GetUnspents(ctx, address)
	if err != nil {
		return nil, err
	}
	out := make([]model.UTXO, 0, len(unspents.Spendable))
	for _, u := range unspents.Spendable {
		if u.Sats >= minValue {
			out = append(out, u)
		}
	}
	return out, nil
}

// GetUnspents partitions the outputs of address by spendability.
func (d *DataSource) GetUnspents(ctx context.Context, address string) (model.Unspents, error) {
	utxos, err := d.api.AddressUTXOs(ctx, address)
	if err != nil {
		return model.Unspents{}, err
	}
	tip := d.tipHeight(ctx, utxos)
	raws := make([]bitcoin.RawUTXO, 0, len(utxos))
	for _, u := range utxos {
		raws = append(raws, rawUTXO(u, tip))
	}
	return d.classifier.Partition(raws)
}

// GetInscriptionUTXO returns the output carrying inscription id.
func (d *DataSource) GetInscriptionUTXO(ctx context.Context, id string) (model.UTXO, error) {
	info, err := d.api.InscriptionInfo(ctx, id)
	if err != nil {
		return model.UTXO{}, err
	}
	if info.UTXO == nil {
		return model.UTXO{}, fmt.Errorf("inscription %s output: %w", id, model.ErrNotFound)
	}
	return d.classifier.UTXO(rawUTXO(*info.UTXO, d.tipHeight(ctx, []UTXO{*info.UTXO})))
}

// GetInscription returns the first inscription on the output carrying id.
// With decodeMetadata the second inscription on that output is parsed as its
// JSON metadata.
func (d *DataSource) GetInscription(ctx context.Context, id string, decodeMetadata bool) (model.InscriptionRecord, error) {
	info, err := d.api.InscriptionInfo(ctx, id)
	if err != nil {
		return model.InscriptionRecord{}, err
	}
	txid, vout, err := splitOutpoint(info.Output)
	if err != nil {
		return model.InscriptionRecord{}, err
	}
	onOutput, err := d.api.UTXOInscriptions(ctx, txid, vout)
	if err != nil {
		return model.InscriptionRecord{}, err
	}
	if len(onOutput) == 0 {
		return model.InscriptionRecord{}, fmt.Errorf("inscription %s: %w", id, model.ErrNotFound)
	}

	first := onOutput[0]
	content, err := d.api.Content(ctx, first.InscriptionID, first.Content)
	if err != nil {
		return model.InscriptionRecord{}, err
	}

	record := toRecord(first)
	record.MediaContent = content
	record.Sat = model.UnknownAmount
	if info.UTXO != nil {
		record.Sat = int64(info.UTXO.Satoshi)
	}

	if decodeMetadata && len(onOutput) >= 2 {
		metaInscription := onOutput[1]
		body, err := d.api.Content(ctx, metaInscription.InscriptionID, metaInscription.Content)
		if err != nil {
			return model.InscriptionRecord{}, err
		}
		var meta map[string]any
		if err := json.Unmarshal(body, &meta); err != nil {
			d.logger.Warn("decode meta failed", zap.String("inscription_id", metaInscription.InscriptionID), zap.Error(err))
			return model.InscriptionRecord{}, &model.MetadataDecodeError{Err: err}
		}
		record.Meta = meta
	}
	return record, nil
}

// GetInscriptions lists inscriptions owned by filter.Owner. Other filters are
// not served by the indexer and are rejected before any request.
func (d *DataSource) GetInscriptions(ctx context.Context, filter model.InscriptionFilter, limit int) ([]model.InscriptionRecord, error) {
	switch {
	case filter.Creator != "":
		return nil, &model.UnsupportedFilterError{Filter: "creator"}
	case filter.MimeType != "":
		return nil, &model.UnsupportedFilterError{Filter: "mimeType"}
	case filter.MimeSubType != "":
		return nil, &model.UnsupportedFilterError{Filter: "mimeSubType"}
	case filter.Outpoint != "":
		return nil, &model.UnsupportedFilterError{Filter: "outpoint"}
	case filter.Owner == "":
		return nil, &model.UnsupportedFilterError{Filter: "owner is required"}
	}
	if limit <= 0 {
		limit = model.DefaultInscriptionsLimit
	}

	cursors := make([]int, 0, (limit+inscriptionsPageSize-1)/inscriptionsPageSize)
	for cursor := 0; cursor < limit; cursor += inscriptionsPageSize {
		cursors = append(cursors, cursor)
	}
	pages, err := workerpool.Map(ctx, inscriptionsWorkers, cursors, func(ctx context.Context, cursor int) ([]Inscription, error) {
		return d.api.AddressInscriptions(ctx, filter.Owner, cursor, pageSize(cursor, limit))
	})
	if err != nil {
		return nil, err
	}

	records := make([]model.InscriptionRecord, 0, limit)
	for i, page := range pages {
		for _, ins := range page {
			record := toRecord(ins)
			record.Sat = model.UnknownAmount
			record.MediaContent = []byte(ins.ContentBody)
			records = append(records, record)
		}
		// a short page is the end of the owner's inscriptions
		if len(page) < pageSize(cursors[i], limit) {
			break
		}
	}
	return records, nil
}

func pageSize(cursor, limit int) int {
	return min(inscriptionsPageSize, limit-cursor)
}

// Relay broadcasts a signed transaction through the indexer.
func (d *DataSource) Relay(ctx context.Context, signedTxHex string) (string, error) {
	txid, err := d.api.PushTx(ctx, signedTxHex)
	if err != nil {
		return "", err
	}
	d.logger.Info("transaction relayed", zap.String("txid", txid))
	return txid, nil
}

func toRecord(ins Inscription) model.InscriptionRecord {
	return model.InscriptionRecord{
		ID:        ins.InscriptionID,
		Outpoint:  ins.Output,
		Owner:     ins.Address,
		Genesis:   ins.GenesisTransaction,
		Fee:       model.UnknownAmount,
		Height:    ins.UTXOHeight,
		Number:    ins.InscriptionNumber,
		Timestamp: ins.Timestamp,
		MediaType: ins.ContentType,
		MediaSize: ins.ContentLength,
		Value:     ins.OutputValue,
	}
}

func splitOutpoint(outpoint string) (string, uint32, error) {
	txid, vout, ok := strings.Cut(outpoint, ":")
	if !ok {
		return "", 0, fmt.Errorf("invalid outpoint %q", outpoint)
	}
	n, err := strconv.ParseUint(vout, 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("invalid outpoint %q: %w", outpoint, err)
	}
	return txid, uint32(n), nil
}
