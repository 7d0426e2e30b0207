package bitcoin

import (
	"fmt"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
)

// RawUTXO is a backend's unspent output record before classification.
type RawUTXO struct {
	TxID           string
	Vout           uint32
	Sats           uint64
	ScriptHex      string
	Inscriptions   []string
	ProtocolAssets int
	// Confirmations is nil when the backend does not report a height.
	Confirmations *int64
}

// Classification is the spendability verdict and decoded script of a raw output.
type Classification struct {
	SafeToSpend  bool
	ScriptPubKey model.ScriptPubKey
}

// Classifier decides which outputs may be spent for fees.
type Classifier struct {
	decoder *ScriptDecoder
}

// NewClassifier builds a Classifier decoding scripts with decoder.
func NewClassifier(decoder *ScriptDecoder) *Classifier {
	return &Classifier{decoder: decoder}
}

// Classify marks an output unsafe when it carries any inscription or other
// protocol asset.
func (c *Classifier) Classify(raw RawUTXO) (Classification, error) {
	script, err := c.decoder.Decode(raw.ScriptHex)
	if err != nil {
		return Classification{}, fmt.Errorf("decode script of %s:%d: %w", raw.TxID, raw.Vout, err)
	}
	return Classification{
		SafeToSpend:  len(raw.Inscriptions) == 0 && raw.ProtocolAssets == 0,
		ScriptPubKey: script,
	}, nil
}

// UTXO classifies raw into the domain output.
func (c *Classifier) UTXO(raw RawUTXO) (model.UTXO, error) {
	class, err := c.Classify(raw)
	if err != nil {
		return model.UTXO{}, err
	}
	confirmation := model.UnknownConfirmations
	if raw.Confirmations != nil {
		confirmation = *raw.Confirmations
	}
	return model.UTXO{
		TxID:         raw.TxID,
		Vout:         raw.Vout,
		Sats:         raw.Sats,
		ScriptPubKey: class.ScriptPubKey,
		SafeToSpend:  class.SafeToSpend,
		Confirmation: confirmation,
	}, nil
}

// Partition splits raws into spendable and unspendable outputs.
func (c *Classifier) Partition(raws []RawUTXO) (model.Unspents, error) {
	result := model.Unspents{
		Total:       len(raws),
		Spendable:   make([]model.UTXO, 0, len(raws)),
		Unspendable: make([]model.UTXO, 0),
	}
	for _, raw := range raws {
		utxo, err := c.UTXO(raw)
		if err != nil {
			return model.Unspents{}, err
		}
		if utxo.SafeToSpend {
			result.Spendable = append(result.Spendable, utxo)
		} else {
			result.Unspendable = append(result.Unspendable, utxo)
		}
	}
	return result, nil
}
