package unisat

import "encoding/json"

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// Balance is the indexer balance of an address.
type Balance struct {
	Address            string `json:"address"`
	Satoshi            uint64 `json:"satoshi"`
	PendingSatoshi     uint64 `json:"pendingSatoshi"`
	UTXOCount          int    `json:"utxoCount"`
	InscriptionSatoshi uint64 `json:"inscriptionSatoshi"`
}

// UTXOInscription references an inscription sitting on an output.
type UTXOInscription struct {
	InscriptionID     string `json:"inscriptionId"`
	InscriptionNumber int64  `json:"inscriptionNumber"`
	Offset            uint64 `json:"offset"`
}

// UTXO is an output as reported by the indexer. Atomicals and runes are kept
// raw; only their presence matters.
type UTXO struct {
	TxID         string            `json:"txid"`
	Vout         uint32            `json:"vout"`
	Satoshi      uint64            `json:"satoshi"`
	ScriptType   string            `json:"scriptType"`
	ScriptPk     string            `json:"scriptPk"`
	Address      string            `json:"address"`
	Height       int64             `json:"height"`
	Inscriptions []UTXOInscription `json:"inscriptions"`
	Atomicals    []json.RawMessage `json:"atomicals"`
	Runes        []json.RawMessage `json:"runes"`
}

// BlockchainInfo is the indexer's view of the chain tip.
type BlockchainInfo struct {
	Chain   string `json:"chain"`
	Blocks  int64  `json:"blocks"`
	Headers int64  `json:"headers"`
}

type utxoPage struct {
	Cursor int    `json:"cursor"`
	Total  int    `json:"total"`
	UTXO   []UTXO `json:"utxo"`
}

// Inscription is the indexer view of an inscription.
type Inscription struct {
	InscriptionID      string `json:"inscriptionId"`
	InscriptionNumber  int64  `json:"inscriptionNumber"`
	Address            string `json:"address"`
	OutputValue        uint64 `json:"outputValue"`
	Content            string `json:"content"`
	ContentLength      int64  `json:"contentLength"`
	ContentType        string `json:"contentType"`
	ContentBody        string `json:"contentBody"`
	Timestamp          int64  `json:"timestamp"`
	GenesisTransaction string `json:"genesisTransaction"`
	Output             string `json:"output"`
	Offset             uint64 `json:"offset"`
	Height             int64  `json:"height"`
	UTXOHeight         int64  `json:"utxoHeight"`
	UTXO               *UTXO  `json:"utxo,omitempty"`
}

type inscriptionPage struct {
	Cursor      int           `json:"cursor"`
	Total       int           `json:"total"`
	Inscription []Inscription `json:"inscription"`
}

type pushTxRequest struct {
	TxHex string `json:"txHex"`
}
