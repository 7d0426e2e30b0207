package model

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const contentURIPrefix = "/content/"

// InscriptionID identifies an inscribed output as "{txid}i{index}".
type InscriptionID struct {
	TxID  string
	Index uint32
}

// String returns the canonical "{txid}i{index}" form.
func (id InscriptionID) String() string {
	return id.TxID + "i" + strconv.FormatUint(uint64(id.Index), 10)
}

// URI returns the content path the inscription is served under.
func (id InscriptionID) URI() string {
	return contentURIPrefix + id.String()
}

// ParseInscriptionID accepts "{txid}i{index}" or a "/content/{txid}i{index}" URI.
func ParseInscriptionID(s string) (InscriptionID, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), contentURIPrefix)
	sep := strings.LastIndexByte(raw, 'i')
	if sep != 64 {
		return InscriptionID{}, fmt.Errorf("invalid inscription id %q", s)
	}
	txid := raw[:sep]
	if _, err := hex.DecodeString(txid); err != nil {
		return InscriptionID{}, fmt.Errorf("invalid inscription id %q: txid: %w", s, err)
	}
	index, err := strconv.ParseUint(raw[sep+1:], 10, 32)
	if err != nil {
		return InscriptionID{}, fmt.Errorf("invalid inscription id %q: index: %w", s, err)
	}
	return InscriptionID{TxID: strings.ToLower(txid), Index: uint32(index)}, nil
}

// InscriptionRecord is an inscription as reported by a data source.
type InscriptionRecord struct {
	ID           string
	Outpoint     string
	Owner        string
	Genesis      string
	Fee          int64
	Height       int64
	Number       int64
	Sat          int64
	Timestamp    int64
	MediaType    string
	MediaSize    int64
	MediaContent []byte
	Value        uint64
	Meta         map[string]any
}

// UnknownAmount marks a numeric record field the backend does not report.
const UnknownAmount int64 = -1

// InscriptionFilter selects inscriptions by owner. The remaining fields exist so
// callers can express them; backends reject the ones they cannot serve.
type InscriptionFilter struct {
	Owner       string
	Creator     string
	MimeType    string
	MimeSubType string
	Outpoint    string
}

// DefaultInscriptionsLimit is used when a listing is requested without a limit.
const DefaultInscriptionsLimit = 100
