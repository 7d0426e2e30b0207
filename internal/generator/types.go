package generator

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ContentSource resolves a generator reference to its inscription content.
	ContentSource interface {
		GetInscription(ctx context.Context, id string, decodeMetadata bool) (model.InscriptionRecord, error)
	}
	// Handle runs a loaded generator.
	Handle interface {
		InscribeGenerate(ctx context.Context, deployArgs []json.RawMessage, satpoint string, userInput string) (json.RawMessage, error)
	}
)
