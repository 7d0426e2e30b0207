package unisat

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	API interface {
		BlockchainInfo(ctx context.Context) (BlockchainInfo, error)
		AddressBalance(ctx context.Context, address string) (Balance, error)
		AddressUTXOs(ctx context.Context, address string) ([]UTXO, error)
		InscriptionInfo(ctx context.Context, id string) (Inscription, error)
		UTXOInscriptions(ctx context.Context, txid string, vout uint32) ([]Inscription, error)
		AddressInscriptions(ctx context.Context, address string, cursor, size int) ([]Inscription, error)
		PushTx(ctx context.Context, txHex string) (string, error)
		Content(ctx context.Context, id, contentRef string) ([]byte, error)
	}
)
