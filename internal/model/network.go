// Package model defines the domain types shared by the inscriber packages.
package model

// Network names the bitcoin network a wallet or data source operates on.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)
