package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
)

// ScriptDecoder converts between locking scripts and addresses of one network.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for the params of the provided network.
func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &ScriptDecoder{params: params}, nil
}

// Params returns the chain parameters the decoder was built for.
func (d *ScriptDecoder) Params() *chaincfg.Params {
	return d.params
}

// Decode turns a hex locking script into its address and script class.
// Scripts without a standard address keep an empty Address.
func (d *ScriptDecoder) Decode(scriptHex string) (model.ScriptPubKey, error) {
	if scriptHex == "" {
		return model.ScriptPubKey{}, nil
	}
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return model.ScriptPubKey{}, err
	}
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return model.ScriptPubKey{}, err
	}

	result := model.ScriptPubKey{
		Hex:  scriptHex,
		Type: class.String(),
	}
	if len(addrs) == 1 {
		result.Address = addrs[0].EncodeAddress()
	}
	return result, nil
}

// PayToAddress returns the locking script paying address, rejecting
// addresses of another network.
func (d *ScriptDecoder) PayToAddress(address string) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, d.params)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", address, err)
	}
	if !addr.IsForNet(d.params) {
		return nil, fmt.Errorf("address %q is not for %s", address, d.params.Name)
	}
	return txscript.PayToAddrScript(addr)
}
