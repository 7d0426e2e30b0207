package service

import (
	"encoding/json"
	"maps"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
)

// DefaultFeeRate is the reveal fee rate in sat/vB when none is given.
const DefaultFeeRate uint64 = 1

// Options tune a single operation. Zero values take the defaults applied by Resolve.
type Options struct {
	Destination   string
	FeeRate       uint64
	CommitFeeRate uint64
	Meta          map[string]any
	Postage       uint64
	Satpoint      string

	Repeat       uint64
	HasUserInput bool
	DeployArgs   []json.RawMessage
}

// Resolve fills every unset option. The inscription goes to primaryAddress
// unless a destination was given, and the deposit pays the reveal fee rate
// unless a commit rate was given.
func (o Options) Resolve(primaryAddress string) Options {
	if o.Destination == "" {
		o.Destination = primaryAddress
	}
	if o.FeeRate == 0 {
		o.FeeRate = DefaultFeeRate
	}
	if o.CommitFeeRate == 0 {
		o.CommitFeeRate = o.FeeRate
	}
	if o.Postage == 0 {
		o.Postage = model.DefaultPostage
	}
	if o.Meta == nil {
		o.Meta = map[string]any{}
	} else {
		o.Meta = maps.Clone(o.Meta)
	}
	if o.DeployArgs == nil {
		o.DeployArgs = []json.RawMessage{}
	}
	return o
}
