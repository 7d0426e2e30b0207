package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/datasource"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/service"
)

type inscribeFlags struct {
	Destination   string            `long:"destination" description:"address receiving the inscription (primary address when empty)"`
	FeeRate       uint64            `long:"fee-rate" description:"reveal fee rate in sat/vB" default:"1"`
	CommitFeeRate uint64            `long:"commit-fee-rate" description:"deposit fee rate in sat/vB (fee rate when zero)"`
	Postage       uint64            `long:"postage" description:"value of the inscribed output in sats" default:"600"`
	Meta          map[string]string `long:"meta" description:"inscription metadata entry as key:value, repeatable"`
}

func (f inscribeFlags) options() service.Options {
	opts := service.Options{
		Destination:   f.Destination,
		FeeRate:       f.FeeRate,
		CommitFeeRate: f.CommitFeeRate,
		Postage:       f.Postage,
	}
	if len(f.Meta) > 0 {
		opts.Meta = make(map[string]any, len(f.Meta))
		for k, v := range f.Meta {
			opts.Meta[k] = v
		}
	}
	return opts
}

type generatorCommand struct {
	inscribeFlags
	Wasm string `long:"wasm" description:"compiled generator module" required:"true"`
}

func (c generatorCommand) run(ctx context.Context, svc *service.Service) error {
	wasm, err := os.ReadFile(c.Wasm)
	if err != nil {
		return fmt.Errorf("read generator: %w", err)
	}
	id, err := svc.Generator(ctx, wasm, c.options())
	if err != nil {
		return err
	}
	return printJSON(inscribed{ID: id.String(), URI: id.URI()})
}

type deployCommand struct {
	inscribeFlags
	Tick         string   `long:"tick" description:"tick name" required:"true"`
	Max          uint64   `long:"max" description:"maximum supply, 0 for unbounded"`
	Generator    string   `long:"generator" description:"generator inscription id or /content/ uri" required:"true"`
	Repeat       uint64   `long:"repeat" description:"mints allowed per invocation"`
	HasUserInput bool     `long:"has-user-input" description:"mints take user input"`
	DeployArgs   []string `long:"deploy-arg" description:"JSON generator argument, repeatable"`
}

func (c deployCommand) run(ctx context.Context, svc *service.Service) error {
	generator, err := model.ParseInscriptionID(c.Generator)
	if err != nil {
		return err
	}
	opts := c.options()
	opts.Repeat = c.Repeat
	opts.HasUserInput = c.HasUserInput
	opts.DeployArgs = make([]json.RawMessage, 0, len(c.DeployArgs))
	for _, arg := range c.DeployArgs {
		if !json.Valid([]byte(arg)) {
			return fmt.Errorf("deploy arg %q is not valid json", arg)
		}
		opts.DeployArgs = append(opts.DeployArgs, json.RawMessage(arg))
	}

	id, err := svc.Deploy(ctx, c.Tick, c.Max, generator, opts)
	if err != nil {
		return err
	}
	return printJSON(inscribed{ID: id.String(), URI: id.URI()})
}

type mintCommand struct {
	inscribeFlags
	TickID    string `long:"tick-id" description:"deploy inscription id" required:"true"`
	Satpoint  string `long:"satpoint" description:"satpoint seeding the generator"`
	UserInput string `long:"user-input" description:"input passed to the generator"`
}

func (c mintCommand) run(ctx context.Context, svc *service.Service) error {
	tickID, err := model.ParseInscriptionID(c.TickID)
	if err != nil {
		return err
	}
	opts := c.options()
	opts.Satpoint = c.Satpoint
	id, err := svc.Mint(ctx, tickID, c.UserInput, opts)
	if err != nil {
		return err
	}
	return printJSON(inscribed{ID: id.String(), URI: id.URI()})
}

type tickCommand struct {
	ID string `long:"id" description:"deploy inscription id" required:"true"`
}

func (c tickCommand) run(ctx context.Context, source datasource.Source) error {
	id, err := model.ParseInscriptionID(c.ID)
	if err != nil {
		return err
	}
	tick, err := service.LookupTick(ctx, source, id)
	if err != nil {
		return err
	}
	return printJSON(tick)
}

type inscriptionsCommand struct {
	Owner string `long:"owner" description:"owner address" required:"true"`
	Limit int    `long:"limit" description:"maximum inscriptions listed" default:"100"`
}

type listedInscription struct {
	ID        string `json:"id"`
	Outpoint  string `json:"outpoint"`
	Number    int64  `json:"number"`
	MediaType string `json:"media_type"`
	Value     uint64 `json:"value"`
}

func (c inscriptionsCommand) run(ctx context.Context, source datasource.Source) error {
	records, err := source.GetInscriptions(ctx, model.InscriptionFilter{Owner: c.Owner}, c.Limit)
	if err != nil {
		return err
	}
	out := make([]listedInscription, 0, len(records))
	for _, r := range records {
		out = append(out, listedInscription{
			ID:        r.ID,
			Outpoint:  r.Outpoint,
			Number:    r.Number,
			MediaType: r.MediaType,
			Value:     r.Value,
		})
	}
	return printJSON(out)
}

type inscribed struct {
	ID  string `json:"inscription_id"`
	URI string `json:"uri"`
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
