package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/bitcoin"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/clock"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/datasource"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/datasource/node"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/datasource/unisat"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/funding"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/generator"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/logging"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/metrics"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/reveal"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/service"
	"github.com/goodnatureofminers/bitseed-inscriber/internal/wallet"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Network model.Network `long:"network" env:"BITSEED_NETWORK" description:"bitcoin network (mainnet, testnet, signet, regtest)" default:"testnet"`

	PrimaryWIF         string `long:"primary-wif" env:"BITSEED_PRIMARY_WIF" description:"WIF key of the wallet receiving inscriptions"`
	PrimaryMnemonic    string `long:"primary-mnemonic" env:"BITSEED_PRIMARY_MNEMONIC" description:"BIP39 mnemonic of the wallet receiving inscriptions"`
	FundingWIF         string `long:"funding-wif" env:"BITSEED_FUNDING_WIF" description:"WIF key of the wallet paying commit deposits"`
	FundingMnemonic    string `long:"funding-mnemonic" env:"BITSEED_FUNDING_MNEMONIC" description:"BIP39 mnemonic of the wallet paying commit deposits"`
	MnemonicPassphrase string `long:"mnemonic-passphrase" env:"BITSEED_MNEMONIC_PASSPHRASE" description:"BIP39 passphrase for both mnemonics"`

	UnisatURL        string        `long:"unisat-url" env:"BITSEED_UNISAT_URL" description:"UniSat open API base URL (network default when empty)"`
	UnisatContentURL string        `long:"unisat-content-url" env:"BITSEED_UNISAT_CONTENT_URL" description:"ordinals content host (network default when empty)"`
	UnisatAPIKey     string        `long:"unisat-api-key" env:"BITSEED_UNISAT_API_KEY" description:"UniSat open API key"`
	UnisatRPS        int           `long:"unisat-rps" env:"BITSEED_UNISAT_RPS" description:"UniSat requests per second, 0 for unlimited" default:"5"`
	HTTPTimeout      time.Duration `long:"http-timeout" env:"BITSEED_HTTP_TIMEOUT" description:"HTTP timeout for data source requests" default:"30s"`

	RPCURL      string `long:"rpc-url" env:"BITSEED_RPC_URL" description:"relay through this bitcoin node instead of UniSat"`
	RPCUser     string `long:"rpc-user" env:"BITSEED_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword string `long:"rpc-password" env:"BITSEED_RPC_PASSWORD" description:"Bitcoin RPC password"`

	PollAttempts int           `long:"poll-attempts" env:"BITSEED_POLL_ATTEMPTS" description:"commit address funding probes" default:"10"`
	PollInitial  time.Duration `long:"poll-initial" env:"BITSEED_POLL_INITIAL" description:"wait before the second probe" default:"2s"`
	PollMax      time.Duration `long:"poll-max" env:"BITSEED_POLL_MAX" description:"longest wait between probes" default:"30s"`
	PollFactor   float64       `long:"poll-factor" env:"BITSEED_POLL_FACTOR" description:"growth of the wait between probes, 1 for fixed" default:"1.5"`

	GeneratorCache int `long:"generator-cache" env:"BITSEED_GENERATOR_CACHE" description:"compiled generators kept in memory" default:"16"`

	MetricsAddr string `long:"metrics-addr" env:"BITSEED_METRICS_ADDR" description:"address for metrics server, empty to disable"`
	LogLevel    string `long:"log-level" env:"BITSEED_LOG_LEVEL" description:"log level"`
	LogFile     string `long:"log-file" env:"BITSEED_LOG_FILE" description:"also write JSON logs to this rotating file"`
	Development bool   `long:"development" env:"BITSEED_DEVELOPMENT" description:"development logging"`

	Generator    generatorCommand    `command:"generator" description:"inscribe a WASM generator"`
	Deploy       deployCommand       `command:"deploy" description:"inscribe a tick deploy"`
	Mint         mintCommand         `command:"mint" description:"run a tick's generator and inscribe the result"`
	Tick         tickCommand         `command:"tick" description:"show a deployed tick"`
	Inscriptions inscriptionsCommand `command:"inscriptions" description:"list inscriptions of an address"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development,
		File:        cfg.LogFile,
	})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, parser.Active.Name, logger); err != nil {
		logger.Fatal("bitseed failed", zap.String("command", parser.Active.Name), zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, command string, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return err
	}
	source, closeSource, err := newSource(cfg, decoder, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	switch command {
	case "tick":
		return cfg.Tick.run(ctx, source)
	case "inscriptions":
		return cfg.Inscriptions.run(ctx, source)
	}

	svc, closeService, err := newService(ctx, cfg, source, decoder, logger)
	if err != nil {
		return err
	}
	defer closeService()

	switch command {
	case "generator":
		return cfg.Generator.run(ctx, svc)
	case "deploy":
		return cfg.Deploy.run(ctx, svc)
	case "mint":
		return cfg.Mint.run(ctx, svc)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// newSource builds the UniSat backed data source, relaying through a node
// when one is configured.
func newSource(cfg config, decoder *bitcoin.ScriptDecoder, logger *zap.Logger) (datasource.Source, func(), error) {
	baseURL := cfg.UnisatURL
	if baseURL == "" {
		baseURL = unisat.DefaultBaseURL(cfg.Network)
	}
	contentURL := cfg.UnisatContentURL
	if contentURL == "" {
		contentURL = unisat.DefaultContentURL(cfg.Network)
	}
	client := unisat.NewClient(unisat.Config{
		BaseURL:    baseURL,
		ContentURL: contentURL,
		APIKey:     cfg.UnisatAPIKey,
		RPS:        cfg.UnisatRPS,
		Timeout:    cfg.HTTPTimeout,
	})
	var source datasource.Source = unisat.NewDataSource(client, decoder, logger)
	backend := "unisat"

	closeFn := func() {}
	if cfg.RPCURL != "" {
		rpc, err := node.NewRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("init rpc client: %w", err)
		}
		closeFn = func() { shutdownRPC(rpc) }
		observed := node.NewObservedClient(rpc, metrics.NewRPCClient(cfg.Network))
		source = datasource.WithRelay(source, node.NewRelayer(observed, logger))
		backend = "unisat+node"
	}
	return datasource.NewObserved(source, metrics.NewDataSource(backend, cfg.Network)), closeFn, nil
}

func shutdownRPC(rpc *rpcclient.Client) {
	rpc.Shutdown()
	rpc.WaitForShutdown()
}

func newService(ctx context.Context, cfg config, source datasource.Source, decoder *bitcoin.ScriptDecoder, logger *zap.Logger) (*service.Service, func(), error) {
	primary, err := loadWallet("primary", cfg.PrimaryWIF, cfg.PrimaryMnemonic, cfg.MnemonicPassphrase, cfg.Network)
	if err != nil {
		return nil, nil, err
	}
	funder := primary
	if cfg.FundingWIF != "" || cfg.FundingMnemonic != "" {
		funder, err = loadWallet("funding", cfg.FundingWIF, cfg.FundingMnemonic, cfg.MnemonicPassphrase, cfg.Network)
		if err != nil {
			return nil, nil, err
		}
	} else {
		logger.Warn("no funding wallet configured, the primary wallet pays deposits")
	}

	builder := reveal.NewBuilder(decoder)
	orchestrator, err := funding.NewOrchestrator(source, funder, builder, decoder, metrics.NewFunding(cfg.Network), logger)
	if err != nil {
		return nil, nil, err
	}
	loader, err := generator.NewWasmLoader(ctx, source, cfg.GeneratorCache, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init generator loader: %w", err)
	}
	closeFn := func() {
		_ = loader.Close(context.Background())
	}

	polling := funding.Polling{
		MaxAttempts: cfg.PollAttempts,
		Backoff: clock.Backoff{
			Initial:    cfg.PollInitial,
			Max:        cfg.PollMax,
			Multiplier: cfg.PollFactor,
		},
	}
	svc, err := service.NewService(
		primary,
		funder,
		source,
		loader,
		builder,
		orchestrator,
		polling,
		metrics.NewOperations(cfg.Network),
		logger,
	)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	logger.Info("wallets loaded",
		zap.String("network", string(cfg.Network)),
		zap.String("primary", primary.SelectedAddress()),
		zap.String("funding", funder.SelectedAddress()),
	)
	return svc, closeFn, nil
}

func loadWallet(role, wif, mnemonic, passphrase string, network model.Network) (*wallet.KeyWallet, error) {
	switch {
	case wif != "":
		w, err := wallet.NewFromWIF(wif, network)
		if err != nil {
			return nil, fmt.Errorf("%s wallet: %w", role, err)
		}
		return w, nil
	case mnemonic != "":
		w, err := wallet.NewFromMnemonic(mnemonic, passphrase, network)
		if err != nil {
			return nil, fmt.Errorf("%s wallet: %w", role, err)
		}
		return w, nil
	default:
		return nil, &model.WalletNotSelectedError{Role: role}
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
