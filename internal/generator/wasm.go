// Package generator loads and runs inscription generators compiled to WebAssembly.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"
)

const (
	exportMemory   = "memory"
	exportMalloc   = "malloc"
	exportGenerate = "inscribe_generate"
	exportInit     = "_initialize"

	// DefaultCacheSize is the number of compiled generators kept in memory.
	DefaultCacheSize = 16
)

var errMissingExport = errors.New("missing export")

// WasmLoader fetches generator modules through a ContentSource and keeps the
// compiled code in an LRU cache keyed by inscription URI.
type WasmLoader struct {
	source  ContentSource
	runtime wazero.Runtime
	cache   *lru.Cache[string, *compiledEntry]
	logger  *zap.Logger
}

func NewWasmLoader(ctx context.Context, source ContentSource, cacheSize int, logger *zap.Logger) (*WasmLoader, error) {
	if source == nil {
		return nil, errors.New("content source is required")
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCloseOnContextDone(true))
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("instantiate wasi: %w", err)
	}

	cache, err := lru.NewWithEvict[string, *compiledEntry](cacheSize, func(_ string, entry *compiledEntry) {
		entry.evict()
	})
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("create module cache: %w", err)
	}

	return &WasmLoader{
		source:  source,
		runtime: rt,
		cache:   cache,
		logger:  logger.Named("generator"),
	}, nil
}

// Load resolves uri ("/content/{id}" or a bare inscription id) to a runnable generator.
func (l *WasmLoader) Load(ctx context.Context, uri string) (Handle, error) {
	id, err := model.ParseInscriptionID(uri)
	if err != nil {
		return nil, &model.GeneratorExecutionError{URI: uri, Err: err}
	}
	key := id.URI()

	if entry, ok := l.cache.Get(key); ok {
		return &program{uri: key, code: entry.code, loader: l}, nil
	}

	record, err := l.source.GetInscription(ctx, id.String(), false)
	if err != nil {
		return nil, &model.GeneratorExecutionError{URI: key, Err: fmt.Errorf("fetch module: %w", err)}
	}

	entry, err := l.acquire(ctx, key, record.MediaContent)
	if err != nil {
		return nil, &model.GeneratorExecutionError{URI: key, Err: err}
	}
	entry.release()
	return &program{uri: key, code: entry.code, loader: l}, nil
}

// Close releases every compiled module and the runtime.
func (l *WasmLoader) Close(ctx context.Context) error {
	l.cache.Purge()
	return l.runtime.Close(ctx)
}

// acquire returns the compiled module for key with a reference held, compiling
// code when the cache no longer has it. Callers must release the entry.
func (l *WasmLoader) acquire(ctx context.Context, key string, code []byte) (*compiledEntry, error) {
	if entry, ok := l.cache.Get(key); ok && entry.acquire() {
		return entry, nil
	}

	compiled, err := l.runtime.CompileModule(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("compile module: %w", err)
	}
	if err := checkExports(compiled); err != nil {
		_ = compiled.Close(ctx)
		return nil, err
	}
	entry := &compiledEntry{code: code, compiled: compiled, refs: 1}

	if prev, found, _ := l.cache.PeekOrAdd(key, entry); found {
		if prev.acquire() {
			_ = compiled.Close(ctx)
			return prev, nil
		}
		l.cache.Add(key, entry)
	}
	l.logger.Debug("generator compiled",
		zap.String("uri", key),
		zap.Int("size", len(code)),
	)
	return entry, nil
}

func checkExports(compiled wazero.CompiledModule) error {
	if _, ok := compiled.ExportedMemories()[exportMemory]; !ok {
		return fmt.Errorf("%w %q", errMissingExport, exportMemory)
	}
	funcs := compiled.ExportedFunctions()
	for _, name := range []string{exportMalloc, exportGenerate} {
		if _, ok := funcs[name]; !ok {
			return fmt.Errorf("%w %q", errMissingExport, name)
		}
	}
	return nil
}

// compiledEntry is a cached module. Eviction only closes it once no call
// holds a reference.
type compiledEntry struct {
	mu       sync.Mutex
	code     []byte
	compiled wazero.CompiledModule
	refs     int
	evicted  bool
}

func (e *compiledEntry) acquire() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.evicted {
		return false
	}
	e.refs++
	return true
}

func (e *compiledEntry) release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.refs--
	if e.evicted && e.refs == 0 {
		_ = e.compiled.Close(context.Background())
	}
}

func (e *compiledEntry) evict() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.evicted {
		return
	}
	e.evicted = true
	if e.refs == 0 {
		_ = e.compiled.Close(context.Background())
	}
}

type generateInput struct {
	Attrs     []json.RawMessage `json:"attrs"`
	Seed      string            `json:"seed"`
	UserInput string            `json:"user_input"`
}

// program keeps the module bytes so it stays runnable after its compiled
// form is evicted from the cache.
type program struct {
	uri    string
	code   []byte
	loader *WasmLoader
}

// InscribeGenerate runs the generator in a fresh instance. The instance is
// closed before returning, so no state survives between calls.
func (p *program) InscribeGenerate(ctx context.Context, deployArgs []json.RawMessage, satpoint string, userInput string) (json.RawMessage, error) {
	entry, err := p.loader.acquire(ctx, p.uri, p.code)
	if err != nil {
		return nil, &model.GeneratorExecutionError{URI: p.uri, Err: err}
	}
	defer entry.release()

	out, err := p.generate(ctx, entry.compiled, deployArgs, satpoint, userInput)
	if err != nil {
		return nil, &model.GeneratorExecutionError{URI: p.uri, Err: err}
	}
	return out, nil
}

func (p *program) generate(ctx context.Context, compiled wazero.CompiledModule, deployArgs []json.RawMessage, satpoint string, userInput string) (json.RawMessage, error) {
	if deployArgs == nil {
		deployArgs = []json.RawMessage{}
	}
	input, err := json.Marshal(generateInput{Attrs: deployArgs, Seed: satpoint, UserInput: userInput})
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}

	mod, err := p.loader.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("").WithStartFunctions())
	if err != nil {
		return nil, fmt.Errorf("instantiate: %w", err)
	}
	defer func() {
		_ = mod.Close(ctx)
	}()

	if initFn := mod.ExportedFunction(exportInit); initFn != nil {
		if _, err := initFn.Call(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", exportInit, err)
		}
	}

	ptr, err := call(ctx, mod, exportMalloc, uint64(len(input)))
	if err != nil {
		return nil, err
	}
	inPtr := uint32(ptr)
	if !mod.Memory().Write(inPtr, input) {
		return nil, fmt.Errorf("write input: %d bytes at %d out of range", len(input), inPtr)
	}

	packed, err := call(ctx, mod, exportGenerate, uint64(inPtr), uint64(len(input)))
	if err != nil {
		return nil, err
	}
	outPtr, outLen := uint32(packed>>32), uint32(packed)
	data, ok := mod.Memory().Read(outPtr, outLen)
	if !ok {
		return nil, fmt.Errorf("read output: %d bytes at %d out of range", outLen, outPtr)
	}
	if !json.Valid(data) {
		return nil, errors.New("output is not valid json")
	}

	// Memory views are invalidated once the module is closed.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func call(ctx context.Context, mod api.Module, name string, params ...uint64) (uint64, error) {
	fn := mod.ExportedFunction(name)
	if fn == nil {
		return 0, fmt.Errorf("%w %q", errMissingExport, name)
	}
	results, err := fn.Call(ctx, params...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("%s: expected 1 result, got %d", name, len(results))
	}
	return results[0], nil
}
