// Package unisat reads chain state from the UniSat open API and adapts it to
// the inscriber's data source contract.
package unisat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"go.uber.org/ratelimit"
)

const (
	defaultPageSize = 100
	defaultTimeout  = 30 * time.Second
	maxErrorBody    = 512
)

// Config configures the HTTP client.
type Config struct {
	BaseURL    string
	ContentURL string
	APIKey     string
	RPS        int
	Timeout    time.Duration
}

// DefaultBaseURL returns the public endpoint of the open API for network.
func DefaultBaseURL(network model.Network) string {
	switch network {
	case model.Mainnet:
		return "https://open-api.unisat.io"
	case model.Signet:
		return "https://open-api-signet.unisat.io"
	default:
		return "https://open-api-testnet.unisat.io"
	}
}

// DefaultContentURL returns the host serving inscription content for network.
func DefaultContentURL(network model.Network) string {
	switch network {
	case model.Mainnet:
		return "https://static.unisat.io"
	case model.Signet:
		return "https://static-signet.unisat.io"
	default:
		return "https://static-testnet.unisat.io"
	}
}

// Client is a rate limited open API client.
type Client struct {
	baseURL    string
	contentURL string
	apiKey     string
	http       *http.Client
	limiter    ratelimit.Limiter
}

// NewClient builds a client. A non-positive RPS disables throttling.
func NewClient(cfg Config) *Client {
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		contentURL: strings.TrimRight(cfg.ContentURL, "/"),
		apiKey:     cfg.APIKey,
		http:       &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

// BlockchainInfo returns the indexed chain tip.
func (c *Client) BlockchainInfo(ctx context.Context) (BlockchainInfo, error) {
	var out BlockchainInfo
	err := c.get(ctx, "blockchain_info", "/v1/indexer/blockchain/info", nil, &out)
	return out, err
}

// AddressBalance returns the confirmed and pending balance of address.
func (c *Client) AddressBalance(ctx context.Context, address string) (Balance, error) {
	var out Balance
	err := c.get(ctx, "address_balance", "/v1/indexer/address/"+url.PathEscape(address)+"/balance", nil, &out)
	return out, err
}

// AddressUTXOs returns every unspent output of address, walking all pages.
func (c *Client) AddressUTXOs(ctx context.Context, address string) ([]UTXO, error) {
	var utxos []UTXO
	cursor := 0
	for {
		var page utxoPage
		query := url.Values{
			"cursor": {strconv.Itoa(cursor)},
			"size":   {strconv.Itoa(defaultPageSize)},
		}
		if err := c.get(ctx, "address_utxos", "/v1/indexer/address/"+url.PathEscape(address)+"/all-utxo-data", query, &page); err != nil {
			return nil, err
		}
		utxos = append(utxos, page.UTXO...)
		cursor += len(page.UTXO)
		if len(page.UTXO) == 0 || cursor >= page.Total {
			return utxos, nil
		}
	}
}

// InscriptionInfo returns an inscription with the output carrying it.
func (c *Client) InscriptionInfo(ctx context.Context, id string) (Inscription, error) {
	var out Inscription
	err := c.get(ctx, "inscription_info", "/v1/indexer/inscription/info/"+url.PathEscape(id), nil, &out)
	return out, err
}

// UTXOInscriptions lists the inscriptions on an output in inscription order.
func (c *Client) UTXOInscriptions(ctx context.Context, txid string, vout uint32) ([]Inscription, error) {
	var out []Inscription
	path := fmt.Sprintf("/v1/indexer/utxo/%s/%d/inscriptions", url.PathEscape(txid), vout)
	err := c.get(ctx, "utxo_inscriptions", path, nil, &out)
	return out, err
}

// AddressInscriptions returns up to size inscriptions owned by address.
func (c *Client) AddressInscriptions(ctx context.Context, address string, cursor, size int) ([]Inscription, error) {
	var page inscriptionPage
	query := url.Values{
		"cursor": {strconv.Itoa(cursor)},
		"size":   {strconv.Itoa(size)},
	}
	if err := c.get(ctx, "address_inscriptions", "/v1/indexer/address/"+url.PathEscape(address)+"/inscription-data", query, &page); err != nil {
		return nil, err
	}
	return page.Inscription, nil
}

// PushTx relays a signed transaction and returns its txid. A rejection by the
// backend is a *model.RelayError.
func (c *Client) PushTx(ctx context.Context, txHex string) (string, error) {
	body, err := json.Marshal(pushTxRequest{TxHex: txHex})
	if err != nil {
		return "", err
	}
	var txid string
	err = c.do(ctx, "push_tx", http.MethodPost, c.baseURL+"/v1/indexer/local_pushtx", bytes.NewReader(body), &txid)
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "", &model.RelayError{Reason: apiErr.Msg}
	}
	return txid, err
}

// Content downloads the raw body of an inscription. contentRef is the content
// URL reported by the indexer and may be empty.
func (c *Client) Content(ctx context.Context, id, contentRef string) ([]byte, error) {
	target := contentRef
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.contentURL + "/content/" + url.PathEscape(id)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(req)
	if err != nil {
		return nil, &model.NetworkError{Op: "content", Err: err}
	}
	defer resp.Body.Close()
	if err := statusError("content", resp); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.NetworkError{Op: "content", Err: err}
	}
	return body, nil
}

// APIError is a response whose envelope code is not zero.
type APIError struct {
	Op   string
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unisat %s: code %d: %s", e.Op, e.Code, e.Msg)
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.do(ctx, op, http.MethodGet, target, nil, out)
}

func (c *Client) do(ctx context.Context, op, method, target string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.send(req)
	if err != nil {
		return &model.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	if err := statusError(op, resp); err != nil {
		return err
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("unisat %s: decode response: %w", op, err)
	}
	if env.Code != 0 {
		return &APIError{Op: op, Code: env.Code, Msg: env.Msg}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("unisat %s: decode data: %w", op, err)
	}
	return nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	c.limiter.Take()
	return c.http.Do(req)
}

func statusError(op string, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("unisat %s: %w", op, model.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return &model.NetworkError{Op: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
	case resp.StatusCode >= http.StatusBadRequest:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("unisat %s: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(msg)))
	default:
		return nil
	}
}
