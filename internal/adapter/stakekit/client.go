package stakekit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"aevia-legacy/config"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var providerRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "aevia_stakekit_request_duration_seconds",
		Help:    "Latency of staking provider requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation", "outcome"},
)

// Client implements ports.StakingProvider over the StakeKit REST API.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	maxAttempts  int
	initialDelay time.Duration
	log          zerolog.Logger
}

// NewClient creates a provider client from validated configuration.
func NewClient(cfg config.StakeKitConfig, log zerolog.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: cfg.ConnectTimeout, KeepAlive: 30 * time.Second}).DialContext
	transport.TLSHandshakeTimeout = cfg.ConnectTimeout

	return newClient(cfg, &http.Client{Transport: transport, Timeout: cfg.Timeout}, log)
}

func newClient(cfg config.StakeKitConfig, httpClient *http.Client, log zerolog.Logger) *Client {
	attempts := cfg.RetryMaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		httpClient:   httpClient,
		maxAttempts:  attempts,
		initialDelay: cfg.RetryInitialInterval,
		log:          log.With().Str("component", "stakekit").Logger(),
	}
}

// GetYieldInfo fetches integration metadata: token, minimum and validators.
func (c *Client) GetYieldInfo(ctx context.Context, integrationID string) (*domain.YieldInfo, error) {
	var resp yieldResponse
	if err := c.do(ctx, "yield_info", http.MethodGet, "/yields/"+url.PathEscape(integrationID), nil, &resp); err != nil {
		return nil, err
	}
	info, err := resp.toDomain()
	if err != nil {
		return nil, apperror.ErrMalformedTransaction(err)
	}
	return info, nil
}

// InitiateAction asks the provider for a staking plan.
func (c *Client) InitiateAction(ctx context.Context, req domain.ActionRequest) (*domain.ActionSession, error) {
	body := actionBody{
		IntegrationID: req.IntegrationID,
		Addresses:     addresses{Address: req.Address},
		Args: actionArgs{
			Amount:           req.Amount,
			ValidatorAddress: req.ValidatorAddress,
		},
	}
	if req.Kind == domain.ActionPending {
		body.Type = req.PendingType
		body.Passthrough = req.Passthrough
	}

	var resp actionResponse
	path := "/actions/" + string(req.Kind)
	if err := c.do(ctx, "action_"+string(req.Kind), http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// GetGasQuote fetches the fee modes for a network.
func (c *Client) GetGasQuote(ctx context.Context, network string) (*domain.GasQuote, error) {
	var resp gasResponse
	if err := c.do(ctx, "gas_quote", http.MethodGet, "/transactions/gas/"+url.PathEscape(network), nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Modes.Values) == 0 {
		return nil, apperror.ErrMalformedTransaction(fmt.Errorf("gas quote for %s has no modes", network))
	}
	return &domain.GasQuote{Modes: resp.Modes.Values}, nil
}

// AttachGas binds gas arguments to a transaction and returns the descriptor
// to sign.
func (c *Client) AttachGas(ctx context.Context, txID string, gasArgs json.RawMessage) (*domain.UnsignedTransaction, error) {
	var resp constructedTransaction
	if err := c.do(ctx, "attach_gas", http.MethodPatch, "/transactions/"+url.PathEscape(txID), attachGasBody{GasArgs: gasArgs}, &resp); err != nil {
		return nil, err
	}
	u, err := decodeUnsigned(resp.UnsignedTransaction)
	if err != nil {
		return nil, apperror.ErrMalformedTransaction(fmt.Errorf("transaction %s: %w", txID, err))
	}
	return u, nil
}

// SubmitSigned hands the signed raw transaction to the provider for broadcast.
func (c *Client) SubmitSigned(ctx context.Context, txID, signedHex string) error {
	return c.do(ctx, "submit", http.MethodPost, "/transactions/"+url.PathEscape(txID)+"/submit", submitBody{SignedTransaction: signedHex}, nil)
}

// PollStatus reads the current status of a submitted transaction.
func (c *Client) PollStatus(ctx context.Context, txID string) (*domain.TransactionStatusReport, error) {
	var resp statusResponse
	if err := c.do(ctx, "poll_status", http.MethodGet, "/transactions/"+url.PathEscape(txID)+"/status", nil, &resp); err != nil {
		return nil, err
	}
	status, err := domain.ParsePollStatus(resp.Status)
	if err != nil {
		return nil, apperror.ErrMalformedTransaction(fmt.Errorf("transaction %s: %w", txID, err))
	}
	return &domain.TransactionStatusReport{Status: status, URL: resp.URL, Hash: resp.Hash}, nil
}

// GetBalances lists the staking balances of address for an integration.
func (c *Client) GetBalances(ctx context.Context, integrationID, address string, validators []string) ([]domain.BalanceEntry, error) {
	body := balancesBody{
		Addresses: addresses{Address: address},
		Args:      actionArgs{ValidatorAddresses: validators},
	}

	var resp []balanceResponse
	if err := c.do(ctx, "balances", http.MethodPost, "/yields/"+url.PathEscape(integrationID)+"/balances", body, &resp); err != nil {
		return nil, err
	}

	entries := make([]domain.BalanceEntry, 0, len(resp))
	for i := range resp {
		e, err := resp[i].toDomain()
		if err != nil {
			return nil, apperror.ErrMalformedTransaction(err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

type rawResponse struct {
	status int
	body   []byte
}

// do sends one API call. Connection failures are retried with exponential
// backoff; HTTP answers are never retried.
func (c *Client) do(ctx context.Context, operation, method, path string, payload, result any) error {
	var reqBody []byte
	if payload != nil {
		var err error
		reqBody, err = json.Marshal(payload)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("marshal %s request: %w", operation, err))
		}
	}

	start := time.Now()
	attempt := 0
	send := func() (rawResponse, error) {
		attempt++
		var body io.Reader
		if reqBody != nil {
			body = bytes.NewReader(reqBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return rawResponse{}, backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-API-KEY", c.apiKey)
		if reqBody != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return rawResponse{}, backoff.Permanent(err)
			}
			c.log.Warn().Err(err).Str("operation", operation).Int("attempt", attempt).Msg("provider request failed")
			return rawResponse{}, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return rawResponse{}, err
		}
		return rawResponse{status: resp.StatusCode, body: b}, nil
	}

	raw, err := backoff.RetryWithData(send, c.retryPolicy(ctx))
	if err != nil {
		providerRequestDuration.WithLabelValues(operation, "unavailable").Observe(time.Since(start).Seconds())
		return apperror.ErrProviderUnavailable(fmt.Errorf("%s %s: %w", method, path, err))
	}

	if raw.status < 200 || raw.status > 299 {
		providerRequestDuration.WithLabelValues(operation, "http_error").Observe(time.Since(start).Seconds())
		c.log.Error().Str("operation", operation).Int("status", raw.status).
			Str("response", truncate(raw.body, 512)).Msg("provider returned error")
		return apperror.ErrProviderError(raw.status, errorMessage(raw.body))
	}

	if e, ok := embeddedErrorOf(raw.body); ok {
		providerRequestDuration.WithLabelValues(operation, "embedded_error").Observe(time.Since(start).Seconds())
		c.log.Error().Str("operation", operation).Int("code", e.Code).Str("message", e.Message).
			Msg("provider returned embedded error")
		code := e.Code
		if code == 0 {
			code = http.StatusBadRequest
		}
		return apperror.ErrProviderError(code, e.Message)
	}

	providerRequestDuration.WithLabelValues(operation, "ok").Observe(time.Since(start).Seconds())
	c.log.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("provider request completed")

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw.body, result); err != nil {
		return apperror.ErrMalformedTransaction(fmt.Errorf("decode %s response: %w", operation, err))
	}
	return nil
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if c.initialDelay > 0 {
		b.InitialInterval = c.initialDelay
	}
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxAttempts-1)), ctx)
}

// embeddedErrorOf detects a {"message": ...} object returned with a 2xx.
func embeddedErrorOf(body []byte) (embeddedError, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return embeddedError{}, false
	}
	var e embeddedError
	if err := json.Unmarshal(trimmed, &e); err != nil || e.Message == "" {
		return embeddedError{}, false
	}
	return e, true
}

func errorMessage(body []byte) string {
	var e embeddedError
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return truncate(body, 512)
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
