package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Payload is the quote endpoint's response shape. Price carries the current
// price; PreviousClose is used when Price is absent. A populated Error means
// the endpoint rejected the symbol.
type Payload struct {
	Price         float64 `json:"price"`
	PreviousClose float64 `json:"previousClose"`
	Error         *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Fetcher performs a single network round trip for a ticker's live price.
type Fetcher interface {
	FetchQuote(ctx context.Context, symbol string) (*Payload, error)
	Name() string
}

// HTTPFetcher implements Fetcher against a REST quote endpoint.
type HTTPFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPFetcher creates a fetcher with optional proxy support. Per-request
// deadlines come from the caller's context; the client itself carries no
// timeout so the acquisition layer stays in control of cancellation.
func NewHTTPFetcher(baseURL, apiKey, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Transport: transport},
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

// FetchQuote performs one GET against the quote endpoint. Cancelling the
// context aborts the request in flight.
func (f *HTTPFetcher) FetchQuote(ctx context.Context, symbol string) (*Payload, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quote?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read quote body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch quote: status %d, body: %s", resp.StatusCode, string(body))
	}
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}
	return &payload, nil
}

// offlineFetcher always fails, forcing the synthetic fallback. Used when no
// endpoint is configured.
type offlineFetcher struct{}

// NewOfflineFetcher returns a Fetcher with no network path.
func NewOfflineFetcher() Fetcher { return offlineFetcher{} }

func (offlineFetcher) Name() string { return "offline" }

func (offlineFetcher) FetchQuote(_ context.Context, symbol string) (*Payload, error) {
	return nil, fmt.Errorf("no quote endpoint configured for %s", symbol)
}
