package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Alphavantage is a Stock and ETF API that provides fund holdings and company
// metadata. It is a subscription service, but provides free API access
// https://www.alphavantage.co/documentation/
const defaultBaseURL = "https://www.alphavantage.co/query"

// Client is an HTTP client for the AlphaVantage API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new AlphaVantage client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL creates a new AlphaVantage client with a custom base URL (for testing)
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetETFProfile fetches the holdings of an ETF. An unknown symbol returns an
// empty holdings slice, not an error: AlphaVantage responds with an empty
// object for tickers it doesn't cover.
func (c *Client) GetETFProfile(ctx context.Context, symbol string) ([]ParsedETFHolding, error) {
	params := url.Values{}
	params.Set("function", "ETF_PROFILE")
	params.Set("symbol", symbol)
	params.Set("apikey", c.apiKey)

	resp, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var etfResp ETFProfileResponse
	if err := json.Unmarshal(body, &etfResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	var holdings []ParsedETFHolding
	for _, h := range etfResp.Holdings {
		weight, _ := strconv.ParseFloat(h.Weight, 64)
		holdings = append(holdings, ParsedETFHolding{
			Symbol:     h.Symbol,
			Name:       h.Name,
			Percentage: weight,
		})
	}

	return holdings, nil
}

// GetCompanyOverview fetches company metadata for a symbol. An unknown
// symbol returns (nil, nil): AlphaVantage responds with an empty object.
func (c *Client) GetCompanyOverview(ctx context.Context, symbol string) (*ParsedCompanyOverview, error) {
	params := url.Values{}
	params.Set("function", "OVERVIEW")
	params.Set("symbol", symbol)
	params.Set("apikey", c.apiKey)

	resp, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var overview CompanyOverviewResponse
	if err := json.Unmarshal(body, &overview); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if overview.Symbol == "" {
		return nil, nil
	}

	return &ParsedCompanyOverview{
		Symbol: overview.Symbol,
		Name:   overview.Name,
		Sector: overview.Sector,
	}, nil
}

func (c *Client) doRequest(ctx context.Context, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return resp, nil
}
