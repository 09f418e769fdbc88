// Package geo resolves client IP addresses through the ip-api.com JSON API.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"saldo-ledger/config"
	"saldo-ledger/internal/core/domain"

	"golang.org/x/time/rate"
)

// ErrLookupFailed is returned when the provider answers with status "fail".
var ErrLookupFailed = errors.New("geo lookup failed")

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type ipAPIResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Query       string  `json:"query"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	AS          string  `json:"as"`
	Proxy       bool    `json:"proxy"`
	Hosting     bool    `json:"hosting"`
}

// IPAPIClient implements ports.GeoProvider. Outbound calls are throttled to
// the provider's free-tier quota.
type IPAPIClient struct {
	baseURL string
	fields  string
	timeout time.Duration
	client  HTTPClient
	limiter *rate.Limiter
}

// NewIPAPIClient creates a provider client from configuration.
func NewIPAPIClient(cfg config.GeoConfig, client HTTPClient) *IPAPIClient {
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 45
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &IPAPIClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		fields:  cfg.Fields,
		timeout: cfg.Timeout,
		client:  client,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

// Lookup resolves ip. It waits for the rate limiter, so callers should bound ctx.
func (c *IPAPIClient) Lookup(ctx context.Context, ip string) (*domain.GeoData, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geo rate limit wait: %w", err)
	}

	endpoint := c.baseURL + "/" + url.PathEscape(ip)
	if c.fields != "" {
		endpoint += "?fields=" + url.QueryEscape(c.fields)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo provider returned status %d", resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode geo response: %w", err)
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrLookupFailed, body.Message)
	}

	return &domain.GeoData{
		IP:          ip,
		Country:     body.Country,
		CountryCode: body.CountryCode,
		Region:      body.RegionName,
		City:        body.City,
		Latitude:    body.Lat,
		Longitude:   body.Lon,
		Timezone:    body.Timezone,
		ISP:         body.ISP,
		Org:         body.Org,
		ASN:         body.AS,
		IsVPNProxy:  body.Proxy || body.Hosting,
	}, nil
}
