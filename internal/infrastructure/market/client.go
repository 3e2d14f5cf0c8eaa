package market

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/aqualens/backend/internal/domain"
)

// Client fetches marketplace search result pages and extracts listings from
// them. It implements domain.ListingSource.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	acceptLanguage string
	rateLimiter    *rate.Limiter
	debug          bool
}

// ClientConfig holds marketplace client configuration
type ClientConfig struct {
	BaseURL           string
	UserAgent         string
	AcceptLanguage    string
	Timeout           time.Duration
	RequestsPerMinute int
}

// NewClient creates a new marketplace client
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	// Marketplaces throttle aggressive crawlers, so requests are paced with
	// a token bucket instead of fixed sleeps.
	perMinute := config.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 2)

	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		baseURL:        config.BaseURL,
		userAgent:      config.UserAgent,
		acceptLanguage: config.AcceptLanguage,
		rateLimiter:    limiter,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// FetchListings fetches the search results page for one term and extracts
// its product listings.
func (c *Client) FetchListings(ctx context.Context, searchTerm string) ([]domain.Listing, error) {
	body, err := c.fetchSearchPage(ctx, searchTerm)
	if err != nil {
		return nil, err
	}

	listings, err := ExtractListings(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMarketUnavailable, err)
	}

	if c.debug {
		log.Printf("[MARKET] Extracted %d listings for %q", len(listings), searchTerm)
	}

	return listings, nil
}

// fetchSearchPage performs the rate-limited GET with retries for transient
// failures.
func (c *Client) fetchSearchPage(ctx context.Context, searchTerm string) ([]byte, error) {
	params := url.Values{}
	params.Add("k", searchTerm)
	params.Add("ref", "nb_sb_noss_1")
	reqURL := fmt.Sprintf("%s/s?%s", c.baseURL, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, status, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[MARKET] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			sleepBackoff(ctx, attempt)
			continue
		}

		if status != http.StatusOK {
			if c.debug {
				log.Printf("[MARKET] Status %d (attempt %d) for %q", status, attempt, searchTerm)
			}
			if status == http.StatusNotFound {
				return nil, fmt.Errorf("%w: status %d", domain.ErrMarketUnavailable, status)
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrMarketUnavailable, status)
			sleepBackoff(ctx, attempt)
			continue
		}

		return body, nil
	}

	return nil, lastErr
}

func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrMarketUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrMarketUnavailable, err)
	}

	return body, resp.StatusCode, nil
}

func sleepBackoff(ctx context.Context, attempt int) {
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(attempt*500) * time.Millisecond):
	}
}
