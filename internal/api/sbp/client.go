package sbp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpClient "github.com/Alias1177/RateShift/internal/platform/http"
	"github.com/Alias1177/RateShift/models"
)

// DefaultBaseURL is the State Bank of Pakistan home page, which carries the policy rate table
const DefaultBaseURL = "https://www.sbp.org.pk"

// maxBodySize caps how much of the page is read before parsing
const maxBodySize = 2 << 20

// Fetch stages reported in FetchError
const (
	StageRequest = "request"
	StageStatus  = "status"
	StageRead    = "read"
	StageParse   = "parse"
)

// FetchError describes why the live policy rate could not be obtained
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("policy rate fetch failed at %s: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client scrapes the policy rate from the central bank web site
type Client struct {
	baseURL    string
	httpClient *httpClient.Client
	now        func() time.Time
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new SBP client
type ClientOptions struct {
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     int
	// Now supplies the date stamped on live snapshots; defaults to time.Now
	Now func() time.Time
}

// NewClient creates a new SBP client
func NewClient(options ClientOptions) *Client {
	httpOpts := httpClient.ClientOptions{
		Timeout:        options.RequestTimeout,
		RequestsPerSec: options.RequestsPerSec,
		MaxRetries:     options.MaxRetries,
	}

	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Client{
		baseURL:    options.BaseURL,
		httpClient: httpClient.NewClient(httpOpts),
		now:        options.Now,
		logger:     log.With().Str("component", "sbp_client").Logger(),
	}
}

// PolicyRate makes a single attempt to read the current policy rate.
// Every failure is returned as *FetchError.
func (c *Client) PolicyRate(ctx context.Context) (models.RateSnapshot, error) {
	c.logger.Debug().Str("url", c.baseURL).Msg("Fetching policy rate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return models.RateSnapshot{}, &FetchError{Stage: StageRequest, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		var statusErr *httpClient.HTTPStatusError
		if errors.As(err, &statusErr) {
			return models.RateSnapshot{}, &FetchError{Stage: StageStatus, Err: err}
		}
		return models.RateSnapshot{}, &FetchError{Stage: StageRequest, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return models.RateSnapshot{}, &FetchError{Stage: StageRead, Err: fmt.Errorf("reading response body: %w", err)}
	}

	rate, err := ParsePolicyRate(body)
	if err != nil {
		c.logger.Warn().Err(err).Int("bytes", len(body)).Msg("Policy rate not found in page")
		return models.RateSnapshot{}, &FetchError{Stage: StageParse, Err: err}
	}

	now := c.now().UTC()
	snapshot := models.RateSnapshot{
		Rate: rate,
		AsOf: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	c.logger.Debug().Float64("rate", rate).Msg("Fetched policy rate")
	return snapshot, nil
}
