package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

// DefaultBaseURL is the public German holiday API.
const DefaultBaseURL = "https://feiertage-api.de/api/"

// Config holds the holiday client settings.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	// RetryBackoff is the wait before the first retry; it doubles on every
	// further attempt.
	RetryBackoff time.Duration
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		Timeout:      10 * time.Second,
		MaxRetries:   2,
		RetryBackoff: 500 * time.Millisecond,
	}
}

// Client fetches public holidays for every region.
type Client interface {
	// Fetch returns all holidays of the given year across all known regions.
	Fetch(ctx context.Context, year int) ([]domain.Holiday, error)
}

type feiertageClient struct {
	cfg  Config
	http *http.Client
}

// NewFeiertageClient creates a Client backed by the feiertage API.
func NewFeiertageClient(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = DefaultConfig().RetryBackoff
	}
	return &feiertageClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// apiHoliday is one entry of the response: state -> holiday name -> details.
type apiHoliday struct {
	Datum   string `json:"datum"`
	Hinweis string `json:"hinweis"`
}

type apiResponse map[string]map[string]apiHoliday

func (c *feiertageClient) Fetch(ctx context.Context, year int) ([]domain.Holiday, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, year)
		if err == nil {
			return toHolidays(resp)
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
		// A body that does not decode will not decode next time either.
		if errors.Is(err, ErrInvalidResponse) {
			return nil, err
		}
		if i < attempts-1 && !sleepCtx(ctx, c.cfg.RetryBackoff<<i) {
			break
		}
	}

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *feiertageClient) doRequest(ctx context.Context, year int) (apiResponse, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	q := u.Query()
	q.Set("jahr", strconv.Itoa(year))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday api returned status %d: %s", httpResp.StatusCode, string(body))
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return resp, nil
}

// toHolidays flattens the response, skipping unknown region keys. The result
// is ordered by state, then date, then name.
func toHolidays(resp apiResponse) ([]domain.Holiday, error) {
	out := make([]domain.Holiday, 0)
	for stateKey, byName := range resp {
		state := domain.RegionCode(stateKey)
		if !state.Valid() {
			continue
		}
		for name, h := range byName {
			if _, err := time.Parse(domain.HolidayDateLayout, h.Datum); err != nil {
				return nil, fmt.Errorf("%w: %s %q has date %q", ErrInvalidResponse, stateKey, name, h.Datum)
			}
			out = append(out, domain.Holiday{
				Date:        h.Datum,
				Name:        name,
				Description: h.Hinweis,
				State:       state,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

// sleepCtx waits for d and reports false when ctx ends first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
