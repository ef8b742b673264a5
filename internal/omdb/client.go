package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.omdbapi.com"

// DefaultTimeout bounds a single metadata lookup.
const DefaultTimeout = 5 * time.Second

// searchLimit caps the number of search candidates taken from a provider
// response. Provider order is preserved.
const searchLimit = 10

// noneSentinel is OMDb's marker for an absent field value.
const noneSentinel = "N/A"

var (
	// ErrNotFound is returned when the provider explicitly reports no match.
	ErrNotFound = errors.New("movie not found")

	// ErrUpstream is returned on transport failures, timeouts, and
	// malformed provider responses.
	ErrUpstream = errors.New("metadata provider unavailable")
)

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new OMDb client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search performs a free-text search and returns at most 10 candidates
// in provider order. Returns ErrNotFound when the provider reports no
// matches.
func (c *Client) Search(ctx context.Context, term string) ([]SearchItem, error) {
	var env searchEnvelope
	if err := c.get(ctx, url.Values{"s": {term}}, &env); err != nil {
		return nil, err
	}
	if env.Response != "True" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, env.Error)
	}

	entries := env.Search
	if len(entries) > searchLimit {
		entries = entries[:searchLimit]
	}

	items := make([]SearchItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, SearchItem{
			IMDBID: e.IMDBID,
			Title:  e.Title,
			Year:   startYear(e.Year),
			Poster: blankSentinel(e.Poster),
		})
	}
	return items, nil
}

// GetByID fetches a movie record by IMDb ID.
// Returns ErrNotFound when the provider does not know the ID.
func (c *Client) GetByID(ctx context.Context, imdbID string) (*Movie, error) {
	return c.getMovie(ctx, url.Values{"i": {imdbID}})
}

// GetByTitle fetches a movie record by exact title.
// Returns ErrNotFound when the provider has no match.
func (c *Client) GetByTitle(ctx context.Context, title string) (*Movie, error) {
	return c.getMovie(ctx, url.Values{"t": {title}})
}

func (c *Client) getMovie(ctx context.Context, params url.Values) (*Movie, error) {
	var env movieEnvelope
	if err := c.get(ctx, params, &env); err != nil {
		return nil, err
	}
	if env.Response != "True" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, env.Error)
	}

	return &Movie{
		IMDBID: env.IMDBID,
		Title:  env.Title,
		Year:   env.Year,
		Genre:  firstGenre(env.Genre),
		Plot:   env.Plot,
		Poster: blankSentinel(env.Poster),
		Rating: env.IMDBRating,
	}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, v any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", ErrUpstream, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}

// startYear extracts the start year from a release-year range like
// "2008–2013" (OMDb separates ranges with an en dash).
func startYear(year string) string {
	start, _, _ := strings.Cut(year, "–")
	return start
}

// blankSentinel maps OMDb's "N/A" marker to an empty string.
func blankSentinel(s string) string {
	if s == noneSentinel {
		return ""
	}
	return s
}

// firstGenre takes the first entry of a comma-separated genre list,
// trimmed and lowercased.
func firstGenre(genre string) string {
	first, _, _ := strings.Cut(genre, ",")
	return strings.ToLower(strings.TrimSpace(first))
}
