// Package spoonacular is the only component that talks to the recipe API.
//
// All three operations share one FetchStatus: a call clears the last error
// and marks the client as loading, and only the most recently issued call may
// settle that status. Older calls still return their own result to the
// caller but leave the shared status untouched.
package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/sanitize"
)

// Defaults
const (
	DefaultBaseURL         = "https://api.spoonacular.com"
	DefaultRequestsPerSec  = 5
	DefaultBurst           = 5
	DefaultDetailCacheSize = 64
	DefaultTimeout         = 30 * time.Second
)

// maxBodyBytes bounds how much of a response is read
const maxBodyBytes = 8 << 20

// Option configures the Client.
type Option func(*Client)

// WithBaseURL points the client at another API host.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRateLimit paces outgoing requests. rate.Inf disables pacing.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(limit, burst) }
}

// WithDetailCacheSize sets how many recipe details are kept in memory.
// Zero disables the cache.
func WithDetailCacheSize(size int) Option {
	return func(c *Client) { c.cacheSize = size }
}

// Client calls the Spoonacular REST API.
type Client struct {
	baseURL   string
	http      *http.Client
	log       logr.Logger
	limiter   *rate.Limiter
	cacheSize int
	details   *lru.Cache[int, *model.RecipeDetail]
	group     singleflight.Group

	mu        sync.Mutex
	latest    uint64
	status    model.FetchStatus
	listeners []func(model.FetchStatus)
}

// NewClient creates a client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: DefaultTimeout},
		log:       logr.Discard(),
		limiter:   rate.NewLimiter(DefaultRequestsPerSec, DefaultBurst),
		cacheSize: DefaultDetailCacheSize,
	}
	for _, o := range opts {
		o(c)
	}
	if c.cacheSize > 0 {
		// only fails for a non-positive size
		c.details, _ = lru.New[int, *model.RecipeDetail](c.cacheSize)
	}
	return c
}

// Status returns the shared in-flight state.
func (c *Client) Status() model.FetchStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// OnStatusChange registers a callback invoked on every status transition.
// Callbacks run on the goroutine that made the call.
func (c *Client) OnStatusChange(callback func(model.FetchStatus)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, callback)
}

// SearchByText searches recipes by name with the given filters.
func (c *Client) SearchByText(ctx context.Context, credential, query string, filters model.FilterState, pageSize int) (model.SearchResult, error) {
	if credential == "" {
		c.reject()
		return model.SearchResult{}, ErrMissingCredential
	}

	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if filters.Diet != model.DietNone {
		params.Set("diet", string(filters.Diet))
	}
	if v := filters.IntoleranceParam(); v != "" {
		params.Set("intolerances", v)
	}
	if filters.MaxReadyTime != model.NoTimeLimit {
		params.Set("maxReadyTime", strconv.Itoa(filters.MaxReadyTime))
	}
	if pageSize > 0 {
		params.Set("number", strconv.Itoa(pageSize))
	}
	params.Set("apiKey", credential)

	seq := c.begin()
	var result model.SearchResult
	err := c.get(ctx, "/recipes/complexSearch", params, &result)
	if err != nil {
		result = model.SearchResult{}
	}
	c.settle(seq, err)
	return result, err
}

// SearchByIngredients finds recipes that use the comma-separated
// ingredients. The list is sent as typed, only URL-escaped.
func (c *Client) SearchByIngredients(ctx context.Context, credential, ingredients string, pageSize int) ([]model.RecipeSummary, error) {
	if credential == "" {
		c.reject()
		return []model.RecipeSummary{}, ErrMissingCredential
	}

	params := url.Values{}
	params.Set("ingredients", ingredients)
	if pageSize > 0 {
		params.Set("number", strconv.Itoa(pageSize))
	}
	params.Set("apiKey", credential)

	seq := c.begin()
	var recipes []model.RecipeSummary
	err := c.get(ctx, "/recipes/findByIngredients", params, &recipes)
	if err != nil || recipes == nil {
		recipes = []model.RecipeSummary{}
	}
	c.settle(seq, err)
	return recipes, err
}

// FetchDetail returns the full record for a recipe. Details are cached, so
// reopening a recipe does not spend API quota.
func (c *Client) FetchDetail(ctx context.Context, credential string, id int) (*model.RecipeDetail, error) {
	if credential == "" {
		c.reject()
		return nil, ErrMissingCredential
	}

	seq := c.begin()

	if c.details != nil {
		if cached, ok := c.details.Get(id); ok {
			c.log.V(1).Info("detail cache hit", "recipeID", id)
			c.settle(seq, nil)
			out := *cached
			return &out, nil
		}
	}

	params := url.Values{}
	params.Set("apiKey", credential)

	var detail model.RecipeDetail
	if err := c.get(ctx, "/recipes/"+strconv.Itoa(id)+"/information", params, &detail); err != nil {
		c.settle(seq, err)
		return nil, err
	}

	detail.Instructions = sanitize.Text(detail.Instructions)
	detail.Summary = sanitize.Text(detail.Summary)

	if c.details != nil {
		stored := detail
		c.details.Add(id, &stored)
	}

	c.settle(seq, nil)
	return &detail, nil
}

// begin claims a new sequence number and publishes the loading state.
func (c *Client) begin() uint64 {
	c.mu.Lock()
	c.latest++
	seq := c.latest
	c.status = model.FetchStatus{Loading: true}
	st, listeners := c.status, c.snapshotListeners()
	c.mu.Unlock()

	publish(listeners, st)
	return seq
}

// settle records the outcome of call seq if it is still the latest.
func (c *Client) settle(seq uint64, err error) {
	c.mu.Lock()
	if seq != c.latest {
		c.mu.Unlock()
		c.log.V(1).Info("superseded call settled silently", "seq", seq)
		return
	}
	c.status = model.FetchStatus{Err: err}
	st, listeners := c.status, c.snapshotListeners()
	c.mu.Unlock()

	publish(listeners, st)
}

// reject records a missing credential. It supersedes any outstanding call
// without ever entering the loading state.
func (c *Client) reject() {
	c.mu.Lock()
	c.latest++
	c.status = model.FetchStatus{Err: ErrMissingCredential}
	st, listeners := c.status, c.snapshotListeners()
	c.mu.Unlock()

	publish(listeners, st)
}

// snapshotListeners must be called with c.mu held.
func (c *Client) snapshotListeners() []func(model.FetchStatus) {
	return append([]func(model.FetchStatus){}, c.listeners...)
}

func publish(listeners []func(model.FetchStatus), st model.FetchStatus) {
	for _, l := range listeners {
		l(st)
	}
}

// get performs a GET and decodes the JSON body into dst. Identical requests
// in flight at the same time share one round trip.
func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	v, err, shared := c.group.Do(reqURL, func() (any, error) {
		return c.fetch(ctx, path, reqURL)
	})
	if err != nil {
		return err
	}
	if shared {
		c.log.V(1).Info("joined in-flight request", "path", path)
	}

	if err := json.Unmarshal(v.([]byte), dst); err != nil {
		return &TransportError{Err: fmt.Errorf("decode %s: %w", path, err)}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path, reqURL string) ([]byte, error) {
	requestID := uuid.NewString()
	log := c.log.WithValues("requestID", requestID, "path", path)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("rate limiter: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	log.V(1).Info("request started")

	resp, err := c.http.Do(req)
	if err != nil {
		// keep the API key out of logs and error messages
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.baseURL + path
		}
		log.Error(err, "request failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		log.Info("request rejected", "status", resp.StatusCode)
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	log.V(1).Info("request finished", "status", resp.StatusCode, "elapsed", time.Since(start))
	return body, nil
}
