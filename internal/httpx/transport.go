// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httpx provides the rate-limited, retrying, caching HTTP
// transport shared by every source adapter. A single Transport is created
// at CLI entry and threaded through the orchestrator and adapters (see
// §4.1 of SPEC_FULL.md on process-wide singletons).
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	maxBackoff     = 30 * time.Second
)

// llmSourceKeys identifies sources whose responses are never cached.
var llmSourceKeys = map[string]bool{
	"openai": true,
	"ollama": true,
}

// Response is a normalized HTTP response: status, headers, and a decoded
// body (JSON when the content-type says so, otherwise raw text).
type Response struct {
	Status int
	Header http.Header
	JSON   json.RawMessage
	Text   string
}

// IsJSON reports whether the response body was decoded as JSON.
func (r *Response) IsJSON() bool { return len(r.JSON) > 0 }

// Error is returned for non-retryable (fatal) transport failures, or the
// final failure of a retryable one after retries are exhausted.
type Error struct {
	Status    int
	Body      string
	Retryable bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Body)
}

// Transport is the process-wide rate-limited, retrying, caching HTTP
// client shared across all source adapters.
type Transport struct {
	client    *http.Client
	limiters  *limiterSet
	cache     *Cache
	userAgent string
	logger    zerolog.Logger

	mu     sync.Mutex
	counts map[string]int
}

// Option configures a Transport.
type Option func(*Transport)

// WithCache attaches a response cache. Omit to disable caching entirely
// (equivalent to --no-cache).
func WithCache(c *Cache) Option {
	return func(t *Transport) { t.cache = c }
}

// WithLogger attaches a structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Transport) { t.logger = l }
}

// New creates a Transport with the given per-request timeout and
// User-Agent string (already formatted as "PaperGraph/<version>
// (mailto:<email>)").
func New(timeout time.Duration, userAgent string, opts ...Option) *Transport {
	t := &Transport{
		client:    &http.Client{Timeout: timeout},
		limiters:  newLimiterSet(),
		userAgent: userAgent,
		logger:    zerolog.Nop(),
		counts:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RequestCounts returns a snapshot of the number of requests issued per
// source key.
func (t *Transport) RequestCounts() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

func (t *Transport) countRequest(source string) {
	t.mu.Lock()
	t.counts[source]++
	t.mu.Unlock()
}

// Get issues a rate-limited, retrying, cached GET request against url,
// attributing throttling and caching to sourceKey.
func (t *Transport) Get(ctx context.Context, sourceKey, url string, headers map[string]string) (*Response, error) {
	return t.do(ctx, sourceKey, http.MethodGet, url, nil, headers)
}

// Post issues a rate-limited, retrying POST request against url with the
// given body. POST responses participate in the cache keyed on url+body.
func (t *Transport) Post(ctx context.Context, sourceKey, url string, body []byte, headers map[string]string) (*Response, error) {
	return t.do(ctx, sourceKey, http.MethodPost, url, body, headers)
}

func (t *Transport) do(ctx context.Context, sourceKey, method, url string, body []byte, headers map[string]string) (*Response, error) {
	cacheable := t.cache != nil && !llmSourceKeys[sourceKey]
	var cacheKey string
	if cacheable {
		cacheKey = Key(url, body)
		if cached, ok := t.cache.Get(cacheKey); ok {
			return decodeCached(cached)
		}
	}

	limiter := t.limiters.forSource(sourceKey)
	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	requestLogger := t.logger.With().Str("request_id", uuid.NewString()).Logger()

	resp, err := t.doWithRetry(ctx, requestLogger, sourceKey, method, url, body, headers)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if raw, err := json.Marshal(resp); err == nil {
			_ = t.cache.Put(cacheKey, url, raw)
		}
	}

	return resp, nil
}

func (t *Transport) doWithRetry(ctx context.Context, logger zerolog.Logger, sourceKey, method, url string, body []byte, headers map[string]string) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, retryAfter, err := t.attempt(ctx, sourceKey, method, url, body, headers)
		if err == nil {
			return resp, nil
		}

		httpErr, retryable := classify(err)
		lastErr = httpErr
		if !retryable || attempt == maxRetries {
			return nil, lastErr
		}

		backoff := computeBackoff(attempt, retryAfter)
		logger.Warn().Str("source", sourceKey).Int("attempt", attempt+1).
			Dur("backoff", backoff).Msg("retrying request")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, lastErr
}

// attempt issues one HTTP round trip. It returns a parsed Retry-After
// duration (zero if absent) alongside any error so the retry loop can
// honor it.
func (t *Transport) attempt(ctx context.Context, sourceKey, method, url string, body []byte, headers map[string]string) (*Response, time.Duration, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, 0, &Error{Status: 0, Body: err.Error(), Retryable: false}
	}
	req.Header.Set("User-Agent", t.userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	t.countRequest(sourceKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, &Error{Status: 0, Body: err.Error(), Retryable: isNetworkRetryable(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &Error{Status: resp.StatusCode, Body: err.Error(), Retryable: true}
	}

	if isRetryableStatus(resp.StatusCode) {
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, retryAfter, &Error{Status: resp.StatusCode, Body: string(raw), Retryable: true}
	}

	if resp.StatusCode >= 400 {
		return nil, 0, &Error{Status: resp.StatusCode, Body: string(raw), Retryable: false}
	}

	out := &Response{Status: resp.StatusCode, Header: resp.Header}
	if isJSONContentType(resp.Header.Get("Content-Type")) {
		out.JSON = json.RawMessage(raw)
	} else {
		out.Text = string(raw)
	}
	return out, 0, nil
}

func classify(err error) (*Error, bool) {
	if httpErr, ok := err.(*Error); ok {
		return httpErr, httpErr.Retryable
	}
	return &Error{Status: 0, Body: err.Error(), Retryable: false}, false
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func isNetworkRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"timeout", "connection reset", "connection refused", "eof", "no such host"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// computeBackoff returns min(maxBackoff, initial*2^attempt + jitter),
// overridden by retryAfter when positive.
func computeBackoff(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}

	base := float64(initialBackoff) * pow2(attempt)
	jitter := rand.Float64() * base * 0.5
	d := time.Duration(base + jitter)
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func pow2(n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= 2
	}
	return result
}

// parseRetryAfter accepts both integer-seconds and HTTP-date forms.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		d := time.Until(t)
		if d > 0 {
			return d
		}
	}
	return 0
}

func decodeCached(raw json.RawMessage) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decoding cached response: %w", err)
	}
	return &resp, nil
}
