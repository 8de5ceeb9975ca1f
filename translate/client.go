// Package translate is a client for the Google Translate v2 REST API.
//
// It enforces the service's request size limits before any network call and
// switches between GET and POST (LargeQuery) to accommodate them:
//
//	c, err := translate.New(key)
//	if err != nil {
//		return err
//	}
//	results, err := c.Translate(ctx, translate.Automatic, translate.German, "Hello there")
//
// A Client carries no locking. PrettyPrint and LargeQuery may be changed
// between calls, but not while another goroutine has a call in flight.
package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the service endpoint used unless WithBaseURL is given.
const DefaultBaseURL = "https://www.googleapis.com/language/translate/v2"

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the translation service.
type Client struct {
	key        string
	baseURL    string
	httpClient Doer
	logger     *zap.Logger

	// PrettyPrint asks the service for human-readable output. Nil leaves
	// the parameter out and the service default applies.
	PrettyPrint *bool

	// LargeQuery sends requests as POST, raising the size ceiling from
	// MaxQueryLength to MaxLargeQueryLength. Nil means false.
	LargeQuery *bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets the transport used for every call.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithPrettyPrint(v bool) Option {
	return func(c *Client) { c.PrettyPrint = Bool(v) }
}

func WithLargeQuery(v bool) Option {
	return func(c *Client) { c.LargeQuery = Bool(v) }
}

// Bool returns a pointer to v, for the optional configuration flags.
func Bool(v bool) *bool {
	return &v
}

// New creates a Client for key. It fails with ErrMissingKey when key is
// empty.
func New(key string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrMissingKey
	}

	c := &Client{
		key:        key,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) largeQuery() bool {
	return c.LargeQuery != nil && *c.LargeQuery
}

// Limit returns the largest combined text length the current configuration
// accepts.
func (c *Client) Limit() int {
	if c.largeQuery() {
		return MaxLargeQueryLength
	}
	return MaxQueryLength - 1
}

// Translate translates texts from source to target. Pass Automatic as source
// to let the service detect it. Results are in input order.
func (c *Client) Translate(ctx context.Context, source, target Language, texts ...string) ([]Translation, error) {
	largeQuery := c.largeQuery()
	if err := checkSize(texts, largeQuery); err != nil {
		return nil, err
	}

	req := newRequest(functionTranslate, c.key, c.PrettyPrint, largeQuery)
	req.addTexts(texts)
	req.params.Set("target", target.Code())
	if source != Automatic {
		req.params.Set("source", source.Code())
	}

	var data translateData
	if err := c.do(ctx, req, len(texts), &data); err != nil {
		return nil, err
	}
	return data.Translations, nil
}

// DetectLanguage returns the language guesses for every text, flattened in
// input order. A text may produce more than one guess.
func (c *Client) DetectLanguage(ctx context.Context, texts ...string) ([]Detection, error) {
	largeQuery := c.largeQuery()
	if err := checkSize(texts, largeQuery); err != nil {
		return nil, err
	}

	req := newRequest(functionDetect, c.key, c.PrettyPrint, largeQuery)
	req.addTexts(texts)

	var data detectData
	if err := c.do(ctx, req, len(texts), &data); err != nil {
		return nil, err
	}
	return flattenDetections(data.Detections), nil
}

// SupportedLanguages lists the languages the service supports. When target
// is not Unknown, entries carry their name in that language.
func (c *Client) SupportedLanguages(ctx context.Context, target Language) ([]SupportedLanguage, error) {
	req := newRequest(functionLanguages, c.key, c.PrettyPrint, c.largeQuery())
	if target != Unknown && target != Automatic {
		req.params.Set("target", target.Code())
	}

	var data languagesData
	if err := c.do(ctx, req, 0, &data); err != nil {
		return nil, err
	}
	return data.Languages, nil
}

func (c *Client) do(ctx context.Context, r *request, texts int, out any) error {
	httpReq, err := r.httpRequest(ctx, c.baseURL)
	if err != nil {
		return err
	}

	c.logger.Debug("calling translation service",
		zap.String("method", r.method),
		zap.String("function", r.function),
		zap.Int("texts", texts),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("translation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := decodeResponse(resp.StatusCode, body, out); err != nil {
		c.logger.Warn("translation service call failed",
			zap.String("function", r.function),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return err
	}
	return nil
}
