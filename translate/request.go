package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxQueryLength is the exclusive ceiling for GET requests.
	MaxQueryLength = 2000
	// MaxLargeQueryLength is the inclusive ceiling for POST requests.
	MaxLargeQueryLength = 5000

	// MethodOverrideHeader tells the service to treat a POST as a GET.
	MethodOverrideHeader = "X-HTTP-Method-Override"
)

// Service functions, relative to the base URL.
const (
	functionTranslate = ""
	functionLanguages = "languages"
	functionDetect    = "detect"
)

// request is a transport-agnostic description of one service call.
type request struct {
	method   string
	function string
	params   url.Values
	header   http.Header
}

// TextLength returns the combined character count of texts.
func TextLength(texts []string) int {
	total := 0
	for _, t := range texts {
		total += utf8.RuneCountInString(t)
	}
	return total
}

// checkSize enforces the GET and POST ceilings on the combined text length.
func checkSize(texts []string, largeQuery bool) error {
	if len(texts) == 0 {
		return ErrNoText
	}

	total := TextLength(texts)
	if !largeQuery && total >= MaxQueryLength {
		return &SizeLimitError{Length: total, Limit: MaxQueryLength}
	}
	if total > MaxLargeQueryLength {
		return &SizeLimitError{Length: total, Limit: MaxLargeQueryLength, LargeQuery: largeQuery}
	}
	return nil
}

// newRequest starts a request for function with the parameters every call
// carries.
func newRequest(function, key string, prettyPrint *bool, largeQuery bool) *request {
	r := &request{
		method:   http.MethodGet,
		function: function,
		params:   url.Values{},
		header:   http.Header{},
	}
	if largeQuery {
		r.method = http.MethodPost
		r.header.Set(MethodOverrideHeader, http.MethodGet)
	}

	r.params.Set("key", key)
	if prettyPrint != nil {
		r.params.Set("prettyprint", strconv.FormatBool(*prettyPrint))
	}
	return r
}

func (r *request) addTexts(texts []string) {
	for _, q := range texts {
		r.params.Add("q", q)
	}
}

// httpRequest renders r against baseURL. GET carries the parameters in the
// query string, POST in a form-encoded body.
func (r *request) httpRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	target := strings.TrimRight(baseURL, "/")
	if r.function != "" {
		target += "/" + r.function
	}

	var (
		req *http.Request
		err error
	)
	encoded := r.params.Encode()
	if r.method == http.MethodPost {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(encoded))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target+"?"+encoded, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for name, values := range r.header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
