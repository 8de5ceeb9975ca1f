package translate

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSize(t *testing.T) {
	tests := []struct {
		name       string
		texts      []string
		largeQuery bool
		wantLimit  int
	}{
		{"short", []string{"Hello"}, false, 0},
		{"1999", []string{strings.Repeat("x", 1999)}, false, 0},
		{"2000", []string{strings.Repeat("x", 2000)}, false, MaxQueryLength},
		{"2000 large", []string{strings.Repeat("x", 2000)}, true, 0},
		{"5000 large", []string{strings.Repeat("x", 5000)}, true, 0},
		{"5001 large", []string{strings.Repeat("x", 5001)}, true, MaxLargeQueryLength},
		{"6000", []string{strings.Repeat("x", 6000)}, false, MaxQueryLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSize(tt.texts, tt.largeQuery)
			if tt.wantLimit == 0 {
				assert.NoError(t, err)
				return
			}
			var sizeErr *SizeLimitError
			require.ErrorAs(t, err, &sizeErr)
			assert.Equal(t, tt.wantLimit, sizeErr.Limit)
			assert.Equal(t, tt.largeQuery, sizeErr.LargeQuery)
		})
	}
}

func TestSizeLimitErrorMessage(t *testing.T) {
	err := checkSize([]string{strings.Repeat("x", 2037)}, false)
	assert.Contains(t, err.Error(), "LargeQuery")
	assert.Contains(t, err.Error(), "2037")

	err = checkSize([]string{strings.Repeat("x", 5001)}, true)
	assert.Contains(t, err.Error(), "at most 5000")
}

func TestNewRequest(t *testing.T) {
	get := newRequest(functionDetect, "k", nil, false)
	assert.Equal(t, http.MethodGet, get.method)
	assert.Empty(t, get.header.Get(MethodOverrideHeader))
	assert.Equal(t, "k", get.params.Get("key"))
	assert.NotContains(t, get.params, "prettyprint")

	post := newRequest(functionDetect, "k", Bool(false), true)
	assert.Equal(t, http.MethodPost, post.method)
	assert.Equal(t, "GET", post.header.Get(MethodOverrideHeader))
	assert.Equal(t, "false", post.params.Get("prettyprint"))
}

func TestHTTPRequest(t *testing.T) {
	ctx := context.Background()

	r := newRequest(functionLanguages, "k", nil, false)
	r.params.Set("target", "de")
	req, err := r.httpRequest(ctx, "https://example.com/v2/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/v2/languages", req.URL.Scheme+"://"+req.URL.Host+req.URL.Path)
	assert.Equal(t, "de", req.URL.Query().Get("target"))
	assert.Nil(t, req.Body)

	r = newRequest(functionTranslate, "k", nil, true)
	r.addTexts([]string{"a b", "c&d"})
	req, err = r.httpRequest(ctx, "https://example.com/v2")
	require.NoError(t, err)
	assert.Equal(t, "/v2", req.URL.Path)
	assert.Empty(t, req.URL.RawQuery)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	assert.Equal(t, "GET", req.Header.Get(MethodOverrideHeader))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "key=k&q=a+b&q=c%26d", string(body))
}

func TestDecodeResponse(t *testing.T) {
	var data translateData
	err := decodeResponse(http.StatusOK, []byte(`{"data":{"translations":[{"translatedText":"Hallo es"}]}}`), &data)
	require.NoError(t, err)
	assert.Equal(t, "Hallo es", data.Translations[0].TranslatedText)

	err = decodeResponse(http.StatusOK, []byte(`{"error":{"code":400,"message":"Invalid Value"}}`), &data)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Invalid Value", svcErr.Error())

	err = decodeResponse(http.StatusOK, []byte(`{"data":{"translations":"nope"}}`), &data)
	assert.ErrorContains(t, err, "failed to decode response")

	long := strings.Repeat("z", 2*maxErrorBody)
	err = decodeResponse(http.StatusInternalServerError, []byte(long), &data)
	var unexpected *UnexpectedResponseError
	require.ErrorAs(t, err, &unexpected)
	assert.Len(t, unexpected.Body, maxErrorBody+3)
}

func TestFlattenDetections(t *testing.T) {
	assert.Empty(t, flattenDetections(nil))

	in := [][]Detection{
		{{Language: "en"}},
		{},
		{{Language: "de"}, {Language: "nl"}},
	}
	out := flattenDetections(in)
	require.Len(t, out, 3)
	assert.Equal(t, "en", out[0].Language)
	assert.Equal(t, "nl", out[2].Language)
}
