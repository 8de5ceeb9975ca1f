package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/translate-client/internal/config"
	"github.com/pricofy/translate-client/internal/domain"
	"github.com/pricofy/translate-client/internal/router"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name        string
		request     domain.Request
		expectError bool
		errorMsg    string
	}{
		{
			name:    "valid translate request",
			request: domain.Request{Texts: []string{"Hello"}, SourceLang: "es", TargetLang: "fr"},
		},
		{
			name:    "action defaults to translate",
			request: domain.Request{Texts: []string{"Hello"}, TargetLang: "fr"},
		},
		{
			name:        "nil texts",
			request:     domain.Request{Action: domain.ActionDetect},
			expectError: true,
			errorMsg:    "texts is required",
		},
		{
			name:    "empty texts array is valid",
			request: domain.Request{Texts: []string{}, TargetLang: "fr"},
		},
		{
			name:    "languages needs no texts",
			request: domain.Request{Action: domain.ActionLanguages},
		},
		{
			name:        "unknown action",
			request:     domain.Request{Action: "summarize", Texts: []string{"x"}},
			expectError: true,
			errorMsg:    "unknown action: summarize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.request)
			if tt.expectError {
				assert.EqualError(t, err, tt.errorMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// fakeService answers translate calls with "<target>:<text>" per q and
// counts calls per function.
type fakeService struct {
	server    *httptest.Server
	translate atomic.Int32
	detect    atomic.Int32
	errorBody string
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()
	return startFakeService(t, "")
}

// startFakeService answers every call with errorBody when it is set.
func startFakeService(t *testing.T, errorBody string) *fakeService {
	t.Helper()
	f := &fakeService{errorBody: errorBody}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if f.errorBody != "" {
			_, _ = w.Write([]byte(f.errorBody))
			return
		}

		var data any
		switch {
		case strings.HasSuffix(r.URL.Path, "/detect"):
			f.detect.Add(1)
			var detections [][]map[string]any
			for range r.Form["q"] {
				detections = append(detections, []map[string]any{
					{"language": "de", "confidence": 0.5, "isReliable": false},
					{"language": "nl", "confidence": 0.1, "isReliable": false},
				})
			}
			data = map[string]any{"detections": detections}
		case strings.HasSuffix(r.URL.Path, "/languages"):
			langs := []map[string]string{{"language": "de"}, {"language": "en"}}
			if r.Form.Get("target") != "" {
				langs[0]["name"], langs[1]["name"] = "Deutsch", "Englisch"
			}
			data = map[string]any{"languages": langs}
		default:
			f.translate.Add(1)
			var translations []map[string]string
			for _, q := range r.Form["q"] {
				tr := map[string]string{"translatedText": r.Form.Get("target") + ":" + q}
				if r.Form.Get("source") == "" {
					tr["detectedSourceLanguage"] = "en"
				}
				translations = append(translations, tr)
			}
			data = map[string]any{"translations": translations}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeService) handler(t *testing.T, largeQuery bool) *Handler {
	t.Helper()
	r, err := router.New(config.Config{APIKey: "test-key", BaseURL: f.server.URL, LargeQuery: largeQuery})
	require.NoError(t, err)
	return New(r, nil)
}

func TestHandle_Translate(t *testing.T) {
	f := newFakeService(t)
	h := f.handler(t, false)

	resp, err := h.Handle(context.Background(), domain.Request{
		Texts:      []string{"Hello there.", "How are you?"},
		SourceLang: "auto",
		TargetLang: "de",
	})
	require.NoError(t, err)
	require.Empty(t, resp.Error)
	assert.Equal(t, []string{"de:Hello there.", "de:How are you?"}, resp.Translations)
	assert.Equal(t, []string{"en", "en"}, resp.DetectedSourceLanguages)
	assert.Equal(t, 1, resp.ChunksProcessed)
}

func TestHandle_TranslateChunksLargeInput(t *testing.T) {
	f := newFakeService(t)
	h := f.handler(t, false)

	texts := []string{strings.Repeat("a", 900), strings.Repeat("b", 900), strings.Repeat("c", 900)}
	resp, err := h.Handle(context.Background(), domain.Request{Texts: texts, SourceLang: "en", TargetLang: "fr"})
	require.NoError(t, err)
	require.Empty(t, resp.Error)

	assert.Equal(t, 2, resp.ChunksProcessed)
	assert.EqualValues(t, 2, f.translate.Load())
	require.Len(t, resp.Translations, 3)
	for i, text := range texts {
		assert.Equal(t, "fr:"+text, resp.Translations[i])
	}
	assert.Nil(t, resp.DetectedSourceLanguages)
}

func TestHandle_LargeQueryFitsOneChunk(t *testing.T) {
	f := newFakeService(t)
	h := f.handler(t, true)

	texts := []string{strings.Repeat("a", 900), strings.Repeat("b", 900), strings.Repeat("c", 900)}
	resp, err := h.Handle(context.Background(), domain.Request{Texts: texts, SourceLang: "en", TargetLang: "fr"})
	require.NoError(t, err)
	require.Empty(t, resp.Error)
	assert.Equal(t, 1, resp.ChunksProcessed)
}

func TestHandle_OversizedText(t *testing.T) {
	f := newFakeService(t)
	h := f.handler(t, false)

	resp, err := h.Handle(context.Background(), domain.Request{
		Texts:      []string{"short", strings.Repeat("x", 2037)},
		SourceLang: "en",
		TargetLang: "de",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Error, "LargeQuery")
	assert.Empty(t, resp.Translations)
}

func TestHandle_ServiceError(t *testing.T) {
	f := startFakeService(t, `{"error":{"code":400,"message":"Bad language pair: en|en","errors":[{"reason":"invalid"}]}}`)
	h := f.handler(t, false)

	resp, err := h.Handle(context.Background(), domain.Request{Texts: []string{"Hello"}, TargetLang: "de"})
	require.NoError(t, err)
	assert.Contains(t, resp.Error, "Bad language pair: en|en Reason: invalid")
}

func TestHandle_SameLanguage(t *testing.T) {
	f := newFakeService(t)
	h := f.handler(t, false)

	resp, err := h.Handle(context.Background(), domain.Request{Texts: []string{"Hello"}, SourceLang: "de", TargetLang: "de"})
	require.NoError(t, err)
	assert.Equal(t, "sourceLang and targetLang must be different", resp.Error)
	assert.EqualValues(t, 0, f.translate.Load())
}

func TestHandle_EmptyTexts(t *testing.T) {
	f := newFakeService(t)
	h := f.handler(t, false)

	resp, err := h.Handle(context.Background(), domain.Request{Texts: []string{}, SourceLang: "es", TargetLang: "fr"})
	require.NoError(t, err)
	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.Translations)
	assert.EqualValues(t, 0, f.translate.Load())
}

func TestHandle_Detect(t *testing.T) {
	f := newFakeService(t)
	h := f.handler(t, false)

	resp, err := h.Handle(context.Background(), domain.Request{
		Action: domain.ActionDetect,
		Texts:  []string{"Hallo gibt es", "Guten Tag"},
	})
	require.NoError(t, err)
	require.Empty(t, resp.Error)
	require.Len(t, resp.Detections, 4)
	assert.Equal(t, "de", resp.Detections[0].Language)
	assert.Equal(t, "nl", resp.Detections[1].Language)
	assert.Equal(t, "de", resp.Detections[2].Language)
	assert.EqualValues(t, 1, f.detect.Load())
}

func TestHandle_Languages(t *testing.T) {
	f := newFakeService(t)
	h := f.handler(t, false)

	resp, err := h.Handle(context.Background(), domain.Request{Action: domain.ActionLanguages})
	require.NoError(t, err)
	require.Empty(t, resp.Error)
	assert.Equal(t, []domain.SupportedLanguage{{Language: "de"}, {Language: "en"}}, resp.Languages)

	resp, err = h.Handle(context.Background(), domain.Request{Action: domain.ActionLanguages, TargetLang: "de"})
	require.NoError(t, err)
	assert.Equal(t, "Deutsch", resp.Languages[0].Name)
}
