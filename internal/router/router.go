// Package router routes batches of texts to the translation service.
package router

import (
	"context"
	"fmt"

	"github.com/pricofy/translate-client/internal/config"
	"github.com/pricofy/translate-client/translate"
)

// Service is the part of *translate.Client the router drives.
type Service interface {
	Translate(ctx context.Context, source, target translate.Language, texts ...string) ([]translate.Translation, error)
	DetectLanguage(ctx context.Context, texts ...string) ([]translate.Detection, error)
	SupportedLanguages(ctx context.Context, target translate.Language) ([]translate.SupportedLanguage, error)
	Limit() int
}

// Router sends chunks of texts to the translation service one call at a time.
type Router struct {
	service Service
}

// New creates a Router backed by a translate.Client built from cfg. opts are
// applied after the configuration.
func New(cfg config.Config, opts ...translate.Option) (*Router, error) {
	clientOpts := []translate.Option{
		translate.WithBaseURL(cfg.BaseURL),
		translate.WithLargeQuery(cfg.LargeQuery),
	}
	if cfg.PrettyPrint != nil {
		clientOpts = append(clientOpts, translate.WithPrettyPrint(*cfg.PrettyPrint))
	}

	client, err := translate.New(cfg.APIKey, append(clientOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}
	return NewWithService(client), nil
}

// NewWithService creates a Router around an existing Service.
func NewWithService(svc Service) *Router {
	return &Router{service: svc}
}

// Limit is the largest chunk size, in characters, one call accepts.
func (r *Router) Limit() int {
	return r.service.Limit()
}

// ResolvePair maps wire codes to languages. An empty or "auto" source means
// Automatic; the target must be a concrete language different from source.
func (r *Router) ResolvePair(source, target string) (translate.Language, translate.Language, error) {
	src, ok := translate.ParseLanguage(source)
	if !ok {
		return translate.Unknown, translate.Unknown, fmt.Errorf("unsupported source language: %s", source)
	}

	if target == "" {
		return translate.Unknown, translate.Unknown, fmt.Errorf("targetLang is required")
	}
	dst, ok := translate.ParseLanguage(target)
	if !ok || dst == translate.Automatic {
		return translate.Unknown, translate.Unknown, fmt.Errorf("unsupported target language: %s", target)
	}

	if src == dst {
		return translate.Unknown, translate.Unknown, fmt.Errorf("sourceLang and targetLang must be different")
	}
	return src, dst, nil
}

// TranslateChunks translates every chunk in order and flattens the results.
// The first failing chunk fails the whole call.
func (r *Router) TranslateChunks(ctx context.Context, source, target translate.Language, chunks [][]string) ([]translate.Translation, error) {
	results := make([]translate.Translation, 0, countTexts(chunks))
	for i, chunk := range chunks {
		translations, err := r.service.Translate(ctx, source, target, chunk...)
		if err != nil {
			return nil, fmt.Errorf("chunk %d failed: %w", i+1, err)
		}
		if len(translations) != len(chunk) {
			return nil, fmt.Errorf("chunk %d: got %d translations for %d texts", i+1, len(translations), len(chunk))
		}
		results = append(results, translations...)
	}
	return results, nil
}

// DetectChunks detects the language of every chunk in order and flattens
// the guesses.
func (r *Router) DetectChunks(ctx context.Context, chunks [][]string) ([]translate.Detection, error) {
	var results []translate.Detection
	for i, chunk := range chunks {
		detections, err := r.service.DetectLanguage(ctx, chunk...)
		if err != nil {
			return nil, fmt.Errorf("chunk %d failed: %w", i+1, err)
		}
		results = append(results, detections...)
	}
	return results, nil
}

// Languages lists the supported languages, named in target when it is set.
func (r *Router) Languages(ctx context.Context, target string) ([]translate.SupportedLanguage, error) {
	lang := translate.Unknown
	if target != "" {
		var ok bool
		lang, ok = translate.ParseLanguage(target)
		if !ok {
			return nil, fmt.Errorf("unsupported target language: %s", target)
		}
	}
	return r.service.SupportedLanguages(ctx, lang)
}

func countTexts(chunks [][]string) int {
	n := 0
	for _, c := range chunks {
		n += len(c)
	}
	return n
}
