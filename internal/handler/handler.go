// Package handler provides the Lambda handler for the translation client.
package handler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pricofy/translate-client/internal/chunker"
	"github.com/pricofy/translate-client/internal/domain"
	"github.com/pricofy/translate-client/internal/router"
	"github.com/pricofy/translate-client/translate"
)

// Handler serves translation events.
type Handler struct {
	router *router.Router
	logger *zap.Logger
}

// New creates a Handler. A nil logger discards output.
func New(r *router.Router, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{router: r, logger: logger}
}

// Handle processes a request.
// Texts are chunked so every service call stays under the size limit, and the
// per-chunk results are flattened back into input order. Failures are
// reported in Response.Error.
func (h *Handler) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	if err := validateRequest(req); err != nil {
		return &domain.Response{Error: err.Error()}, nil
	}

	action := req.Action
	if action == "" {
		action = domain.ActionTranslate
	}

	var (
		resp *domain.Response
		err  error
	)
	switch action {
	case domain.ActionTranslate:
		resp, err = h.translate(ctx, req)
	case domain.ActionDetect:
		resp, err = h.detect(ctx, req)
	case domain.ActionLanguages:
		resp, err = h.languages(ctx, req)
	}
	if err != nil {
		h.logger.Warn("request failed", zap.String("action", action), zap.Int("texts", len(req.Texts)), zap.Error(err))
		return &domain.Response{Error: err.Error()}, nil
	}

	h.logger.Info("request served",
		zap.String("action", action),
		zap.Int("texts", len(req.Texts)),
		zap.Int("chunks", resp.ChunksProcessed),
	)
	return resp, nil
}

func (h *Handler) translate(ctx context.Context, req domain.Request) (*domain.Response, error) {
	source, target, err := h.router.ResolvePair(req.SourceLang, req.TargetLang)
	if err != nil {
		return nil, err
	}

	// Empty input - return immediately
	if len(req.Texts) == 0 {
		return &domain.Response{Translations: []string{}}, nil
	}

	chunks := chunker.ChunkBySize(req.Texts, h.router.Limit(), chunker.DefaultMaxTexts)
	results, err := h.router.TranslateChunks(ctx, source, target, chunks)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	resp := &domain.Response{
		Translations:    make([]string, 0, len(results)),
		ChunksProcessed: len(chunks),
	}
	if source == translate.Automatic {
		resp.DetectedSourceLanguages = make([]string, 0, len(results))
	}
	for _, r := range results {
		resp.Translations = append(resp.Translations, r.TranslatedText)
		if source == translate.Automatic {
			resp.DetectedSourceLanguages = append(resp.DetectedSourceLanguages, r.DetectedSourceLanguage)
		}
	}
	return resp, nil
}

func (h *Handler) detect(ctx context.Context, req domain.Request) (*domain.Response, error) {
	if len(req.Texts) == 0 {
		return &domain.Response{Detections: []domain.Detection{}}, nil
	}

	chunks := chunker.ChunkBySize(req.Texts, h.router.Limit(), chunker.DefaultMaxTexts)
	results, err := h.router.DetectChunks(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("detection failed: %w", err)
	}

	resp := &domain.Response{
		Detections:      make([]domain.Detection, 0, len(results)),
		ChunksProcessed: len(chunks),
	}
	for _, d := range results {
		resp.Detections = append(resp.Detections, domain.Detection{
			Language:   d.Language,
			Confidence: d.Confidence,
			IsReliable: d.IsReliable,
		})
	}
	return resp, nil
}

func (h *Handler) languages(ctx context.Context, req domain.Request) (*domain.Response, error) {
	results, err := h.router.Languages(ctx, req.TargetLang)
	if err != nil {
		return nil, fmt.Errorf("listing languages failed: %w", err)
	}

	resp := &domain.Response{Languages: make([]domain.SupportedLanguage, 0, len(results))}
	for _, l := range results {
		resp.Languages = append(resp.Languages, domain.SupportedLanguage{Language: l.Language, Name: l.Name})
	}
	return resp, nil
}

// validateRequest checks the request is valid.
func validateRequest(req domain.Request) error {
	switch req.Action {
	case "", domain.ActionTranslate, domain.ActionDetect:
		if req.Texts == nil {
			return fmt.Errorf("texts is required")
		}
	case domain.ActionLanguages:
	default:
		return fmt.Errorf("unknown action: %s", req.Action)
	}
	return nil
}
