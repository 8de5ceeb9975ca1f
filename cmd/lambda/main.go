// Package main is the entry point for the translation Lambda function.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/pricofy/translate-client/internal/config"
	"github.com/pricofy/translate-client/internal/domain"
	"github.com/pricofy/translate-client/internal/handler"
	"github.com/pricofy/translate-client/internal/logging"
	"github.com/pricofy/translate-client/internal/router"
	"github.com/pricofy/translate-client/translate"
)

type app struct {
	cfg     config.Config
	handler *handler.Handler
	logger  *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanOptions(trace.WithSpanKind(trace.SpanKindClient)),
		),
	}

	r, err := router.New(cfg,
		translate.WithHTTPClient(httpClient),
		translate.WithLogger(logger.Named("translate")),
	)
	if err != nil {
		logger.Fatal("failed to create router", zap.Error(err))
	}

	a := &app{cfg: cfg, handler: handler.New(r, logger), logger: logger}
	lambda.Start(a.handleRequest)
}

func (a *app) handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, a.cfg.FunctionName, warmup, a.logger)
	}

	// Parse the request and delegate to the handler
	var req domain.Request
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}

	return a.handler.Handle(ctx, req)
}
