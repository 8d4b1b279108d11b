// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"crypto"
	"crypto/x509"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/absmach/crl"
	"github.com/absmach/crl/api"
	httpapi "github.com/absmach/crl/api/http"
	jaegerClient "github.com/absmach/crl/internal/jaeger"
	pgClient "github.com/absmach/crl/internal/postgres"
	"github.com/absmach/crl/internal/prometheus"
	"github.com/absmach/crl/internal/server"
	httpserver "github.com/absmach/crl/internal/server/http"
	"github.com/absmach/crl/internal/uuid"
	cpostgres "github.com/absmach/crl/postgres"
	"github.com/absmach/crl/tracing"
	"github.com/caarlos0/env/v10"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "crl"
	envPrefix      = "CRL_DB_"
	envPrefixHTTP  = "CRL_HTTP_"
	defDB          = "crl"
	defSvcHTTPPort = "9010"
)

type config struct {
	LogLevel      string  `env:"CRL_LOG_LEVEL"        envDefault:"info"`
	JaegerURL     url.URL `env:"CRL_JAEGER_URL"       envDefault:"http://jaeger:4318"`
	InstanceID    string  `env:"CRL_INSTANCE_ID"      envDefault:""`
	TraceRatio    float64 `env:"CRL_JAEGER_TRACE_RATIO" envDefault:"1.0"`
	AuthorityFile string  `env:"CRL_AUTHORITY_CONFIG" envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf(err.Error())
	}

	if cfg.InstanceID == "" {
		cfg.InstanceID, err = uuid.New().ID()
		if err != nil {
			log.Fatalf(fmt.Sprintf("failed to generate instance ID: %s", err))
		}
	}

	dbConfig := pgClient.Config{Name: defDB}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefix}); err != nil {
		logger.Error(err.Error())
	}
	db, err := pgClient.Setup(dbConfig, *cpostgres.Migration())
	if err != nil {
		log.Fatalf(fmt.Sprintf("Failed to connect to %s database: %s", svcName, err))
	}
	defer db.Close()

	tp, err := jaegerClient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to init Jaeger: %s", err))
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("Error shutting down tracer provider: %v", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
	}

	authorityCert, authorityKey, err := loadAuthority(cfg, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load %s authority: %s", svcName, err))
		return
	}

	repo := cpostgres.NewRepository(db)
	svc, err := crl.NewService(repo, nil, authorityCert, authorityKey)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create %s service: %s", svcName, err))
		return
	}
	svc = api.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = api.MetricsMiddleware(svc, counter, latency)
	svc = tracing.New(svc, tracer)

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, httpapi.MakeHandler(chi.NewMux(), svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

// loadAuthority reads the configured certificate/key pair, or generates
// a self-signed one when no authority file is configured.
func loadAuthority(cfg config, logger *slog.Logger) (*x509.Certificate, crypto.Signer, error) {
	if cfg.AuthorityFile == "" {
		logger.Warn("no authority configured, generating a self-signed one")
		cert, key, err := crl.GenerateAuthority()
		return cert, key, err
	}
	authorityConfig, err := crl.LoadConfig(cfg.AuthorityFile)
	if err != nil {
		return nil, nil, err
	}
	return crl.LoadAuthority(authorityConfig)
}

func initLogger(levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return &slog.Logger{}, fmt.Errorf(`{"level":"error","message":"%s: %s","ts":"%s"}`, err, levelText, time.RFC3339Nano)
	}

	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(logHandler), nil
}
