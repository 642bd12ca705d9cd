// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the cache main function to start the url-monitor
// namespaced cache service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/go-redis/redis/v8"
	jaegerclient "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/clients/jaeger"
	redisclient "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/clients/redis"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/env"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/server"
	httpserver "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/server/http"
	mglog "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/logger"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace/api"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace/middleware"
	redisstore "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace/redis"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/prometheus"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "cache"
	envPrefixHTTP  = "UM_CACHE_HTTP_"
	envPrefixRedis = "UM_CACHE_REDIS_"
	defSvcHTTPPort = "9010"
)

type config struct {
	LogLevel   string  `env:"UM_CACHE_LOG_LEVEL"    envDefault:"info"`
	JaegerURL  string  `env:"UM_JAEGER_URL"         envDefault:""`
	TraceRatio float64 `env:"UM_JAEGER_TRACE_RATIO" envDefault:"1.0"`
	InstanceID string  `env:"UM_CACHE_INSTANCE_ID"  envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := mglog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer mglog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	redisConfig := redisclient.Config{}
	if err := env.Parse(&redisConfig, env.Options{Prefix: envPrefixRedis}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s redis configuration : %s", svcName, err))
		exitCode = 1
		return
	}
	client, err := redisclient.Connect(ctx, redisConfig)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer client.Close()
	logger.Info("Successfully connected to redis")

	tracer := trace.NewNoopTracerProvider().Tracer(svcName)
	if cfg.JaegerURL != "" {
		tp, err := jaegerclient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
			exitCode = 1
			return
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
			}
		}()
		tracer = tp.Tracer(svcName)
	}

	svc := newService(client, logger, tracer)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.Parse(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	hs := httpserver.New(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, svcName, cfg.InstanceID), logger)

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

func newService(client *redis.Client, logger *slog.Logger, tracer trace.Tracer) namespace.Service {
	store := redisstore.NewStore(client)

	svc := namespace.NewService(store)
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics("url_monitor", "cache")
	svc = middleware.MetricsMiddleware(svc, counter, latency)
	svc = middleware.TracingMiddleware(svc, tracer)

	return svc
}
