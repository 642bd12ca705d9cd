// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
)

var _ namespace.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service namespace.Service
}

// LoggingMiddleware adds logging facilities to the namespaced cache service.
func LoggingMiddleware(service namespace.Service, logger *slog.Logger) namespace.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) Set(ctx context.Context, category namespace.Category, id string, value []byte) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("key",
				slog.String("category", category.String()),
				slog.String("id", id),
				slog.Int("value_size", len(value)),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Set key failed", args...)
			return
		}
		lm.logger.Info("Set key completed successfully", args...)
	}(time.Now())

	return lm.service.Set(ctx, category, id, value)
}

func (lm *loggingMiddleware) Get(ctx context.Context, category namespace.Category, id string) (value []byte, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("key",
				slog.String("category", category.String()),
				slog.String("id", id),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Get key failed", args...)
			return
		}
		lm.logger.Info("Get key completed successfully", args...)
	}(time.Now())

	return lm.service.Get(ctx, category, id)
}

func (lm *loggingMiddleware) Delete(ctx context.Context, category namespace.Category, id string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("key",
				slog.String("category", category.String()),
				slog.String("id", id),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Delete key failed", args...)
			return
		}
		lm.logger.Info("Delete key completed successfully", args...)
	}(time.Now())

	return lm.service.Delete(ctx, category, id)
}

func (lm *loggingMiddleware) TTL(ctx context.Context, category namespace.Category, id string) (ttl time.Duration, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("key",
				slog.String("category", category.String()),
				slog.String("id", id),
				slog.String("ttl", ttl.String()),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Retrieve key TTL failed", args...)
			return
		}
		lm.logger.Info("Retrieve key TTL completed successfully", args...)
	}(time.Now())

	return lm.service.TTL(ctx, category, id)
}

func (lm *loggingMiddleware) SetTenant(ctx context.Context, tenantID, id string, value []byte) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("key",
				slog.String("tenant_id", tenantID),
				slog.String("id", id),
				slog.Int("value_size", len(value)),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Set tenant key failed", args...)
			return
		}
		lm.logger.Info("Set tenant key completed successfully", args...)
	}(time.Now())

	return lm.service.SetTenant(ctx, tenantID, id, value)
}

func (lm *loggingMiddleware) GetTenant(ctx context.Context, tenantID, id string) (value []byte, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("key",
				slog.String("tenant_id", tenantID),
				slog.String("id", id),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Get tenant key failed", args...)
			return
		}
		lm.logger.Info("Get tenant key completed successfully", args...)
	}(time.Now())

	return lm.service.GetTenant(ctx, tenantID, id)
}

func (lm *loggingMiddleware) DeleteTenant(ctx context.Context, tenantID, id string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("key",
				slog.String("tenant_id", tenantID),
				slog.String("id", id),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Delete tenant key failed", args...)
			return
		}
		lm.logger.Info("Delete tenant key completed successfully", args...)
	}(time.Now())

	return lm.service.DeleteTenant(ctx, tenantID, id)
}

func (lm *loggingMiddleware) TTLTenant(ctx context.Context, tenantID, id string) (ttl time.Duration, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("key",
				slog.String("tenant_id", tenantID),
				slog.String("id", id),
				slog.String("ttl", ttl.String()),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Retrieve tenant key TTL failed", args...)
			return
		}
		lm.logger.Info("Retrieve tenant key TTL completed successfully", args...)
	}(time.Now())

	return lm.service.TTLTenant(ctx, tenantID, id)
}
