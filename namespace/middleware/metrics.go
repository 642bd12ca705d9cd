// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
)

var _ namespace.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	service namespace.Service
}

// MetricsMiddleware instruments the service by tracking request count and
// latency per method and key category.
func MetricsMiddleware(service namespace.Service, counter metrics.Counter, latency metrics.Histogram) namespace.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		service: service,
	}
}

func (mm *metricsMiddleware) Set(ctx context.Context, category namespace.Category, id string, value []byte) error {
	defer mm.observe("set", category, time.Now())

	return mm.service.Set(ctx, category, id, value)
}

func (mm *metricsMiddleware) Get(ctx context.Context, category namespace.Category, id string) ([]byte, error) {
	defer mm.observe("get", category, time.Now())

	return mm.service.Get(ctx, category, id)
}

func (mm *metricsMiddleware) Delete(ctx context.Context, category namespace.Category, id string) error {
	defer mm.observe("delete", category, time.Now())

	return mm.service.Delete(ctx, category, id)
}

func (mm *metricsMiddleware) TTL(ctx context.Context, category namespace.Category, id string) (time.Duration, error) {
	defer mm.observe("ttl", category, time.Now())

	return mm.service.TTL(ctx, category, id)
}

func (mm *metricsMiddleware) SetTenant(ctx context.Context, tenantID, id string, value []byte) error {
	defer mm.observe("set_tenant", namespace.Tenant, time.Now())

	return mm.service.SetTenant(ctx, tenantID, id, value)
}

func (mm *metricsMiddleware) GetTenant(ctx context.Context, tenantID, id string) ([]byte, error) {
	defer mm.observe("get_tenant", namespace.Tenant, time.Now())

	return mm.service.GetTenant(ctx, tenantID, id)
}

func (mm *metricsMiddleware) DeleteTenant(ctx context.Context, tenantID, id string) error {
	defer mm.observe("delete_tenant", namespace.Tenant, time.Now())

	return mm.service.DeleteTenant(ctx, tenantID, id)
}

func (mm *metricsMiddleware) TTLTenant(ctx context.Context, tenantID, id string) (time.Duration, error) {
	defer mm.observe("ttl_tenant", namespace.Tenant, time.Now())

	return mm.service.TTLTenant(ctx, tenantID, id)
}

func (mm *metricsMiddleware) observe(method string, category namespace.Category, begin time.Time) {
	mm.counter.With("method", method, "category", category.String()).Add(1)
	mm.latency.With("method", method, "category", category.String()).Observe(time.Since(begin).Seconds())
}
