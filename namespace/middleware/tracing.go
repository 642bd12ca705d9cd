// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ namespace.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    namespace.Service
}

// TracingMiddleware opens a span around every service call.
func TracingMiddleware(svc namespace.Service, tracer trace.Tracer) namespace.Service {
	return &tracingMiddleware{
		tracer: tracer,
		svc:    svc,
	}
}

func (tm *tracingMiddleware) Set(ctx context.Context, category namespace.Category, id string, value []byte) (err error) {
	ctx, span := tm.startSpan(ctx, "set", categoryAttributes(category, id)...)
	defer func() { endSpan(span, err) }()

	return tm.svc.Set(ctx, category, id, value)
}

func (tm *tracingMiddleware) Get(ctx context.Context, category namespace.Category, id string) (value []byte, err error) {
	ctx, span := tm.startSpan(ctx, "get", categoryAttributes(category, id)...)
	defer func() { endSpan(span, err) }()

	return tm.svc.Get(ctx, category, id)
}

func (tm *tracingMiddleware) Delete(ctx context.Context, category namespace.Category, id string) (err error) {
	ctx, span := tm.startSpan(ctx, "delete", categoryAttributes(category, id)...)
	defer func() { endSpan(span, err) }()

	return tm.svc.Delete(ctx, category, id)
}

func (tm *tracingMiddleware) TTL(ctx context.Context, category namespace.Category, id string) (ttl time.Duration, err error) {
	ctx, span := tm.startSpan(ctx, "ttl", categoryAttributes(category, id)...)
	defer func() { endSpan(span, err) }()

	return tm.svc.TTL(ctx, category, id)
}

func (tm *tracingMiddleware) SetTenant(ctx context.Context, tenantID, id string, value []byte) (err error) {
	ctx, span := tm.startSpan(ctx, "set_tenant", tenantAttributes(tenantID, id)...)
	defer func() { endSpan(span, err) }()

	return tm.svc.SetTenant(ctx, tenantID, id, value)
}

func (tm *tracingMiddleware) GetTenant(ctx context.Context, tenantID, id string) (value []byte, err error) {
	ctx, span := tm.startSpan(ctx, "get_tenant", tenantAttributes(tenantID, id)...)
	defer func() { endSpan(span, err) }()

	return tm.svc.GetTenant(ctx, tenantID, id)
}

func (tm *tracingMiddleware) DeleteTenant(ctx context.Context, tenantID, id string) (err error) {
	ctx, span := tm.startSpan(ctx, "delete_tenant", tenantAttributes(tenantID, id)...)
	defer func() { endSpan(span, err) }()

	return tm.svc.DeleteTenant(ctx, tenantID, id)
}

func (tm *tracingMiddleware) TTLTenant(ctx context.Context, tenantID, id string) (ttl time.Duration, err error) {
	ctx, span := tm.startSpan(ctx, "ttl_tenant", tenantAttributes(tenantID, id)...)
	defer func() { endSpan(span, err) }()

	return tm.svc.TTLTenant(ctx, tenantID, id)
}

func (tm *tracingMiddleware) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tm.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func categoryAttributes(category namespace.Category, id string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("category", category.String()),
		attribute.String("id", id),
	}
	if key, err := namespace.Build(category, id); err == nil {
		attrs = append(attrs, attribute.String("key", key.String()))
	}

	return attrs
}

func tenantAttributes(tenantID, id string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("category", namespace.Tenant.String()),
		attribute.String("tenant_id", tenantID),
		attribute.String("id", id),
	}
	if key, err := namespace.BuildTenant(tenantID, id); err == nil {
		attrs = append(attrs, attribute.String("key", key.String()))
	}

	return attrs
}
