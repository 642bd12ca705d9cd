// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package api exposes the namespaced cache service over HTTP.
package api

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	urlmonitor "github.com/hishamsaffarulla/pingra-monitoring-app-sub002"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/api"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/apiutil"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	categoryKey = "category"
	idKey       = "id"
	tenantKey   = "tenantID"
)

// MakeHandler returns a HTTP handler for the namespaced cache API with
// health check and metrics.
func MakeHandler(svc namespace.Service, logger *slog.Logger, svcName, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Route("/namespaces/{category}/{id}", func(r chi.Router) {
		r.Put("/", otelhttp.NewHandler(kithttp.NewServer(
			setEndpoint(svc),
			decodeSet,
			api.EncodeResponse,
			opts...,
		), "set_key").ServeHTTP)

		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			getEndpoint(svc),
			decodeKey,
			api.EncodeResponse,
			opts...,
		), "get_key").ServeHTTP)

		r.Delete("/", otelhttp.NewHandler(kithttp.NewServer(
			deleteEndpoint(svc),
			decodeKey,
			api.EncodeResponse,
			opts...,
		), "delete_key").ServeHTTP)
	})

	mux.Route("/tenants/{tenantID}/cache/{id}", func(r chi.Router) {
		r.Put("/", otelhttp.NewHandler(kithttp.NewServer(
			setTenantEndpoint(svc),
			decodeSetTenant,
			api.EncodeResponse,
			opts...,
		), "set_tenant_key").ServeHTTP)

		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			getTenantEndpoint(svc),
			decodeTenantKey,
			api.EncodeResponse,
			opts...,
		), "get_tenant_key").ServeHTTP)

		r.Delete("/", otelhttp.NewHandler(kithttp.NewServer(
			deleteTenantEndpoint(svc),
			decodeTenantKey,
			api.EncodeResponse,
			opts...,
		), "delete_tenant_key").ServeHTTP)
	})

	mux.Get("/health", urlmonitor.Health(svcName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeSet(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	category, err := namespace.ToCategory(chi.URLParam(r, categoryKey))
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := setReq{
		category: category,
		id:       chi.URLParam(r, idKey),
	}
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeKey(_ context.Context, r *http.Request) (interface{}, error) {
	category, err := namespace.ToCategory(chi.URLParam(r, categoryKey))
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := keyReq{
		category: category,
		id:       chi.URLParam(r, idKey),
	}

	return req, nil
}

func decodeSetTenant(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := setTenantReq{
		tenantID: chi.URLParam(r, tenantKey),
		id:       chi.URLParam(r, idKey),
	}
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeTenantKey(_ context.Context, r *http.Request) (interface{}, error) {
	req := tenantKeyReq{
		tenantID: chi.URLParam(r, tenantKey),
		id:       chi.URLParam(r, idKey),
	}

	return req, nil
}

// decodeBody decodes a JSON set request, refusing bodies larger than
// maxBodySize while reading.
func decodeBody(r *http.Request, req interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		var maxErr *http.MaxBytesError
		if goerrors.As(err, &maxErr) {
			return errors.Wrap(apiutil.ErrValidation, apiutil.ErrValueSize)
		}
		return errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return nil
}
