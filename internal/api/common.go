// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package api contains the response and error encoders shared by the HTTP
// transports.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	urlmonitor "github.com/hishamsaffarulla/pingra-monitoring-app-sub002"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/apiutil"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
)

// ContentType represents JSON content type.
const ContentType = "application/json"

// EncodeResponse encodes successful response.
func EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(urlmonitor.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

// EncodeError encodes an error response.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	w.Header().Set("Content-Type", ContentType)
	switch {
	case errors.Contains(err, namespace.ErrInvalidCategory),
		errors.Contains(err, namespace.ErrInvalidIdentifier),
		errors.Contains(err, errors.ErrMalformedEntity),
		errors.Contains(err, apiutil.ErrMissingID),
		errors.Contains(err, apiutil.ErrMissingTenantID),
		errors.Contains(err, apiutil.ErrMissingValue),
		errors.Contains(err, apiutil.ErrValueSize),
		errors.Contains(err, apiutil.ErrInvalidEncoding),
		errors.Contains(err, apiutil.ErrValidation):
		err = unwrap(err)
		w.WriteHeader(http.StatusBadRequest)

	case errors.Contains(err, namespace.ErrNotFound):
		err = unwrap(err)
		w.WriteHeader(http.StatusNotFound)

	case errors.Contains(err, namespace.ErrStoreUnavailable):
		err = unwrap(err)
		w.WriteHeader(http.StatusServiceUnavailable)

	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnsupportedMediaType)

	case errors.Contains(err, namespace.ErrStoreOperation):
		err = unwrap(err)
		w.WriteHeader(http.StatusInternalServerError)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func unwrap(err error) error {
	wrapper, err := errors.Unwrap(err)
	if wrapper != nil {
		return wrapper
	}
	return err
}
