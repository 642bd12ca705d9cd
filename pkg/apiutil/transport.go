// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package apiutil contains helpers shared by the HTTP transports.
package apiutil

import (
	"context"
	"log/slog"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
)

// LoggingErrorEncoder is a go-kit error encoder logging decorator.
func LoggingErrorEncoder(logger *slog.Logger, enc kithttp.ErrorEncoder) kithttp.ErrorEncoder {
	return func(ctx context.Context, err error, w http.ResponseWriter) {
		if errors.Contains(err, ErrValidation) {
			logger.Error(err.Error())
		}
		enc(ctx, err, w)
	}
}
