// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrMissingID indicates missing key identifier.
	ErrMissingID = errors.New("missing key identifier")

	// ErrMissingTenantID indicates missing tenant identifier.
	ErrMissingTenantID = errors.New("missing tenant identifier")

	// ErrMissingValue indicates a set request without a value.
	ErrMissingValue = errors.New("missing value")

	// ErrValueSize indicates that the value exceeds the maximum size.
	ErrValueSize = errors.New("invalid value size")

	// ErrInvalidEncoding indicates an unknown value encoding or a value that
	// does not match its declared encoding.
	ErrInvalidEncoding = errors.New("invalid value encoding")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
