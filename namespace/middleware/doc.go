// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides logging, metrics and tracing decorators for
// the namespaced cache service.
package middleware
