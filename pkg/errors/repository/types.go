// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package repository holds the errors shared by storage implementations.
package repository

import "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"

// ErrNotFound indicates a non-existent entity request.
var ErrNotFound = errors.New("entity not found")
