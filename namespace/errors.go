// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package namespace

import (
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
	repoerr "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors/repository"
)

var (
	// ErrInvalidCategory indicates a category outside the documented namespaces.
	ErrInvalidCategory = errors.New("invalid key category")

	// ErrInvalidIdentifier indicates an empty identifier or one containing the key delimiter.
	ErrInvalidIdentifier = errors.New("invalid key identifier")

	// ErrStoreUnavailable indicates the store connection could not be established.
	ErrStoreUnavailable = errors.New("key-value store unavailable")

	// ErrStoreOperation wraps any other error returned by the store.
	ErrStoreOperation = errors.New("key-value store operation failed")

	// ErrNotFound indicates a key that is not present in the store.
	ErrNotFound = repoerr.ErrNotFound
)
