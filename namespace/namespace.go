// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package namespace

import (
	"context"
	"time"
)

// Store is the key-value store the namespaced client delegates to.
type Store interface {
	// Set stores the value under the key. A zero ttl stores the value
	// without expiry and clears any expiry previously set on the key.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the value stored under the key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// TTL returns the remaining life of the key, NoExpiry for persistent
	// keys or ErrNotFound.
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Service applies the url-monitor key and expiry conventions on top of a Store.
type Service interface {
	// Set stores the value under the category key, with the category TTL.
	Set(ctx context.Context, category Category, id string, value []byte) error

	// Get retrieves the value stored under the category key.
	Get(ctx context.Context, category Category, id string) ([]byte, error)

	// Delete removes the category key.
	Delete(ctx context.Context, category Category, id string) error

	// TTL returns the remaining life of the category key.
	TTL(ctx context.Context, category Category, id string) (time.Duration, error)

	// SetTenant stores the value under the tenant scoped key.
	SetTenant(ctx context.Context, tenantID, id string, value []byte) error

	// GetTenant retrieves the value stored under the tenant scoped key.
	GetTenant(ctx context.Context, tenantID, id string) ([]byte, error)

	// DeleteTenant removes the tenant scoped key.
	DeleteTenant(ctx context.Context, tenantID, id string) error

	// TTLTenant returns the remaining life of the tenant scoped key.
	TTLTenant(ctx context.Context, tenantID, id string) (time.Duration, error)
}
