// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package redis contains the Redis implementation of the namespace store.
package redis

import (
	"context"
	goerrors "errors"
	"io"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	redisclient "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/clients/redis"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
)

// Redis reports -2 for missing keys and -1 for keys without expiry.
const (
	ttlMissing   time.Duration = -2
	ttlPersisted time.Duration = -1
)

var _ namespace.Store = (*store)(nil)

type store struct {
	client *redis.Client
}

// NewStore returns redis namespace store implementation.
func NewStore(client *redis.Client) namespace.Store {
	return &store{client: client}
}

func (s *store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return wrap(err)
	}

	return nil
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	switch {
	// Redis returns Nil Reply when key does not exist.
	case err == redis.Nil:
		return nil, namespace.ErrNotFound
	case err != nil:
		return nil, wrap(err)
	}

	return value, nil
}

func (s *store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return wrap(err)
	}

	return nil
}

func (s *store) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, wrap(err)
	}

	switch ttl {
	case ttlMissing:
		return 0, namespace.ErrNotFound
	case ttlPersisted:
		return namespace.NoExpiry, nil
	default:
		return ttl, nil
	}
}

func wrap(err error) error {
	if unavailable(err) {
		return errors.Wrap(namespace.ErrStoreUnavailable, err)
	}

	return errors.Wrap(namespace.ErrStoreOperation, err)
}

// unavailable reports whether err means no connection to Redis could be used,
// as opposed to Redis rejecting the command. Rejected credentials count as
// unavailable since go-redis authenticates while opening the connection.
func unavailable(err error) bool {
	var netErr net.Error
	switch {
	case goerrors.As(err, &netErr),
		goerrors.Is(err, redis.ErrClosed),
		goerrors.Is(err, io.EOF),
		goerrors.Is(err, io.ErrUnexpectedEOF),
		goerrors.Is(err, syscall.ECONNREFUSED),
		goerrors.Is(err, syscall.ECONNRESET),
		redisclient.AuthFailed(err):
		return true
	default:
		return strings.Contains(err.Error(), "pool timeout")
	}
}
