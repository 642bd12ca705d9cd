// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"time"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/stretchr/testify/mock"
)

var _ namespace.Store = (*Store)(nil)

type Store struct {
	mock.Mock
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ret := s.Called(ctx, key, value, ttl)

	return ret.Error(0)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ret := s.Called(ctx, key)

	return bytes(ret.Get(0)), ret.Error(1)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	ret := s.Called(ctx, key)

	return ret.Error(0)
}

func (s *Store) TTL(ctx context.Context, key string) (time.Duration, error) {
	ret := s.Called(ctx, key)

	return ret.Get(0).(time.Duration), ret.Error(1)
}
