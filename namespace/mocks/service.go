// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"time"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/stretchr/testify/mock"
)

var _ namespace.Service = (*Service)(nil)

type Service struct {
	mock.Mock
}

func (svc *Service) Set(ctx context.Context, category namespace.Category, id string, value []byte) error {
	ret := svc.Called(ctx, category, id, value)

	return ret.Error(0)
}

func (svc *Service) Get(ctx context.Context, category namespace.Category, id string) ([]byte, error) {
	ret := svc.Called(ctx, category, id)

	return bytes(ret.Get(0)), ret.Error(1)
}

func (svc *Service) Delete(ctx context.Context, category namespace.Category, id string) error {
	ret := svc.Called(ctx, category, id)

	return ret.Error(0)
}

func (svc *Service) TTL(ctx context.Context, category namespace.Category, id string) (time.Duration, error) {
	ret := svc.Called(ctx, category, id)

	return ret.Get(0).(time.Duration), ret.Error(1)
}

func (svc *Service) SetTenant(ctx context.Context, tenantID, id string, value []byte) error {
	ret := svc.Called(ctx, tenantID, id, value)

	return ret.Error(0)
}

func (svc *Service) GetTenant(ctx context.Context, tenantID, id string) ([]byte, error) {
	ret := svc.Called(ctx, tenantID, id)

	return bytes(ret.Get(0)), ret.Error(1)
}

func (svc *Service) DeleteTenant(ctx context.Context, tenantID, id string) error {
	ret := svc.Called(ctx, tenantID, id)

	return ret.Error(0)
}

func (svc *Service) TTLTenant(ctx context.Context, tenantID, id string) (time.Duration, error) {
	ret := svc.Called(ctx, tenantID, id)

	return ret.Get(0).(time.Duration), ret.Error(1)
}

func bytes(v interface{}) []byte {
	if v == nil {
		return nil
	}
	return v.([]byte)
}
