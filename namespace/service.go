// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package namespace

import (
	"context"
	"time"
)

var _ Service = (*service)(nil)

type service struct {
	store Store
}

// NewService returns a namespaced client backed by the store. The returned
// service keeps no state of its own and is safe for concurrent use.
func NewService(store Store) Service {
	return &service{store: store}
}

func (svc *service) Set(ctx context.Context, category Category, id string, value []byte) error {
	key, err := Build(category, id)
	if err != nil {
		return err
	}

	return svc.save(ctx, key, value)
}

func (svc *service) Get(ctx context.Context, category Category, id string) ([]byte, error) {
	key, err := Build(category, id)
	if err != nil {
		return nil, err
	}

	return svc.store.Get(ctx, key.String())
}

func (svc *service) Delete(ctx context.Context, category Category, id string) error {
	key, err := Build(category, id)
	if err != nil {
		return err
	}

	return svc.store.Delete(ctx, key.String())
}

func (svc *service) TTL(ctx context.Context, category Category, id string) (time.Duration, error) {
	key, err := Build(category, id)
	if err != nil {
		return 0, err
	}

	return svc.store.TTL(ctx, key.String())
}

func (svc *service) SetTenant(ctx context.Context, tenantID, id string, value []byte) error {
	key, err := BuildTenant(tenantID, id)
	if err != nil {
		return err
	}

	return svc.save(ctx, key, value)
}

func (svc *service) GetTenant(ctx context.Context, tenantID, id string) ([]byte, error) {
	key, err := BuildTenant(tenantID, id)
	if err != nil {
		return nil, err
	}

	return svc.store.Get(ctx, key.String())
}

func (svc *service) DeleteTenant(ctx context.Context, tenantID, id string) error {
	key, err := BuildTenant(tenantID, id)
	if err != nil {
		return err
	}

	return svc.store.Delete(ctx, key.String())
}

func (svc *service) TTLTenant(ctx context.Context, tenantID, id string) (time.Duration, error) {
	key, err := BuildTenant(tenantID, id)
	if err != nil {
		return 0, err
	}

	return svc.store.TTL(ctx, key.String())
}

func (svc *service) save(ctx context.Context, key Key, value []byte) error {
	ttl, ok := TTLFor(key.Category())
	if !ok {
		ttl = 0
	}

	return svc.store.Set(ctx, key.String(), value, ttl)
}
