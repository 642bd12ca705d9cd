// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package namespace_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace/mocks"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	value    = []byte("{\"status\":\"up\"}")
	errStore = errors.Wrap(namespace.ErrStoreOperation, errors.New("WRONGTYPE"))
	errConn  = errors.Wrap(namespace.ErrStoreUnavailable, errors.New("dial tcp: connection refused"))
)

func newService() (namespace.Service, *mocks.Store) {
	store := new(mocks.Store)
	return namespace.NewService(store), store
}

func TestSet(t *testing.T) {
	svc, store := newService()

	cases := []struct {
		desc     string
		category namespace.Category
		id       string
		key      string
		ttl      time.Duration
		storeErr error
		err      error
	}{
		{
			desc:     "set session",
			category: namespace.Session,
			id:       "abc123",
			key:      "url-monitor:session:abc123",
			ttl:      24 * time.Hour,
		},
		{
			desc:     "set cache applies 30 minute expiry",
			category: namespace.Cache,
			id:       "page-1",
			key:      "url-monitor:cache:page-1",
			ttl:      30 * time.Minute,
		},
		{
			desc:     "set alert state applies 7 day expiry",
			category: namespace.AlertState,
			id:       "monitor-1",
			key:      "url-monitor:alert-state:monitor-1",
			ttl:      7 * 24 * time.Hour,
		},
		{
			desc:     "set schedule applies no expiry",
			category: namespace.Schedule,
			id:       "next-run",
			key:      "url-monitor:schedule:next-run",
			ttl:      0,
		},
		{
			desc:     "set tenant wide value",
			category: namespace.Tenant,
			id:       "acme",
			key:      "url-monitor:tenant:acme",
			ttl:      time.Hour,
		},
		{
			desc:     "set with invalid category",
			category: "bogus",
			id:       "x",
			err:      namespace.ErrInvalidCategory,
		},
		{
			desc:     "set with invalid identifier",
			category: namespace.Cache,
			id:       "a:b",
			err:      namespace.ErrInvalidIdentifier,
		},
		{
			desc:     "set with unavailable store",
			category: namespace.Cache,
			id:       "page-2",
			key:      "url-monitor:cache:page-2",
			ttl:      30 * time.Minute,
			storeErr: errConn,
			err:      namespace.ErrStoreUnavailable,
		},
		{
			desc:     "set with failing store",
			category: namespace.Cache,
			id:       "page-3",
			key:      "url-monitor:cache:page-3",
			ttl:      30 * time.Minute,
			storeErr: errStore,
			err:      namespace.ErrStoreOperation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := store.On("Set", mock.Anything, tc.key, value, tc.ttl).Return(tc.storeErr)
			err := svc.Set(context.Background(), tc.category, tc.id, value)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			if tc.key != "" {
				store.AssertCalled(t, "Set", mock.Anything, tc.key, value, tc.ttl)
			}
			repoCall.Unset()
		})
	}
	store.AssertNotCalled(t, "Set", mock.Anything, "url-monitor:bogus:x", mock.Anything, mock.Anything)
}

func TestGet(t *testing.T) {
	svc, store := newService()

	cases := []struct {
		desc     string
		category namespace.Category
		id       string
		key      string
		value    []byte
		storeErr error
		err      error
	}{
		{
			desc:     "get existing value",
			category: namespace.Session,
			id:       "abc123",
			key:      "url-monitor:session:abc123",
			value:    value,
		},
		{
			desc:     "get missing value",
			category: namespace.Cache,
			id:       "missing",
			key:      "url-monitor:cache:missing",
			storeErr: namespace.ErrNotFound,
			err:      namespace.ErrNotFound,
		},
		{
			desc:     "get with invalid category",
			category: "bogus",
			id:       "x",
			err:      namespace.ErrInvalidCategory,
		},
		{
			desc:     "get with empty identifier",
			category: namespace.Schedule,
			id:       "",
			err:      namespace.ErrInvalidIdentifier,
		},
		{
			desc:     "get with unavailable store",
			category: namespace.AlertState,
			id:       "monitor-1",
			key:      "url-monitor:alert-state:monitor-1",
			storeErr: errConn,
			err:      namespace.ErrStoreUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := store.On("Get", mock.Anything, tc.key).Return(tc.value, tc.storeErr)
			got, err := svc.Get(context.Background(), tc.category, tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			assert.Equal(t, tc.value, got, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.value, got))
			repoCall.Unset()
		})
	}
}

func TestDelete(t *testing.T) {
	svc, store := newService()

	cases := []struct {
		desc     string
		category namespace.Category
		id       string
		key      string
		storeErr error
		err      error
	}{
		{
			desc:     "delete existing key",
			category: namespace.Session,
			id:       "abc123",
			key:      "url-monitor:session:abc123",
		},
		{
			desc:     "delete with invalid category",
			category: "sessions",
			id:       "abc123",
			err:      namespace.ErrInvalidCategory,
		},
		{
			desc:     "delete with failing store",
			category: namespace.Cache,
			id:       "page-1",
			key:      "url-monitor:cache:page-1",
			storeErr: errStore,
			err:      namespace.ErrStoreOperation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := store.On("Delete", mock.Anything, tc.key).Return(tc.storeErr)
			err := svc.Delete(context.Background(), tc.category, tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			repoCall.Unset()
		})
	}
}

func TestTTL(t *testing.T) {
	svc, store := newService()

	cases := []struct {
		desc     string
		category namespace.Category
		id       string
		key      string
		ttl      time.Duration
		storeErr error
		err      error
	}{
		{
			desc:     "ttl of expiring key",
			category: namespace.Cache,
			id:       "page-1",
			key:      "url-monitor:cache:page-1",
			ttl:      29 * time.Minute,
		},
		{
			desc:     "ttl of persistent key",
			category: namespace.Schedule,
			id:       "next-run",
			key:      "url-monitor:schedule:next-run",
			ttl:      namespace.NoExpiry,
		},
		{
			desc:     "ttl of missing key",
			category: namespace.Cache,
			id:       "missing",
			key:      "url-monitor:cache:missing",
			storeErr: namespace.ErrNotFound,
			err:      namespace.ErrNotFound,
		},
		{
			desc:     "ttl with invalid category",
			category: "bogus",
			id:       "x",
			err:      namespace.ErrInvalidCategory,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := store.On("TTL", mock.Anything, tc.key).Return(tc.ttl, tc.storeErr)
			ttl, err := svc.TTL(context.Background(), tc.category, tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			assert.Equal(t, tc.ttl, ttl)
			repoCall.Unset()
		})
	}
}

func TestTenantOperations(t *testing.T) {
	svc, store := newService()

	cases := []struct {
		desc     string
		tenantID string
		id       string
		key      string
		err      error
	}{
		{
			desc:     "tenant scoped key",
			tenantID: "acme",
			id:       "monitors",
			key:      "url-monitor:tenant:acme:monitors",
		},
		{
			desc:     "tenant scoped key with empty tenant",
			tenantID: "",
			id:       "monitors",
			err:      namespace.ErrInvalidIdentifier,
		},
		{
			desc:     "tenant scoped key with delimiter in identifier",
			tenantID: "acme",
			id:       "a:b",
			err:      namespace.ErrInvalidIdentifier,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			setCall := store.On("Set", mock.Anything, tc.key, value, time.Hour).Return(nil)
			getCall := store.On("Get", mock.Anything, tc.key).Return(value, nil)
			delCall := store.On("Delete", mock.Anything, tc.key).Return(nil)
			ttlCall := store.On("TTL", mock.Anything, tc.key).Return(45*time.Minute, nil)

			err := svc.SetTenant(context.Background(), tc.tenantID, tc.id, value)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: set expected %s got %s", tc.desc, tc.err, err))

			got, err := svc.GetTenant(context.Background(), tc.tenantID, tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: get expected %s got %s", tc.desc, tc.err, err))
			if tc.err == nil {
				assert.Equal(t, value, got)
			}

			ttl, err := svc.TTLTenant(context.Background(), tc.tenantID, tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: ttl expected %s got %s", tc.desc, tc.err, err))
			if tc.err == nil {
				assert.Equal(t, 45*time.Minute, ttl)
			}

			err = svc.DeleteTenant(context.Background(), tc.tenantID, tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: delete expected %s got %s", tc.desc, tc.err, err))

			setCall.Unset()
			getCall.Unset()
			delCall.Unset()
			ttlCall.Unset()
		})
	}
}
