// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package namespace

import (
	"strings"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
)

const (
	// Prefix is the literal application prefix of every key.
	Prefix = "url-monitor"
	// Delimiter separates key segments. Identifiers must not contain it.
	Delimiter = ":"
)

var errMalformedKey = errors.New("malformed namespaced key")

// Key is an immutable namespaced key.
type Key struct {
	tenant   string
	category Category
	id       string
}

// Build composes the key for the identifier in the given category.
func Build(category Category, id string) (Key, error) {
	if err := category.Validate(); err != nil {
		return Key{}, err
	}
	if err := validateID(id); err != nil {
		return Key{}, err
	}

	return Key{category: category, id: id}, nil
}

// BuildTenant composes a tenant cache key, nesting the identifier under the
// tenant ID: url-monitor:tenant:{tenantID}:{id}.
func BuildTenant(tenantID, id string) (Key, error) {
	if err := validateID(tenantID); err != nil {
		return Key{}, err
	}
	if err := validateID(id); err != nil {
		return Key{}, err
	}

	return Key{tenant: tenantID, category: Tenant, id: id}, nil
}

// ParseKey parses the string form produced by Key.String.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, Delimiter)
	if len(parts) < 3 || parts[0] != Prefix {
		return Key{}, errMalformedKey
	}

	category := Category(parts[1])
	switch {
	case len(parts) == 3:
		return Build(category, parts[2])
	case len(parts) == 4 && category == Tenant:
		return BuildTenant(parts[2], parts[3])
	default:
		return Key{}, errMalformedKey
	}
}

// Category returns the key category.
func (k Key) Category() Category {
	return k.category
}

// ID returns the key identifier.
func (k Key) ID() string {
	return k.id
}

// TenantID returns the tenant the key is nested under, if any.
func (k Key) TenantID() string {
	return k.tenant
}

func (k Key) String() string {
	if k.tenant != "" {
		return strings.Join([]string{Prefix, string(k.category), k.tenant, k.id}, Delimiter)
	}
	return strings.Join([]string{Prefix, string(k.category), k.id}, Delimiter)
}

func validateID(id string) error {
	if id == "" || strings.Contains(id, Delimiter) {
		return ErrInvalidIdentifier
	}
	return nil
}
