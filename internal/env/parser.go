// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package env parses service configuration from environment variables.
package env

import (
	"github.com/caarlos0/env/v7"
)

// Options tune a single Parse call.
type Options struct {
	// Environment replaces the process environment when set.
	Environment map[string]string

	// TagName specifies another tag name to use rather than the default env.
	TagName string

	// RequiredIfNoDef marks every field without envDefault as required.
	RequiredIfNoDef bool

	// OnSet runs whenever a value is set.
	OnSet env.OnSetFn

	// Prefix is prepended to every key, e.g. UM_CACHE_REDIS_.
	Prefix string
}

// Parse fills v from the environment.
func Parse(v interface{}, opts ...Options) error {
	altOpts := []env.Options{}

	for _, opt := range opts {
		altOpts = append(altOpts, env.Options{
			Environment:     opt.Environment,
			TagName:         opt.TagName,
			RequiredIfNoDef: opt.RequiredIfNoDef,
			OnSet:           opt.OnSet,
			Prefix:          opt.Prefix,
		})
	}

	return env.Parse(v, altOpts...)
}
