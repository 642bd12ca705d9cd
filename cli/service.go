// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"time"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
)

// Keep service as a global var so it can be mocked in tests.
var svc namespace.Service

// SetService sets the namespaced cache service used by the commands.
func SetService(s namespace.Service) {
	svc = s
}

type entry struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
	TTL   string `json:"ttl,omitempty"`
}

func ttlString(ttl time.Duration) string {
	if ttl == namespace.NoExpiry {
		return "none"
	}

	return ttl.String()
}
