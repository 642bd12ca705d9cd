// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package testsutil contains helpers shared by tests.
package testsutil

import (
	"fmt"
	"testing"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/uuid"
	"github.com/stretchr/testify/require"
)

// GenerateUUID returns a random UUID or fails the test.
func GenerateUUID(t *testing.T) string {
	idProvider := uuid.New()
	id, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	return id
}
