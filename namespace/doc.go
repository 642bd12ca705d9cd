// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package namespace contains the url-monitor key namespace: the closed set of
// key categories, the key builder producing url-monitor:{category}:{id}
// keys, the per-category TTL policy and a client that applies both before
// delegating to a key-value store.
package namespace
