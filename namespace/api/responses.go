// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"
	"time"

	urlmonitor "github.com/hishamsaffarulla/pingra-monitoring-app-sub002"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
)

var (
	_ urlmonitor.Response = (*setRes)(nil)
	_ urlmonitor.Response = (*getRes)(nil)
	_ urlmonitor.Response = (*deleteRes)(nil)
)

type setRes struct {
	Key string `json:"key"`
	TTL int64  `json:"ttl"`
}

func (res setRes) Code() int {
	return http.StatusCreated
}

func (res setRes) Headers() map[string]string {
	return map[string]string{}
}

func (res setRes) Empty() bool {
	return false
}

type getRes struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Encoding string `json:"encoding,omitempty"`
	TTL      int64  `json:"ttl"`
}

func (res getRes) Code() int {
	return http.StatusOK
}

func (res getRes) Headers() map[string]string {
	return map[string]string{}
}

func (res getRes) Empty() bool {
	return false
}

type deleteRes struct{}

func (res deleteRes) Code() int {
	return http.StatusNoContent
}

func (res deleteRes) Headers() map[string]string {
	return map[string]string{}
}

func (res deleteRes) Empty() bool {
	return true
}

// seconds reports a remaining life in whole seconds, -1 for keys without
// expiry.
func seconds(ttl time.Duration) int64 {
	if ttl < 0 {
		return -1
	}

	return int64(ttl / time.Second)
}

func policySeconds(category namespace.Category) int64 {
	ttl, ok := namespace.TTLFor(category)
	if !ok {
		return -1
	}

	return seconds(ttl)
}
