// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/apiutil"
)

const (
	// maxValueSize caps the size of a single cached value.
	maxValueSize = 1 << 20

	// maxBodySize bounds a set request body. An escaped JSON string takes
	// at most six bytes per value byte.
	maxBodySize = 6*maxValueSize + 1024

	base64Encoding = "base64"
)

type setReq struct {
	category namespace.Category
	id       string
	Value    *string `json:"value"`
	Encoding string  `json:"encoding,omitempty"`
}

func (req setReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return validateValue(req.Value, req.Encoding)
}

type keyReq struct {
	category namespace.Category
	id       string
}

func (req keyReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type setTenantReq struct {
	tenantID string
	id       string
	Value    *string `json:"value"`
	Encoding string  `json:"encoding,omitempty"`
}

func (req setTenantReq) validate() error {
	if req.tenantID == "" {
		return apiutil.ErrMissingTenantID
	}
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return validateValue(req.Value, req.Encoding)
}

type tenantKeyReq struct {
	tenantID string
	id       string
}

func (req tenantKeyReq) validate() error {
	if req.tenantID == "" {
		return apiutil.ErrMissingTenantID
	}
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

func validateValue(value *string, encoding string) error {
	if value == nil {
		return apiutil.ErrMissingValue
	}
	raw, err := decodeValue(*value, encoding)
	if err != nil {
		return err
	}
	if len(raw) > maxValueSize {
		return apiutil.ErrValueSize
	}

	return nil
}

// decodeValue returns the stored bytes of a request value. Values are UTF-8
// text unless encoding is base64.
func decodeValue(value, encoding string) ([]byte, error) {
	switch encoding {
	case "":
		return []byte(value), nil
	case base64Encoding:
		raw, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, apiutil.ErrInvalidEncoding
		}
		return raw, nil
	default:
		return nil, apiutil.ErrInvalidEncoding
	}
}

// encodeValue renders stored bytes for a JSON response. Bytes that are not
// valid UTF-8 are sent as base64.
func encodeValue(value []byte) (string, string) {
	if utf8.Valid(value) {
		return string(value), ""
	}

	return base64.StdEncoding.EncodeToString(value), base64Encoding
}
