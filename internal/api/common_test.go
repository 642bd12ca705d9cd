// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	urlmonitor "github.com/hishamsaffarulla/pingra-monitoring-app-sub002"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/api"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/apiutil"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var _ urlmonitor.Response = (*response)(nil)

const validKey = "url-monitor:session:abc123"

type responseWriter struct {
	body       []byte
	statusCode int
	header     http.Header
}

func newResponseWriter() *responseWriter {
	return &responseWriter{
		header: http.Header{},
	}
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = b
	return 0, nil
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
}

func (w *responseWriter) StatusCode() int {
	return w.statusCode
}

func (w *responseWriter) Body() []byte {
	return w.body
}

type response struct {
	code    int
	headers map[string]string
	empty   bool

	Key string `json:"key"`
	TTL int64  `json:"ttl"`
}

func (res response) Code() int {
	return res.code
}

func (res response) Headers() map[string]string {
	return res.headers
}

func (res response) Empty() bool {
	return res.empty
}

type body struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

func TestEncodeResponse(t *testing.T) {
	validBody := []byte(`{"key":"` + validKey + `","ttl":86400}` + "\n")

	cases := []struct {
		desc   string
		resp   interface{}
		header http.Header
		code   int
		body   []byte
		err    error
	}{
		{
			desc: "valid response",
			resp: response{
				code: http.StatusCreated,
				headers: map[string]string{
					"Location": "/namespaces/session/abc123",
				},
				Key: validKey,
				TTL: 86400,
			},
			header: http.Header{
				"Content-Type": []string{"application/json"},
				"Location":     []string{"/namespaces/session/abc123"},
			},
			code: http.StatusCreated,
			body: validBody,
			err:  nil,
		},
		{
			desc: "valid response with no headers",
			resp: response{
				code: http.StatusOK,
				Key:  validKey,
				TTL:  86400,
			},
			header: http.Header{
				"Content-Type": []string{"application/json"},
			},
			code: http.StatusOK,
			body: validBody,
			err:  nil,
		},
		{
			desc: "valid response with empty body",
			resp: response{
				code:  http.StatusNoContent,
				empty: true,
				Key:   validKey,
			},
			header: http.Header{
				"Content-Type": []string{"application/json"},
			},
			code: http.StatusNoContent,
			body: []byte(``),
			err:  nil,
		},
		{
			desc: "response without code",
			resp: struct {
				Key string `json:"key"`
			}{
				Key: validKey,
			},
			header: http.Header{},
			code:   0,
			body:   []byte(`{"key":"` + validKey + `"}` + "\n"),
			err:    nil,
		},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			responseWriter := newResponseWriter()
			err := api.EncodeResponse(context.Background(), responseWriter, c.resp)
			assert.Equal(t, c.err, err)
			assert.Equal(t, c.header, responseWriter.Header())
			assert.Equal(t, c.code, responseWriter.StatusCode())
			assert.Equal(t, string(c.body), string(responseWriter.Body()))
		})
	}
}

func TestEncodeError(t *testing.T) {
	cases := []struct {
		desc string
		errs []error
		code int
	}{
		{
			desc: "BadRequest",
			errs: []error{
				namespace.ErrInvalidCategory,
				namespace.ErrInvalidIdentifier,
				errors.ErrMalformedEntity,
				apiutil.ErrMissingID,
				apiutil.ErrMissingTenantID,
				apiutil.ErrMissingValue,
				apiutil.ErrValueSize,
			},
			code: http.StatusBadRequest,
		},
		{
			desc: "BadRequest with validation error",
			errs: []error{
				errors.Wrap(apiutil.ErrValidation, namespace.ErrInvalidCategory),
				errors.Wrap(apiutil.ErrValidation, namespace.ErrInvalidIdentifier),
				errors.Wrap(apiutil.ErrValidation, errors.ErrMalformedEntity),
				errors.Wrap(apiutil.ErrValidation, apiutil.ErrMissingID),
				errors.Wrap(apiutil.ErrValidation, apiutil.ErrMissingValue),
			},
			code: http.StatusBadRequest,
		},
		{
			desc: "NotFound",
			errs: []error{
				namespace.ErrNotFound,
			},
			code: http.StatusNotFound,
		},
		{
			desc: "ServiceUnavailable",
			errs: []error{
				namespace.ErrStoreUnavailable,
			},
			code: http.StatusServiceUnavailable,
		},
		{
			desc: "UnsupportedMediaType",
			errs: []error{
				apiutil.ErrUnsupportedContentType,
			},
			code: http.StatusUnsupportedMediaType,
		},
		{
			desc: "InternalServerError",
			errs: []error{
				namespace.ErrStoreOperation,
				errors.New("test"),
			},
			code: http.StatusInternalServerError,
		},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			responseWriter := newResponseWriter()
			for _, err := range c.errs {
				api.EncodeError(context.Background(), err, responseWriter)
				assert.Equal(t, c.code, responseWriter.StatusCode())

				message := body{}
				jerr := json.Unmarshal(responseWriter.Body(), &message)
				assert.NoError(t, jerr)

				var wrapper error
				switch errors.Contains(err, apiutil.ErrValidation) {
				case true:
					wrapper, err = errors.Unwrap(err)
					assert.Equal(t, err.Error(), message.Error)
					assert.Equal(t, wrapper.Error(), message.Message)
				case false:
					assert.Equal(t, err.Error(), message.Message)
				}
			}
		})
	}
}

func TestEncodeWrappedStoreError(t *testing.T) {
	cases := []struct {
		desc    string
		err     error
		code    int
		message string
	}{
		{
			desc:    "unavailable store wrapping a dial error",
			err:     errors.Wrap(namespace.ErrStoreUnavailable, errors.New("dial tcp: connection refused")),
			code:    http.StatusServiceUnavailable,
			message: namespace.ErrStoreUnavailable.Error(),
		},
		{
			desc:    "store operation wrapping a redis error",
			err:     errors.Wrap(namespace.ErrStoreOperation, errors.New("WRONGTYPE")),
			code:    http.StatusInternalServerError,
			message: namespace.ErrStoreOperation.Error(),
		},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			responseWriter := newResponseWriter()
			api.EncodeError(context.Background(), c.err, responseWriter)
			assert.Equal(t, c.code, responseWriter.StatusCode())

			message := body{}
			err := json.Unmarshal(responseWriter.Body(), &message)
			assert.NoError(t, err)
			assert.Equal(t, c.message, message.Message)
		})
	}
}
