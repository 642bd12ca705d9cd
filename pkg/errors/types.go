// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

// ErrMalformedEntity indicates a malformed entity specification.
var ErrMalformedEntity = New("malformed entity specification")
