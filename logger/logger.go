// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger builds the structured JSON loggers used by the service.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to w and dropping records below
// the level named by levelText.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level Level
	if err := level.UnmarshalText(levelText); err != nil {
		return nil, fmt.Errorf("%w: %s", err, levelText)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level.Slog(),
	})

	return slog.New(handler), nil
}

// ExitWithError terminates the process with *code when it is not zero.
// It is meant to be deferred from main so other deferred calls run first.
func ExitWithError(code *int) {
	if code != nil && *code != 0 {
		os.Exit(*code)
	}
}
