// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"testing"
	"time"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/server"
	"github.com/stretchr/testify/assert"
)

func TestParseServerConfig(t *testing.T) {
	tests := []struct {
		description    string
		config         *server.Config
		expectedConfig *server.Config
		options        []Options
		err            bool
	}{
		{
			"Parsing with Server Config",
			&server.Config{},
			&server.Config{
				Host:     "localhost",
				Port:     "9010",
				CertFile: "cert",
				KeyFile:  "key",
			},
			[]Options{
				{
					Environment: map[string]string{
						"HOST":        "localhost",
						"PORT":        "9010",
						"SERVER_CERT": "cert",
						"SERVER_KEY":  "key",
					},
				},
			},
			false,
		},
		{
			"Parsing with Server Config with Prefix",
			&server.Config{},
			&server.Config{
				Host:     "localhost",
				Port:     "9010",
				CertFile: "cert",
				KeyFile:  "key",
			},
			[]Options{
				{
					Environment: map[string]string{
						"UM_CACHE_HTTP_HOST":        "localhost",
						"UM_CACHE_HTTP_PORT":        "9010",
						"UM_CACHE_HTTP_SERVER_CERT": "cert",
						"UM_CACHE_HTTP_SERVER_KEY":  "key",
					},
					Prefix: "UM_CACHE_HTTP_",
				},
			},
			false,
		},
	}
	for _, test := range tests {
		err := Parse(test.config, test.options...)
		switch test.err {
		case false:
			assert.NoError(t, err, fmt.Sprintf("%s: expected no error but got %v", test.description, err))
		default:
			assert.Error(t, err, fmt.Sprintf("%s: expected error but got nil", test.description))
		}
		assert.Equal(t, test.expectedConfig, test.config, fmt.Sprintf("%s: expected %v got %v", test.description, test.expectedConfig, test.config))
	}
}

func TestParseCustomConfig(t *testing.T) {
	type CustomConfig struct {
		Level   string        `env:"LOG_LEVEL" envDefault:"info"`
		Timeout time.Duration `env:"TIMEOUT"`
		Ratio   float64       `env:"RATIO"`
	}

	tests := []struct {
		description    string
		config         *CustomConfig
		expectedConfig *CustomConfig
		options        []Options
		err            bool
	}{
		{
			"defaults only",
			&CustomConfig{},
			&CustomConfig{Level: "info"},
			[]Options{{Environment: map[string]string{}}},
			false,
		},
		{
			"all fields set",
			&CustomConfig{},
			&CustomConfig{Level: "debug", Timeout: time.Second, Ratio: 0.5},
			[]Options{
				{
					Environment: map[string]string{
						"LOG_LEVEL": "debug",
						"TIMEOUT":   "1s",
						"RATIO":     "0.5",
					},
				},
			},
			false,
		},
		{
			"invalid duration",
			&CustomConfig{},
			&CustomConfig{Level: "info"},
			[]Options{
				{
					Environment: map[string]string{
						"TIMEOUT": "invalid",
					},
				},
			},
			true,
		},
		{
			"missing required field",
			&CustomConfig{},
			&CustomConfig{Level: "info"},
			[]Options{
				{
					Environment:     map[string]string{},
					RequiredIfNoDef: true,
				},
			},
			true,
		},
	}
	for _, test := range tests {
		err := Parse(test.config, test.options...)
		switch test.err {
		case false:
			assert.NoError(t, err, fmt.Sprintf("%s: expected no error but got %v", test.description, err))
		default:
			assert.Error(t, err, fmt.Sprintf("%s: expected error but got nil", test.description))
		}
		assert.Equal(t, test.expectedConfig, test.config, fmt.Sprintf("%s: expected %v got %v", test.description, test.expectedConfig, test.config))
	}
}
