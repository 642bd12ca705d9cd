// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/cli"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	dir := t.TempDir()
	cli.ConfigPath = filepath.Join(dir, "config.toml")
	cli.RedisURL = ""
	defer func() {
		cli.ConfigPath = ""
		cli.RedisURL = ""
		cli.RawOutput = false
	}()

	cmd := setFlags(&cobra.Command{Use: "urlmonitor-cli"})

	url, err := cli.ParseConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/0", url)

	buf, err := os.ReadFile(cli.ConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "redis_url")

	rootCmd := newRootCmd(cli.NewConfigCmd())
	out := executeCommand(t, rootCmd, "config", "redis_url", "redis://cache:6380/1")
	assert.Equal(t, "\nok\n\n", out)
	out = executeCommand(t, rootCmd, "config", "raw_output", "true")
	assert.Equal(t, "\nok\n\n", out)

	url, err = cli.ParseConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "redis://cache:6380/1", url)
	assert.True(t, cli.RawOutput)

	cli.RedisURL = "redis://override:6379/0"
	url, err = cli.ParseConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "redis://override:6379/0", url)
}

func TestParseConfigRawFlag(t *testing.T) {
	dir := t.TempDir()
	cli.ConfigPath = filepath.Join(dir, "config.toml")
	defer func() {
		cli.ConfigPath = ""
		cli.RawOutput = false
	}()
	require.NoError(t, os.WriteFile(cli.ConfigPath, []byte("raw_output = \"true\"\n"), 0o644))

	cases := []struct {
		desc     string
		args     []string
		expected bool
	}{
		{
			desc:     "config file applies without flag",
			args:     []string{},
			expected: true,
		},
		{
			desc:     "explicit flag overrides config file",
			args:     []string{"--raw=false"},
			expected: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			cli.RawOutput = false
			cmd := setFlags(&cobra.Command{Use: "urlmonitor-cli"})
			require.NoError(t, cmd.ParseFlags(tc.args))

			_, err := cli.ParseConfig(cmd)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cli.RawOutput)
		})
	}
}

func TestNeedsStore(t *testing.T) {
	cases := []struct {
		desc     string
		cmd      *cobra.Command
		expected bool
	}{
		{desc: "key", cmd: cli.NewKeyCmd(), expected: false},
		{desc: "inspect", cmd: cli.NewInspectCmd(), expected: false},
		{desc: "ttl-policy", cmd: cli.NewTTLPolicyCmd(), expected: false},
		{desc: "version", cmd: cli.NewVersionCmd(), expected: false},
		{desc: "get", cmd: cli.NewGetCmd(), expected: true},
		{desc: "set", cmd: cli.NewSetCmd(), expected: true},
		{desc: "config", cmd: cli.NewConfigCmd(), expected: true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, cli.NeedsStore(tc.cmd), tc.desc)
	}
}

func TestConfigCmd(t *testing.T) {
	dir := t.TempDir()
	cli.ConfigPath = filepath.Join(dir, "config.toml")
	defer func() {
		cli.ConfigPath = ""
		cli.RawOutput = false
	}()
	_, err := cli.ParseConfig(setFlags(&cobra.Command{Use: "urlmonitor-cli"}))
	require.NoError(t, err)

	rootCmd := newRootCmd(cli.NewConfigCmd())

	cases := []struct {
		desc string
		args []string
		ok   bool
	}{
		{
			desc: "set redis url",
			args: []string{"config", "redis_url", "rediss://cache.example.com:6380/0"},
			ok:   true,
		},
		{
			desc: "set redis url with http scheme",
			args: []string{"config", "redis_url", "http://cache:6379"},
		},
		{
			desc: "set redis url without host",
			args: []string{"config", "redis_url", "cache"},
		},
		{
			desc: "set invalid raw output",
			args: []string{"config", "raw_output", "maybe"},
		},
		{
			desc: "set unknown key",
			args: []string{"config", "user_token", "x"},
		},
		{
			desc: "set without value",
			args: []string{"config", "redis_url"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			out := executeCommand(t, rootCmd, tc.args...)
			switch {
			case tc.ok:
				assert.Equal(t, "\nok\n\n", out)
			case len(tc.args) != 3:
				assert.True(t, strings.Contains(out, "usage: config <key> <value>"), out)
			default:
				assert.True(t, strings.HasPrefix(out, "\nerror: "), out)
			}
		})
	}
}
