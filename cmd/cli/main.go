// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run the url-monitor cache CLI.
package main

import (
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/cli"
	redisclient "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/internal/clients/redis"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	redisstore "github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace/redis"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
)

func main() {
	var client *redis.Client

	// Root
	rootCmd := &cobra.Command{
		Use: "urlmonitor-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !cli.NeedsStore(cmd) {
				return
			}

			redisURL, err := cli.ParseConfig(cmd)
			if err != nil {
				log.Fatalf("Failed to parse config: %s", err)
			}

			client, err = redisclient.New(redisclient.Config{URL: redisURL})
			if err != nil {
				log.Fatalf("Failed to create redis client: %s", err)
			}
			cli.SetService(namespace.NewService(redisstore.NewStore(client)))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if client != nil {
				client.Close()
			}
		},
	}

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		CmdShortDescr: cc.Magenta,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.HiGreen + cc.Bold,
		FlagsDescr:    cc.Green,
		FlagsDataType: cc.White + cc.Italic,
	})

	// Key commands
	keyCmd := cli.NewKeyCmd()
	inspectCmd := cli.NewInspectCmd()
	ttlPolicyCmd := cli.NewTTLPolicyCmd()

	// Store commands
	setCmd := cli.NewSetCmd()
	getCmd := cli.NewGetCmd()
	deleteCmd := cli.NewDeleteCmd()
	ttlCmd := cli.NewTTLCmd()
	tenantCmd := cli.NewTenantCmd()

	configCmd := cli.NewConfigCmd()
	versionCmd := cli.NewVersionCmd()

	// Root Commands
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(ttlPolicyCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(ttlCmd)
	rootCmd.AddCommand(tenantCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&cli.RedisURL,
		"redis-url",
		"u",
		"",
		"Redis URL, overrides redis_url from the config file",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.ConfigPath,
		"config",
		"c",
		"",
		"Config path",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		false,
		"Enables raw output mode for easier parsing of output",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
