// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/spf13/cobra"
)

// NewSetCmd returns the command storing a value under a category key.
func NewSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <id> <value>",
		Short: "Set value",
		Long: "Store a value under a namespaced key with the category expiry\n" +
			"usage:\n" +
			"\turlmonitor-cli set session abc123 '{\"user\":\"jane\"}'",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			category, err := namespace.ToCategory(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := svc.Set(cmd.Context(), category, args[1], []byte(args[2])); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

// NewGetCmd returns the command reading the value of a category key.
func NewGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <category> <id>",
		Short: "Get value",
		Long: "Read the value stored under a namespaced key\n" +
			"usage:\n" +
			"\turlmonitor-cli get session abc123",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			category, err := namespace.ToCategory(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			value, err := svc.Get(cmd.Context(), category, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			key, err := namespace.Build(category, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logValueCmd(*cmd, entry{Key: key.String(), Value: string(value)})
		},
	}
}

// NewDeleteCmd returns the command removing a category key.
func NewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category> <id>",
		Short: "Delete key",
		Long: "Remove a namespaced key. Removing a missing key succeeds\n" +
			"usage:\n" +
			"\turlmonitor-cli delete session abc123",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			category, err := namespace.ToCategory(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := svc.Delete(cmd.Context(), category, args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

// NewTTLCmd returns the command reporting the remaining life of a category key.
func NewTTLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ttl <category> <id>",
		Short: "Key TTL",
		Long: "Show the remaining life of a namespaced key\n" +
			"usage:\n" +
			"\turlmonitor-cli ttl cache page-1",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			category, err := namespace.ToCategory(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			ttl, err := svc.TTL(cmd.Context(), category, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			key, err := namespace.Build(category, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, entry{Key: key.String(), TTL: ttlString(ttl)})
		},
	}
}

var cmdTenant = []cobra.Command{
	{
		Use:   "set <tenant_id> <id> <value>",
		Short: "Set tenant value",
		Long: "Store a value under a tenant scoped key\n" +
			"usage:\n" +
			"\turlmonitor-cli tenant set acme settings '{\"plan\":\"pro\"}'",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if err := svc.SetTenant(cmd.Context(), args[0], args[1], []byte(args[2])); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
	{
		Use:   "get <tenant_id> <id>",
		Short: "Get tenant value",
		Long: "Read the value stored under a tenant scoped key\n" +
			"usage:\n" +
			"\turlmonitor-cli tenant get acme settings",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			value, err := svc.GetTenant(cmd.Context(), args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			key, err := namespace.BuildTenant(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logValueCmd(*cmd, entry{Key: key.String(), Value: string(value)})
		},
	},
	{
		Use:   "delete <tenant_id> <id>",
		Short: "Delete tenant key",
		Long: "Remove a tenant scoped key\n" +
			"usage:\n" +
			"\turlmonitor-cli tenant delete acme settings",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if err := svc.DeleteTenant(cmd.Context(), args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
	{
		Use:   "ttl <tenant_id> <id>",
		Short: "Tenant key TTL",
		Long: "Show the remaining life of a tenant scoped key\n" +
			"usage:\n" +
			"\turlmonitor-cli tenant ttl acme settings",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			ttl, err := svc.TTLTenant(cmd.Context(), args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			key, err := namespace.BuildTenant(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, entry{Key: key.String(), TTL: ttlString(ttl)})
		},
	},
}

// NewTenantCmd returns the tenant scoped cache command.
func NewTenantCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "tenant [set | get | delete | ttl]",
		Short: "Tenant cache",
		Long:  "Manage values stored under tenant scoped keys",
	}

	for i := range cmdTenant {
		cmd.AddCommand(&cmdTenant[i])
	}

	return &cmd
}
