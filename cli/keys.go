// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/spf13/cobra"
)

type keyInfo struct {
	Key      string             `json:"key"`
	Category namespace.Category `json:"category"`
	TenantID string             `json:"tenant_id,omitempty"`
	ID       string             `json:"id"`
	TTL      string             `json:"ttl"`
}

// NewKeyCmd returns the command printing the key of a category and
// identifier without touching the store.
func NewKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key <category> <id>",
		Short: "Build key",
		Long: "Build the namespaced key of a category and identifier\n" +
			"usage:\n" +
			"\turlmonitor-cli key session abc123",
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
			key, err := namespace.Build(category, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logKeyCmd(*cmd, key.String())
		},
		Annotations: offline(),
	}
}

// NewInspectCmd returns the command splitting a key into its parts.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <key>",
		Short: "Inspect key",
		Long: "Show the category, identifier and expiry policy of a key\n" +
			"usage:\n" +
			"\turlmonitor-cli inspect url-monitor:tenant:acme:settings",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			key, err := namespace.ParseKey(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			info := keyInfo{
				Key:      key.String(),
				Category: key.Category(),
				TenantID: key.TenantID(),
				ID:       key.ID(),
				TTL:      "none",
			}
			if ttl, ok := namespace.TTLFor(key.Category()); ok {
				info.TTL = ttl.String()
			}

			logJSONCmd(*cmd, info)
		},
		Annotations: offline(),
	}
}

// NewTTLPolicyCmd returns the command printing the expiry of every category.
func NewTTLPolicyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ttl-policy",
		Short: "TTL policy",
		Long:  "Show the expiry applied to each key category",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			logJSONCmd(*cmd, namespace.Policies())
		},
		Annotations: offline(),
	}
}
