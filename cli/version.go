// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	urlmonitor "github.com/hishamsaffarulla/pingra-monitoring-app-sub002"
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// NewVersionCmd returns version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "CLI version",
		Long:  "Show the version of the url-monitor CLI",
		Run: func(cmd *cobra.Command, args []string) {
			logJSONCmd(*cmd, versionInfo{
				Version:   urlmonitor.Version,
				Commit:    urlmonitor.Commit,
				BuildTime: urlmonitor.BuildTime,
			})
		},
		Annotations: offline(),
	}
}
