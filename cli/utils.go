// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

const (
	rawFlag = "raw"

	// offlineAnnotation marks commands that never contact Redis.
	offlineAnnotation = "offline"
)

var (
	// ConfigPath config path parameter.
	ConfigPath string = ""
	// RedisURL overrides the redis_url config entry.
	RedisURL string = ""
	// RawOutput raw output mode.
	RawOutput bool = false
)

// NeedsStore reports whether cmd reads or writes Redis, and so needs the
// config file and a client.
func NeedsStore(cmd *cobra.Command) bool {
	_, offline := cmd.Annotations[offlineAnnotation]
	return !offline
}

func offline() map[string]string {
	return map[string]string{offlineAnnotation: "true"}
}

func logJSONCmd(cmd cobra.Command, iList ...interface{}) {
	for _, i := range iList {
		m, err := json.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		pj, err := prettyjson.Format(m)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
	}
}

func logUsageCmd(cmd cobra.Command, u string) {
	fmt.Fprintf(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n"), u)
}

func logErrorCmd(cmd cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}

func logOKCmd(cmd cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", color.BlueString("ok"))
}

func logKeyCmd(cmd cobra.Command, key string) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), color.BlueString("\nkey: %s\n\n"), key)
	}
}

func logValueCmd(cmd cobra.Command, e entry) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), e.Value)
		return
	}
	logJSONCmd(cmd, e)
}
