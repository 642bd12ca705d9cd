// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package testsutil

import (
	"bufio"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const wrongPass = "-WRONGPASS invalid username-password pair or user is disabled.\r\n"

// NewAuthRejectingRedis starts a TCP server that answers every RESP command
// with a WRONGPASS error and returns its address. The server stops when the
// test ends.
func NewAuthRejectingRedis(t *testing.T) string {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err, "failed to start listener")
	t.Cleanup(func() { lis.Close() })

	go func() {
		for {
			conn, err := lis.Accept()
			if err != nil {
				return
			}
			go rejectCommands(conn)
		}
	}()

	return lis.Addr().String()
}

func rejectCommands(conn net.Conn) {
	defer conn.Close()

	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		// Each command starts with an array header.
		if !strings.HasPrefix(line, "*") {
			continue
		}
		if _, err := conn.Write([]byte(wrongPass)); err != nil {
			return
		}
	}
}
