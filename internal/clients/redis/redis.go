// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package redis connects to the Redis instance backing the url-monitor
// key namespaces.
package redis

import (
	"context"
	goerrors "errors"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
)

var (
	errParseURL = errors.New("failed to parse redis url")
	errParseDB  = errors.New("failed to parse redis database index")
	errConnect  = errors.New("failed to connect to redis")
)

// Config holds the Redis connection settings. Pass and DB override the
// values carried by URL when set, matching deployments that configure
// requirepass separately from the address.
type Config struct {
	URL            string        `env:"URL"             envDefault:"redis://localhost:6379/0"`
	Pass           string        `env:"PASS"            envDefault:""`
	DB             string        `env:"DB"              envDefault:""`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"30s"`
}

// New creates a Redis client without contacting the server.
func New(cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(errParseURL, err)
	}
	if cfg.Pass != "" {
		opts.Password = cfg.Pass
	}
	if cfg.DB != "" {
		db, err := strconv.Atoi(cfg.DB)
		if err != nil {
			return nil, errors.Wrap(errParseDB, err)
		}
		opts.DB = db
	}

	return redis.NewClient(opts), nil
}

// Connect creates a Redis client and pings the server, retrying with
// exponential backoff until ConnectTimeout elapses or ctx is done. A zero
// ConnectTimeout pings exactly once.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client, err := New(cfg)
	if err != nil {
		return nil, err
	}

	var b backoff.BackOff = &backoff.StopBackOff{}
	if cfg.ConnectTimeout > 0 {
		eb := backoff.NewExponentialBackOff()
		eb.MaxElapsedTime = cfg.ConnectTimeout
		b = eb
	}

	ping := func() error {
		err := client.Ping(ctx).Err()
		if AuthFailed(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	if err := backoff.Retry(ping, backoff.WithContext(b, ctx)); err != nil {
		client.Close()
		return nil, errors.Wrap(errConnect, err)
	}

	return client, nil
}

// AuthFailed reports whether err is Redis refusing the credentials sent while
// a connection was being opened.
func AuthFailed(err error) bool {
	var redisErr redis.Error
	if !goerrors.As(err, &redisErr) {
		return false
	}
	msg := redisErr.Error()

	return strings.HasPrefix(msg, "NOAUTH") || strings.HasPrefix(msg, "WRONGPASS")
}
