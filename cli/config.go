// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"net/url"
	"os"
	"reflect"
	"strconv"

	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

type config struct {
	RedisURL  string `toml:"redis_url"`
	RawOutput string `toml:"raw_output"`
}

// Readable by all user groups but writeable by the user only.
const filePermission = 0o644

const defaultRedisURL = "redis://localhost:6379/0"

var (
	errReadFail            = errors.New("failed to read config file")
	errNoKey               = errors.New("no such key")
	errUnsupportedKeyValue = errors.New("unsupported data type for key")
	errWritingConfig       = errors.New("error in writing the updated config to file")
	errInvalidURL          = errors.New("invalid url")
	errURLParseFail        = errors.New("failed to parse url")
	defaultConfigPath      = "./config.toml"
)

func read(file string) (config, error) {
	c := config{}
	data, err := os.Open(file)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}
	defer data.Close()

	buf, err := io.ReadAll(data)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}

	if err := toml.Unmarshal(buf, &c); err != nil {
		return config{}, err
	}

	return c, nil
}

// ParseConfig parses the config file, creating it with default values when
// missing, and returns the Redis URL the commands should use. Flags set on
// cmd take precedence over the file.
func ParseConfig(cmd *cobra.Command) (string, error) {
	if ConfigPath == "" {
		ConfigPath = defaultConfigPath
	}

	_, err := os.Stat(ConfigPath)
	switch {
	// If the file does not exist, create it with default values.
	case os.IsNotExist(err):
		defaultConfig := config{
			RedisURL: defaultRedisURL,
		}
		buf, err := toml.Marshal(defaultConfig)
		if err != nil {
			return "", err
		}
		if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
			return "", errors.Wrap(errWritingConfig, err)
		}
	case err != nil:
		return "", err
	}

	config, err := read(ConfigPath)
	if err != nil {
		return "", err
	}

	if config.RawOutput != "" && !cmd.Flags().Changed(rawFlag) {
		rawOutput, err := strconv.ParseBool(config.RawOutput)
		if err != nil {
			return "", err
		}
		RawOutput = rawOutput
	}

	switch {
	case RedisURL != "":
		return RedisURL, nil
	case config.RedisURL != "":
		return config.RedisURL, nil
	default:
		return defaultRedisURL, nil
	}
}

// NewConfigCmd returns the command storing params in the local TOML file.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <key> <value>",
		Short: "CLI local config",
		Long:  "Local param storage to prevent repetitive passing of keys",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := setConfigValue(args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

func setConfigValue(key, value string) error {
	config, err := read(ConfigPath)
	if err != nil {
		return err
	}

	if key == "redis_url" {
		u, err := url.Parse(value)
		if err != nil {
			return errors.Wrap(errInvalidURL, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return errInvalidURL
		}
		if u.Scheme != "redis" && u.Scheme != "rediss" {
			return errURLParseFail
		}
	}

	if key == "raw_output" {
		if _, err := strconv.ParseBool(value); err != nil {
			return errors.Wrap(errUnsupportedKeyValue, err)
		}
	}

	configKeyToField := map[string]interface{}{
		"redis_url":  &config.RedisURL,
		"raw_output": &config.RawOutput,
	}

	fieldPtr, ok := configKeyToField[key]
	if !ok {
		return errNoKey
	}

	fieldValue := reflect.ValueOf(fieldPtr).Elem()

	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(value)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		fieldValue.SetBool(boolValue)
	default:
		return errUnsupportedKeyValue
	}

	buf, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
		return errors.Wrap(errWritingConfig, err)
	}

	return nil
}
