// Package config loads the sender resolver daemon configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap/zapcore"

	"xdao.co/tokenbridge/message"
)

const (
	DefaultListen = "127.0.0.1:7787"
	DefaultLevel  = "info"
)

// Config describes the daemon.
//
// Example:
//
//	{
//	  "listen": "0.0.0.0:7787",
//	  "max_msg_bytes": 65536,
//	  "chain_id": 1,
//	  "metrics_listen": "127.0.0.1:9787",
//	  "log": {"level": "debug", "development": true}
//	}
type Config struct {
	Listen      string          `json:"listen,omitempty"`
	MaxMsgBytes int             `json:"max_msg_bytes,omitempty"`
	ChainID     message.ChainID `json:"chain_id,omitempty"`
	Log         LogConfig       `json:"log"`

	// MetricsListen serves Prometheus metrics over HTTP when set.
	MetricsListen string `json:"metrics_listen,omitempty"`
}

type LogConfig struct {
	Level       string `json:"level,omitempty"`
	Development bool   `json:"development,omitempty"`
}

func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("config: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg = cfg.WithDefaults()
	return cfg, cfg.Validate()
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.ChainID == message.ChainUnset {
		c.ChainID = message.ChainSolana
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLevel
	}
	return c
}

func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("config: invalid listen address %q: %w", c.Listen, err)
	}
	if c.MetricsListen != "" {
		if _, _, err := net.SplitHostPort(c.MetricsListen); err != nil {
			return fmt.Errorf("config: invalid metrics_listen address %q: %w", c.MetricsListen, err)
		}
	}
	if c.MaxMsgBytes < 0 {
		return fmt.Errorf("config: max_msg_bytes must not be negative")
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel parses Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("config: invalid log level %q", l.Level)
	}
	return lvl, nil
}
