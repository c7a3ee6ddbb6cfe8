package config

import "time"

// Config holds runtime settings for the QuickNotes CLI.
//
// Fields:
//   - Endpoint: SurrealDB RPC endpoint URL (ws:// or wss://).
//   - Namespace, Database: where the notes table lives.
//   - Access: name of the record-access method used for sign-up/sign-in.
//   - RequestTimeout: per-call deadline applied to every backend request.
type Config struct {
	Endpoint       string
	Namespace      string
	Database       string
	Access         string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults for a local SurrealDB.
func (c *Config) LoadDefaults() {
	c.Endpoint = "ws://127.0.0.1:8000/rpc"
	c.Namespace = "quicknotes"
	c.Database = "quicknotes"
	c.Access = "account"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
