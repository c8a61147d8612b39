package config

import "time"

// Config holds runtime settings for the CapNote CLI.
//
// EndpointURL is the websocket address of the SurrealDB node. Namespace,
// Database and Access select the tenant and the record access method used
// for sign-up and sign-in. The S3* fields point at the bucket that stores
// payment receipts.
type Config struct {
	EndpointURL string
	Namespace   string
	Database    string
	Access      string

	RequestTimeout time.Duration

	UpcomingWindowDays int

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// LoadDefaults populates c with sensible defaults for a local stack.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "ws://127.0.0.1:8000/rpc"
	c.Namespace = "capnote"
	c.Database = "capnote"
	c.Access = "account"
	c.RequestTimeout = 10 * time.Second
	c.UpcomingWindowDays = 7
	c.S3Endpoint = "http://127.0.0.1:9000"
	c.S3Region = "us-east-1"
	c.S3Bucket = "capnote"
	c.S3PublicBaseURL = "http://127.0.0.1:9000"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
