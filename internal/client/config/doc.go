// Package config loads runtime configuration for the CapNote CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via the -c or -config flag.
//  3. CAPNOTE_* environment variables.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations can be strings like "10s" or integer nanoseconds:
//
//	{
//	  "endpoint_url": "ws://127.0.0.1:8000/rpc",
//	  "namespace": "capnote",
//	  "database": "capnote",
//	  "request_timeout": "10s",
//	  "upcoming_window_days": 7
//	}
//
// Primary API
//
//   - type Config                     — endpoint, tenant and storage settings
//   - func LoadConfig() *Config       — applies defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets local-stack defaults
package config
