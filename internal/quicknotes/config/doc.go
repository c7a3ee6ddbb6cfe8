// Package config loads runtime configuration for the QuickNotes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-e string   SurrealDB endpoint URL
//	-n string   namespace
//	-d string   database
//	-s string   record-access method name
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "endpoint": "wss://notes.example.com/rpc",
//	  "namespace": "quicknotes",
//	  "database": "quicknotes",
//	  "access": "account",
//	  "request_timeout": "10s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
