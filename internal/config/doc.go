// Package config provides loading, merging, and validation of the process
// settings of the capture service (listener address, timeouts, log level).
//
// Settings are assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
