// Package config provides configuration structures and utilities for histsum.
// It defines the runtime options for extraction and aggregation, and loads
// the optional YAML settings file that overrides the defaults.
package config
