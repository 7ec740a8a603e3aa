// Package config loads, normalizes, and validates staffroll configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// STAFFROLL_LOG_LEVEL. Commands receive a single Config covering log output,
// backup placement, save locking, and the default script format.
//
// Always obtain settings through this package so downstream code receives
// expanded paths and clear validation errors.
package config
