// Package config loads and validates service configuration from YAML,
// with environment variable overrides for deployment-sensitive values.
package config
