// Package logging provides structured logging built on log/slog, with
// level and format selection driven by configuration.
package logging
