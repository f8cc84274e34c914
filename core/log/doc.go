// Package log provides leveled, structured logging for the whenny command
// line and server surfaces.
//
// Package: log
// Title: whenny Structured Logging
// Description: A small structured logger with debug/info/warn/error levels,
//              contextual fields, and pluggable text/JSON formatting. Loggers
//              are immutable; WithField, WithName and friends return clones,
//              so configured loggers can be shared freely across goroutines.
//              The whenny domain packages never log - formatting results and
//              errors speak for themselves - so this package is consumed only
//              by cmd/whenny.
// Version: v0.1.0
// Created: 2025-08-07
// Modified: 2025-08-07
//
// Change History:
// - 2025-08-07 v0.1.0: Initial implementation
//
// Usage:
//   logger := log.New().WithName("serve").WithLevel(log.LevelDebug)
//   logger.Info("listening", log.Fields{"addr": addr})
package log
