// Package config loads partial whenny configuration overrides from files.
//
// Package: config
// Title: whenny Configuration File Loading
// Description: This package implements the external configuration surface of
//              the library: a partial override tree matching WhennyConfig's
//              shape, expressed in TOML or YAML, deep-merged over defaults by
//              the caller via whenny.MergeConfig. Unknown top-level sections
//              are rejected with UNKNOWN_MODULE instead of being ignored.
// Version: v0.1.0
// Created: 2025-08-06
// Modified: 2025-08-06
//
// Change History:
// - 2025-08-06 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   override, err := config.Load("whenny.toml")
//   if err != nil {
//     // MISSING_CONFIG, INVALID_CONFIG, or UNKNOWN_MODULE
//   }
//   cfg := whenny.MergeConfig(whenny.DefaultConfig(), override)
package config
