// Package config handles configuration management for outfit.
// It merges embedded defaults, the repository and machine TOML files,
// and OUTFIT_* environment variables into one effective configuration.
package config
