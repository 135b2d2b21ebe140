// Package config loads, normalizes, and validates lingopipe configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// OPENAI_API_KEY and DEEPL_AUTH_KEY. The Config type centralizes every knob
// the pipeline and CLI need, from cache and scratch directories to translator
// credentials and video render settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
