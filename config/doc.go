// Package config loads arcade settings: YAML file first, then ARCADIA_*
// environment overrides, then struct validation.
package config
