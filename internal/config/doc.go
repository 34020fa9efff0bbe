// Package config loads the YAML run configuration: mapper options,
// output format and logging. Parse applies defaults and validates.
package config
