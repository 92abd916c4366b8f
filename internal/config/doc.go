// Package config resolves runtime settings from defaults, an optional HCL
// file and NUMBERS_* environment variables. Command-line flags are layered on
// top by package cli.
package config
