// Package app wires configuration, logging, storage and the terminal
// session together, decoupled from the process entrypoint.
package app
