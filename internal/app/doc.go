// Package app wires configuration, logging and the session components into
// one runnable harness instance.
package app
