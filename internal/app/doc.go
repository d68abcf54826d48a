// Package app wires configuration, logging, metrics and the step executor
// into the snippets command.
package app
