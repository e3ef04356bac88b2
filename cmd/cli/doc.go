// Package cli constructs the ghusers command-line interface. It wires the
// Cobra command hierarchy to the layered configuration loader and the
// structured logger, and exposes Execute for the main package.
package cli
