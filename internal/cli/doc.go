// Package cli implements the rtrans command line: one-shot translation,
// history inspection and export, settings editing and provider listing, all
// against the same store the desktop app uses.
package cli
