// Package cli implements the interactive reComenzar client: a
// read-eval-print loop over the application services, with session
// restore on startup and deadline countdowns before the time-sensitive
// commands.
package cli
