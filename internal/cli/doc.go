// Package cli turns the pipeloop command line into a validated config.Config.
package cli
