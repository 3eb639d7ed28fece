// Package config defines the pipeloop binary's configuration and loads it in
// layers: built-in defaults, an optional HCL file, an optional .env file, and
// the process environment. Command-line flags are applied last by the cli
// package.
//
// A configuration file looks like:
//
//	input      = "puzzles/day10.txt"
//	part       = "2"
//	log_level  = "debug"
//	log_format = "json"
//	render     = true
//
// Environment variables use the PIPELOOP_ prefix: PIPELOOP_INPUT,
// PIPELOOP_PART, PIPELOOP_LOG_LEVEL, PIPELOOP_LOG_FORMAT, PIPELOOP_RENDER,
// PIPELOOP_REVERSE and PIPELOOP_PROFILE.
package config
