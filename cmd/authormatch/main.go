// Package main provides the entry point for the authormatch CLI tool.
package main

import (
	"github.com/scholarly/authormatch/cmd/authormatch/cmd"
)

// Version information populated via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
