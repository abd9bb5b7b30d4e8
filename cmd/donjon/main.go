// Package main is the entrypoint for donjon, a 365-day dungeon calendar.
package main

import "github.com/donjon-365/donjon/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
