package config

import (
	"flag"
)

// parses CLI flags for the server command
func ParseServerFlags(args []string) Flags {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	port := fs.String("port", "", "port to listen on (overrides PORT)")
	migrate := fs.Bool("migrate", false, "create missing tables before serving")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Port: *port, Migrate: *migrate}
}
