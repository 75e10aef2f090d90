// Command cards-admin is the entrypoint for CARDS administrative queries.
//
// Purpose:
//
//	Command-line interface for CARDS administrators to run read-only queries
//	against a running instance: which vocabularies questionnaires depend on,
//	which are installed, which are missing, and whether the instance and the
//	admin credentials are usable.
//
// Dependencies:
//   - internal/commands: Cobra command implementations
//
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/veronikaslc/cards/internal/commands"
)

var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx, version+" ("+gitCommit+", "+buildTime+")", os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
