// Command list-required-vocabularies prints the vocabularies referenced by
// vocabulary questions in a CARDS instance, one per line.
//
// It takes no arguments. CARDS_URL and ADMIN_PASSWORD select the instance and
// the admin password. It is equivalent to "cards-admin vocabularies required".
package main

import (
	"context"
	"os"

	"github.com/veronikaslc/cards/internal/commands"
)

var version = "dev"

func main() {
	os.Exit(commands.Execute(context.Background(), version, []string{"vocabularies", "required"}, os.Stdout, os.Stderr))
}
