// Command abacheck validates an ABA routing number and prints the result as JSON.
package main

import (
	"os"

	"github.com/bibbank/routing-service/internal/presentation/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
