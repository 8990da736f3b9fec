// Command agent is a universal multi-provider AI CLI: it detects what kind
// of LLM endpoint sits behind a base URL, manages provider profiles, and
// talks to them through a vendor-neutral chat interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Rreeqqwel/omni-agent-cli/internal/cli"
)

func main() {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	if err := cli.Root().Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
