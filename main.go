package main

import "mcbundle.dev/cli/internal/interfaces/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
