package main

import (
	"os"

	"rubick-translator/internal/cli"
)

func main() {
	if err := cli.CreateRootCommand(cli.NewFlags()).Execute(); err != nil {
		os.Exit(1)
	}
}
