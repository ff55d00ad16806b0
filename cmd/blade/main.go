package main

import (
	"os"

	"github.com/blade-kv/blade/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
