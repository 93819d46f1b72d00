package main

import (
	"os"

	"github.com/idilsaglam/taskify/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
