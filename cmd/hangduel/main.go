package main

import (
	"github.com/ajmcleod/hangduel/internal/cli"
)

func main() {
	cli.Execute()
}
