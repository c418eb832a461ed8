package main

import (
	"github.com/statboard/statboard/internal/cli"
)

func main() {
	cli.Execute()
}
