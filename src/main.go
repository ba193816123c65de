package main

import (
	"github.com/eriklarko/expression-finder/src/cmd"
)

func main() {
	cmd.Execute()
}
