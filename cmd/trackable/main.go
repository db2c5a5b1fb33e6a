package main

import (
	"github.com/neuronlabs/trackable/internal/cli"
)

func main() {
	cli.Execute()
}
