package main

import (
	"github.com/petrichorlab/eightdays/internal/cli"
)

func main() {
	cli.Execute()
}
