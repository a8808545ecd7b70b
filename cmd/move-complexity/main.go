package main

import "github.com/sui-move-tools/move-complexity/internal/cli"

func main() {
	cli.Execute()
}
