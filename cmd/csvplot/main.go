package main // CLI entry point is in package main

import "csvplot/cmd/cli"

func main() {
	cli.RunCLI()
}
