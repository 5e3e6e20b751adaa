package main

import "specwiz/internal/cli"

func main() {
	cli.Execute()
}
