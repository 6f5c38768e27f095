package main

import "script-scrub/internal/cli"

func main() {
	cli.Execute()
}
