package main

import "molscene/internal/cli"

func main() {
	cli.Execute()
}
