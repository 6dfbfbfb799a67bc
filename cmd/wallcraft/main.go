package main

import "wallcraft/internal/cli"

func main() {
	cli.Execute()
}
