package main

import "canvashost/internal/cli"

func main() {
	cli.Execute()
}
