package main

import "github.com/pfrederiksen/macro-calendar/internal/cli"

func main() {
	cli.Execute()
}
