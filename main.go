package main

import "github.com/agentic-research/renumber/cmd"

func main() {
	cmd.Execute()
}
