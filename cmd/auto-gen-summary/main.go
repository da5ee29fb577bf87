package main

import "autogensummary/cmd/auto-gen-summary/cmd"

func main() {
	cmd.Execute()
}
