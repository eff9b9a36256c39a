package main

import "github.com/accucheck/accucheck-cli/cmd"

func main() {
	cmd.Execute()
}
