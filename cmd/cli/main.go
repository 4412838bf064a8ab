package main

import "kindev/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
