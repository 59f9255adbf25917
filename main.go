package main

import "github.com/twinops/twinctl/cmd"

func main() {
	cmd.Execute()
}
