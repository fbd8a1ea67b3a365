package main

import "github.com/ssargent/bifrost/cmd/bifrost/cmd"

func main() {
	cmd.Execute()
}
