package main

import "github.com/clamsh/clamsh/cmd"

func main() {
	cmd.Execute()
}
