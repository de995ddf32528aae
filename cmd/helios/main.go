package main

import "github.com/nfrund/helios/cmd/helios/cmd"

func main() {
	cmd.Execute()
}
