// Pylon is a read-only command-line client for the Pylon API.
package main

import (
	"github.com/usepylon/pylon-cli/cmd"
)

func main() {
	cmd.Run()
}
