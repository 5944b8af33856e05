package main

import "github.com/notargets/geomkit/cmd"

func main() {
	cmd.Execute()
}
