package main

import "github.com/jmillana/plz-cli/cmd"

func main() {
	cmd.Execute()
}
