package main

import "github.com/dotcommander/seoscore/cmd"

func main() {
	cmd.Execute()
}
