package main

import "github.com/tranvictor/txsubmit/cmd"

func main() {
	cmd.Execute()
}
