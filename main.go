package main

import "github.com/paneline/paneline/cmd"

func main() {
	cmd.Execute()
}
