package main

import "paramclean/cmd/paramclean/cmd"

func main() {
	cmd.Execute()
}
