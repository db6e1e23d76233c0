package main

import "zoomctl/cmd"

func main() {
	cmd.Execute()
}
