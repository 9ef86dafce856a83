package main

import "eqsat/cmd"

func main() {
	cmd.Execute()
}
