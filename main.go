package main

import "thermodb/cmd"

func main() {
	cmd.Execute()
}
