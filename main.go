package main

import "stock-check/cmd"

func main() {
	cmd.Execute()
}
