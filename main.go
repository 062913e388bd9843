package main

import "github.com/stocklens/stocklens/cmd"

func main() {
	cmd.Execute()
}
