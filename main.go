package main

import "github.com/moneymind/moneymind/cmd"

func main() {
	cmd.Execute()
}
