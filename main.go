package main

import "github.com/KostasZigo/gogitlet/cmd"

func main() {
	cmd.Execute()
}
