package main

import "github.com/Mohsinsiddi/w3pick/cmd"

func main() {
	cmd.Execute()
}
