package main

import "github.com/gymtrack/apiserver/cmd"

func main() {
	cmd.Execute()
}
