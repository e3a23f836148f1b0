package main

import "github.com/brogergvhs/tinydesk/cmd"

func main() {
	cmd.Execute()
}
