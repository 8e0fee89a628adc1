package main

import "github.com/mbruyneel/goec2/cmd"

func main() {
	cmd.Execute()
}
