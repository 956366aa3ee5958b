package main

import (
	"hostsnap/cmd"
)

func main() {
	cmd.Execute()
}
