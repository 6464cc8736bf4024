package main

import "github.com/tesselslate/xwin/cmd"

func main() {
	cmd.Execute()
}
