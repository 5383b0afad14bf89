package main

import "github.com/bgraf/exifview/cmd"

func main() {
	cmd.Execute()
}
