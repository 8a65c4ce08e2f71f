package main

import "github.com/levmv/src2file/cmd"

func main() {
	cmd.Execute()
}
