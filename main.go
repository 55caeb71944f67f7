package main

import "cvmatch/cmd"

func main() {
	cmd.Execute()
}
