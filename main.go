package main

import "github.com/voigtjr/rkbeets/cmd"

func main() {
	cmd.Execute()
}
