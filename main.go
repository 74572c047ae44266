package main

import "github.com/H-S-E-N-I-D/AwesomeGIC/cmd"

func main() {
	cmd.Execute()
}
