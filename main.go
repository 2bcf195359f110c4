package main

import "github.com/emalang/ema/cmd"

func main() {
	cmd.Execute()
}
