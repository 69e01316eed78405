package main

import (
	"github.com/aeyeguard/aeyeguard/cmd"
)

func main() {
	cmd.Execute()
}
