package main

import (
	"github.com/jsphweid/midiwire/cmd"
)

func main() {
	cmd.Execute()
}
