package main

import (
	"os"

	"github.com/skyguardian/uavacademy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
