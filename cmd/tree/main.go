package main

import (
	"aprn/internal"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: tree /path/to/source.aprn")
		os.Exit(internal.ExitUsage)
	}

	b, err := os.ReadFile(argsWithoutProg[0])
	if err != nil {
		logrus.Error(err)
		os.Exit(internal.ExitNoInput)
	}

	os.Exit(internal.ExitCode(internal.PrintTree(string(b), internal.StdPrinter{})))
}
