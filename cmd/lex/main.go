package main

import (
	"aprn/internal"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: lex /path/to/source.aprn")
		os.Exit(internal.ExitUsage)
	}

	b, err := os.ReadFile(os.Args[1])
	if err != nil {
		logrus.Error(err)
		os.Exit(internal.ExitNoInput)
	}

	start := time.Now()
	err = internal.PrintTokens(string(b), internal.StdPrinter{})
	logrus.WithField("elapsed", time.Since(start)).Info("Scanned")
	os.Exit(internal.ExitCode(err))
}
