package main

import (
	"aprn/internal"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const defaultConfigPath = "aprn.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the YAML configuration")
	dumpTokens := flag.Bool("tokens", false, "print scanned tokens before running")
	dumpAST := flag.Bool("ast", false, "print the syntax tree before running")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: aprn [flags] /path/to/source.aprn")
		flag.PrintDefaults()
		os.Exit(internal.ExitUsage)
	}

	config, err := internal.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) && !isFlagSet("config") {
		config, err = internal.DefaultConfig(), nil
	}
	if err != nil {
		logrus.Error(err)
		os.Exit(internal.ExitUsage)
	}

	if *dumpTokens {
		config.DumpTokens = true
	}
	if *dumpAST {
		config.DumpAST = true
	}
	if *verbose {
		config.LogLevel = logrus.DebugLevel.String()
	}

	logger, err := config.NewLogger(os.Stderr)
	if err != nil {
		logrus.Error(err)
		os.Exit(internal.ExitUsage)
	}

	absPath, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		logger.Fatal(err)
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		logger.Error(err)
		os.Exit(internal.ExitNoInput)
	}

	err = internal.RunSourceWithConfig(absPath, string(b), internal.StdPrinter{}, config, logger.WithField("file", absPath))
	os.Exit(internal.ExitCode(err))
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
