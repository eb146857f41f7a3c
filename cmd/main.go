package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	cfgPath := flag.String("config", "", "path to yaml config file")
	tokens := flag.Bool("tokens", false, "print the token table for each line")
	tree := flag.Bool("ast", false, "print the parsed tree for each line")
	truncate := flag.Bool("truncate", false, "drop the fractional part of numeric literals")
	verbose := flag.Bool("v", false, "debug logging")
	workers := flag.Int("j", 1, "number of lines compiled at once in batch mode")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: exprc [flags] [file...]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Without files, reads one expression per line from stdin.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		atexit.Exit(2)
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tokens":
			cfg.ShowTokens = *tokens
		case "ast":
			cfg.ShowAst = *tree
		case "truncate":
			cfg.TruncateNumbers = *truncate
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		case "j":
			cfg.Workers = *workers
		}
	})

	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		atexit.Exit(2)
	}

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log error:", err)
		atexit.Exit(2)
	}
	slog.SetDefault(logger)

	if flag.NArg() == 0 {
		repl(os.Stdin, os.Stdout, cfg, logger)
		atexit.Exit(0)
	}

	failed := 0
	for _, name := range flag.Args() {
		ok, err := runFile(name, os.Stdout, cfg, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
		}
		if !ok {
			failed++
		}
	}

	if failed > 0 {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
