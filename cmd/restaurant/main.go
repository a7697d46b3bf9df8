package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/restaurant/internal/cli"
	"github.com/Makepad-fr/restaurant/internal/config"
	"github.com/Makepad-fr/restaurant/internal/logger"
	"github.com/Makepad-fr/restaurant/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Root flags (apply to every subcommand)
	file := flag.String("file", cfg.File, "restaurant definition file")
	theme := flag.String("theme", cfg.Theme, "classic | neon | mono")
	at := flag.String("at", "", "pretend the time is HH:MM instead of now")
	flag.Parse()

	ui.SetTheme(*theme)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		File:   *file,
		At:     *at,
		Logger: logger.New("restaurant", cfg.LogLevel),
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
