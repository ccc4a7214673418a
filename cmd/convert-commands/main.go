// Package main is the entry point for convert-commands, which converts the
// upstream conductor TOML commands into Claude Code Markdown commands.
//
// Run with no arguments from anywhere inside the plugin checkout:
//
//	go run ./cmd/convert-commands
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/conductor-claude/conductor/internal/config"
	"github.com/conductor-claude/conductor/internal/convert"
	"github.com/conductor-claude/conductor/internal/report"
)

var (
	version = "dev"
)

func main() {
	rootFlag := flag.String("root", "", "Plugin root (default: nearest plugin root above the working directory)")
	sourceFlag := flag.String("source", config.DefaultSourceDir, "Directory containing TOML commands, relative to the plugin root")
	targetFlag := flag.String("target", config.DefaultTargetDir, "Directory to write Markdown commands to, relative to the plugin root")
	dryRun := flag.Bool("dry-run", false, "Convert and report without writing files")
	check := flag.Bool("check", false, "Exit non-zero if any output file is missing or out of date")
	verbose := flag.Bool("v", false, "Show substitutions applied to each command")
	preview := flag.Bool("preview", false, "Render each converted command to the terminal")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("convert-commands %s\n", version)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	root := *rootFlag
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
		root = config.FindRoot(cwd)
	}

	cfg := config.Default(root)
	cfg.SourceDir = *sourceFlag
	cfg.TargetDir = *targetFlag
	cfg.DryRun = *dryRun
	cfg.Check = *check
	cfg.Verbose = *verbose
	cfg.Preview = *preview

	stdoutFd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(stdoutFd)
	width := 80
	if isTTY {
		if w, _, err := term.GetSize(stdoutFd); err == nil {
			width = w
		}
	}

	reporter := report.NewConsole(os.Stdout, report.Options{
		Color:   isTTY && !*noColor,
		Verbose: cfg.Verbose,
		Preview: cfg.Preview,
		DryRun:  cfg.DryRun,
		Check:   cfg.Check,
		Width:   width,
	})

	summary, err := convert.New(cfg, reporter).Run(ctx)
	if err != nil {
		switch {
		case errors.Is(err, convert.ErrSourceDirMissing):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Run from inside the plugin checkout or pass -root.\n")
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(os.Stderr, "Interrupted.")
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if cfg.Check && summary.Failed() > 0 {
		fmt.Fprintf(os.Stderr, "%d command(s) out of date; run convert-commands to regenerate.\n", summary.Failed())
		os.Exit(1)
	}
}
