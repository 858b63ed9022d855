package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/JM4ier/bitumen"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := flag.NewFlagSet("bitumen", flag.ContinueOnError)
	verbose := flags.Bool("verbose", false, "enable debug logging")
	noVerify := flags.Bool("no-verify", false, "skip record checksum verification when listing")
	flags.Usage = printUsage

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	args := flags.Args()
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch args[0] {
	case "pack":
		if len(args) != 3 {
			printUsage()
			return 2
		}
		return pack(logger, args[1], args[2])
	case "list":
		if len(args) != 2 {
			printUsage()
			return 2
		}
		return list(logger, args[1], *noVerify)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  bitumen pack <dir> <archive>")
	fmt.Fprintln(os.Stderr, "  bitumen list [--no-verify] <archive>")
}

func pack(logger *slog.Logger, dir, out string) int {
	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if err := bitumen.Archive(context.Background(), f, dir, bitumen.ArchiveWithLogger(logger)); err != nil {
		f.Close()
		// A partial archive is invalid by contract; don't leave one behind.
		os.Remove(out)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	logger.Info("archive written", "root", dir, "archive", out)
	return 0
}

func list(logger *slog.Logger, path string, noVerify bool) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	defer f.Close()

	opts := []bitumen.ScanOption{bitumen.ScanWithLogger(logger)}
	if noVerify {
		opts = append(opts, bitumen.ScanWithChecksumVerification(false))
	}

	sc := bitumen.NewScanner(f, opts...)
	count := 0
	for sc.Scan() {
		e := sc.Entry()
		fmt.Printf("%-9s : %s : %dB\n", e.Kind, e.PathText(), e.Size)
		count++
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (%d entries decoded)\n", err, count)
		return 1
	}
	logger.Info("archive listed", "entries", count)
	return 0
}
