// Command lsseq is the CLI entrypoint for the lsseq sequence lister.
//
// It builds the configuration from defaults, the environment and flags,
// then lists each path with numbered image sequences condensed to one line.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/lsseq/internal/config"
	"github.com/backmassage/lsseq/internal/listing"
	"github.com/backmassage/lsseq/internal/logging"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Exit statuses, following ls.
const (
	exitOK          = 0
	exitTrouble     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel the context on SIGINT/SIGTERM so the walker stops between
	// directories and buffered output is flushed. A second signal gets the
	// default handling and kills the process.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go watchSignals(sigCh, cancel, ctx.Done())

	prog := logging.ProgName(os.Args[0])
	cfg := config.DefaultConfig()
	cmd := config.NewCommand(&cfg, version+" ("+commit+")", func(ctx context.Context, cfg *config.Config) error {
		return list(ctx, prog, cfg)
	})
	return exitCode(cmd.ExecuteContext(ctx), prog, os.Stderr)
}

// watchSignals cancels on the first signal and then stops relaying sigCh.
func watchSignals(sigCh chan os.Signal, cancel context.CancelFunc, done <-chan struct{}) {
	select {
	case <-sigCh:
		signal.Stop(sigCh)
		cancel()
	case <-done:
	}
}

// list is the command body: everything after flags and config are final.
func list(ctx context.Context, prog string, cfg *config.Config) error {
	log, err := logging.NewLogger(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer log.Close()
	log.SetProg(prog)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	w, err := listing.New(cfg, log, out)
	if err != nil {
		return err
	}
	_, err = w.Run(ctx, cfg.Paths)
	return err
}

// exitCode maps the command result to a process status, printing errors
// that have not been logged yet.
func exitCode(err error, prog string, stderr io.Writer) int {
	var usage *config.UsageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.Is(err, listing.ErrIncomplete):
		return exitTrouble
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "%s: %v\nTry '%s --help' for more information.\n", prog, err, prog)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return exitTrouble
	}
}
