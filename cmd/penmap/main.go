// Command penmap converts the IANA Private Enterprise Numbers registry into
// a JSON mapping from enterprise OID to organization name.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lukeod/penmap"
	"github.com/lukeod/penmap/internal/cli"
	"github.com/lukeod/penmap/internal/logging"
	"github.com/lukeod/penmap/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run holds the command logic so tests can drive it without a process.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookupEnv cli.LookupEnv) error {
	cfg, shouldExit, err := cli.ParseBuild(args, stderr, lookupEnv)
	if err != nil || shouldExit {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	// Validate the destination before the download. Nothing is written
	// until the mapping is fully encoded.
	dest, err := output.Resolve(cfg.OutputPath)
	if err != nil {
		var dirErr *output.DirectoryError
		if errors.As(err, &dirErr) {
			return cli.Failf("Directory not found: %s", dirErr.Dir)
		}
		return cli.Failf("%v", err)
	}

	text, err := penmap.Fetch(ctx, cfg.Source, penmap.FetchOptions{
		Encoding: cfg.Encoding,
		Logger:   logger,
	})
	if err != nil {
		logger.Debug("retrieval failed", "error", err)
		return cli.Failf("Unable to retrieve OIDs\n  - %s", cfg.Source)
	}

	m, report := penmap.ParseWithReport(text)
	logger.Debug("registry parsed",
		"lines", report.Lines,
		"records", report.Records,
		"placeholders", report.Placeholders,
		"duplicates", report.Duplicates,
		"truncated", report.Truncated,
	)
	if report.Truncated {
		logger.Warn("registry ends inside a record; trailing record dropped", "source", cfg.Source)
	}

	var buf bytes.Buffer
	if err := penmap.Encode(&buf, m, cfg.Format); err != nil {
		return cli.Failf("%v", err)
	}
	if err := output.Write(dest, stdout, buf.Bytes()); err != nil {
		return cli.Failf("%v", err)
	}

	logger.Info("IANA Private Enterprise Number OID mapping written to file.",
		slog.String("path", dest.String()),
		slog.Int("entries", m.Len()),
		slog.String("format", cfg.Format.String()),
	)
	return nil
}
