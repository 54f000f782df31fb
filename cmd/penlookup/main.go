// Command penlookup resolves SNMP OIDs to the organizations that own them,
// using a mapping written by penmap.
//
// OIDs come from the command line, from standard input (one per line), or
// from the sysObjectID of an SNMP agent given with -agent. Each input prints
// one line: the OID, a tab, and the organization (empty when unresolved).
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lukeod/penmap"
	"github.com/lukeod/penmap/internal/cli"
	"github.com/lukeod/penmap/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, lookupEnv cli.LookupEnv) error {
	cfg, shouldExit, err := cli.ParseLookup(args, stderr, lookupEnv)
	if err != nil || shouldExit {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	m, err := loadMapping(cfg.MappingPath, cfg.Format)
	if err != nil {
		return cli.Failf("%v", err)
	}
	logger.Debug("mapping loaded", "path", cfg.MappingPath, "entries", m.Len())

	oids := cfg.OIDs
	if cfg.Agent != nil {
		oid, err := penmap.SysObjectID(ctx, *cfg.Agent)
		if err != nil {
			return cli.Failf("%v", err)
		}
		logger.Debug("sysObjectID retrieved", "agent", cfg.Agent.Target, "oid", oid)
		oids = []string{oid}
	}

	w := bufio.NewWriter(stdout)
	unresolved := 0
	resolve := func(oid string) {
		v, ok := m.Resolve(oid)
		if !ok {
			unresolved++
			logger.Debug("no enterprise for OID", "oid", oid)
		}
		fmt.Fprintf(w, "%s\t%s\n", oid, v.Organization)
	}

	if len(oids) > 0 {
		for _, oid := range oids {
			resolve(oid)
		}
	} else {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				resolve(line)
			}
		}
		if err := sc.Err(); err != nil {
			_ = w.Flush()
			return cli.Failf("reading stdin: %v", err)
		}
	}

	if err := w.Flush(); err != nil {
		return cli.Failf("writing output: %v", err)
	}
	if unresolved > 0 {
		// Output already tells which inputs failed.
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}

func loadMapping(path string, f penmap.Format) (*penmap.Mapping, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping: %w", err)
	}
	defer func() { _ = file.Close() }()

	m, err := penmap.Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return m, nil
}
