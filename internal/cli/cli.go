// Package cli parses command lines for the penmap commands into explicit
// configuration values. Environment lookups happen here, once, so nothing
// below main reads process state.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lukeod/penmap"
	"github.com/lukeod/penmap/internal/logging"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ZenHomeEnv names the environment variable holding the installation root
// under which the default mapping file lives.
const ZenHomeEnv = "ZENHOME"

// ExitError carries a user-facing message and the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Failf returns an ExitError with ExitFailure.
func Failf(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// DefaultOutputPath returns $ZENHOME/share/iana/pen_map<ext>, or "" when
// ZENHOME is unset or empty.
func DefaultOutputPath(lookupEnv LookupEnv, f penmap.Format) string {
	if lookupEnv == nil {
		return ""
	}
	home, ok := lookupEnv(ZenHomeEnv)
	if !ok || home == "" {
		return ""
	}
	return filepath.Join(home, "share", "iana", "pen_map"+f.Ext())
}

// formatFromPath infers a format from a file extension, defaulting to JSON.
func formatFromPath(path string) penmap.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return penmap.FormatYAML
	case ".pb", ".proto":
		return penmap.FormatProto
	default:
		return penmap.FormatJSON
	}
}

// logFlags registers the logging flags shared by all commands.
func logFlags(fs *flag.FlagSet, level, format *string) {
	fs.StringVar(level, "log-level", "info", "Log level: "+strings.Join(logging.Levels, ", "))
	fs.StringVar(format, "log-format", "text", "Log format: "+strings.Join(logging.Formats, ", "))
}

// parseFlags runs fs.Parse and converts its outcome. Help requests report
// shouldExit with a nil error.
func parseFlags(fs *flag.FlagSet, args []string) (shouldExit bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return false, nil
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

func newFlagSet(name, synopsis string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: %s %s\n\nOptions:\n", name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
