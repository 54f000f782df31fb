package cli

import (
	"io"

	"github.com/lukeod/penmap"
	"github.com/lukeod/penmap/internal/logging"
)

// BuildConfig configures the penmap command.
type BuildConfig struct {
	Source     string        // Registry URL or local path
	OutputPath string        // Destination; "" means stdout
	Format     penmap.Format // Output serialization
	Encoding   string        // Source charset label
	LogLevel   string
	LogFormat  string
}

// ParseBuild parses penmap arguments. Usage and help text go to out.
func ParseBuild(args []string, out io.Writer, lookupEnv LookupEnv) (*BuildConfig, bool, error) {
	fs := newFlagSet("penmap", "[options]", out)

	var cfg BuildConfig
	var formatStr string
	fs.StringVar(&cfg.OutputPath, "o", "", "Path to the output file (default $ZENHOME/share/iana/pen_map.json, or stdout)")
	fs.StringVar(&cfg.Source, "s", penmap.DefaultSource, "Private Enterprise Numbers source file/URL")
	fs.StringVar(&formatStr, "format", "json", "Output format: json, yaml or proto")
	fs.StringVar(&cfg.Encoding, "encoding", penmap.DefaultEncoding, "Character encoding of the source")
	logFlags(fs, &cfg.LogLevel, &cfg.LogFormat)

	if shouldExit, err := parseFlags(fs, args); shouldExit || err != nil {
		return nil, shouldExit, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, false, usageError("unexpected arguments: %v", fs.Args())
	}

	f, err := penmap.ParseFormat(formatStr)
	if err != nil {
		return nil, false, usageError("%v", err)
	}
	cfg.Format = f

	if err := penmap.LookupEncoding(cfg.Encoding); err != nil {
		return nil, false, usageError("%v", err)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, false, usageError("%v", err)
	}
	if _, err := logging.ParseFormat(cfg.LogFormat); err != nil {
		return nil, false, usageError("%v", err)
	}

	if !flagSet(fs, "o") {
		cfg.OutputPath = DefaultOutputPath(lookupEnv, cfg.Format)
	}
	return &cfg, false, nil
}
