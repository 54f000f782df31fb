package cli

import (
	"io"

	"github.com/lukeod/penmap"
	"github.com/lukeod/penmap/internal/logging"
)

// LookupConfig configures the penlookup command.
type LookupConfig struct {
	MappingPath string        // Mapping file written by penmap
	Format      penmap.Format // Mapping file serialization
	OIDs        []string      // OIDs to resolve; empty means stdin or agent
	Agent       *penmap.Agent // Query this agent's sysObjectID when set
	LogLevel    string
	LogFormat   string
}

// ParseLookup parses penlookup arguments. Usage and help text go to out.
func ParseLookup(args []string, out io.Writer, lookupEnv LookupEnv) (*LookupConfig, bool, error) {
	fs := newFlagSet("penlookup", "[options] [OID ...]", out)

	var cfg LookupConfig
	var formatStr string
	var agent penmap.Agent
	var port uint
	fs.StringVar(&cfg.MappingPath, "m", "", "Mapping file (default $ZENHOME/share/iana/pen_map.json)")
	fs.StringVar(&formatStr, "format", "", "Mapping format: json, yaml or proto (default from file extension)")
	fs.StringVar(&agent.Target, "agent", "", "Resolve the sysObjectID of this SNMP agent")
	fs.UintVar(&port, "port", penmap.DefaultPort, "SNMP agent UDP port")
	fs.StringVar(&agent.Community, "community", penmap.DefaultCommunity, "SNMP community")
	fs.StringVar(&agent.Version, "snmp-version", penmap.DefaultVersion, "SNMP version: 1 or 2c")
	fs.DurationVar(&agent.Timeout, "timeout", penmap.DefaultTimeout, "SNMP request timeout")
	logFlags(fs, &cfg.LogLevel, &cfg.LogFormat)

	if shouldExit, err := parseFlags(fs, args); shouldExit || err != nil {
		return nil, shouldExit, err
	}
	cfg.OIDs = fs.Args()

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, false, usageError("%v", err)
	}
	if _, err := logging.ParseFormat(cfg.LogFormat); err != nil {
		return nil, false, usageError("%v", err)
	}

	if agent.Target != "" {
		if len(cfg.OIDs) > 0 {
			return nil, false, usageError("-agent cannot be combined with OID arguments")
		}
		if port == 0 || port > 65535 {
			return nil, false, usageError("invalid port %d", port)
		}
		switch agent.Version {
		case "1", "2c":
		default:
			return nil, false, usageError("unsupported SNMP version %q", agent.Version)
		}
		if agent.Timeout <= 0 {
			agent.Timeout = penmap.DefaultTimeout
		}
		agent.Port = uint16(port)
		cfg.Agent = &agent
	}

	if cfg.MappingPath == "" {
		cfg.MappingPath = DefaultOutputPath(lookupEnv, penmap.FormatJSON)
	}
	if cfg.MappingPath == "" {
		return nil, false, usageError("no mapping file: use -m or set %s", ZenHomeEnv)
	}

	if formatStr == "" {
		cfg.Format = formatFromPath(cfg.MappingPath)
	} else {
		f, err := penmap.ParseFormat(formatStr)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		cfg.Format = f
	}
	return &cfg, false, nil
}
