package penmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"
)

// SysObjectIDOID is SNMPv2-MIB::sysObjectID.0, the agent's vendor
// identification.
const SysObjectIDOID = ".1.3.6.1.2.1.1.2.0"

// Agent defaults.
const (
	DefaultPort      = 161
	DefaultCommunity = "public"
	DefaultVersion   = "2c"
	DefaultTimeout   = 2 * time.Second
)

// SNMP errors.
var (
	ErrNoSysObjectID    = errors.New("agent returned no sysObjectID")
	ErrUnknownVersion   = errors.New("unsupported SNMP version")
	ErrAgentUnreachable = errors.New("SNMP agent request failed")
)

// Agent addresses an SNMP agent. Zero fields take the package defaults.
type Agent struct {
	Target    string        // Host name or IP address
	Port      uint16        // UDP port
	Community string        // Community string
	Version   string        // "1" or "2c"
	Timeout   time.Duration // Per-request timeout
}

// SysObjectID queries agent for sysObjectID.0 and returns it as a dotted OID
// with a leading dot. The request is sent once; there are no retries.
func SysObjectID(ctx context.Context, agent Agent) (string, error) {
	client, err := agent.client(ctx)
	if err != nil {
		return "", err
	}

	if err := client.Connect(); err != nil {
		return "", fmt.Errorf("%w: connecting to %s: %w", ErrAgentUnreachable, agent.Target, err)
	}
	defer func() { _ = client.Conn.Close() }()

	pkt, err := client.Get([]string{SysObjectIDOID})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrAgentUnreachable, agent.Target, err)
	}
	return sysObjectIDFromPacket(pkt)
}

func (a Agent) client(ctx context.Context) (*gosnmp.GoSNMP, error) {
	version, err := parseVersion(a.Version)
	if err != nil {
		return nil, err
	}

	c := &gosnmp.GoSNMP{
		Context:   ctx,
		Transport: "udp",
		Target:    a.Target,
		Port:      a.Port,
		Community: a.Community,
		Version:   version,
		Timeout:   a.Timeout,
		Retries:   0,
		MaxOids:   gosnmp.MaxOids,
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Community == "" {
		c.Community = DefaultCommunity
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c, nil
}

func parseVersion(v string) (gosnmp.SnmpVersion, error) {
	switch v {
	case "2c", "2", "":
		return gosnmp.Version2c, nil
	case "1":
		return gosnmp.Version1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, v)
	}
}

// sysObjectIDFromPacket extracts the sysObjectID value from a GET response.
func sysObjectIDFromPacket(pkt *gosnmp.SnmpPacket) (string, error) {
	if pkt == nil {
		return "", ErrNoSysObjectID
	}
	if pkt.Error != gosnmp.NoError {
		return "", fmt.Errorf("%w: agent error %v", ErrNoSysObjectID, pkt.Error)
	}
	for _, v := range pkt.Variables {
		if NormalizeOID(v.Name) != SysObjectIDOID {
			continue
		}
		if v.Type != gosnmp.ObjectIdentifier {
			return "", fmt.Errorf("%w: value has type %v", ErrNoSysObjectID, v.Type)
		}
		oid, ok := v.Value.(string)
		if !ok || oid == "" {
			return "", ErrNoSysObjectID
		}
		return NormalizeOID(oid), nil
	}
	return "", ErrNoSysObjectID
}
