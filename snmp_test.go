package penmap

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSysObjectIDFromPacket(t *testing.T) {
	pkt := &gosnmp.SnmpPacket{
		Error: gosnmp.NoError,
		Variables: []gosnmp.SnmpPDU{
			{Name: ".1.3.6.1.2.1.1.2.0", Type: gosnmp.ObjectIdentifier, Value: ".1.3.6.1.4.1.9.1.516"},
		},
	}

	oid, err := sysObjectIDFromPacket(pkt)
	require.NoError(t, err)
	assert.Equal(t, ".1.3.6.1.4.1.9.1.516", oid)
}

func TestSysObjectIDFromPacket_NormalizesNames(t *testing.T) {
	pkt := &gosnmp.SnmpPacket{
		Variables: []gosnmp.SnmpPDU{
			{Name: "1.3.6.1.2.1.1.2.0", Type: gosnmp.ObjectIdentifier, Value: "1.3.6.1.4.1.2636.1.1.1.2.29"},
		},
	}

	oid, err := sysObjectIDFromPacket(pkt)
	require.NoError(t, err)
	assert.Equal(t, ".1.3.6.1.4.1.2636.1.1.1.2.29", oid)
}

func TestSysObjectIDFromPacket_Errors(t *testing.T) {
	tests := []struct {
		name string
		pkt  *gosnmp.SnmpPacket
	}{
		{"nil packet", nil},
		{"agent error", &gosnmp.SnmpPacket{Error: gosnmp.GenErr}},
		{"no variables", &gosnmp.SnmpPacket{}},
		{"other variable", &gosnmp.SnmpPacket{Variables: []gosnmp.SnmpPDU{
			{Name: ".1.3.6.1.2.1.1.5.0", Type: gosnmp.OctetString, Value: []byte("router1")},
		}}},
		{"no such object", &gosnmp.SnmpPacket{Variables: []gosnmp.SnmpPDU{
			{Name: ".1.3.6.1.2.1.1.2.0", Type: gosnmp.NoSuchObject},
		}}},
		{"empty value", &gosnmp.SnmpPacket{Variables: []gosnmp.SnmpPDU{
			{Name: ".1.3.6.1.2.1.1.2.0", Type: gosnmp.ObjectIdentifier, Value: ""},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sysObjectIDFromPacket(tt.pkt)
			require.ErrorIs(t, err, ErrNoSysObjectID)
		})
	}
}

func TestAgentClient_Defaults(t *testing.T) {
	c, err := Agent{Target: "192.0.2.1"}.client(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "192.0.2.1", c.Target)
	assert.Equal(t, uint16(DefaultPort), c.Port)
	assert.Equal(t, DefaultCommunity, c.Community)
	assert.Equal(t, gosnmp.Version2c, c.Version)
	assert.Equal(t, DefaultTimeout, c.Timeout)
	assert.Equal(t, 0, c.Retries)
}

func TestAgentClient_Explicit(t *testing.T) {
	c, err := Agent{
		Target:    "router1",
		Port:      1161,
		Community: "private",
		Version:   "1",
		Timeout:   500 * time.Millisecond,
	}.client(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint16(1161), c.Port)
	assert.Equal(t, "private", c.Community)
	assert.Equal(t, gosnmp.Version1, c.Version)
	assert.Equal(t, 500*time.Millisecond, c.Timeout)
}

func TestSysObjectID_UnknownVersion(t *testing.T) {
	_, err := SysObjectID(context.Background(), Agent{Target: "192.0.2.1", Version: "3"})
	require.True(t, errors.Is(err, ErrUnknownVersion), "got %v", err)
}

// serveGet answers SNMP GET requests on a loopback UDP port with the given
// sysObjectID value until the test ends. An empty value never replies.
func serveGet(t *testing.T, value string) uint16 {
	t.Helper()
	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	go func() {
		buf := make([]byte, 65535)
		dec := &gosnmp.GoSNMP{Version: gosnmp.Version2c, Community: DefaultCommunity}
		for {
			n, addr, err := conn.ReadFrom(buf)
			if err != nil {
				return
			}
			if value == "" {
				continue
			}
			req, err := dec.SnmpDecodePacket(buf[:n])
			if err != nil {
				continue
			}
			resp := &gosnmp.SnmpPacket{
				Version:   req.Version,
				Community: req.Community,
				PDUType:   gosnmp.GetResponse,
				RequestID: req.RequestID,
				Variables: []gosnmp.SnmpPDU{
					{Name: SysObjectIDOID, Type: gosnmp.ObjectIdentifier, Value: value},
				},
			}
			out, err := resp.MarshalMsg()
			if err != nil {
				continue
			}
			_, _ = conn.WriteTo(out, addr)
		}
	}()

	return uint16(conn.LocalAddr().(*net.UDPAddr).Port)
}

func TestSysObjectID(t *testing.T) {
	for _, version := range []string{"1", "2c"} {
		t.Run(version, func(t *testing.T) {
			port := serveGet(t, ".1.3.6.1.4.1.9.1.516")

			oid, err := SysObjectID(context.Background(), Agent{
				Target:  "127.0.0.1",
				Port:    port,
				Version: version,
			})
			require.NoError(t, err)
			assert.Equal(t, ".1.3.6.1.4.1.9.1.516", oid)
		})
	}
}

func TestSysObjectID_NoReply(t *testing.T) {
	port := serveGet(t, "")

	_, err := SysObjectID(context.Background(), Agent{
		Target:  "127.0.0.1",
		Port:    port,
		Timeout: 100 * time.Millisecond,
	})
	require.ErrorIs(t, err, ErrAgentUnreachable)
}
