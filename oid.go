package penmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EnterprisesPrefix is the SNMP enterprises arc, iso.org.dod.internet.private.enterprises.
const EnterprisesPrefix = ".1.3.6.1.4.1"

// enterprisesArcs is EnterprisesPrefix as arc values.
var enterprisesArcs = []uint32{1, 3, 6, 1, 4, 1}

// ErrInvalidOID is returned when a dotted OID string cannot be parsed.
var ErrInvalidOID = errors.New("invalid OID")

// symbolic prefixes printed by net-snmp tools, mapped to their numeric form.
var symbolicPrefixes = []struct {
	name    string
	numeric string
}{
	{"SNMPv2-SMI::enterprises", EnterprisesPrefix},
	{"enterprises", EnterprisesPrefix},
	{"iso", ".1"},
}

// EnterpriseOID returns the mapping key for an enterprise number.
func EnterpriseOID(number uint64) string {
	return EnterprisesPrefix + "." + strconv.FormatUint(number, 10)
}

// enterpriseKey builds the key from a digit-only string, dropping leading
// zeros so "0009" and "9" name the same enterprise.
func enterpriseKey(digits string) string {
	n := strings.TrimLeft(digits, "0")
	if n == "" {
		n = "0"
	}
	return EnterprisesPrefix + "." + n
}

// NormalizeOID trims whitespace, expands the symbolic prefixes net-snmp
// prints (SNMPv2-SMI::enterprises, enterprises, iso) and ensures a numeric
// OID starts with a dot, so "1.3.6.1.4.1.9" and ".1.3.6.1.4.1.9" compare
// equal.
func NormalizeOID(oid string) string {
	s := strings.TrimSpace(oid)
	for _, p := range symbolicPrefixes {
		if rest, ok := strings.CutPrefix(s, p.name); ok && (rest == "" || rest[0] == '.') {
			s = p.numeric + rest
			break
		}
	}
	s = strings.TrimPrefix(s, "SNMPv2-MIB::")
	if s == "" {
		return s
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "." + s
	}
	return s
}

// ParseOID parses a dotted OID string into arc values. A single leading dot
// is allowed. Empty input returns (nil, nil).
func ParseOID(oid string) ([]uint32, error) {
	oid = strings.TrimPrefix(oid, ".")
	if oid == "" {
		return nil, nil
	}

	arcs := make([]uint32, 0, strings.Count(oid, ".")+1)
	for segment := range strings.SplitSeq(oid, ".") {
		if segment == "" {
			return nil, fmt.Errorf("%w %q: empty component", ErrInvalidOID, oid)
		}
		// A component of an SNMP OID is a decimal without padding zeros.
		if len(segment) > 1 && segment[0] == '0' {
			return nil, fmt.Errorf("%w component %q: leading zeros not allowed", ErrInvalidOID, segment)
		}
		n, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w component %q: %w", ErrInvalidOID, segment, err)
		}
		arcs = append(arcs, uint32(n))
	}
	return arcs, nil
}

// FormatOID formats arc values as a dotted string with a leading dot.
func FormatOID(arcs []uint32) string {
	if len(arcs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, arc := range arcs {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(uint64(arc), 10))
	}
	return b.String()
}

// compareOIDs orders dotted OIDs arc by arc. Strings that do not parse sort
// after valid OIDs, lexically among themselves.
func compareOIDs(a, b string) int {
	aa, aerr := ParseOID(a)
	ba, berr := ParseOID(b)
	switch {
	case aerr != nil && berr != nil:
		return strings.Compare(a, b)
	case aerr != nil:
		return 1
	case berr != nil:
		return -1
	}
	for i := 0; i < len(aa) && i < len(ba); i++ {
		if aa[i] != ba[i] {
			if aa[i] < ba[i] {
				return -1
			}
			return 1
		}
	}
	return len(aa) - len(ba)
}
