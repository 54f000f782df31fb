package penmap

// Vendor is the enterprise that owns an OID.
type Vendor struct {
	Number       uint32   // Private Enterprise Number
	OID          string   // Enterprise OID key, e.g. ".1.3.6.1.4.1.9"
	Organization string   // Registered organization name
	Suffix       []uint32 // Arcs after the enterprise number, nil if none
}

// Resolve finds the enterprise owning oid.
//
// oid may be numeric with or without a leading dot, or use a symbolic
// prefix such as "SNMPv2-SMI::enterprises.9.1.516". The OID must lie under
// the enterprises arc and name an enterprise present in m.
//
// This maps sysObjectID values and trap enterprise OIDs back to vendors,
// since those OIDs carry product arcs below the enterprise number.
func (m *Mapping) Resolve(oid string) (Vendor, bool) {
	arcs, err := ParseOID(NormalizeOID(oid))
	if err != nil || len(arcs) <= len(enterprisesArcs) {
		return Vendor{}, false
	}
	for i, arc := range enterprisesArcs {
		if arcs[i] != arc {
			return Vendor{}, false
		}
	}

	number := arcs[len(enterprisesArcs)]
	key := EnterpriseOID(uint64(number))
	org, ok := m.Lookup(key)
	if !ok {
		return Vendor{}, false
	}

	v := Vendor{Number: number, OID: key, Organization: org}
	if rest := arcs[len(enterprisesArcs)+1:]; len(rest) > 0 {
		v.Suffix = rest
	}
	return v, true
}
