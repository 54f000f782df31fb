// Package penmap converts the IANA Private Enterprise Numbers registry into a
// mapping from SNMP enterprise OIDs to organization names.
//
// The registry at https://www.iana.org/assignments/enterprise-numbers.txt is
// a human-maintained text file. Each assignment is a four-line record: the
// decimal enterprise number, the organization, a contact name and a contact
// email. penmap scans the text, keeps the number and organization of every
// record and keys them under the SNMP enterprises arc (.1.3.6.1.4.1).
//
// # Quick Start
//
//	text, err := penmap.Fetch(ctx, penmap.DefaultSource, penmap.FetchOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m := penmap.Parse(text)
//	fmt.Println(m.Get(".1.3.6.1.4.1.9")) // "ciscoSystems"
//
//	if err := penmap.Encode(os.Stdout, m, penmap.FormatJSON); err != nil {
//	    log.Fatal(err)
//	}
//
// # Resolving Vendors
//
// [Mapping.Resolve] finds the enterprise that owns an arbitrary OID, such as
// a sysObjectID value returned by an agent:
//
//	v, ok := m.Resolve("SNMPv2-SMI::enterprises.9.1.516")
//	// v.Organization == "ciscoSystems", v.Suffix == []uint32{1, 516}
//
// [SysObjectID] fetches that value from a live agent.
//
// # Serialization
//
// [Encode] and [Decode] support three formats:
//
//   - [FormatJSON]: 4-space indented object in registry order (default)
//   - [FormatYAML]: block mapping in registry order
//   - [FormatProto]: a google.protobuf.Struct in protobuf wire format
//
// # Error Handling
//
// Parsing never fails. Lines that are not part of a record are skipped, a
// record cut off at the end of the document is dropped, and a repeated
// enterprise number overwrites the earlier entry. [ParseWithReport] returns
// counters describing what the scan saw. Only acquisition ([Fetch],
// [SysObjectID]) and decoding can return errors.
//
// # Concurrency
//
// Parse holds no state between calls and may be called from any goroutine.
// A [Mapping] is not safe for concurrent mutation; concurrent reads are fine.
package penmap
