package penmap

import "strings"

// Placeholder organization names. Records carrying one of these are not
// assignments and are left out of the mapping. Matching is exact and
// case-sensitive.
var placeholders = map[string]bool{
	"Unassigned": true,
	"Reserved":   true,
	"none":       true,
}

// IsPlaceholder reports whether org is one of the registry's placeholder
// organization names ("Unassigned", "Reserved", "none").
func IsPlaceholder(org string) bool {
	return placeholders[org]
}

// Report describes what a scan saw.
type Report struct {
	Lines        int  // Lines in the document
	Records      int  // Complete records, including placeholders
	Placeholders int  // Records dropped for a placeholder organization
	Duplicates   int  // Records that overwrote an earlier number
	Truncated    bool // The document ended inside a record
}

// Parse scans registry text and returns the enterprise mapping.
//
// It never fails: noise lines are skipped and a record cut off by the end of
// the document is dropped. See ParseWithReport for counters.
func Parse(text string) *Mapping {
	m, _ := ParseWithReport(text)
	return m
}

// scanState is the position of the scanner relative to a record.
type scanState uint8

const (
	// seeking skips lines until one is all decimal digits.
	seeking scanState = iota
	// consumingRecord reads organization, contact and email after a number.
	consumingRecord
)

// recordFields is the number of lines following the number line.
const recordFields = 3

// ParseWithReport is like Parse but also returns a Report.
func ParseWithReport(text string) (*Mapping, Report) {
	lines := splitLines(text)
	m := NewMapping(len(lines) / 5)
	report := Report{Lines: len(lines)}

	state := seeking
	var key string
	pos := 0
	for pos < len(lines) {
		switch state {
		case seeking:
			line := strings.TrimSpace(lines[pos])
			pos++
			if !isDigits(line) {
				continue
			}
			key = enterpriseKey(line)
			state = consumingRecord

		case consumingRecord:
			if len(lines)-pos < recordFields {
				report.Truncated = true
				return m, report
			}
			// Contact and email lines are not kept.
			org := strings.TrimSpace(lines[pos])
			pos += recordFields
			state = seeking
			report.Records++

			if IsPlaceholder(org) {
				report.Placeholders++
				continue
			}
			if m.Set(key, org) {
				report.Duplicates++
			}
		}
	}

	// A number on the last line leaves no fields at all.
	if state == consumingRecord {
		report.Truncated = true
	}
	return m, report
}

// isDigits reports whether s is non-empty and all ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitLines splits text on universal line boundaries: \n, \r\n, \r, \v,
// \f, the file/group/record separators \x1c-\x1e, NEL, and the Unicode line
// and paragraph separators. A trailing boundary does not produce an empty
// final line.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		c := text[i]
		width := 0
		switch c {
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e':
			width = 1
		case '\r':
			width = 1
			if i+1 < len(text) && text[i+1] == '\n' {
				width = 2
			}
		case 0xc2: // U+0085 NEL
			if i+1 < len(text) && text[i+1] == 0x85 {
				width = 2
			}
		case 0xe2: // U+2028, U+2029
			if i+2 < len(text) && text[i+1] == 0x80 && (text[i+2] == 0xa8 || text[i+2] == 0xa9) {
				width = 3
			}
		}
		if width == 0 {
			i++
			continue
		}
		lines = append(lines, text[start:i])
		i += width
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
