package proguard

import (
	"regexp"
	"strings"
)

// Line grammar for ProGuard mapping files. A class line carries no leading
// whitespace and ends with a colon; member lines are indented and may carry
// an optional "start:end:" line-number prefix on methods. The method pattern
// must be tried before the field pattern: only the parenthesized parameter
// list tells them apart.
var (
	classLine  = regexp.MustCompile(`^([\w.$]+) -> ([\w$]+):$`)
	methodLine = regexp.MustCompile(`^\s+(?:\d+:\d+:)?([\w.<>$]+)\s+([\w<>$]+)\((.*)\)\s+->\s+([\w<>$]+)$`)
	fieldLine  = regexp.MustCompile(`^\s+([\w.<>$]+)\s+([\w$]+)\s+->\s+([\w$]+)$`)
)

// Parse converts raw ProGuard mapping text into a MappingTable.
//
// It runs two strictly sequential passes over the same lines: the first
// collects every class declaration into a ClassMap, the second parses member
// lines and computes descriptors. The split is required for correctness, not
// speed: a method under an early class may reference a class declared later
// in the file, and its descriptor must still use the obfuscated name.
//
// Unrecognized lines are skipped, never rejected. All state is local to the
// call, so concurrent conversions are safe.
func Parse(text string) *MappingTable {
	lines := prepareLines(text)
	table, classes := buildClassTable(lines)
	parseMembers(lines, classes, table)
	return table
}

// prepareLines drops blank and comment lines and trims trailing whitespace.
func prepareLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}
	return lines
}

// buildClassTable is the first pass: it registers every class declaration in
// the resolution map and creates an empty record per class, in
// first-appearance order. A duplicate declaration overwrites the earlier
// entry (last one wins).
func buildClassTable(lines []string) (*MappingTable, ClassMap) {
	table := NewMappingTable()
	classes := make(ClassMap)

	for _, line := range lines {
		m := classLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		internal := strings.ReplaceAll(m[1], ".", "/")
		classes[internal] = m[2]
		table.Put(internal, newClassRecord(m[2]))
	}

	return table, classes
}

// parseMembers is the second pass: it walks the same lines with a
// current-class cursor, computing method descriptors against the complete
// resolution map and staging methods per original name so overloads can be
// collated when the class ends.
func parseMembers(lines []string, classes ClassMap, table *MappingTable) {
	var current *ClassRecord
	staged := make(map[string][]MethodRecord)

	// collate flushes the staged methods into the finished class: a lone
	// record is stored as-is, overloads as an ordered list.
	collate := func() {
		if current == nil || len(staged) == 0 {
			return
		}
		for name, records := range staged {
			current.Methods[name] = &MethodSet{Records: records}
		}
		staged = make(map[string][]MethodRecord)
	}

	for _, line := range lines {
		if m := classLine.FindStringSubmatch(line); m != nil {
			collate()
			current, _ = table.Class(strings.ReplaceAll(m[1], ".", "/"))
			continue
		}

		// Member lines before the first class header have no home.
		if current == nil {
			continue
		}

		if m := methodLine.FindStringSubmatch(line); m != nil {
			returnType, name, params, obfuscated := m[1], m[2], m[3], m[4]
			staged[name] = append(staged[name], MethodRecord{
				Name:      obfuscated,
				Signature: MethodDescriptor(returnType, params, classes),
			})
			continue
		}

		if m := fieldLine.FindStringSubmatch(line); m != nil {
			current.Fields[m[2]] = &FieldRecord{Name: m[3]}
		}
	}

	collate()
}
