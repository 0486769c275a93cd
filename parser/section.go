package parser

import (
	"regexp"
	"strings"
)

// section is the scanner's position relative to the blocks it tracks.
// VLAN database mode has no closing statement in a running-config, so once
// entered it is never left; the OSPF process block ends at a "!" delimiter.
type section uint8

const (
	sectionTop section = iota
	sectionOSPF
	sectionVlanDatabase
	sectionVlanDatabaseOSPF
	numSections
)

type event uint8

const (
	eventOther event = iota
	eventVlanDatabase
	eventRouterOSPF
	eventDelimiter
	numEvents
)

var transitions = [numSections][numEvents]section{
	sectionTop: {
		eventOther:        sectionTop,
		eventVlanDatabase: sectionVlanDatabase,
		eventRouterOSPF:   sectionOSPF,
		eventDelimiter:    sectionTop,
	},
	sectionOSPF: {
		eventOther:        sectionOSPF,
		eventVlanDatabase: sectionVlanDatabaseOSPF,
		eventRouterOSPF:   sectionOSPF,
		eventDelimiter:    sectionTop,
	},
	sectionVlanDatabase: {
		eventOther:        sectionVlanDatabase,
		eventVlanDatabase: sectionVlanDatabase,
		eventRouterOSPF:   sectionVlanDatabaseOSPF,
		eventDelimiter:    sectionVlanDatabase,
	},
	sectionVlanDatabaseOSPF: {
		eventOther:        sectionVlanDatabaseOSPF,
		eventVlanDatabase: sectionVlanDatabaseOSPF,
		eventRouterOSPF:   sectionVlanDatabaseOSPF,
		eventDelimiter:    sectionVlanDatabase,
	},
}

var sectionNames = [numSections]string{
	sectionTop:              "top",
	sectionOSPF:             "ospf",
	sectionVlanDatabase:     "vlan-database",
	sectionVlanDatabaseOSPF: "vlan-database+ospf",
}

func (s section) String() string {
	if s >= numSections {
		return "unknown"
	}
	return sectionNames[s]
}

func (s section) next(ev event) section {
	return transitions[s][ev]
}

func (s section) inOSPF() bool {
	return s == sectionOSPF || s == sectionVlanDatabaseOSPF
}

var routerOSPFRe = regexp.MustCompile(`^router\s+ospf\s+(\d+)`)

func classifyLine(line string) event {
	switch {
	case line == "vlan database":
		return eventVlanDatabase
	case routerOSPFRe.MatchString(line):
		return eventRouterOSPF
	case isDelimiter(line):
		return eventDelimiter
	default:
		return eventOther
	}
}

// isDelimiter reports whether line is the bare "!" that ends a block.
func isDelimiter(line string) bool {
	return line == "!"
}

// readBlock returns the configuration lines of the interface declared at
// lines[header]: everything up to the next interface header or "!" delimiter.
// The result shares storage with lines and is capped so appends cannot reach it.
func readBlock(lines []string, header int) []string {
	start := header + 1
	end := start
	for end < len(lines) && !isInterfaceHeader(lines[end]) && !isDelimiter(lines[end]) {
		end++
	}
	return lines[start:end:end]
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
