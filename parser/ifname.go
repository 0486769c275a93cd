package parser

import (
	"slices"
	"strings"
	"unicode"
)

type ifaceKind int

const (
	ifaceOther ifaceKind = iota
	ifaceSVI
	ifacePhysical
	ifacePortChannel
)

// physicalTypes holds the normalized names of the Ethernet families reported as ports.
var physicalTypes = map[string]bool{
	"fastethernet":       true,
	"gigabitethernet":    true,
	"tengigabitethernet": true,
	"ethernet":           true,
}

type ifaceName struct {
	kind  ifaceKind
	typ   string
	index string
}

// String joins type and index without a separator, the way IOS prints them.
func (n ifaceName) String() string {
	return n.typ + n.index
}

// parseInterfaceHeader returns the interface named by an "interface ..." line.
func parseInterfaceHeader(line string) (ifaceName, bool) {
	if !isInterfaceHeader(line) {
		return ifaceName{}, false
	}
	return classifyInterface(line[len("interface"):]), true
}

// isInterfaceHeader matches the "interface" keyword in any letter case.
func isInterfaceHeader(line string) bool {
	const kw = "interface"
	return len(line) > len(kw) && strings.EqualFold(line[:len(kw)], kw) && unicode.IsSpace(rune(line[len(kw)]))
}

func classifyInterface(name string) ifaceName {
	typ, suffix := splitInterfaceName(name)
	suffix = strings.TrimSpace(suffix)
	n := ifaceName{kind: ifaceOther, typ: typ, index: suffix}

	parts := strings.Split(suffix, "/")
	if !slices.ContainsFunc(parts, func(p string) bool { return !isNumber(p) }) {
		switch norm := normalizeIfaceType(typ); {
		case norm == "vlan" && len(parts) == 1:
			n.kind = ifaceSVI
		case physicalTypes[norm] && (len(parts) == 2 || len(parts) == 3):
			n.kind = ifacePhysical
		case norm == "portchannel" && len(parts) == 1:
			n.kind = ifacePortChannel
		}
	}
	return n
}

// splitInterfaceName cuts name before its first digit: "Port-channel12"
// yields "Port-channel" and "12".
func splitInterfaceName(name string) (string, string) {
	name = strings.TrimSpace(name)
	i := strings.IndexFunc(name, unicode.IsDigit)
	if i <= 0 {
		return name, ""
	}
	return strings.TrimSpace(name[:i]), name[i:]
}

var ifaceTypeReplacer = strings.NewReplacer(" ", "", "-", "")

func normalizeIfaceType(s string) string {
	return ifaceTypeReplacer.Replace(strings.ToLower(s))
}

func isNumber(s string) bool {
	return s != "" && strings.TrimFunc(s, unicode.IsDigit) == ""
}
