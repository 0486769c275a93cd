package parser

import (
	"regexp"
	"strings"

	"ciscoreport/model"
)

// The same statement form is used at top level and inside "vlan database",
// e.g. "vlan 10 name SALES".
var vlanRe = regexp.MustCompile(`^vlan\s+(\d+)`)

func (s *scan) vlan(i int, line string) {
	m := vlanRe.FindStringSubmatch(line)
	if m == nil {
		return
	}
	id := m[1]
	if s.report.HasVlan(id) {
		return
	}

	name := model.NotAvailable
	if _, v, ok := strings.Cut(line, "name "); ok {
		name = v
	} else if i+1 < len(s.lines) && strings.HasPrefix(s.lines[i+1], "name ") {
		name = strings.TrimPrefix(s.lines[i+1], "name ")
	}

	s.report.Vlans = append(s.report.Vlans, model.Vlan{ID: id, Name: name})
}
