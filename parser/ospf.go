package parser

import (
	"fmt"
	"regexp"

	"ciscoreport/model"
)

var ospfNetworkRe = regexp.MustCompile(`^network\s+(\S+)\s+(\S+)\s+area\s+(\S+)`)

// ospf uses the section in effect before line was read.
func (s *scan) ospf(line string, cur section) {
	ospf := &s.report.OSPF

	if m := routerOSPFRe.FindStringSubmatch(line); m != nil {
		ospf.Status = model.StatusConfigured
		ospf.Details = append(ospf.Details, "Process ID: "+m[1])
		return
	}
	if !cur.inOSPF() {
		return
	}
	if m := ospfNetworkRe.FindStringSubmatch(line); m != nil {
		ospf.Details = append(ospf.Details, fmt.Sprintf("Network: %s/%s in Area %s", m[1], m[2], m[3]))
	}
}
