package parser

import (
	"regexp"

	"ciscoreport/model"
)

const (
	enabled  = "Enabled"
	disabled = "Disabled"
)

var ntpServerRe = regexp.MustCompile(`^ntp\s+server\s+(?:vrf\s+\S+\s+)?(\S+)`)

// services tracks CDP, LLDP and NTP. CDP is on by default in IOS, LLDP is not.
func (s *scan) services(line string) {
	svc := &s.report.Services

	switch line {
	case "no cdp run":
		svc.CDP = disabled
	case "cdp run":
		svc.CDP = enabled
	case "lldp run", "feature lldp":
		svc.LLDP = enabled
	case "no lldp run", "no feature lldp":
		svc.LLDP = disabled
	}

	if m := ntpServerRe.FindStringSubmatch(line); m != nil {
		svc.NTPServers = append(svc.NTPServers, m[1])
	}
}

func defaultServices() model.Services {
	return model.Services{CDP: enabled, LLDP: disabled}
}
