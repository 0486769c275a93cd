package parser

import "strings"

// missingSecurityControls is reported on every report. None of these
// controls is looked for in the configuration.
var missingSecurityControls = [...]string{
	"Firewall or interface ACLs",
	"802.1X port-based authentication",
	"MAC address filtering or port security",
	"VPN or IPsec configurations",
	"Intrusion prevention/detection systems",
	"TACACS+ or RADIUS authentication",
	"NetFlow or sFlow for traffic monitoring",
}

type securityCheck struct {
	match    func(line string) bool
	evidence string
}

// securityChecks are independent; each one may fire on any number of lines.
var securityChecks = []securityCheck{
	{
		match: func(line string) bool {
			return strings.Contains(line, "enable password") || strings.Contains(line, "enable secret")
		},
		evidence: "Password Encryption: Enabled",
	},
	{
		match:    func(line string) bool { return strings.Contains(line, "aaa ") },
		evidence: "AAA Authentication: Enabled",
	},
	{
		match:    func(line string) bool { return strings.Contains(line, "ssh ") },
		evidence: "SSH Access: Configured for VTY lines",
	},
}

func (s *scan) security(line string) {
	for _, c := range securityChecks {
		if c.match(line) {
			s.report.SecurityPresent = append(s.report.SecurityPresent, c.evidence)
		}
	}
}
