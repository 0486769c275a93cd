package parser

import (
	"regexp"
	"strings"

	"ciscoreport/model"
)

type generalRule struct {
	re    *regexp.Regexp
	apply func(g *model.General, m []string, line string)
}

// generalRules are tried in order; the first one that matches a line wins.
var generalRules = []generalRule{
	{
		re:    regexp.MustCompile(`^hostname\s+(.+)`),
		apply: func(g *model.General, m []string, _ string) { g.Hostname = m[1] },
	},
	{
		re:    regexp.MustCompile(`^version\s+([\d.]+)`),
		apply: func(g *model.General, m []string, _ string) { g.IOSVersion = m[1] },
	},
	{
		re:    regexp.MustCompile(`switch\s+\d+\s+provision\s+(\S+)`),
		apply: func(g *model.General, m []string, _ string) { g.Model = m[1] },
	},
	{
		re: regexp.MustCompile(`(?i)nxos\s+([\d.]+)`),
		apply: func(g *model.General, m []string, _ string) {
			g.OS = "NX-OS"
			g.IOSVersion = m[1]
		},
	},
	{
		re: regexp.MustCompile(`Last configuration change`),
		apply: func(g *model.General, _ []string, line string) {
			if _, when, ok := strings.Cut(line, "at "); ok && when != "" {
				g.LastChange = when
				return
			}
			g.LastChange = line
		},
	},
	{
		re:    regexp.MustCompile(`Current configuration\s*:\s*(\d+)`),
		apply: func(g *model.General, m []string, _ string) { g.ConfigSize = m[1] + " bytes" },
	},
	{
		re:    regexp.MustCompile(`^System\s+uptime\s+is\s+(.+)`),
		apply: func(g *model.General, m []string, _ string) { g.Uptime = m[1] },
	},
	{
		re:    regexp.MustCompile(`^System\s+serial\s+number\s*:\s*(\S+)`),
		apply: func(g *model.General, m []string, _ string) { g.SerialNumber = m[1] },
	},
	{
		re:    regexp.MustCompile(`^Base\s+ethernet\s+MAC\s+Address\s*:\s*(\S+)`),
		apply: func(g *model.General, m []string, _ string) { g.MACAddress = m[1] },
	},
	{
		re:    regexp.MustCompile(`^Processor\s+Board\s+ID\s+(\S+)`),
		apply: func(g *model.General, m []string, _ string) { g.BoardID = m[1] },
	},
	{
		re:    regexp.MustCompile(`^Memory\s+size\s*:\s*(\S+)`),
		apply: func(g *model.General, m []string, _ string) { g.Memory = m[1] },
	},
	{
		re:    regexp.MustCompile(`^System\s+image\s+file\s+is\s+"(\S+)"`),
		apply: func(g *model.General, m []string, _ string) { g.BootImage = m[1] },
	},
	{
		re:    regexp.MustCompile(`^Configuration\s+register\s+is\s+(\S+)`),
		apply: func(g *model.General, m []string, _ string) { g.ConfigRegister = m[1] },
	},
}

func (s *scan) general(line string) {
	for _, rule := range generalRules {
		if m := rule.re.FindStringSubmatch(line); m != nil {
			rule.apply(&s.report.General, m, line)
			return
		}
	}
}
