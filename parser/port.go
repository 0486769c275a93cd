package parser

import (
	"regexp"
	"strings"

	"ciscoreport/model"
)

var channelGroupRe = regexp.MustCompile(`^channel-group\s+(\d+)`)

func (s *scan) port(name string, block []string) {
	port := model.Port{
		Name:          name,
		Description:   model.NotAvailable,
		Configuration: model.NotAvailable,
		Status:        model.PortUnknown,
	}
	var access string

	for _, line := range block {
		switch {
		case strings.Contains(line, "description "):
			_, port.Description, _ = strings.Cut(line, "description ")
		case strings.Contains(line, "switchport access vlan "):
			_, access, _ = strings.Cut(line, "switchport access vlan ")
			port.Configuration = "Access VLAN " + access
		case strings.Contains(line, "switchport trunk"):
			port.Configuration = "Trunk"
		case strings.Contains(line, "switchport mode trunk"):
			port.Configuration = "Trunk mode"
		case line == "shutdown":
			port.Status = model.PortAdminDown
		case line == "no shutdown":
			port.Status = model.PortUp
		case channelGroupRe.MatchString(line):
			port.ChannelGroup = channelGroupRe.FindStringSubmatch(line)[1]
		}
	}

	if f := strings.Fields(access); len(f) > 0 {
		s.accessVlans = append(s.accessVlans, accessVlan{port: name, vlan: f[0]})
	}
	s.report.Ports = append(s.report.Ports, port)
}

func (s *scan) portChannel(name string, block []string) {
	pc := model.PortChannel{Name: name, Description: model.NotAvailable}
	for _, line := range block {
		if strings.Contains(line, "description ") {
			_, pc.Description, _ = strings.Cut(line, "description ")
		}
	}
	s.report.PortChannels = append(s.report.PortChannels, pc)
}
