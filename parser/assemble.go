package parser

import (
	"fmt"
	"slices"

	"ciscoreport/model"
)

func newReport() *model.Report {
	return &model.Report{
		Vlans:           []model.Vlan{{ID: "1", Name: "default"}},
		SVIs:            []model.SVI{},
		Ports:           []model.Port{},
		OSPF:            model.Summary{Status: model.StatusNotConfigured, Details: []string{}},
		SNMP:            model.Summary{Status: model.StatusNotConfigured, Details: []string{}},
		Services:        defaultServices(),
		SecurityPresent: []string{},
		SecurityMissing: slices.Clone(missingSecurityControls[:]),
	}
}

func (s *scan) assemble() *model.Report {
	r := s.report
	s.linkPortChannels()
	r.Uplinks = uplinks(r.Ports)
	r.IPRanges = s.ipRanges()
	r.MissingItems = s.missingItems()
	return r
}

// linkPortChannels attaches member ports to their Port-channel, creating
// the channel when only "channel-group" lines mention it.
func (s *scan) linkPortChannels() {
	r := s.report
	for _, p := range r.Ports {
		if p.ChannelGroup == "" {
			continue
		}
		idx := slices.IndexFunc(r.PortChannels, func(pc model.PortChannel) bool {
			return classifyInterface(pc.Name).index == p.ChannelGroup
		})
		if idx < 0 {
			r.PortChannels = append(r.PortChannels, model.PortChannel{
				Name:        "Port-channel" + p.ChannelGroup,
				Description: model.NotAvailable,
			})
			idx = len(r.PortChannels) - 1
		}
		r.PortChannels[idx].Members = append(r.PortChannels[idx].Members, p.Name)
	}
}

func uplinks(ports []model.Port) []string {
	var out []string
	for _, p := range ports {
		if p.Configuration == "Trunk" || p.Configuration == "Trunk mode" {
			out = append(out, p.Name)
		}
	}
	return out
}

func (s *scan) ipRanges() []model.IPRange {
	var out []model.IPRange
	for i, svi := range s.report.SVIs {
		sn, ok := s.subnets[i]
		if !ok {
			continue
		}
		ipr := model.IPRange{
			VlanID:        svi.VlanID,
			NetworkCIDR:   svi.NetworkCIDR,
			UsableRange:   svi.UsableRange,
			HostCount:     sn.HostCount(),
			FreeHostCount: svi.FreeHostCount,
		}
		for j, other := range s.report.SVIs {
			if osn, ok := s.subnets[j]; ok && j != i && sn.Overlaps(osn) {
				ipr.Overlaps = append(ipr.Overlaps, fmt.Sprintf("VLAN%s (%s)", other.VlanID, other.NetworkCIDR))
			}
		}
		out = append(out, ipr)
	}
	return out
}

func (s *scan) missingItems() []string {
	var out []string
	r := s.report
	for _, a := range s.accessVlans {
		if !r.HasVlan(a.vlan) {
			out = append(out, fmt.Sprintf("VLAN %s is assigned to %s but not declared", a.vlan, a.port))
		}
	}
	for _, svi := range r.SVIs {
		if !r.HasVlan(svi.VlanID) {
			out = append(out, fmt.Sprintf("Interface Vlan%s has no matching VLAN declaration", svi.VlanID))
		}
	}
	if r.Routing.DefaultGateway == "" && r.Routing.DefaultRoute == "" {
		out = append(out, "No default gateway or default route")
	}
	return slices.Compact(out)
}
