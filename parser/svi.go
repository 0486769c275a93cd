package parser

import (
	"regexp"
	"strings"

	"ciscoreport/ipcalc"
	"ciscoreport/model"
)

var ipAddressRe = regexp.MustCompile(`ip\s+address\s+(\d+\.\d+\.\d+\.\d+)\s+(\d+\.\d+\.\d+\.\d+)`)

func (s *scan) svi(vlanID string, block []string) {
	svi := model.SVI{
		VlanID:          vlanID,
		DisplayName:     "VLAN" + vlanID,
		AdminState:      model.AdminShutdown,
		SampleAddresses: []string{},
	}
	var subnet ipcalc.Subnet
	var addressed bool

	for _, line := range block {
		switch {
		case ipAddressRe.MatchString(line):
			m := ipAddressRe.FindStringSubmatch(line)
			sn, err := ipcalc.NewSubnet(m[1], m[2])
			if err != nil {
				continue
			}
			subnet, addressed = sn, true

			svi.IPAddress = m[1]
			svi.SubnetMask = m[2]
			svi.NetworkCIDR = sn.CIDR()
			svi.UsableRange, _ = sn.UsableRange()
			svi.FreeHostCount = sn.FreeHosts()
			svi.AdminState = model.AdminUp
			svi.SampleAddresses = sn.Sample(s.opts.SampleLimit)
		case strings.Contains(line, "description "):
			_, svi.DisplayName, _ = strings.Cut(line, "description ")
		case line == "no shutdown":
			svi.AdminState = model.AdminUp
		}
	}

	if addressed {
		s.subnets[len(s.report.SVIs)] = subnet
	}
	s.report.SVIs = append(s.report.SVIs, svi)
}
