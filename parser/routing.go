package parser

import (
	"strings"

	"ciscoreport/model"
)

const anyAddress = "0.0.0.0"

func (s *scan) routing(line string) {
	routing := &s.report.Routing

	switch {
	case strings.HasPrefix(line, "ip default-gateway "):
		if parts := strings.Fields(line); len(parts) >= 3 {
			routing.DefaultGateway = parts[2]
		}

	case strings.HasPrefix(line, "ip route "):
		parts := strings.Fields(line)
		if len(parts) < 5 || parts[2] == "vrf" {
			return
		}
		route := model.Route{
			Destination: parts[2],
			Mask:        parts[3],
			NextHop:     parts[4],
		}
		if route.Destination == anyAddress && route.Mask == anyAddress {
			if routing.DefaultRoute == "" {
				routing.DefaultRoute = route.NextHop
			}
			return
		}
		routing.StaticRoutes = append(routing.StaticRoutes, route)
	}
}
