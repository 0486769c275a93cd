package ipcalc

import (
	"fmt"
	"net/netip"
)

// Subnet is an interface address together with its mask, as written in an
// "ip address <ip> <mask>" statement.
type Subnet struct {
	IP   netip.Addr
	Mask netip.Addr
}

// NewSubnet parses a dotted-quad address and mask.
func NewSubnet(ip, mask string) (Subnet, error) {
	addr, err := ParseIPv4(ip)
	if err != nil {
		return Subnet{}, fmt.Errorf("address: %w", err)
	}
	m, err := ParseIPv4(mask)
	if err != nil {
		return Subnet{}, fmt.Errorf("mask: %w", err)
	}
	return Subnet{IP: addr, Mask: m}, nil
}

func (s Subnet) PrefixLength() int { return MaskToPrefixLength(s.Mask) }

func (s Subnet) Network() netip.Addr { return NetworkAddress(s.IP, s.Mask) }

func (s Subnet) Broadcast() netip.Addr { return BroadcastAddress(s.IP, s.Mask) }

// CIDR returns the network address in prefix notation, e.g. "192.168.10.0/24".
func (s Subnet) CIDR() string {
	return fmt.Sprintf("%s/%d", s.Network(), s.PrefixLength())
}

// UsableRange returns the range formatted as "first - last".
func (s Subnet) UsableRange() (string, bool) {
	first, last, ok := UsableRange(s.IP, s.Mask)
	if !ok {
		return "", false
	}
	return first.String() + " - " + last.String(), true
}

func (s Subnet) HostCount() int { return UsableHostCount(s.PrefixLength()) }

// FreeHosts is the usable host count minus the interface's own address.
func (s Subnet) FreeHosts() int { return max(0, s.HostCount()-1) }

// Sample returns up to limit free addresses of the subnet.
func (s Subnet) Sample(limit int) []string { return EnumerateUsable(s.IP, s.Mask, limit) }

// Overlaps reports whether the address blocks of s and other intersect.
func (s Subnet) Overlaps(other Subnet) bool {
	aLo, aHi := bounds(s.IP, s.Mask)
	bLo, bHi := bounds(other.IP, other.Mask)
	return aLo <= bHi && bLo <= aHi
}
