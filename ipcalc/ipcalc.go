// Package ipcalc implements the IPv4 address and mask arithmetic used to
// describe the subnets configured on switched virtual interfaces.
//
// All functions are pure. Masks are accepted as written: a non-contiguous
// mask such as 255.0.255.0 is not rejected, its set bits are simply counted.
package ipcalc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"net/netip"
	"strings"
)

// ErrInvalidAddress is returned when a string is not a dotted-quad IPv4 address.
var ErrInvalidAddress = errors.New("invalid IPv4 address")

// ParseIPv4 parses s as a dotted-quad IPv4 address.
func ParseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidAddress, s)
	}
	return addr, nil
}

// MaskToPrefixLength returns the number of set bits in mask (0..32).
func MaskToPrefixLength(mask netip.Addr) int {
	return bits.OnesCount32(toUint32(mask))
}

// IsContiguousMask reports whether mask is a run of ones followed by zeros.
func IsContiguousMask(mask netip.Addr) bool {
	inverted := ^toUint32(mask)
	return inverted&(inverted+1) == 0
}

// PrefixToMask returns the canonical mask for a prefix length.
// Lengths outside 0..32 are clamped.
func PrefixToMask(prefixLen int) netip.Addr {
	prefixLen = max(0, min(32, prefixLen))
	return fromUint32(^uint32(0) << (32 - prefixLen))
}

// NetworkAddress returns ip AND mask.
func NetworkAddress(ip, mask netip.Addr) netip.Addr {
	return fromUint32(toUint32(ip) & toUint32(mask))
}

// BroadcastAddress returns the network address with all host bits set.
func BroadcastAddress(ip, mask netip.Addr) netip.Addr {
	return fromUint32(toUint32(ip)&toUint32(mask) | ^toUint32(mask))
}

// UsableHostCount returns 2^(32-prefixLen) - 2, clamped at zero so that /31 and
// /32 prefixes report no usable hosts instead of a negative count.
func UsableHostCount(prefixLen int) int {
	if prefixLen >= 31 {
		return 0
	}
	prefixLen = max(0, prefixLen)
	return 1<<(32-prefixLen) - 2
}

// UsableRange returns the first and last usable host addresses of the subnet
// ip/mask. ok is false when the subnet has no usable hosts.
func UsableRange(ip, mask netip.Addr) (first, last netip.Addr, ok bool) {
	network, broadcast := bounds(ip, mask)
	if broadcast-network < 2 {
		return netip.Addr{}, netip.Addr{}, false
	}
	return fromUint32(network + 1), fromUint32(broadcast - 1), true
}

// Usable yields the usable host addresses of ip/mask in ascending order,
// skipping ip itself. Every call to the returned sequence starts over.
func Usable(ip, mask netip.Addr) iter.Seq[netip.Addr] {
	network, broadcast := bounds(ip, mask)
	self := toUint32(ip)

	return func(yield func(netip.Addr) bool) {
		if broadcast-network < 2 {
			return
		}
		for v := network + 1; v < broadcast; v++ {
			if v == self {
				continue
			}
			if !yield(fromUint32(v)) {
				return
			}
		}
	}
}

// EnumerateUsable returns at most limit addresses from Usable as strings.
func EnumerateUsable(ip, mask netip.Addr, limit int) []string {
	out := make([]string, 0, max(0, min(limit, 256)))
	if limit <= 0 {
		return out
	}
	for addr := range Usable(ip, mask) {
		out = append(out, addr.String())
		if len(out) == limit {
			break
		}
	}
	return out
}

func bounds(ip, mask netip.Addr) (network, broadcast uint32) {
	m := toUint32(mask)
	network = toUint32(ip) & m
	return network, network | ^m
}

func toUint32(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func fromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}
