package parser

import (
	"fmt"
	"strings"

	"github.com/gosnmp/gosnmp"

	"ciscoreport/model"
)

var snmpVersionNames = map[gosnmp.SnmpVersion]string{
	gosnmp.Version1:  "v1",
	gosnmp.Version2c: "v2c",
	gosnmp.Version3:  "v3",
}

var snmpLevelNames = map[gosnmp.SnmpV3MsgFlags]string{
	gosnmp.NoAuthNoPriv: "noauth",
	gosnmp.AuthNoPriv:   "auth",
	gosnmp.AuthPriv:     "priv",
}

var snmpAuthNames = map[gosnmp.SnmpV3AuthProtocol]string{
	gosnmp.MD5:    "MD5",
	gosnmp.SHA:    "SHA",
	gosnmp.SHA224: "SHA224",
	gosnmp.SHA256: "SHA256",
	gosnmp.SHA384: "SHA384",
	gosnmp.SHA512: "SHA512",
}

var snmpPrivNames = map[gosnmp.SnmpV3PrivProtocol]string{
	gosnmp.DES:    "DES",
	gosnmp.AES:    "AES",
	gosnmp.AES192: "AES192",
	gosnmp.AES256: "AES256",
}

func (s *scan) snmp(line string) {
	idx := strings.Index(line, "snmp-server")
	if idx < 0 {
		return
	}

	snmp := &s.report.SNMP
	if snmp.Status == model.StatusNotConfigured {
		snmp.Status = model.StatusConfigured
		snmp.Details = []string{}
	}
	if detail, ok := s.snmpDetail(line, strings.Fields(line[idx:])); ok {
		snmp.Details = append(snmp.Details, detail)
	}
}

// snmpDetail describes one snmp-server statement; fields[0] is "snmp-server".
func (s *scan) snmpDetail(line string, fields []string) (string, bool) {
	if _, rest, ok := strings.Cut(line, "community "); ok {
		community, access, _ := strings.Cut(strings.TrimSpace(rest), " ")
		if s.opts.LegacySNMPLabels {
			return fmt.Sprintf("SNMPv3 Group: %s (priv)", community), true
		}
		label := snmpVersionNames[gosnmp.Version2c]
		if access = strings.ToUpper(firstField(access)); access == "RO" || access == "RW" {
			label += ", " + access
		}
		return fmt.Sprintf("SNMP Community: %s (%s)", community, label), true
	}
	if len(fields) < 3 {
		return "", false
	}

	switch fields[1] {
	case "group":
		return describeSNMPGroup(fields[2:]), true
	case "user":
		return describeSNMPUser(fields[2:]), true
	case "host":
		return "Trap Receiver: " + fields[2], true
	case "location":
		return "Location: " + strings.Join(fields[2:], " "), true
	case "contact":
		return "Contact: " + strings.Join(fields[2:], " "), true
	}
	return "", false
}

// describeSNMPGroup handles "<name> v1|v2c|v3 [noauth|auth|priv] ...".
func describeSNMPGroup(args []string) string {
	name := args[0]
	version := parseSNMPVersion(at(args, 1))
	if version != gosnmp.Version3 {
		return fmt.Sprintf("SNMP%s Group: %s", snmpVersionNames[version], name)
	}
	level := parseSNMPLevel(at(args, 2))
	return fmt.Sprintf("SNMPv3 Group: %s (%s)", name, snmpLevelNames[level])
}

// describeSNMPUser handles "<name> <group> v3 [auth <proto> <pass>] [priv <proto> [bits] <pass>]".
func describeSNMPUser(args []string) string {
	name, group := args[0], at(args, 1)
	version := parseSNMPVersion(at(args, 2))
	if version != gosnmp.Version3 {
		return fmt.Sprintf("SNMP%s User: %s (group %s)", snmpVersionNames[version], name, group)
	}

	parts := []string{"group " + group}
	for i := 3; i < len(args); i++ {
		switch args[i] {
		case "auth":
			proto := at(args, i+1)
			if auth, ok := parseSNMPAuth(proto); ok {
				parts = append(parts, "auth "+snmpAuthNames[auth])
			} else {
				parts = append(parts, "auth "+strings.ToUpper(proto))
			}
		case "priv":
			proto := at(args, i+1)
			if priv, ok := parseSNMPPriv(proto, at(args, i+2)); ok {
				parts = append(parts, "priv "+snmpPrivNames[priv])
			} else {
				parts = append(parts, "priv "+strings.ToUpper(proto))
			}
		}
	}
	return fmt.Sprintf("SNMPv3 User: %s (%s)", name, strings.Join(parts, ", "))
}

func parseSNMPVersion(s string) gosnmp.SnmpVersion {
	switch strings.ToLower(s) {
	case "v1", "1":
		return gosnmp.Version1
	case "v3", "3":
		return gosnmp.Version3
	default:
		return gosnmp.Version2c
	}
}

func parseSNMPLevel(s string) gosnmp.SnmpV3MsgFlags {
	switch strings.ToLower(s) {
	case "priv":
		return gosnmp.AuthPriv
	case "auth":
		return gosnmp.AuthNoPriv
	default:
		return gosnmp.NoAuthNoPriv
	}
}

func parseSNMPAuth(s string) (gosnmp.SnmpV3AuthProtocol, bool) {
	switch strings.ToLower(s) {
	case "md5":
		return gosnmp.MD5, true
	case "sha":
		return gosnmp.SHA, true
	case "sha-224", "sha224":
		return gosnmp.SHA224, true
	case "sha-256", "sha256":
		return gosnmp.SHA256, true
	case "sha-384", "sha384":
		return gosnmp.SHA384, true
	case "sha-512", "sha512":
		return gosnmp.SHA512, true
	}
	return gosnmp.NoAuth, false
}

// parseSNMPPriv maps IOS privacy keywords; AES takes its key length as the next word.
func parseSNMPPriv(s, bits string) (gosnmp.SnmpV3PrivProtocol, bool) {
	switch strings.ToLower(s) {
	case "des":
		return gosnmp.DES, true
	case "aes":
		switch bits {
		case "192":
			return gosnmp.AES192, true
		case "256":
			return gosnmp.AES256, true
		default:
			return gosnmp.AES, true
		}
	}
	return gosnmp.NoPriv, false
}

func at(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}
