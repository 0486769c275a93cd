package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ciscoreport/model"
)

func vlanIDs(vlans []model.Vlan) []string {
	ids := make([]string, 0, len(vlans))
	for _, v := range vlans {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestClassifyInterface(t *testing.T) {
	tests := map[string]struct {
		name      string
		wantKind  ifaceKind
		wantName  string
		wantIndex string
	}{
		"svi":                {name: "Vlan10", wantKind: ifaceSVI, wantName: "Vlan10", wantIndex: "10"},
		"gigabit two part":   {name: "GigabitEthernet0/1", wantKind: ifacePhysical, wantName: "GigabitEthernet0/1", wantIndex: "0/1"},
		"stacked three part": {name: "TenGigabitEthernet1/1/1", wantKind: ifacePhysical, wantName: "TenGigabitEthernet1/1/1", wantIndex: "1/1/1"},
		"nexus ethernet":     {name: "Ethernet1/10", wantKind: ifacePhysical, wantName: "Ethernet1/10", wantIndex: "1/10"},
		"space before index": {name: "GigabitEthernet 0/2", wantKind: ifacePhysical, wantName: "GigabitEthernet0/2", wantIndex: "0/2"},
		"port channel":       {name: "Port-channel12", wantKind: ifacePortChannel, wantName: "Port-channel12", wantIndex: "12"},
		"port channel space": {name: "Port-channel 3", wantKind: ifacePortChannel, wantName: "Port-channel3", wantIndex: "3"},
		"lower case svi":     {name: "vlan 20", wantKind: ifaceSVI, wantName: "vlan20", wantIndex: "20"},
		"subinterface":       {name: "GigabitEthernet0/1.100", wantKind: ifaceOther},
		"management port":    {name: "FastEthernet0", wantKind: ifaceOther},
		"loopback":           {name: "Loopback0", wantKind: ifaceOther},
		"tunnel":             {name: "Tunnel5", wantKind: ifaceOther},
		"no index":           {name: "Vlan", wantKind: ifaceOther},
		"index only":         {name: "10", wantKind: ifaceOther},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := classifyInterface(test.name)
			assert.Equal(t, test.wantKind, got.kind)
			if test.wantKind != ifaceOther {
				assert.Equal(t, test.wantName, got.String())
				assert.Equal(t, test.wantIndex, got.index)
			}
		})
	}
}

func TestParseInterfaceHeader(t *testing.T) {
	tests := map[string]struct {
		line     string
		wantOK   bool
		wantKind ifaceKind
	}{
		"physical":       {line: "interface GigabitEthernet1/0/5", wantOK: true, wantKind: ifacePhysical},
		"capitalized":    {line: "Interface Vlan10", wantOK: true, wantKind: ifaceSVI},
		"upper case":     {line: "INTERFACE GigabitEthernet0/1", wantOK: true, wantKind: ifacePhysical},
		"tab separator":  {line: "interface\tPort-channel1", wantOK: true, wantKind: ifacePortChannel},
		"plural keyword": {line: "interfaces", wantOK: false},
		"negated":        {line: "no interface Vlan10", wantOK: false},
		"keyword only":   {line: "interface", wantOK: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			n, ok := parseInterfaceHeader(test.line)
			require.Equal(t, test.wantOK, ok)
			if ok {
				assert.Equal(t, test.wantKind, n.kind)
			}
		})
	}
}

func TestParseCisco_MixedCaseHeaders(t *testing.T) {
	r := ParseCisco("Interface Vlan10\n ip address 10.0.0.1 255.255.255.0\n!\n" +
		"INTERFACE GigabitEthernet0/1\n shutdown\n!\n")

	require.Len(t, r.SVIs, 1)
	assert.Equal(t, "10", r.SVIs[0].VlanID)
	assert.Equal(t, "10.0.0.1", r.SVIs[0].IPAddress)
	require.Len(t, r.Ports, 1)
	assert.Equal(t, "GigabitEthernet0/1", r.Ports[0].Name)
	assert.Equal(t, "Administratively down", r.Ports[0].Status)
}

func TestParseCisco_General(t *testing.T) {
	tests := map[string]struct {
		text string
		want model.General
	}{
		"hostname": {
			text: "hostname CORE-SW-01\n",
			want: model.General{Hostname: "CORE-SW-01"},
		},
		"nxos": {
			text: "version 9.3(8)\nnxos 9.3.8\n",
			want: model.General{OS: "NX-OS", IOSVersion: "9.3.8"},
		},
		"last change without at": {
			text: "! Last configuration change by admin\n",
			want: model.General{LastChange: "! Last configuration change by admin"},
		},
		"show version fields": {
			text: "System uptime is 3 weeks, 2 days\n" +
				"System serial number : FOC1234X0AB\n" +
				"Base ethernet MAC Address : 00:11:22:33:44:55\n" +
				"Processor Board ID FOC1234X0AB\n" +
				"System image file is \"flash:c2960x.bin\"\n" +
				"Configuration register is 0xF\n",
			want: model.General{
				Uptime:         "3 weeks, 2 days",
				SerialNumber:   "FOC1234X0AB",
				MACAddress:     "00:11:22:33:44:55",
				BoardID:        "FOC1234X0AB",
				BootImage:      "flash:c2960x.bin",
				ConfigRegister: "0xF",
			},
		},
		"later hostname wins": {
			text: "hostname A\nhostname B\n",
			want: model.General{Hostname: "B"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, ParseCisco(test.text).General)
		})
	}
}

func TestParseCisco_Vlans(t *testing.T) {
	r := ParseCisco("vlan 1\n name ignored\nvlan 5\nvlan 6\n name SIX\n")

	assert.Equal(t, []model.Vlan{
		{ID: "1", Name: "default"},
		{ID: "5", Name: "N/A"},
		{ID: "6", Name: "SIX"},
	}, r.Vlans)
}

func TestParseCisco_Ports(t *testing.T) {
	tests := map[string]struct {
		block string
		want  model.Port
	}{
		"access up": {
			block: " switchport access vlan 20\n no shutdown\n",
			want:  model.Port{Configuration: "Access VLAN 20", Status: "Up"},
		},
		"trunk allowed list": {
			block: " switchport trunk allowed vlan 1-100\n shutdown\n",
			want:  model.Port{Configuration: "Trunk", Status: "Administratively down"},
		},
		"last configuration line wins": {
			block: " switchport mode trunk\n switchport access vlan 7\n",
			want:  model.Port{Configuration: "Access VLAN 7", Status: "Unknown"},
		},
		"empty block": {
			want: model.Port{Configuration: "N/A", Status: "Unknown"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := ParseCisco("interface GigabitEthernet0/9\n" + test.block + "!\n")
			require.Len(t, r.Ports, 1)

			want := test.want
			want.Name = "GigabitEthernet0/9"
			want.Description = "N/A"
			assert.Equal(t, want, r.Ports[0])
		})
	}
}

func TestParseCisco_ChannelGroupWithoutPortChannel(t *testing.T) {
	r := ParseCisco("interface GigabitEthernet1/0/1\n channel-group 7 mode on\n!\n" +
		"interface GigabitEthernet1/0/2\n channel-group 7 mode on\n!\n")

	assert.Equal(t, []model.PortChannel{
		{Name: "Port-channel7", Description: "N/A", Members: []string{"GigabitEthernet1/0/1", "GigabitEthernet1/0/2"}},
	}, r.PortChannels)
}

func TestParseCisco_SVIEdgeCases(t *testing.T) {
	tests := map[string]struct {
		block string
		check func(t *testing.T, svi model.SVI)
	}{
		"malformed address keeps defaults": {
			block: " ip address 10.0.0.300 255.255.255.0\n",
			check: func(t *testing.T, svi model.SVI) {
				assert.Empty(t, svi.IPAddress)
				assert.Equal(t, "shutdown", svi.AdminState)
				assert.Equal(t, 0, svi.FreeHostCount)
			},
		},
		"host route /32": {
			block: " ip address 10.0.0.7 255.255.255.255\n",
			check: func(t *testing.T, svi model.SVI) {
				assert.Equal(t, "10.0.0.7/32", svi.NetworkCIDR)
				assert.Empty(t, svi.UsableRange)
				assert.Equal(t, 0, svi.FreeHostCount)
				assert.Empty(t, svi.SampleAddresses)
				assert.Equal(t, "up", svi.AdminState)
			},
		},
		"secondary address overrides": {
			block: " ip address 10.0.0.1 255.255.255.0\n ip address 10.1.0.1 255.255.255.0 secondary\n",
			check: func(t *testing.T, svi model.SVI) {
				assert.Equal(t, "10.1.0.1", svi.IPAddress)
			},
		},
		"description sets display name": {
			block: " description Guest Wi-Fi\n",
			check: func(t *testing.T, svi model.SVI) {
				assert.Equal(t, "Guest Wi-Fi", svi.DisplayName)
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := ParseCisco("interface Vlan99\n" + test.block + "!\n")
			require.Len(t, r.SVIs, 1)
			test.check(t, r.SVIs[0])
		})
	}
}

func TestParseCisco_SNMP(t *testing.T) {
	tests := map[string]struct {
		line   string
		legacy bool
		want   []string
	}{
		"community ro":       {line: "snmp-server community public RO", want: []string{"SNMP Community: public (v2c, RO)"}},
		"community with acl": {line: "snmp-server community private RW 10", want: []string{"SNMP Community: private (v2c, RW)"}},
		"community bare":     {line: "snmp-server community secret", want: []string{"SNMP Community: secret (v2c)"}},
		"community legacy":   {line: "snmp-server community public RO", legacy: true, want: []string{"SNMPv3 Group: public (priv)"}},
		"v2c group":          {line: "snmp-server group OPS v2c", want: []string{"SNMPv2c Group: OPS"}},
		"v3 auth group":      {line: "snmp-server group OPS v3 auth", want: []string{"SNMPv3 Group: OPS (auth)"}},
		"v3 user aes256":     {line: "snmp-server user bob OPS v3 auth sha-256 pw priv aes 256 pw2", want: []string{"SNMPv3 User: bob (group OPS, auth SHA256, priv AES256)"}},
		"v3 user md5 des":    {line: "snmp-server user amy OPS v3 auth md5 pw priv des pw2", want: []string{"SNMPv3 User: amy (group OPS, auth MD5, priv DES)"}},
		"contact":            {line: "snmp-server contact NOC team", want: []string{"Contact: NOC team"}},
		"unrecognized":       {line: "snmp-server enable traps", want: []string{}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := New(Options{LegacySNMPLabels: test.legacy}).Parse(test.line)
			assert.Equal(t, model.StatusConfigured, r.SNMP.Status)
			assert.Equal(t, test.want, r.SNMP.Details)
		})
	}
}

func TestParseCisco_Security(t *testing.T) {
	r := ParseCisco("enable password cisco\nenable secret 5 x\nip ssh version 2\n")

	assert.Equal(t, []string{
		"Password Encryption: Enabled",
		"Password Encryption: Enabled",
		"SSH Access: Configured for VTY lines",
	}, r.SecurityPresent)
	assert.Len(t, r.SecurityMissing, 7)
}

func TestParseCisco_Routing(t *testing.T) {
	r := ParseCisco("ip route 0.0.0.0 0.0.0.0 10.0.0.1\n" +
		"ip route 0.0.0.0 0.0.0.0 10.0.0.2 250\n" +
		"ip route vrf MGMT 0.0.0.0 0.0.0.0 192.0.2.1\n" +
		"ip route 172.16.0.0 255.240.0.0 10.0.0.3\n")

	assert.Equal(t, model.Routing{
		DefaultRoute: "10.0.0.1",
		StaticRoutes: []model.Route{{Destination: "172.16.0.0", Mask: "255.240.0.0", NextHop: "10.0.0.3"}},
	}, r.Routing)
	assert.NotContains(t, r.MissingItems, "No default gateway or default route")
}

func TestParseCisco_Services(t *testing.T) {
	tests := map[string]struct {
		text string
		want model.Services
	}{
		"defaults": {
			want: model.Services{CDP: "Enabled", LLDP: "Disabled"},
		},
		"nexus lldp": {
			text: "feature lldp\n",
			want: model.Services{CDP: "Enabled", LLDP: "Enabled"},
		},
		"ntp vrf": {
			text: "no cdp run\nntp server vrf MGMT 192.0.2.10 prefer\n",
			want: model.Services{CDP: "Disabled", LLDP: "Disabled", NTPServers: []string{"192.0.2.10"}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, ParseCisco(test.text).Services)
		})
	}
}

func TestParseCisco_MissingDefaultRoute(t *testing.T) {
	assert.Equal(t, []string{"No default gateway or default route"}, ParseCisco("hostname X\n").MissingItems)
}
