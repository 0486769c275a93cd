package model

const (
	StatusConfigured    = "Configured"
	StatusNotConfigured = "Not configured"

	AdminUp       = "up"
	AdminShutdown = "shutdown"

	PortUp        = "Up"
	PortAdminDown = "Administratively down"
	PortUnknown   = "Unknown"

	NotAvailable = "N/A"
)

type General struct {
	Hostname       string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	OS             string `json:"os,omitempty" yaml:"os,omitempty"`
	IOSVersion     string `json:"ios_version,omitempty" yaml:"ios_version,omitempty"`
	Model          string `json:"model,omitempty" yaml:"model,omitempty"`
	LastChange     string `json:"last_change,omitempty" yaml:"last_change,omitempty"`
	ConfigSize     string `json:"config_size,omitempty" yaml:"config_size,omitempty"`
	Uptime         string `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	SerialNumber   string `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	MACAddress     string `json:"mac_address,omitempty" yaml:"mac_address,omitempty"`
	BoardID        string `json:"board_id,omitempty" yaml:"board_id,omitempty"`
	Memory         string `json:"memory,omitempty" yaml:"memory,omitempty"`
	BootImage      string `json:"boot_image,omitempty" yaml:"boot_image,omitempty"`
	ConfigRegister string `json:"config_register,omitempty" yaml:"config_register,omitempty"`
}

type Vlan struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SVI is the layer-3 interface of a VLAN.
type SVI struct {
	VlanID          string   `json:"vlan_id" yaml:"vlan_id"`
	DisplayName     string   `json:"display_name" yaml:"display_name"`
	IPAddress       string   `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	SubnetMask      string   `json:"subnet_mask,omitempty" yaml:"subnet_mask,omitempty"`
	NetworkCIDR     string   `json:"network_cidr,omitempty" yaml:"network_cidr,omitempty"`
	UsableRange     string   `json:"usable_range,omitempty" yaml:"usable_range,omitempty"`
	FreeHostCount   int      `json:"free_host_count" yaml:"free_host_count"`
	AdminState      string   `json:"admin_state" yaml:"admin_state"`
	SampleAddresses []string `json:"sample_addresses" yaml:"sample_addresses"`
}

type Port struct {
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	Configuration string `json:"configuration" yaml:"configuration"`
	Status        string `json:"status" yaml:"status"`
	ChannelGroup  string `json:"channel_group,omitempty" yaml:"channel_group,omitempty"`
}

type PortChannel struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Members     []string `json:"members,omitempty" yaml:"members,omitempty"`
}

// Summary is a status plus human-readable evidence, used for OSPF and SNMP.
type Summary struct {
	Status  string   `json:"status" yaml:"status"`
	Details []string `json:"details" yaml:"details"`
}

type Route struct {
	Destination string `json:"destination" yaml:"destination"`
	Mask        string `json:"mask" yaml:"mask"`
	NextHop     string `json:"next_hop" yaml:"next_hop"`
}

type Routing struct {
	DefaultGateway string  `json:"default_gateway,omitempty" yaml:"default_gateway,omitempty"`
	DefaultRoute   string  `json:"default_route,omitempty" yaml:"default_route,omitempty"`
	StaticRoutes   []Route `json:"static_routes,omitempty" yaml:"static_routes,omitempty"`
}

type IPRange struct {
	VlanID        string   `json:"vlan_id" yaml:"vlan_id"`
	NetworkCIDR   string   `json:"network_cidr" yaml:"network_cidr"`
	UsableRange   string   `json:"usable_range" yaml:"usable_range"`
	HostCount     int      `json:"host_count" yaml:"host_count"`
	FreeHostCount int      `json:"free_host_count" yaml:"free_host_count"`
	Overlaps      []string `json:"overlaps,omitempty" yaml:"overlaps,omitempty"`
}

type Services struct {
	CDP        string   `json:"cdp" yaml:"cdp"`
	LLDP       string   `json:"lldp" yaml:"lldp"`
	NTPServers []string `json:"ntp_servers,omitempty" yaml:"ntp_servers,omitempty"`
}

type Report struct {
	General         General       `json:"general" yaml:"general"`
	Vlans           []Vlan        `json:"vlans" yaml:"vlans"`
	SVIs            []SVI         `json:"svis" yaml:"svis"`
	Ports           []Port        `json:"ports" yaml:"ports"`
	PortChannels    []PortChannel `json:"port_channels,omitempty" yaml:"port_channels,omitempty"`
	Uplinks         []string      `json:"uplinks,omitempty" yaml:"uplinks,omitempty"`
	Routing         Routing       `json:"routing" yaml:"routing"`
	OSPF            Summary       `json:"ospf" yaml:"ospf"`
	SNMP            Summary       `json:"snmp" yaml:"snmp"`
	Services        Services      `json:"services" yaml:"services"`
	IPRanges        []IPRange     `json:"ip_ranges,omitempty" yaml:"ip_ranges,omitempty"`
	MissingItems    []string      `json:"missing_items,omitempty" yaml:"missing_items,omitempty"`
	SecurityPresent []string      `json:"security_present" yaml:"security_present"`
	SecurityMissing []string      `json:"security_missing" yaml:"security_missing"`
}

func (r *Report) HasVlan(id string) bool {
	for _, v := range r.Vlans {
		if v.ID == id {
			return true
		}
	}
	return false
}

// PortChannelStatus mirrors the "Not configured" wording used for OSPF and SNMP.
func (r *Report) PortChannelStatus() string {
	if len(r.PortChannels) == 0 {
		return StatusNotConfigured
	}
	return StatusConfigured
}

// File pairs a report with the name of the file it was parsed from.
type File struct {
	Name   string  `json:"filename" yaml:"filename"`
	Report *Report `json:"data" yaml:"data"`
}
