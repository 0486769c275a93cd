package generator

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"ciscoreport/model"
)

// The HTML page is built with text/template: every configuration-derived
// string goes through Sanitize ("s") and nothing else escapes it.
var htmlTemplate = template.Must(template.New("html").Funcs(sprig.TxtFuncMap()).Funcs(template.FuncMap{
	"s": Sanitize,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Cisco Configuration Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1em; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
tr.default-vlan { font-weight: bold; background: #eef4ff; }
.up { color: #176f2c; }
.down { color: #8a8a8a; }
</style>
</head>
<body>
<h1>Cisco Configuration Report</h1>
{{- range $i, $f := . }}
<section class="file" id="file-{{ add1 $i }}">
<h2>{{ s $f.Name }}</h2>
{{- with $f.Report }}
<h3>General Device Information</h3>
<dl>
<dt>Hostname</dt><dd>{{ .General.Hostname | default "N/A" | s }}</dd>
<dt>Operating System</dt><dd>{{ .General.OS | default "IOS" | s }}</dd>
<dt>OS Version</dt><dd>{{ .General.IOSVersion | default "N/A" | s }}</dd>
<dt>Model Number</dt><dd>{{ .General.Model | default "N/A" | s }}</dd>
<dt>Serial Number</dt><dd>{{ .General.SerialNumber | default "N/A" | s }}</dd>
<dt>MAC Address</dt><dd>{{ .General.MACAddress | default "N/A" | s }}</dd>
<dt>Board ID</dt><dd>{{ .General.BoardID | default "N/A" | s }}</dd>
<dt>Memory Size</dt><dd>{{ .General.Memory | default "N/A" | s }}</dd>
<dt>System Uptime</dt><dd>{{ .General.Uptime | default "N/A" | s }}</dd>
<dt>Boot Image</dt><dd>{{ .General.BootImage | default "N/A" | s }}</dd>
<dt>Configuration Register</dt><dd>{{ .General.ConfigRegister | default "N/A" | s }}</dd>
<dt>Last Configuration Change</dt><dd>{{ .General.LastChange | default "N/A" | s }}</dd>
<dt>Configuration Size</dt><dd>{{ .General.ConfigSize | default "N/A" | s }}</dd>
</dl>

<h3>VLANs</h3>
<table>
<tr><th>VLAN ID</th><th>Name</th></tr>
{{- range .Vlans }}
<tr{{ if eq .ID "1" }} class="default-vlan"{{ end }}><td>{{ s .ID }}</td><td>{{ s .Name }}</td></tr>
{{- end }}
</table>

<h3>SVIs</h3>
{{- if .SVIs }}
<table>
<tr><th>SVI</th><th>VLAN Name</th><th>IP Address</th><th>Subnet Mask</th><th>Network/CIDR</th><th>Usable Range</th><th>Free IPs</th><th>State</th></tr>
{{- range .SVIs }}
<tr><td>Vlan{{ s .VlanID }}</td><td>{{ s .DisplayName }}</td><td>{{ .IPAddress | default "N/A" | s }}</td><td>{{ .SubnetMask | default "N/A" | s }}</td><td>{{ .NetworkCIDR | default "N/A" | s }}</td><td>{{ .UsableRange | default "N/A" | s }}</td><td>{{ .FreeHostCount }}</td><td class="{{ if eq .AdminState "up" }}up{{ else }}down{{ end }}">{{ s .AdminState }}</td></tr>
{{- end }}
</table>
{{- range .SVIs }}
{{- if .SampleAddresses }}
<h4>Vlan{{ s .VlanID }} ({{ s .DisplayName }}) - {{ len .SampleAddresses }} Free IPs</h4>
<p>Network: {{ s .NetworkCIDR }}</p>
<ul class="free-ips">
{{- range .SampleAddresses }}
<li>{{ . }}</li>
{{- end }}
{{- if gt .FreeHostCount (len .SampleAddresses) }}
<li>+{{ sub .FreeHostCount (len .SampleAddresses) }} more</li>
{{- end }}
</ul>
{{- end }}
{{- end }}
{{- else }}
<p>No SVIs configured</p>
{{- end }}

<h3>Port Configurations</h3>
{{- if .Ports }}
<table>
<tr><th>Port</th><th>Description</th><th>Configuration</th><th>Status</th></tr>
{{- range .Ports }}
<tr><td>{{ s .Name }}</td><td>{{ s .Description }}</td><td>{{ s .Configuration }}</td><td class="{{ if eq .Status "Up" }}up{{ else }}down{{ end }}">{{ s .Status }}</td></tr>
{{- end }}
</table>
{{- else }}
<p>No port configurations found</p>
{{- end }}

<h3>Port-Channels</h3>
<p>Status: {{ .PortChannelStatus }}</p>
{{- if .PortChannels }}
<ul>
{{- range .PortChannels }}
<li>{{ s .Name }} ({{ s .Description }}): {{ join ", " .Members | default "no members" | s }}</li>
{{- end }}
</ul>
{{- end }}
<p>Uplinks: {{ join ", " .Uplinks | default "None" | s }}</p>

<h3>Default Gateway and Default Route</h3>
<p>Default Gateway: {{ .Routing.DefaultGateway | default "Not configured" | s }}</p>
<p>Default Route: {{ .Routing.DefaultRoute | default "Not explicitly configured" | s }}</p>
{{- if .Routing.StaticRoutes }}
<table>
<tr><th>Destination</th><th>Mask</th><th>Next Hop</th></tr>
{{- range .Routing.StaticRoutes }}
<tr><td>{{ s .Destination }}</td><td>{{ s .Mask }}</td><td>{{ s .NextHop }}</td></tr>
{{- end }}
</table>
{{- end }}
{{- if .IPRanges }}

<h3>IP Ranges</h3>
<table>
<tr><th>VLAN</th><th>Network</th><th>Usable Range</th><th>Hosts</th><th>Free</th><th>Overlaps</th></tr>
{{- range .IPRanges }}
<tr><td>{{ s .VlanID }}</td><td>{{ s .NetworkCIDR }}</td><td>{{ .UsableRange | default "N/A" | s }}</td><td>{{ .HostCount }}</td><td>{{ .FreeHostCount }}</td><td>{{ join ", " .Overlaps | s }}</td></tr>
{{- end }}
</table>
{{- end }}

<h3>OSPF Configuration</h3>
<p>Status: {{ s .OSPF.Status }}</p>
{{- if .OSPF.Details }}
<ul>
{{- range .OSPF.Details }}
<li>{{ s . }}</li>
{{- end }}
</ul>
{{- end }}

<h3>SNMP Configuration</h3>
<p>Status: {{ s .SNMP.Status }}</p>
{{- if .SNMP.Details }}
<ul>
{{- range .SNMP.Details }}
<li>{{ s . }}</li>
{{- end }}
</ul>
{{- end }}

<h3>Services</h3>
<p>CDP: {{ s .Services.CDP }}</p>
<p>LLDP: {{ s .Services.LLDP }}</p>
<p>NTP: {{ join ", " .Services.NTPServers | default "Not configured" | s }}</p>

<h3>Security Features Present</h3>
<ul>
{{- range .SecurityPresent }}
<li>{{ s . }}</li>
{{- else }}
<li>None detected</li>
{{- end }}
</ul>

<h3>Security Features Missing</h3>
<ul>
{{- range .SecurityMissing }}
<li>{{ s . }}</li>
{{- end }}
</ul>
{{- if .MissingItems }}

<h3>Missing Items</h3>
<ul>
{{- range .MissingItems }}
<li>{{ s . }}</li>
{{- end }}
</ul>
{{- end }}
{{- end }}
</section>
{{- end }}
</body>
</html>
`))

func GenerateHTML(files []model.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, files); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
