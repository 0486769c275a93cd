package generator

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"ciscoreport/model"
)

var textTemplate = template.Must(template.New("report").Funcs(sprig.TxtFuncMap()).Parse(`
{{- repeat 72 "=" }}
File: {{ .Name }}
{{ repeat 72 "=" }}
{{- with .Report }}

General Device Information
  Hostname:                  {{ .General.Hostname | default "N/A" }}
  Operating System:          {{ .General.OS | default "IOS" }}
  OS Version:                {{ .General.IOSVersion | default "N/A" }}
  Model Number:              {{ .General.Model | default "N/A" }}
  Serial Number:             {{ .General.SerialNumber | default "N/A" }}
  MAC Address:               {{ .General.MACAddress | default "N/A" }}
  Board ID:                  {{ .General.BoardID | default "N/A" }}
  Memory Size:               {{ .General.Memory | default "N/A" }}
  System Uptime:             {{ .General.Uptime | default "N/A" }}
  Boot Image:                {{ .General.BootImage | default "N/A" }}
  Configuration Register:    {{ .General.ConfigRegister | default "N/A" }}
  Last Configuration Change: {{ .General.LastChange | default "N/A" }}
  Configuration Size:        {{ .General.ConfigSize | default "N/A" }}

VLANs
{{- range .Vlans }}
  {{ printf "%-6s" .ID }} {{ .Name }}
{{- end }}

SVIs
{{- range .SVIs }}
  Vlan{{ .VlanID }} ({{ .DisplayName }}) [{{ .AdminState }}]
    IP Address:   {{ .IPAddress | default "N/A" }} {{ .SubnetMask | default "N/A" }}
    Network:      {{ .NetworkCIDR | default "N/A" }}
    Usable Range: {{ .UsableRange | default "N/A" }}
    Free IPs:     {{ .FreeHostCount }}
{{- else }}
  No SVIs configured
{{- end }}
{{- range .SVIs }}
{{- if .SampleAddresses }}

Available IP Addresses: Vlan{{ .VlanID }} ({{ .DisplayName }}) - {{ len .SampleAddresses }} Free IPs
  {{ join " " .SampleAddresses | wrap 70 | indent 2 | trimPrefix "  " }}
{{- if gt .FreeHostCount (len .SampleAddresses) }}
  +{{ sub .FreeHostCount (len .SampleAddresses) }} more
{{- end }}
{{- end }}
{{- end }}

Ports
{{- range .Ports }}
  {{ printf "%-26s" .Name }} {{ printf "%-22s" .Status }} {{ printf "%-18s" .Configuration }} {{ .Description }}
{{- else }}
  No port configurations found
{{- end }}

Port-Channels: {{ .PortChannelStatus }}
{{- range .PortChannels }}
  {{ .Name }} ({{ .Description }}): {{ join ", " .Members | default "no members" }}
{{- end }}

Uplinks: {{ join ", " .Uplinks | default "None" }}

Routing
  Default Gateway: {{ .Routing.DefaultGateway | default "Not configured" }}
  Default Route:   {{ .Routing.DefaultRoute | default "Not explicitly configured" }}
{{- range .Routing.StaticRoutes }}
  Static Route:    {{ .Destination }} {{ .Mask }} via {{ .NextHop }}
{{- end }}
{{- if .IPRanges }}

IP Ranges
{{- range .IPRanges }}
  Vlan{{ .VlanID }} {{ .NetworkCIDR }}: {{ .UsableRange | default "N/A" }} ({{ .FreeHostCount }}/{{ .HostCount }} free)
{{- if .Overlaps }} overlaps {{ join ", " .Overlaps }}{{ end }}
{{- end }}
{{- end }}

OSPF
  Status: {{ .OSPF.Status }}
{{- range .OSPF.Details }}
    - {{ . }}
{{- end }}

SNMP
  Status: {{ .SNMP.Status }}
{{- range .SNMP.Details }}
    - {{ . }}
{{- end }}

Services
  CDP:  {{ .Services.CDP }}
  LLDP: {{ .Services.LLDP }}
  NTP:  {{ join ", " .Services.NTPServers | default "Not configured" }}

Security Features Present
{{- range .SecurityPresent }}
  - {{ . }}
{{- else }}
  None detected
{{- end }}

Security Features Missing
{{- range .SecurityMissing }}
  - {{ . }}
{{- end }}
{{- if .MissingItems }}

Missing Items
{{- range .MissingItems }}
  - {{ . }}
{{- end }}
{{- end }}
{{ end -}}
`))

// GenerateText renders one plain-text report per file, separated by a blank line.
func GenerateText(files []model.File) ([]byte, error) {
	var buf bytes.Buffer
	for i, f := range files {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := textTemplate.Execute(&buf, f); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
