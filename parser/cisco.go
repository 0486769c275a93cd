package parser

import (
	"io"

	"ciscoreport/ipcalc"
	"ciscoreport/model"
)

const DefaultSampleLimit = 50

type Options struct {
	// SampleLimit caps the free addresses listed per SVI. Zero means DefaultSampleLimit.
	SampleLimit int
	// LegacySNMPLabels reports every community as "SNMPv3 Group: <name> (priv)".
	LegacySNMPLabels bool
}

type Parser struct {
	opts Options
}

func New(opts Options) *Parser {
	if opts.SampleLimit <= 0 {
		opts.SampleLimit = DefaultSampleLimit
	}
	return &Parser{opts: opts}
}

// ParseCisco parses a running-config with default options.
func ParseCisco(text string) *model.Report {
	return New(Options{}).Parse(text)
}

// Parse never fails: lines that match no rule leave the report untouched.
func (p *Parser) Parse(text string) *model.Report {
	s := newScan(p.opts, splitLines(text))
	s.run()
	return s.assemble()
}

// ParseReader reads r to the end and parses it. Only read errors are returned.
func (p *Parser) ParseReader(r io.Reader) (*model.Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(data)), nil
}

type accessVlan struct {
	port string
	vlan string
}

type scan struct {
	opts    Options
	lines   []string
	section section
	report  *model.Report

	subnets     map[int]ipcalc.Subnet // SVI index -> configured subnet
	accessVlans []accessVlan
}

func newScan(opts Options, lines []string) *scan {
	return &scan{
		opts:    opts,
		lines:   lines,
		section: sectionTop,
		report:  newReport(),
		subnets: make(map[int]ipcalc.Subnet),
	}
}

func (s *scan) run() {
	for i, line := range s.lines {
		cur := s.section

		s.general(line)
		s.vlan(i, line)
		if name, ok := parseInterfaceHeader(line); ok {
			s.iface(name, readBlock(s.lines, i))
		}
		s.ospf(line, cur)
		s.snmp(line)
		s.security(line)
		s.routing(line)
		s.services(line)

		s.section = cur.next(classifyLine(line))
	}
}

func (s *scan) iface(name ifaceName, block []string) {
	switch name.kind {
	case ifaceSVI:
		s.svi(name.index, block)
	case ifacePhysical:
		s.port(name.String(), block)
	case ifacePortChannel:
		s.portChannel(name.String(), block)
	}
}
