package main

import (
	"github.com/jessevdk/go-flags"
)

type options struct {
	Config           string `short:"c" long:"config" description:"YAML config file (default ~/.config/ciscoreport.yaml when present)"`
	Format           string `short:"f" long:"format" description:"output format: text, html, json or yaml"`
	Output           string `short:"o" long:"out" description:"write the report to this file instead of stdout"`
	Page             int    `short:"p" long:"page" description:"render only the Nth input file (1-based)"`
	Workers          int    `short:"w" long:"workers" description:"number of files parsed in parallel"`
	SampleLimit      int    `long:"sample-limit" description:"free addresses listed per SVI"`
	LegacySNMPLabels bool   `long:"legacy-snmp-labels" description:"label every SNMP community as an SNMPv3 priv group"`
	Debug            bool   `short:"d" long:"debug" description:"debug mode"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"running-config (.txt or .log) or glob pattern" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func parseCLI(args []string) (*options, error) {
	opts := &options{}
	parser := flags.NewParser(opts, flags.Default)
	parser.Name = "ciscoreport"
	parser.Usage = "[OPTIONS] FILE..."

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func isHelp(err error) bool {
	return flags.WroteHelp(err)
}
