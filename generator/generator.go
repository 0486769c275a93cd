// Package generator renders parsed reports as text, HTML, JSON or YAML.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"ciscoreport/model"
)

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

var formats = []Format{FormatText, FormatHTML, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatHTML, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w %q (want one of %v)", ErrUnknownFormat, s, formats)
}

// Generate renders files in the given format. Files are emitted in order.
func Generate(format Format, files []model.File) ([]byte, error) {
	switch format {
	case FormatText, "":
		return GenerateText(files)
	case FormatHTML:
		return GenerateHTML(files)
	case FormatJSON:
		return GenerateJSON(files)
	case FormatYAML:
		return GenerateYAML(files)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}
