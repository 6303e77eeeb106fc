package diagfmt

import (
	"fmt"
	"strings"
)

// Format selects the encoding of the rendered diagnostic.
type Format uint8

const (
	// FormatPretty is the rustc-like multi-line banner.
	FormatPretty Format = iota
	// FormatShort is one line: severity, code, location, message.
	FormatShort
	FormatJSON
	FormatMsgPack
)

func (f Format) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatShort:
		return "short"
	case FormatJSON:
		return "json"
	case FormatMsgPack:
		return "msgpack"
	}
	return "unknown"
}

// ParseFormat converts a config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pretty":
		return FormatPretty, nil
	case "short":
		return FormatShort, nil
	case "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgPack, nil
	default:
		return FormatPretty, fmt.Errorf("unsupported format %q (expected pretty|short|json|msgpack)", s)
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	TabWidth uint8 // 0 means 4, like rustc
}

func (o PrettyOpts) tabWidth() int {
	if o.TabWidth == 0 {
		return 4
	}
	return int(o.TabWidth)
}

// Options bundles everything Render needs to pick and drive a formatter.
type Options struct {
	Format Format
	Pretty PrettyOpts
}
