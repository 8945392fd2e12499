package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Format represents the output format.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatText    Format = "text"
)

var ErrUnknownFormat = errors.New("unknown output format")

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout is where Print writes. Tests swap it for a buffer.
var Stdout io.Writer = os.Stdout

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON, FormatMsgpack, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (want yaml, json, msgpack or text)", ErrUnknownFormat, s)
}

// IsOutputPiped reports whether Stdout is something other than a terminal.
func IsOutputPiped() bool {
	f, ok := Stdout.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// TextWriter is implemented by results that have a human readable form.
type TextWriter interface {
	WriteText(w io.Writer) error
}

// Print serializes v to Stdout in the current output format.
func Print(v any) error {
	return Write(Stdout, OutputFormat, v)
}

// Write serializes v to w in format f. The text format falls back to YAML
// for values that do not implement TextWriter.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v, PrettyOutput)
	case FormatYAML:
		return WriteYAML(w, v)
	case FormatMsgpack:
		return WriteMsgpack(w, v)
	case FormatText:
		if tw, ok := v.(TextWriter); ok {
			return tw.WriteText(w)
		}
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
