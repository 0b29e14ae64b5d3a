package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI styling used in human-readable output.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"
	Red   = "\033[31m"
)

// Formats returns the accepted format names.
func Formats() []string {
	return []string{string(FormatDefault), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat converts a flag value into a Format. The empty string means
// FormatDefault.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "default", "text":
		return FormatDefault, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (valid options: %s)", s, strings.Join(Formats(), ", "))
	}
}

// Printer writes formatted output to a writer.
type Printer struct {
	w      io.Writer
	format Format
	color  bool
}

// NewPrinter returns a Printer for w. Color is enabled when w is a terminal
// and NO_COLOR is unset.
func NewPrinter(w io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatDefault
	}
	return &Printer{w: w, format: format, color: supportsColor(w)}
}

func supportsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Print encodes data in JSON or YAML format, or calls formatter for the
// default format.
func (p *Printer) Print(data any, formatter func()) error {
	switch p.format {
	case FormatJSON:
		encoder := json.NewEncoder(p.w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(p.w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()
	default:
		formatter()
		return nil
	}
}

func (p *Printer) style(codes, s string) string {
	if !p.color {
		return s
	}
	return codes + s + Reset
}

// Header prints a bold header followed by a divider.
func (p *Printer) Header(text string) {
	fmt.Fprintln(p.w, p.style(Bold, text))
	fmt.Fprintln(p.w, strings.Repeat("=", len(text)))
}

// Label prints an aligned label and value pair.
func (p *Printer) Label(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(Dim, fmt.Sprintf("%-10s", label+":")), value)
}

// Item prints an indented list item.
func (p *Printer) Item(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", fmt.Sprintf(format, args...))
}

// Plain prints a line without decoration.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Muted returns s dimmed when color is enabled.
func (p *Printer) Muted(s string) string {
	return p.style(Dim, s)
}

// Error returns s in red when color is enabled.
func (p *Printer) Error(s string) string {
	return p.style(Red, s)
}
