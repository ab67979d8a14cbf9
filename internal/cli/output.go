package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Success emits the payload: pretty-printed JSON in json mode, the
// renderer's text otherwise.
func (f *OutputFormatter) Success(payload any, text func(w io.Writer) error) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	return text(f.Writer)
}

// field prints one aligned "label: value" text line.
func field(w io.Writer, label string, format string, args ...any) {
	fmt.Fprintf(w, "%-14s %s\n", label+":", fmt.Sprintf(format, args...))
}
