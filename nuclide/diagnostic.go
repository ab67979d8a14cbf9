package nuclide

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic records a non-fatal issue found while building the
// repository, e.g. a wallet record for an element the catalog does not
// know, or a MAT entry for a nuclide absent from the wallet data.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g. "weight-unavailable", "mat-unknown-nuclide"
	Message  string
}

// String renders the diagnostic as "severity: code: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Code, d.Message)
}
