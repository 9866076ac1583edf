package ldschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired      = "required"
	CodeRecommended   = "recommended"
	CodeInvalidType   = "invalid_type"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeDomainRange   = "domain_range"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidValue  = "invalid_value"
	CodeParseError    = "parse_error"
	CodeDuplicateKey  = "duplicate_key"
)

// Issue represents a single validation finding.
type Issue struct {
	Path     string   `json:"path"` // JSON Pointer (for example: /offers/price).
	Code     string   `json:"code"` // One of the codes listed above.
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Params carries structured parameters (e.g., {"type":"Product", "field":"name"})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
	// Rule optionally records the rule set that produced this issue.
	Rule string `json:"rule,omitempty"`
}

// IsError reports whether the issue blocks validity.
func (it Issue) IsError() bool { return it.Severity == Error }

// Issues is a collection of validation findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Errors returns only the issues with Error severity.
func (iss Issues) Errors() Issues { return iss.filter(Error) }

// Warnings returns only the issues with Warn severity.
func (iss Issues) Warnings() Issues { return iss.filter(Warn) }

func (iss Issues) filter(s Severity) Issues {
	var out Issues
	for _, it := range iss {
		if it.Severity == s {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
