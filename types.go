package ldschema

// Severity expresses the severity level for issues.
type Severity int

const (
	// Warn flags a quality gap that does not affect validity.
	Warn Severity = iota + 1
	// Error makes a document ineligible for its rich-result treatment.
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity as "warning" or "error".
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Report is the outcome of validating one JSON-LD document.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	// Issues holds the structured form of Errors and Warnings, in the order
	// they were found.
	Issues Issues `json:"issues,omitempty"`
}

// NewReport derives the string lists and validity from issues. Messages must
// already be rendered.
func NewReport(iss Issues) Report {
	r := Report{Errors: []string{}, Warnings: []string{}, Issues: iss}
	for _, it := range iss {
		switch {
		case it.IsError():
			r.Errors = append(r.Errors, it.Message)
		case it.Severity == Warn:
			r.Warnings = append(r.Warnings, it.Message)
		}
	}
	r.Valid = len(r.Errors) == 0
	return r
}

// Err returns the error-severity issues as an error, or nil when the report is
// valid.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	return r.Issues.Errors()
}
