package ldschema

// IssueAt creates an error Issue at the given path with provided code and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Severity: Error, Params: params}
}

// WarningAt is the Warn-severity counterpart of IssueAt.
func WarningAt(p PathRef, code string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Severity: Warn, Params: params}
}
