// Package format holds the shared data-format predicates used by the
// validator: absolute URL syntax and the ISO-8601 date pattern.
package format

import (
	"net/url"
	"regexp"
	"strings"
)

// datePattern accepts YYYY-MM-DD, optionally followed by THH:MM:SS, optional
// milliseconds and an optional literal Z. Numeric UTC offsets are rejected.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d{3})?Z?)?$`)

// IsValidDate reports whether s matches the accepted date pattern. It does not
// check calendar correctness ("2025-13-40" passes).
func IsValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// schemes that only make sense with an authority component.
var hostRequired = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ws":    true,
	"wss":   true,
}

// IsValidURL reports whether s parses as an absolute URL. No resolution or
// reachability check is performed.
func IsValidURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if hostRequired[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}
	return true
}
