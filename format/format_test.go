package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/ldschema/format"
)

func TestIsValidURL(t *testing.T) {
	cases := map[string]bool{
		"https://purrify.ca/x":               true,
		"http://localhost:3000/blog?page=2":  true,
		"mailto:support@purrify.ca":          true,
		"  https://purrify.ca/padded  ":      true,
		"not a url":                          false,
		"":                                   false,
		"/relative/path":                     false,
		"purrify.ca/no-scheme":               false,
		"https://":                           false,
		"https://exa mple.com":               false,
		"1http://digit-leading-scheme.test/": false,
	}
	for in, want := range cases {
		assert.Equalf(t, want, format.IsValidURL(in), "IsValidURL(%q)", in)
	}
}

func TestIsValidDate(t *testing.T) {
	cases := map[string]bool{
		"2025-01-20":                true,
		"2025-01-20T10:00:00":       true,
		"2025-01-20T10:00:00Z":      true,
		"2025-01-20T10:00:00.123Z":  true,
		"2025-01-20T10:00:00.123":   true,
		"2025-13-40":                true, // pattern only, no calendar check
		"2025-01-20T10:00:00-05:00": false,
		"2025-01-20T10:00:00+00:00": false,
		"2025-01-20T10:00":          false,
		"2025-1-2":                  false,
		"20 January 2025":           false,
		"":                          false,
	}
	for in, want := range cases {
		assert.Equalf(t, want, format.IsValidDate(in), "IsValidDate(%q)", in)
	}
}
