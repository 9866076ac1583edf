package ldschema

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code string, kv ...any) Issue
	Warning(code string, kv ...any) Issue
}

// Root returns the PathRef of the document root ("/").
func Root() PathRef { return &pathRef{parts: nil} }

// At parses a JSON Pointer into a PathRef. Segments are taken as already escaped.
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	// naive split on '/', ignoring first empty due to leading '/'
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code string, kv ...any) Issue {
	return IssueAt(p, code, params(kv))
}

func (p *pathRef) Warning(code string, kv ...any) Issue {
	return WarningAt(p, code, params(kv))
}

func params(kv []any) map[string]any {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return m
}
