// Package htmlsafe holds caller-side helpers for putting JSON-LD into HTML
// pages. The builder itself never escapes; these helpers are how a page
// renderer mitigates markup smuggled in through record fields.
package htmlsafe

import (
	"html"
	"reflect"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripMarkup removes every HTML element from s and decodes entities, so
// "<p>Fresh &amp; clean</p>" becomes "Fresh & clean".
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(strict().Sanitize(s)))
}

// StripRecord applies StripMarkup to every string reachable from ptr, which
// must be a pointer to a struct (or slice). Fields named URL-like are kept
// as they are so query strings survive.
func StripRecord(ptr any) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	strip(v.Elem(), "")
}

func strip(v reflect.Value, name string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() && !urlField(name) {
			v.SetString(StripMarkup(v.String()))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			strip(v.Elem(), name)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).IsExported() {
				strip(v.Field(i), t.Field(i).Name)
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			strip(v.Index(i), name)
		}
	}
}

func urlField(name string) bool {
	switch name {
	case "Images", "Image", "FeaturedImage", "Logo", "SocialProfiles":
		return true
	}
	return strings.HasSuffix(name, "URL")
}

var scriptEscaper = strings.NewReplacer(
	"<", `\u003c`,
	">", `\u003e`,
	"&", `\u0026`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// ScriptTag wraps builder output in a JSON-LD script element. Characters that
// could close the element or start markup are written as JSON \u escapes,
// which leaves the decoded document unchanged.
func ScriptTag(jsonText string) string {
	return `<script type="application/ld+json">` + scriptEscaper.Replace(jsonText) + `</script>`
}
