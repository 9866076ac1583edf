// Package rules holds the per-@type rule sets applied by the validator.
//
// Every rule set is a Func that inspects one decoded JSON object and returns
// its findings. Rule sets never short-circuit: all checks run so a single
// pass reports everything wrong with a document.
package rules

import (
	"github.com/reoring/ldschema"
	"github.com/reoring/ldschema/format"
)

// Func checks a decoded JSON-LD node whose @type selected this rule set.
// at is the pointer of node inside the document.
type Func func(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues

// Env carries validator-wide policies into rule sets. The zero value uses
// the package defaults.
type Env struct {
	// ValidDate decides whether a date-valued field is well formed.
	// format.IsValidDate when nil.
	ValidDate func(string) bool
}

func (e Env) validDate(s string) bool {
	if e.ValidDate == nil {
		return format.IsValidDate(s)
	}
	return e.ValidDate(s)
}

// Default returns the rule sets applied to every document, keyed by @type.
// Types missing from the table are only subject to generic checks.
func Default() map[string]Func {
	return map[string]Func{
		"Product":        Product,
		"BlogPosting":    Article,
		"Article":        Article,
		"Organization":   Organization,
		"BreadcrumbList": BreadcrumbList,
		"FAQPage":        FAQPage,
	}
}

// Extended returns opt-in rule sets for the remaining builder types. They are
// not part of Default so documents of these types keep being accepted on
// generic checks alone unless a caller asks for more.
func Extended() map[string]Func {
	return map[string]Func{
		"WebSite":       WebSite,
		"LocalBusiness": LocalBusiness,
		"VideoObject":   VideoObject,
		"HowTo":         HowTo,
	}
}
