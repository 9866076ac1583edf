package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/ldschema"
	"github.com/reoring/ldschema/format"
)

// dateFields are checked against the date predicate wherever the document
// carries them at the top level.
var dateFields = []string{"datePublished", "dateModified"}

func (v *Validator) checkContext(node map[string]any, at ldschema.PathRef) ldschema.Issues {
	ctx, ok := node["@context"]
	if !ok || ctx == nil || ctx == "" {
		return ldschema.Issues{at.Field("@context").Issue(ldschema.CodeRequired, "field", "@context")}
	}
	if !referencesSchemaOrg(ctx) {
		return ldschema.Issues{at.Field("@context").Issue(ldschema.CodeInvalidValue,
			"field", "@context", "expected", "https://schema.org", "got", describe(ctx))}
	}
	return nil
}

// referencesSchemaOrg accepts a context string, an array of contexts, or a
// context object whose @vocab points at schema.org.
func referencesSchemaOrg(ctx any) bool {
	switch x := ctx.(type) {
	case string:
		return strings.Contains(x, "schema.org")
	case []any:
		for _, e := range x {
			if referencesSchemaOrg(e) {
				return true
			}
		}
	case map[string]any:
		vocab, _ := x["@vocab"].(string)
		return strings.Contains(vocab, "schema.org")
	}
	return false
}

func (v *Validator) checkType(node map[string]any, at ldschema.PathRef) ldschema.Issues {
	t, ok := node["@type"]
	if !ok || t == nil || t == "" {
		return ldschema.Issues{at.Field("@type").Issue(ldschema.CodeRequired, "field", "@type")}
	}
	if len(typeNames(t)) == 0 {
		return ldschema.Issues{at.Field("@type").Issue(ldschema.CodeInvalidType, "field", "@type", "expected", "string")}
	}
	return nil
}

// checkFormats runs the data-format checks that apply regardless of @type.
func (v *Validator) checkFormats(node map[string]any, at ldschema.PathRef) ldschema.Issues {
	var iss ldschema.Issues

	for _, f := range dateFields {
		val, ok := node[f]
		if !ok || val == nil || val == "" {
			continue
		}
		s, isStr := val.(string)
		switch {
		case !isStr:
			iss = append(iss, at.Field(f).Issue(ldschema.CodeInvalidType, "field", f, "expected", "string"))
		case !v.validDate(s):
			iss = append(iss, at.Field(f).Issue(ldschema.CodeInvalidFormat, "field", f, "format", "date", "got", s))
		}
	}

	if val, ok := node["url"]; ok && val != nil && val != "" {
		if s, isStr := val.(string); !isStr || !format.IsValidURL(s) {
			iss = append(iss, at.Field("url").Issue(ldschema.CodeInvalidFormat, "field", "url", "format", "url", "got", describe(val)))
		}
	}

	switch img := node["image"].(type) {
	case string:
		if img != "" && !format.IsValidURL(img) {
			iss = append(iss, at.Field("image").Issue(ldschema.CodeInvalidFormat, "field", "image", "format", "url", "got", img))
		}
	case []any:
		for i, e := range img {
			if s, ok := e.(string); ok && !format.IsValidURL(s) {
				iss = append(iss, at.Field("image").Index(i).Issue(ldschema.CodeInvalidFormat,
					"field", "image["+strconv.Itoa(i)+"]", "format", "url", "got", s))
			}
		}
	}

	iss = append(iss, checkPrices(node["offers"], at.Field("offers"))...)
	return iss
}

// checkPrices requires every offers.price to be a non-negative finite number
// or a string that parses to one.
func checkPrices(offers any, at ldschema.PathRef) ldschema.Issues {
	var iss ldschema.Issues
	check := func(offer map[string]any, p ldschema.PathRef) {
		price, ok := offer["price"]
		if !ok || price == nil {
			return
		}
		var f float64
		switch x := price.(type) {
		case float64:
			f = x
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
			if err != nil {
				f = math.NaN()
			} else {
				f = parsed
			}
		default:
			iss = append(iss, p.Field("price").Issue(ldschema.CodeInvalidType, "field", "offers.price", "expected", "number"))
			return
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			iss = append(iss, p.Field("price").Issue(ldschema.CodeInvalidFormat, "field", "offers.price", "format", "price", "got", describe(price)))
		}
	}
	switch x := offers.(type) {
	case map[string]any:
		check(x, at)
	case []any:
		for i, e := range x {
			if o, ok := e.(map[string]any); ok {
				check(o, at.Index(i))
			}
		}
	}
	return iss
}

func describe(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	default:
		return fmt.Sprint(x)
	}
}
