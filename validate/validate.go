// Package validate checks schema.org JSON-LD documents.
//
// Validation parses the document once, runs the generic checks (@context,
// @type, date/URL/price formats), then dispatches to the rule set registered
// for each @type value. Malformed JSON is the only condition that stops
// analysis early; everything else is collected into one Report.
package validate

import (
	"bytes"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/reoring/ldschema"
	"github.com/reoring/ldschema/format"
	"github.com/reoring/ldschema/i18n"
	"github.com/reoring/ldschema/internal/jsontok"
	"github.com/reoring/ldschema/rules"
)

// maxDuplicateKeys bounds duplicate-key warnings per document.
const maxDuplicateKeys = 50

// Validator holds a fixed @type dispatch table. It is safe for concurrent use.
type Validator struct {
	rules     map[string]rules.Func
	tr        i18n.Translator
	log       zerolog.Logger
	dupKeys   bool
	validDate func(string) bool
}

// Option configures a Validator at construction.
type Option func(*Validator)

// WithRule registers fn for documents whose @type is typ, replacing any
// existing rule set for that type. A nil fn removes the type.
func WithRule(typ string, fn rules.Func) Option {
	return func(v *Validator) {
		if fn == nil {
			delete(v.rules, typ)
			return
		}
		v.rules[typ] = fn
	}
}

// WithExtendedRules adds rules.Extended to the dispatch table.
func WithExtendedRules() Option {
	return func(v *Validator) {
		for typ, fn := range rules.Extended() {
			v.rules[typ] = fn
		}
	}
}

// WithTranslator sets the Translator used to render issue messages.
func WithTranslator(tr i18n.Translator) Option {
	return func(v *Validator) {
		if tr != nil {
			v.tr = tr
		}
	}
}

// WithLogger sets the logger receiving one debug event per document.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Validator) { v.log = l }
}

// WithDuplicateKeyCheck toggles duplicate-key warnings (on by default).
func WithDuplicateKeyCheck(enabled bool) Option {
	return func(v *Validator) { v.dupKeys = enabled }
}

// WithDatePredicate replaces the date-format policy, format.IsValidDate by
// default. It applies to every date-valued field the validator checks.
func WithDatePredicate(fn func(string) bool) Option {
	return func(v *Validator) {
		if fn != nil {
			v.validDate = fn
		}
	}
}

// New returns a Validator with the default rule sets.
func New(opts ...Option) *Validator {
	v := &Validator{
		rules:     rules.Default(),
		tr:        i18n.Default(),
		log:       zerolog.Nop(),
		dupKeys:   true,
		validDate: format.IsValidDate,
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

var std = New()

// Schema validates jsonText with the default Validator.
func Schema(jsonText string) ldschema.Report { return std.Validate(jsonText) }

// Types lists the @type values with a registered rule set, sorted.
func (v *Validator) Types() []string {
	out := make([]string, 0, len(v.rules))
	for typ := range v.rules {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}

// Validate checks one JSON-LD document.
func (v *Validator) Validate(jsonText string) ldschema.Report {
	return v.ValidateBytes([]byte(jsonText))
}

// ValidateBytes is Validate for raw bytes.
func (v *Validator) ValidateBytes(data []byte) ldschema.Report {
	root := ldschema.Root()

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		iss := v.render(ldschema.Issues{root.Issue(ldschema.CodeParseError, "detail", err.Error())})
		v.log.Debug().Err(err).Msg("rejected malformed JSON-LD")
		return ldschema.NewReport(iss)
	}
	// Non-object documents are inspected as an empty object.
	node, _ := doc.(map[string]any)

	var iss ldschema.Issues
	iss = append(iss, v.checkContext(node, root)...)
	iss = append(iss, v.checkType(node, root)...)
	types := typeNames(node["@type"])
	env := rules.Env{ValidDate: v.validDate}
	for _, typ := range types {
		if fn, ok := v.rules[typ]; ok {
			iss = append(iss, fn(node, root, env)...)
		}
	}
	iss = append(iss, v.checkFormats(node, root)...)
	if v.dupKeys {
		iss = append(iss, duplicateKeys(data)...)
	}

	rep := ldschema.NewReport(v.render(iss))
	v.log.Debug().
		Strs("types", types).
		Bool("valid", rep.Valid).
		Int("errors", len(rep.Errors)).
		Int("warnings", len(rep.Warnings)).
		Msg("validated JSON-LD document")
	return rep
}

func (v *Validator) render(iss ldschema.Issues) ldschema.Issues {
	for i := range iss {
		data := make(map[string]string, len(iss[i].Params))
		for k, p := range iss[i].Params {
			data[k] = fmt.Sprint(p)
		}
		iss[i].Message = v.tr.Message(iss[i].Code, data)
	}
	return iss
}

func duplicateKeys(data []byte) ldschema.Issues {
	dups, _ := jsontok.FindDuplicateKeys(bytes.NewReader(data), maxDuplicateKeys)
	var iss ldschema.Issues
	for _, d := range dups {
		iss = append(iss, ldschema.At(d.Path).Warning(ldschema.CodeDuplicateKey, "field", d.Key))
	}
	return iss
}

// typeNames returns the string values of @type, which may be a string or an
// array of strings.
func typeNames(v any) []string {
	switch x := v.(type) {
	case string:
		if x == "" {
			return nil
		}
		return []string{x}
	case []any:
		var out []string
		seen := map[string]bool{}
		for _, e := range x {
			if s, ok := e.(string); ok && s != "" && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
