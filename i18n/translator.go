// Package i18n renders human-readable messages for Issue codes.
package i18n

import (
	"sort"
	"strings"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "type", "field" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

type catalog struct {
	messages map[string]string
	kinds    map[string]string // values of "expected" for invalid_type
	formats  map[string]string
}

var catalogs = map[string]catalog{
	"en": {
		messages: map[string]string{
			"required":       `missing required field "{field}"`,
			"recommended":    `missing recommended field "{field}"`,
			"invalid_type":   `"{field}" must be {expected}`,
			"too_short":      `"{field}" must not be empty`,
			"too_long":       `"{field}" is longer than {max} characters ({got})`,
			"domain_range":   `"{field}" must be between {min} and {max}, got {got}`,
			"invalid_format": `"{field}" is not a valid {format}: {got}`,
			"invalid_value":  `"{field}" must be {expected}, got {got}`,
			"parse_error":    `Invalid JSON: {detail}`,
			"duplicate_key":  `duplicate key "{field}" (last value wins)`,
		},
		kinds:   map[string]string{"array": "an array", "object": "an object", "number": "a number", "string": "a string"},
		formats: map[string]string{"url": "absolute URL", "date": "ISO-8601 date", "price": "non-negative price"},
	},
	"fr": {
		messages: map[string]string{
			"required":       `champ obligatoire manquant « {field} »`,
			"recommended":    `champ recommandé manquant « {field} »`,
			"invalid_type":   `« {field} » doit être {expected}`,
			"too_short":      `« {field} » ne doit pas être vide`,
			"too_long":       `« {field} » dépasse {max} caractères ({got})`,
			"domain_range":   `« {field} » doit être compris entre {min} et {max}, reçu {got}`,
			"invalid_format": `« {field} » n'est pas un(e) {format} valide : {got}`,
			"invalid_value":  `« {field} » doit valoir {expected}, reçu {got}`,
			"parse_error":    `JSON invalide : {detail}`,
			"duplicate_key":  `clé en double « {field} » (la dernière valeur l'emporte)`,
		},
		kinds:   map[string]string{"array": "un tableau", "object": "un objet", "number": "un nombre", "string": "une chaîne"},
		formats: map[string]string{"url": "URL absolue", "date": "date ISO-8601", "price": "prix positif ou nul"},
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

// New returns the built-in Translator for lang ("en" or "fr"). Unknown
// languages fall back to English.
func New(lang string) Translator {
	if _, ok := catalogs[lang]; !ok {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// Default returns the English Translator.
func Default() Translator { return dictTranslator{lang: "en"} }

// Languages lists the built-in catalog languages.
func Languages() []string {
	out := make([]string, 0, len(catalogs))
	for l := range catalogs {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	c := catalogs[t.lang]
	tmpl, ok := c.messages[code]
	if !ok {
		tmpl = code
	}
	vals := make(map[string]string, len(data))
	for k, v := range data {
		vals[k] = v
	}
	if code == "invalid_type" {
		if k, ok := c.kinds[vals["expected"]]; ok {
			vals["expected"] = k
		}
	}
	if f, ok := c.formats[vals["format"]]; ok {
		vals["format"] = f
	}
	msg := render(tmpl, vals)
	if typ := vals["type"]; typ != "" {
		msg = typ + ": " + msg
	}
	return msg
}

// render substitutes {key} placeholders. Keys are applied in sorted order so
// the output does not depend on map iteration.
func render(tmpl string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", data[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
