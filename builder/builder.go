// Package builder turns typed input records into schema.org JSON-LD text.
//
// Builders are total: they never return an error and never check their input.
// A record missing required data yields an incomplete document, and
// validate.Schema is the place to find out.
package builder

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/ldschema"
	"github.com/reoring/ldschema/format"
)

// Builder generates JSON-LD documents using a fixed site identity.
// A Builder is immutable and safe for concurrent use.
type Builder struct {
	cfg ldschema.Config
}

// New returns a Builder that uses a copy of cfg for defaults.
func New(cfg ldschema.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Config returns a copy of the configuration the Builder was constructed with.
func (b *Builder) Config() ldschema.Config { return b.cfg }

// encode performs the single serialization of a document: 2-space indent,
// no HTML escaping, no trailing newline.
func encode(doc any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		// unreachable for the document shapes in this package
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// absURL resolves a site-relative URL against the configured base URL.
// Absolute and empty values pass through unchanged.
func (b *Builder) absURL(u string) string {
	if u == "" || b.cfg.BaseURL == "" || format.IsValidURL(u) {
		return u
	}
	return strings.TrimRight(b.cfg.BaseURL, "/") + "/" + strings.TrimLeft(u, "/")
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func address(in AddressInput) postalAddress {
	return postalAddress{
		Type:            "PostalAddress",
		StreetAddress:   in.StreetAddress,
		AddressLocality: in.Locality,
		AddressRegion:   in.Region,
		PostalCode:      in.PostalCode,
		AddressCountry:  in.Country,
	}
}
