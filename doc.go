package ldschema

// Package ldschema provides:
//
// - Generation of schema.org JSON-LD documents from typed input records (builder/)
// - Validation of any JSON-LD document against per-@type rule sets (validate/, rules/)
// - A stable finding model via Issues (JSON Pointer, code, severity, params)
// - Shared format predicates for URLs and ISO-8601 dates (format/)
//
// Design policy:
// - Keep the shared data model (Issue, Report, Config, PathRef) in the root package.
// - Builders never fail; every correctness check lives in the validator.
// - Rule sets are independent functions selected by the @type discriminant.
//
// Typical usage:
//
//  b := builder.New(ldschema.DefaultConfig())
//  doc := b.Product(builder.ProductInput{...})
//  rep := validate.Schema(doc)
//  if !rep.Valid {
//      return rep.Err()
//  }
//
// Builder output is meant to be embedded verbatim inside a
// <script type="application/ld+json"> element. It is not HTML-escaped; see
// htmlsafe/ for caller-side helpers.
