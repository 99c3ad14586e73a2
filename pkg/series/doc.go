// Package series provides the publication series registry for PubID
// identifiers.
//
// A series is a named category of publication (Special Publication,
// Interagency Report, ...) identified by a short code. The registry maps
// every accepted spelling of a series — current codes, full titles,
// abbreviated titles, and retired legacy spellings — to a single canonical
// Entry, scoped by publishing organization.
//
// # Core Concepts
//
//  1. Publisher: the issuing organization (NIST, or its predecessor NBS).
//
//  2. Entry: canonical series metadata — code, full title, abbreviated
//     title, the publishers the series is valid for, and rendering hints.
//
//  3. Alias: a legacy spelling (e.g. "NISTIR", "FIPS PUB") that resolves to
//     a current Entry. An alias may imply a publisher: "NBSIR" resolves to
//     the IR series under NBS even without a separate publisher token.
//
// # Usage
//
//	reg := series.Default()
//	entry, err := reg.Resolve(series.PublisherNIST, "NISTIR")
//	if err != nil {
//	    // errors.Is(err, series.ErrSeriesNotFound)
//	}
//	fmt.Println(entry.Code) // "IR"
//
// Lookup is case-insensitive and punctuation-insensitive ("Spec. Publ."
// and "SPEC PUBL" resolve identically) and deterministic: every accepted
// spelling maps to exactly one Entry, or resolution fails with
// ErrSeriesNotFound. The registry is immutable after construction and safe
// for concurrent use.
package series
