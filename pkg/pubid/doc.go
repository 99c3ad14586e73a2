// Package pubid models, parses, and renders standardized publication
// identifiers ("PubIDs") issued by NIST and its predecessor NBS.
//
// A PubID names a publisher, a publication series, a document number, and
// an optional qualifier set (revision, edition, version, volume, part,
// addendum, update, translation, draft stage). One identifier has four
// equivalent textual forms, all pure projections of the same model:
//
//   - Long:   "National Institute of Standards and Technology Special Publication 800-53, Revision 5"
//   - Abbrev: "Natl. Inst. Stand. Technol. Spec. Publ. 800-53, Rev. 5"
//   - Short:  "NIST SP 800-53r5"
//   - MR:     "NIST.SP.800-53r5" (machine-readable, dot-delimited)
//
// # Usage
//
//	id, err := pubid.Parse("NIST SP 800-53r5")
//	if err != nil {
//	    // errors.Is(err, pubid.ErrUnknownSeries) or
//	    // errors.Is(err, pubid.ErrMalformedDocNumber)
//	}
//	id.Format(pubid.StyleMR) // "NIST.SP.800-53r5"
//
//	id.SetRevision(6)
//	id.Format(pubid.StyleMR) // "NIST.SP.800-53r6"
//
// Legacy spellings parse and normalize: "NISTIR 8115" resolves to the IR
// series under NIST and renders as "NIST IR 8115" from then on; the
// identifier remains equivalent, so normalization is idempotent.
//
// Parsing and rendering are pure: identifiers may be parsed, rendered,
// and compared concurrently. A single identifier must not be mutated
// from two goroutines at once (ordinary single-writer discipline).
package pubid
