package pubid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mico/nist-pubid/pkg/series"
)

// docNumberPattern is the structural shape of a document number:
// digit-led dash-separated alphanumeric groups ("800-53", "800-38A",
// "8115"). Letter suffixes denote sub-series and are preserved verbatim.
var docNumberPattern = regexp.MustCompile(`^\d[0-9A-Za-z]*(?:-[0-9A-Za-z]+)*$`)

// markerTailPattern matches document numbers whose tail collides with a
// compact qualifier marker (pt1, r5, e2, v1). Such numbers cannot be
// tokenized deterministically in the short and machine-readable forms, so
// they are rejected at construction: markers always win the tie.
var markerTailPattern = regexp.MustCompile(`(?:pt|r|e|v)\d+$`)

var partPattern = regexp.MustCompile(`^\d+$`)

// Identifier is one standardized publication identifier: publisher,
// series, document number, and an optional qualifier set.
//
// An Identifier is constructed directly with New or derived from text with
// Parse. It is immutable except for the explicit qualifier setters, which
// mutate in place and never touch publisher, series, or document number.
// The four textual styles are pure projections of this one model.
type Identifier struct {
	publisher series.Publisher
	entry     *series.Entry
	docNumber string

	stage       Stage
	part        string
	volume      *int
	version     *int
	revision    *int
	edition     *int
	addendum    *int
	update      *Update
	translation string
}

// Option sets an optional qualifier on a new Identifier.
type Option func(*Identifier)

// WithStage sets the draft stage.
func WithStage(s Stage) Option {
	return func(id *Identifier) { id.stage = s }
}

// WithPart sets the part label.
func WithPart(label string) Option {
	return func(id *Identifier) { id.part = label }
}

// WithVolume sets the volume number.
func WithVolume(n int) Option {
	return func(id *Identifier) { id.volume = &n }
}

// WithVersion sets the version number.
func WithVersion(n int) Option {
	return func(id *Identifier) { id.version = &n }
}

// WithRevision sets the revision number.
func WithRevision(n int) Option {
	return func(id *Identifier) { id.revision = &n }
}

// WithEdition sets the edition number.
func WithEdition(n int) Option {
	return func(id *Identifier) { id.edition = &n }
}

// WithAddendum marks the identifier as an addendum with the given
// sequence number (1 for a sole addendum).
func WithAddendum(seq int) Option {
	return func(id *Identifier) { id.addendum = &seq }
}

// WithUpdate sets a dated post-publication update.
func WithUpdate(seq int, date string) Option {
	return func(id *Identifier) { id.update = &Update{Sequence: seq, Date: date} }
}

// WithTranslation marks the identifier as a translated edition with the
// given short language code.
func WithTranslation(lang string) Option {
	return func(id *Identifier) { id.translation = strings.ToLower(lang) }
}

// New constructs an Identifier. The series token may be any accepted
// spelling, including legacy aliases; it is normalized to the canonical
// registry entry. Fails with an error wrapping ErrInvalidModel if the
// series does not resolve for the publisher or the fields violate a model
// invariant.
func New(pub series.Publisher, seriesToken, docNumber string, opts ...Option) (*Identifier, error) {
	entry, err := series.Default().Resolve(pub, seriesToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	id := &Identifier{
		publisher: pub,
		entry:     entry,
		docNumber: docNumber,
	}
	for _, opt := range opts {
		opt(id)
	}
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	return id, nil
}

// Publisher returns the issuing organization.
func (id *Identifier) Publisher() series.Publisher {
	return id.publisher
}

// Series returns the canonical series entry.
func (id *Identifier) Series() *series.Entry {
	return id.entry
}

// DocNumber returns the primary document number.
func (id *Identifier) DocNumber() string {
	return id.docNumber
}

// Stage returns the draft stage, or the zero Stage for a final
// publication.
func (id *Identifier) Stage() Stage {
	return id.stage
}

// IsDraft returns true if the identifier carries a draft stage.
func (id *Identifier) IsDraft() bool {
	return id.stage != ""
}

// Part returns the part label, or empty string if unset.
func (id *Identifier) Part() string {
	return id.part
}

// Volume returns the volume number and whether it is set.
func (id *Identifier) Volume() (int, bool) {
	if id.volume == nil {
		return 0, false
	}
	return *id.volume, true
}

// Version returns the version number and whether it is set.
func (id *Identifier) Version() (int, bool) {
	if id.version == nil {
		return 0, false
	}
	return *id.version, true
}

// Revision returns the revision number and whether it is set.
func (id *Identifier) Revision() (int, bool) {
	if id.revision == nil {
		return 0, false
	}
	return *id.revision, true
}

// Edition returns the edition number and whether it is set.
func (id *Identifier) Edition() (int, bool) {
	if id.edition == nil {
		return 0, false
	}
	return *id.edition, true
}

// Addendum returns the addendum sequence number and whether it is set.
func (id *Identifier) Addendum() (int, bool) {
	if id.addendum == nil {
		return 0, false
	}
	return *id.addendum, true
}

// Update returns the update qualifier and whether it is set.
func (id *Identifier) Update() (Update, bool) {
	if id.update == nil {
		return Update{}, false
	}
	return *id.update, true
}

// Translation returns the short language code, or empty string if the
// identifier does not denote a translated edition.
func (id *Identifier) Translation() string {
	return id.translation
}

// SetStage sets the draft stage. s must be a valid Stage.
func (id *Identifier) SetStage(s Stage) {
	id.stage = s
}

// SetPart sets the part label.
func (id *Identifier) SetPart(label string) {
	id.part = label
}

// SetVolume sets the volume number and clears any version: the two are
// mutually exclusive.
func (id *Identifier) SetVolume(n int) {
	id.volume = &n
	id.version = nil
}

// SetVersion sets the version number and clears any volume.
func (id *Identifier) SetVersion(n int) {
	id.version = &n
	id.volume = nil
}

// SetRevision sets the revision number and clears any edition: the two
// are mutually exclusive ways of naming an iteration, and the last one
// set wins.
func (id *Identifier) SetRevision(n int) {
	id.revision = &n
	id.edition = nil
}

// SetEdition sets the edition number and clears any revision.
func (id *Identifier) SetEdition(n int) {
	id.edition = &n
	id.revision = nil
}

// SetAddendum sets the addendum sequence and clears any update: an
// addendum identifier never also carries an update suffix.
func (id *Identifier) SetAddendum(seq int) {
	id.addendum = &seq
	id.update = nil
}

// SetUpdate sets the update qualifier and clears any addendum.
func (id *Identifier) SetUpdate(seq int, date string) {
	id.update = &Update{Sequence: seq, Date: date}
	id.addendum = nil
}

// SetTranslation sets the short language code, normalized to lowercase.
func (id *Identifier) SetTranslation(lang string) {
	id.translation = strings.ToLower(lang)
}

// Validate checks the model invariants. New and Parse call it; callers
// mutating qualifiers directly may re-check with it.
func (id *Identifier) Validate() error {
	errs := validation.Errors{
		"docnumber": validation.Validate(id.docNumber,
			validation.Required,
			validation.Match(docNumberPattern).Error("must be a digit-led alphanumeric number"),
		),
		"part": validation.Validate(id.part,
			validation.Match(partPattern).Error("must be a numeric label"),
		),
	}

	if !id.publisher.IsValid() {
		errs["publisher"] = fmt.Errorf("unknown publisher %q", id.publisher)
	}
	if id.entry == nil {
		errs["series"] = errors.New("series is required")
	} else if id.publisher.IsValid() && !id.entry.SupportsPublisher(id.publisher) {
		errs["series"] = fmt.Errorf("series %q is not published by %s", id.entry.Code, id.publisher)
	}
	if id.docNumber != "" && markerTailPattern.MatchString(id.docNumber) {
		errs["docnumber"] = errors.New("must not end in a qualifier marker (pt/r/e/v + digits)")
	}
	if id.stage != "" && !id.stage.IsValid() {
		errs["stage"] = fmt.Errorf("unknown stage %q", id.stage)
	}
	if id.revision != nil && *id.revision < 0 {
		errs["revision"] = errors.New("must not be negative")
	}
	if id.edition != nil && *id.edition < 0 {
		errs["edition"] = errors.New("must not be negative")
	}
	if id.revision != nil && id.edition != nil {
		errs["edition"] = errors.New("revision and edition are mutually exclusive")
	}
	if id.addendum != nil && *id.addendum < 1 {
		errs["addendum"] = errors.New("sequence must be positive")
	}
	if id.update != nil {
		if id.update.Sequence < 1 {
			errs["update"] = errors.New("sequence must be positive")
		} else if strings.ContainsAny(id.update.Date, ". :/") {
			// Dots and spaces would break machine-readable tokenization.
			errs["update"] = fmt.Errorf("date %q must use dashed notation", id.update.Date)
		} else if !validUpdateDate(id.update.Date) {
			errs["update"] = fmt.Errorf("unrecognized date %q", id.update.Date)
		}
	}
	if id.addendum != nil && id.update != nil {
		errs["update"] = errors.New("addendum and update are mutually exclusive")
	}
	if id.translation != "" && !validTranslation(id.translation) {
		errs["translation"] = fmt.Errorf("%q is not a three-letter language code", id.translation)
	}

	// Volume and version share the compact "v" marker; the reading is
	// decided by the character before it. These invariants keep every
	// identifier representable without ambiguity.
	if id.volume != nil && id.version != nil {
		errs["version"] = errors.New("volume and version are mutually exclusive")
	}
	if id.version != nil {
		switch {
		case id.part != "":
			errs["version"] = errors.New("version cannot accompany a part label")
		case !endsWithLetter(id.docNumber):
			errs["version"] = errors.New("version requires a letter-suffixed document number")
		}
	}
	if id.volume != nil && id.part == "" && endsWithLetter(id.docNumber) {
		errs["volume"] = errors.New("volume requires a part label after a letter-suffixed document number")
	}

	return errs.Filter()
}

// Equal returns true if two identifiers denote the same publication.
func (id *Identifier) Equal(other *Identifier) bool {
	if id == nil || other == nil {
		return id == other
	}
	return id.publisher == other.publisher &&
		id.seriesCode() == other.seriesCode() &&
		id.docNumber == other.docNumber &&
		id.stage == other.stage &&
		id.part == other.part &&
		intPtrEqual(id.volume, other.volume) &&
		intPtrEqual(id.version, other.version) &&
		intPtrEqual(id.revision, other.revision) &&
		intPtrEqual(id.edition, other.edition) &&
		intPtrEqual(id.addendum, other.addendum) &&
		updatePtrEqual(id.update, other.update) &&
		id.translation == other.translation
}

func (id *Identifier) seriesCode() string {
	if id.entry == nil {
		return ""
	}
	return id.entry.Code
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func updatePtrEqual(a, b *Update) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func endsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
