package pubid

import (
	"regexp"

	"github.com/araddon/dateparse"
)

// Update is a dated post-publication update: a sequence number plus the
// date the update was issued.
//
// The date is carried verbatim as entered ("2015", "2021-04-25") and never
// reformatted, so identifiers round-trip byte-for-byte. It is validated at
// parse and construction time.
type Update struct {
	Sequence int
	Date     string
}

// IsZero returns true if this is a zero Update.
func (u Update) IsZero() bool {
	return u.Sequence == 0 && u.Date == ""
}

var (
	bareYearPattern    = regexp.MustCompile(`^\d{4}$`)
	translationPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// validUpdateDate reports whether s is an acceptable update date: a bare
// year, or anything dateparse recognizes.
func validUpdateDate(s string) bool {
	if s == "" {
		return false
	}
	if bareYearPattern.MatchString(s) {
		return true
	}
	_, err := dateparse.ParseAny(s)
	return err == nil
}

// validTranslation reports whether s is a short language code
// (three letters, any case).
func validTranslation(s string) bool {
	return translationPattern.MatchString(s)
}
