package pubid

import (
	"fmt"
	"strings"
)

// Style selects one of the four textual projections of an Identifier.
type Style string

const (
	// StyleLong is the full descriptive form:
	// "National Institute of Standards and Technology Special Publication 800-53, Revision 5".
	StyleLong Style = "long"

	// StyleAbbrev is the abbreviated form:
	// "Natl. Inst. Stand. Technol. Spec. Publ. 800-53, Rev. 5".
	StyleAbbrev Style = "abbrev"

	// StyleShort is the compact human form: "NIST SP 800-53r5".
	StyleShort Style = "short"

	// StyleMR is the machine-readable form, dot-delimited and space-free:
	// "NIST.SP.800-53r5".
	StyleMR Style = "mr"
)

// ValidStyles returns all valid output styles.
func ValidStyles() []Style {
	return []Style{StyleLong, StyleAbbrev, StyleShort, StyleMR}
}

// IsValid returns true if this is a recognized style.
func (s Style) IsValid() bool {
	switch s {
	case StyleLong, StyleAbbrev, StyleShort, StyleMR:
		return true
	default:
		return false
	}
}

// Format renders the identifier in the requested style. Rendering is
// total: every identifier that passed validation renders in every style.
// Unrecognized styles render as StyleShort.
func (id *Identifier) Format(style Style) string {
	switch style {
	case StyleLong:
		return id.humanString(false)
	case StyleAbbrev:
		return id.humanString(true)
	case StyleMR:
		return id.machineString()
	default:
		return id.shortString()
	}
}

// String returns the short form.
func (id *Identifier) String() string {
	return id.shortString()
}

// humanString renders the long form, or the abbreviated form when abbrev
// is set. The two share clause ordering and punctuation; only the marker
// vocabulary differs.
func (id *Identifier) humanString(abbrev bool) string {
	var b strings.Builder

	// Addendum is a whole-string prefix, not a suffix.
	if seq, ok := id.Addendum(); ok {
		word := "Addendum"
		if abbrev {
			word = "Add."
		}
		if seq > 1 {
			fmt.Fprintf(&b, "%s %d to ", word, seq)
		} else {
			fmt.Fprintf(&b, "%s to ", word)
		}
	}

	if !id.entry.EmbedsOrg {
		if abbrev {
			b.WriteString(id.publisher.Abbrev())
		} else {
			b.WriteString(id.publisher.Title())
		}
		b.WriteByte(' ')
	}
	if abbrev {
		b.WriteString(id.entry.Abbrev)
	} else {
		b.WriteString(id.entry.Title)
	}

	if id.stage != "" {
		b.WriteByte(' ')
		b.WriteString(id.stage.Title())
	}

	b.WriteByte(' ')
	b.WriteString(id.docNumber)

	if id.part != "" {
		if abbrev {
			fmt.Fprintf(&b, ", Pt. %s", id.part)
		} else {
			fmt.Fprintf(&b, ", Part %s", id.part)
		}
	}
	if n, ok := id.Volume(); ok {
		if abbrev {
			fmt.Fprintf(&b, ", Vol. %d", n)
		} else {
			fmt.Fprintf(&b, ", Volume %d", n)
		}
	}
	if n, ok := id.Version(); ok {
		if abbrev {
			fmt.Fprintf(&b, ", Ver. %d", n)
		} else {
			fmt.Fprintf(&b, ", Version %d", n)
		}
	}
	if n, ok := id.Revision(); ok {
		if abbrev {
			fmt.Fprintf(&b, ", Rev. %d", n)
		} else {
			fmt.Fprintf(&b, ", Revision %d", n)
		}
	}
	// Edition takes no leading comma.
	if n, ok := id.Edition(); ok {
		if abbrev {
			fmt.Fprintf(&b, " Ed. %d", n)
		} else {
			fmt.Fprintf(&b, " Edition %d", n)
		}
	}
	if u, ok := id.Update(); ok {
		if abbrev {
			fmt.Fprintf(&b, " Upd. %d:%s", u.Sequence, u.Date)
		} else {
			fmt.Fprintf(&b, " Update %d:%s", u.Sequence, u.Date)
		}
	}
	if id.translation != "" {
		fmt.Fprintf(&b, " (%s)", strings.ToUpper(id.translation))
	}

	return b.String()
}

// shortString renders the compact human form: organization acronym,
// series code (with parenthesized stage), then the document number with
// qualifier markers concatenated directly.
func (id *Identifier) shortString() string {
	var b strings.Builder

	b.WriteString(id.publisher.Acronym())
	b.WriteByte(' ')
	b.WriteString(id.entry.Code)
	if id.stage != "" {
		fmt.Fprintf(&b, "(%s)", id.stage.Code())
	}
	b.WriteByte(' ')
	b.WriteString(id.docNumber)
	b.WriteString(id.compactQualifiers())

	if seq, ok := id.Addendum(); ok {
		if seq > 1 {
			fmt.Fprintf(&b, " Addendum %d", seq)
		} else {
			b.WriteString(" Addendum")
		}
	}
	if u, ok := id.Update(); ok {
		fmt.Fprintf(&b, "/Upd %d:%s", u.Sequence, u.Date)
	}
	if id.translation != "" {
		fmt.Fprintf(&b, "(%s)", id.translation)
	}

	return b.String()
}

// machineString renders the dot-delimited, space-free form.
func (id *Identifier) machineString() string {
	tokens := []string{id.publisher.Acronym(), id.entry.Code}
	if id.stage != "" {
		tokens = append(tokens, id.stage.Code())
	}
	tokens = append(tokens, id.docNumber+id.compactQualifiers())

	if seq, ok := id.Addendum(); ok {
		tokens = append(tokens, fmt.Sprintf("add-%d", seq))
	}
	if u, ok := id.Update(); ok {
		tokens = append(tokens, fmt.Sprintf("u%d-%s", u.Sequence, u.Date))
	}

	s := strings.Join(tokens, ".")
	if id.translation != "" {
		s += fmt.Sprintf("(%s)", id.translation)
	}
	return s
}

// compactQualifiers builds the marker tail shared by the short and
// machine-readable forms: ptN, vN, then rN or eN, concatenated with no
// separators.
func (id *Identifier) compactQualifiers() string {
	var b strings.Builder
	if id.part != "" {
		fmt.Fprintf(&b, "pt%s", id.part)
	}
	if n, ok := id.Volume(); ok {
		fmt.Fprintf(&b, "v%d", n)
	}
	if n, ok := id.Version(); ok {
		fmt.Fprintf(&b, "v%d", n)
	}
	if n, ok := id.Revision(); ok {
		fmt.Fprintf(&b, "r%d", n)
	}
	if n, ok := id.Edition(); ok {
		fmt.Fprintf(&b, "e%d", n)
	}
	return b.String()
}
