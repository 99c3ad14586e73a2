package series

// Alias is a legacy or alternate spelling that resolves to a current
// series Entry. Legacy compound codes such as "NISTIR" name their
// organization implicitly; for those the Publisher field records which
// one, so that an identifier written with the legacy code still resolves
// without a separate publisher token.
type Alias struct {
	// Spelling is the accepted legacy spelling. It may contain spaces
	// ("FIPS PUB"); lookup is case- and punctuation-insensitive.
	Spelling string `yaml:"spelling"`

	// Publisher, if set, is the organization the spelling implies.
	Publisher Publisher `yaml:"publisher,omitempty"`
}

// Entry is the canonical metadata for one publication series.
//
// Entries are immutable once the registry is built; callers receive shared
// pointers and must not modify them.
type Entry struct {
	// Code is the canonical short series code (e.g. "SP", "IR").
	Code string `yaml:"code"`

	// Title is the full descriptive series title
	// (e.g. "Special Publication").
	Title string `yaml:"title"`

	// Abbrev is the abbreviated series title (e.g. "Spec. Publ.").
	Abbrev string `yaml:"abbrev"`

	// Publishers lists the organizations this series is valid for.
	Publishers []Publisher `yaml:"publishers"`

	// EmbedsOrg is true when Title already names the organization
	// (e.g. "NIST Cybersecurity White Paper"); renderers must not prepend
	// an organization name in that case.
	EmbedsOrg bool `yaml:"embeds_org,omitempty"`

	// Aliases are legacy spellings resolving to this entry.
	Aliases []Alias `yaml:"aliases,omitempty"`
}

// SupportsPublisher returns true if the series is valid for the given
// publisher.
func (e *Entry) SupportsPublisher(p Publisher) bool {
	for _, pub := range e.Publishers {
		if pub == p {
			return true
		}
	}
	return false
}
