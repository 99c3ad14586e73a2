package series

import "strings"

// Publisher identifies the organization that issued a publication.
type Publisher string

const (
	// PublisherNIST identifies the National Institute of Standards and
	// Technology, the current organization.
	PublisherNIST Publisher = "NIST"

	// PublisherNBS identifies the National Bureau of Standards, the
	// predecessor organization renamed to NIST in 1988.
	PublisherNBS Publisher = "NBS"
)

// publisherNames holds the display names for each publisher.
var publisherNames = map[Publisher]struct {
	title  string
	abbrev string
}{
	PublisherNIST: {
		title:  "National Institute of Standards and Technology",
		abbrev: "Natl. Inst. Stand. Technol.",
	},
	PublisherNBS: {
		title:  "National Bureau of Standards",
		abbrev: "Natl. Bur. Stand.",
	},
}

// ValidPublishers returns all valid publishers.
func ValidPublishers() []Publisher {
	return []Publisher{PublisherNIST, PublisherNBS}
}

// IsValid returns true if this is a recognized publisher.
func (p Publisher) IsValid() bool {
	switch p {
	case PublisherNIST, PublisherNBS:
		return true
	default:
		return false
	}
}

// Acronym returns the short organization code ("NIST", "NBS").
func (p Publisher) Acronym() string {
	return string(p)
}

// Title returns the full organization name.
// Returns empty string for an invalid publisher.
func (p Publisher) Title() string {
	return publisherNames[p].title
}

// Abbrev returns the abbreviated organization name.
// Returns empty string for an invalid publisher.
func (p Publisher) Abbrev() string {
	return publisherNames[p].abbrev
}

// String returns the string representation of the publisher.
func (p Publisher) String() string {
	return string(p)
}

// ResolvePublisher resolves a single token (acronym, case-insensitive)
// to a publisher.
func ResolvePublisher(token string) (Publisher, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "NIST":
		return PublisherNIST, true
	case "NBS":
		return PublisherNBS, true
	default:
		return "", false
	}
}

// MatchPublisher matches the longest known publisher spelling (full title,
// abbreviated title, or acronym) at the start of the given word sequence.
// It returns the publisher and the number of words consumed.
func MatchPublisher(fields []string) (Publisher, int, bool) {
	type spelling struct {
		pub   Publisher
		words []string
	}
	var spellings []spelling
	for _, p := range ValidPublishers() {
		names := publisherNames[p]
		spellings = append(spellings,
			spelling{p, strings.Fields(normalizeKey(names.title))},
			spelling{p, strings.Fields(normalizeKey(names.abbrev))},
			spelling{p, []string{p.Acronym()}},
		)
	}

	var (
		best      Publisher
		bestWords int
	)
	for _, s := range spellings {
		if len(s.words) <= bestWords || len(s.words) > len(fields) {
			continue
		}
		matched := true
		for i, w := range s.words {
			if normalizeKey(fields[i]) != w {
				matched = false
				break
			}
		}
		if matched {
			best = s.pub
			bestWords = len(s.words)
		}
	}
	if bestWords == 0 {
		return "", 0, false
	}
	return best, bestWords, true
}
