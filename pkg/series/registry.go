package series

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ErrSeriesNotFound indicates a series token has no registry entry for the
// requested publisher, after alias and legacy-spelling normalization.
var ErrSeriesNotFound = errors.New("series not found")

// Config holds configuration for building a Registry.
type Config struct {
	// Data is the YAML registry document. Defaults to the embedded table.
	Data []byte

	// Logger for build diagnostics. Defaults to a no-op logger.
	Logger hclog.Logger
}

// match is one indexed spelling: the entry it resolves to, and the
// publisher the spelling implies, if any.
type match struct {
	entry *Entry
	// implied is non-empty for spellings (e.g. "NBSIR") that name their
	// organization themselves.
	implied Publisher
}

// Registry is an immutable lookup table from series spellings to canonical
// entries. Safe for concurrent use after construction.
type Registry struct {
	entries  []*Entry
	index    map[string]match
	maxWords int
}

// registryData is the shape of the YAML registry document.
type registryData struct {
	Series []*Entry `yaml:"series"`
}

// New builds a registry from cfg. Every spelling of every entry — code,
// title, abbreviated title, and aliases — is indexed under a normalized
// key. Construction fails if the data is malformed or if two entries claim
// the same spelling: lookups must be unambiguous.
func New(cfg Config) (*Registry, error) {
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if cfg.Data == nil {
		cfg.Data = embeddedRegistry
	}

	var data registryData
	if err := yaml.Unmarshal(cfg.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode registry data: %w", err)
	}
	if len(data.Series) == 0 {
		return nil, fmt.Errorf("registry data contains no series")
	}

	var result *multierror.Error
	for i, e := range data.Series {
		if e.Code == "" {
			result = multierror.Append(result, fmt.Errorf("series %d: missing code", i))
		}
		if e.Title == "" {
			result = multierror.Append(result, fmt.Errorf("series %q: missing title", e.Code))
		}
		if e.Abbrev == "" {
			result = multierror.Append(result, fmt.Errorf("series %q: missing abbrev", e.Code))
		}
		if len(e.Publishers) == 0 {
			result = multierror.Append(result, fmt.Errorf("series %q: no publishers", e.Code))
		}
		for _, p := range e.Publishers {
			if !p.IsValid() {
				result = multierror.Append(result, fmt.Errorf("series %q: invalid publisher %q", e.Code, p))
			}
		}
		for _, a := range e.Aliases {
			if a.Spelling == "" {
				result = multierror.Append(result, fmt.Errorf("series %q: alias with empty spelling", e.Code))
			}
			if a.Publisher != "" && !a.Publisher.IsValid() {
				result = multierror.Append(result, fmt.Errorf("series %q: alias %q: invalid publisher %q", e.Code, a.Spelling, a.Publisher))
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid registry data: %w", err)
	}

	r := &Registry{
		entries: data.Series,
		index:   make(map[string]match),
	}
	for _, e := range data.Series {
		if err := r.addSpelling(e.Code, match{entry: e}); err != nil {
			return nil, err
		}
		if err := r.addSpelling(e.Title, match{entry: e}); err != nil {
			return nil, err
		}
		if err := r.addSpelling(e.Abbrev, match{entry: e}); err != nil {
			return nil, err
		}
		// Titles that embed the organization name are also reachable with
		// the organization stripped, since a parsed publisher token will
		// already have consumed it.
		if e.EmbedsOrg {
			for _, p := range ValidPublishers() {
				prefix := p.Acronym() + " "
				if strings.HasPrefix(e.Title, prefix) {
					if err := r.addSpelling(strings.TrimPrefix(e.Title, prefix), match{entry: e}); err != nil {
						return nil, err
					}
				}
				if strings.HasPrefix(e.Abbrev, prefix) {
					if err := r.addSpelling(strings.TrimPrefix(e.Abbrev, prefix), match{entry: e}); err != nil {
						return nil, err
					}
				}
			}
		}
		for _, a := range e.Aliases {
			if err := r.addSpelling(a.Spelling, match{entry: e, implied: a.Publisher}); err != nil {
				return nil, err
			}
		}
		cfg.Logger.Debug("registered series",
			"code", e.Code, "publishers", e.Publishers, "aliases", len(e.Aliases))
	}

	cfg.Logger.Debug("registry built", "series", len(r.entries), "spellings", len(r.index))
	return r, nil
}

// MustNew is like New but panics on error. Intended for the embedded data
// table, whose validity is fixed at compile time.
func MustNew(cfg Config) *Registry {
	r, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// addSpelling indexes one spelling, rejecting ambiguity across entries.
func (r *Registry) addSpelling(spelling string, m match) error {
	key := normalizeKey(spelling)
	if key == "" {
		return nil
	}
	if prev, ok := r.index[key]; ok {
		if prev.entry != m.entry {
			return fmt.Errorf("ambiguous registry data: spelling %q claimed by both %q and %q",
				spelling, prev.entry.Code, m.entry.Code)
		}
		return nil
	}
	r.index[key] = m
	if n := len(strings.Fields(key)); n > r.maxWords {
		r.maxWords = n
	}
	return nil
}

// Entries returns all canonical series entries.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Resolve maps a series token to its canonical entry for the given
// publisher. The token may be any accepted spelling: canonical code, full
// or abbreviated title, or legacy alias. Resolution is deterministic:
// exactly one entry, or ErrSeriesNotFound.
func (r *Registry) Resolve(pub Publisher, token string) (*Entry, error) {
	m, ok := r.index[normalizeKey(token)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSeriesNotFound, token)
	}
	if m.implied != "" && pub != "" && m.implied != pub {
		return nil, fmt.Errorf("%w: %q is a %s spelling, not valid for %s",
			ErrSeriesNotFound, token, m.implied, pub)
	}
	if pub != "" && !m.entry.SupportsPublisher(pub) {
		return nil, fmt.Errorf("%w: series %q is not published by %s",
			ErrSeriesNotFound, m.entry.Code, pub)
	}
	return m.entry, nil
}

// Match finds the longest series spelling at the start of the given word
// sequence, scoped to the given publisher. It returns the entry and the
// number of words consumed.
func (r *Registry) Match(pub Publisher, fields []string) (*Entry, int, bool) {
	e, _, n, ok := r.matchWords(fields, func(m match) bool {
		if m.implied != "" && m.implied != pub {
			return false
		}
		return m.entry.SupportsPublisher(pub)
	})
	return e, n, ok
}

// MatchImplied finds the longest spelling at the start of the word sequence
// that implies its own publisher (a legacy compound code such as "NISTIR").
// It returns the entry, the implied publisher, and the words consumed.
func (r *Registry) MatchImplied(fields []string) (*Entry, Publisher, int, bool) {
	return r.matchWords(fields, func(m match) bool {
		return m.implied != ""
	})
}

func (r *Registry) matchWords(fields []string, accept func(match) bool) (*Entry, Publisher, int, bool) {
	limit := r.maxWords
	if limit > len(fields) {
		limit = len(fields)
	}
	for n := limit; n >= 1; n-- {
		key := normalizeKey(strings.Join(fields[:n], " "))
		if m, ok := r.index[key]; ok && accept(m) {
			return m.entry, m.implied, n, true
		}
	}
	return nil, "", 0, false
}

// normalizeKey produces the canonical lookup key for a spelling:
// uppercased, punctuation stripped, whitespace collapsed.
func normalizeKey(s string) string {
	s = strings.ToUpper(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '.', ',':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
