package pubid

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mico/nist-pubid/pkg/series"
)

var (
	// Trailing qualifier grammars shared by the human styles. They are
	// stripped right to left, so extraction is greedy: the document number
	// is whatever remains once every recognized marker is consumed.
	translationTail = regexp.MustCompile(`\s*\(([A-Za-z]{3})\)$`)
	updateTail      = regexp.MustCompile(`(?i)(?:/Upd|\s+Upd\.|\s+Update)\s+(\d+):(\S+)$`)
	addendumTail    = regexp.MustCompile(`(?i)\s+Addendum(?:\s+(\d+))?$`)
	addendumPrefix  = regexp.MustCompile(`(?i)^Add(?:endum|\.)\s+(?:(\d+)\s+)?to\s+`)
	clauseTail      = regexp.MustCompile(`(?i)(?:,\s*|\s+)(Part|Pt|Revision|Rev|Edition|Ed|Volume|Vol|Version|Ver)\.?\s+(\d+)$`)

	// Machine-readable suffix tokens.
	mrUpdateToken   = regexp.MustCompile(`^u(\d+)-(\S+)$`)
	mrAddendumToken = regexp.MustCompile(`^add-(\d+)$`)

	// compactNumber splits a document-number token into the number proper
	// and its concatenated markers (pt, v, then r or e). The number match
	// is lazy: markers win any tie against a letter-suffixed number.
	compactNumber = regexp.MustCompile(`^(\d[0-9A-Za-z-]*?)(?:pt(\d+))?(?:v(\d+))?(?:r(\d+)|e(\d+))?$`)
)

// Parse derives an Identifier from any of the four textual styles.
//
// The machine-readable form is recognized by the absence of spaces;
// everything else takes the human grammar, which covers the short,
// abbreviated, and long forms uniformly (the registry resolves every
// spelling of a publisher or series, legacy aliases included).
//
// Failures are typed: errors.Is(err, ErrUnknownSeries) when the series
// token has no registry entry for the publisher, and
// errors.Is(err, ErrMalformedDocNumber) when the remainder does not match
// the docnumber and qualifier grammar. Nothing is silently dropped: any
// unrecognized remainder is a failure.
func Parse(text string) (*Identifier, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, unknownSeries(text, "empty input")
	}
	if !strings.ContainsAny(s, " \t") && strings.Contains(s, ".") {
		return parseMachine(text, s)
	}
	return parseHuman(text, s)
}

// parseMachine parses the dot-delimited machine-readable form.
func parseMachine(input, s string) (*Identifier, error) {
	id := &Identifier{}

	if m := translationTail.FindStringSubmatch(s); m != nil {
		id.translation = strings.ToLower(m[1])
		s = s[:len(s)-len(m[0])]
	}

	tokens := strings.Split(s, ".")
	rest, err := id.resolveHead(input, tokens)
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		if st, ok := parseStageCode(rest[0]); ok {
			id.stage = st
			rest = rest[1:]
		}
	}
	if len(rest) == 0 {
		return nil, malformed(input, "missing document number")
	}
	if perr := id.parseCompactNumber(input, rest[0]); perr != nil {
		return nil, perr
	}

	for _, tok := range rest[1:] {
		switch {
		case mrAddendumToken.MatchString(tok):
			if id.addendum != nil {
				return nil, malformed(input, "duplicate addendum qualifier")
			}
			seq, _ := strconv.Atoi(mrAddendumToken.FindStringSubmatch(tok)[1])
			id.addendum = &seq
		case mrUpdateToken.MatchString(tok):
			if id.update != nil {
				return nil, malformed(input, "duplicate update qualifier")
			}
			m := mrUpdateToken.FindStringSubmatch(tok)
			seq, _ := strconv.Atoi(m[1])
			id.update = &Update{Sequence: seq, Date: m[2]}
		default:
			return nil, malformed(input, "unrecognized token %q", tok)
		}
	}

	if err := id.Validate(); err != nil {
		return nil, malformed(input, "%v", err)
	}
	return id, nil
}

// parseHuman parses the long, abbreviated, and short forms.
func parseHuman(input, s string) (*Identifier, error) {
	id := &Identifier{}

	if m := addendumPrefix.FindStringSubmatch(s); m != nil {
		seq := 1
		if m[1] != "" {
			seq, _ = strconv.Atoi(m[1])
		}
		id.addendum = &seq
		s = s[len(m[0]):]
	}

	fields := strings.Fields(s)
	rest, err := id.resolveHead(input, fields)
	if err != nil {
		return nil, err
	}

	// Long-form stage phrase follows the series title.
	if id.stage == "" {
		if st, n, ok := matchStageTitle(rest); ok {
			id.stage = st
			rest = rest[n:]
		}
	}
	if len(rest) == 0 {
		return nil, malformed(input, "missing document number")
	}

	tail := strings.Join(rest, " ")
	if m := translationTail.FindStringSubmatch(tail); m != nil {
		id.translation = strings.ToLower(m[1])
		tail = tail[:len(tail)-len(m[0])]
	}
	if m := updateTail.FindStringSubmatch(tail); m != nil {
		seq, _ := strconv.Atoi(m[1])
		id.update = &Update{Sequence: seq, Date: m[2]}
		tail = tail[:len(tail)-len(m[0])]
	}
	if m := addendumTail.FindStringSubmatch(tail); m != nil {
		if id.addendum != nil {
			return nil, malformed(input, "duplicate addendum qualifier")
		}
		seq := 1
		if m[1] != "" {
			seq, _ = strconv.Atoi(m[1])
		}
		id.addendum = &seq
		tail = tail[:len(tail)-len(m[0])]
	}
	for {
		m := clauseTail.FindStringSubmatch(tail)
		if m == nil {
			break
		}
		if perr := id.assignClause(input, m[1], m[2]); perr != nil {
			return nil, perr
		}
		tail = tail[:len(tail)-len(m[0])]
	}

	if strings.ContainsAny(tail, " \t") {
		return nil, malformed(input, "unrecognized qualifier text %q", tail)
	}
	if perr := id.parseCompactNumber(input, tail); perr != nil {
		return nil, perr
	}

	if err := id.Validate(); err != nil {
		return nil, malformed(input, "%v", err)
	}
	return id, nil
}

// resolveHead consumes the publisher and series tokens from the front of
// the token sequence and returns the remainder. Three spellings are
// accepted, tried in order: an explicit publisher followed by a series
// spelling; a legacy compound code naming its own organization ("NISTIR",
// "NBSIR"); and a bare series spelling, which defaults to the current
// organization ("FIPS PUB 140-3").
func (id *Identifier) resolveHead(input string, tokens []string) ([]string, *ParseError) {
	if len(tokens) == 0 {
		return nil, unknownSeries(input, "missing publisher and series")
	}
	reg := series.Default()

	pub, n, explicit := series.MatchPublisher(tokens)
	if explicit && len(tokens) == n {
		return nil, unknownSeries(input, "missing series after publisher %s", pub)
	}
	rest := tokens[n:]

	// Short-form stage rides on the series code ("SP(IPD)"), whether or
	// not a publisher token precedes it.
	var stage Stage
	if i := strings.IndexByte(rest[0], '('); i > 0 && strings.HasSuffix(rest[0], ")") {
		if st, ok := parseStageCode(rest[0][i+1 : len(rest[0])-1]); ok {
			stage = st
			rest = append([]string{rest[0][:i]}, rest[1:]...)
		}
	}

	if explicit {
		entry, n2, found := reg.Match(pub, rest)
		if !found {
			return nil, unknownSeries(input, "no series %q for %s", rest[0], pub)
		}
		id.publisher = pub
		id.entry = entry
		id.stage = stage
		return rest[n2:], nil
	}

	if entry, implied, n2, found := reg.MatchImplied(rest); found {
		id.publisher = implied
		id.entry = entry
		id.stage = stage
		return rest[n2:], nil
	}

	if entry, n2, found := reg.Match(series.PublisherNIST, rest); found {
		id.publisher = series.PublisherNIST
		id.entry = entry
		id.stage = stage
		return rest[n2:], nil
	}

	return nil, unknownSeries(input, "unrecognized publisher or series %q", tokens[0])
}

// parseCompactNumber splits tok into the document number and its
// concatenated compact markers and assigns them.
func (id *Identifier) parseCompactNumber(input, tok string) *ParseError {
	m := compactNumber.FindStringSubmatch(tok)
	if m == nil {
		return malformed(input, "unrecognized document number %q", tok)
	}
	num, part, v, rev, ed := m[1], m[2], m[3], m[4], m[5]
	if !docNumberPattern.MatchString(num) {
		return malformed(input, "unrecognized document number %q", tok)
	}

	id.docNumber = num
	if part != "" {
		if id.part != "" {
			return malformed(input, "duplicate part qualifier")
		}
		id.part = part
	}
	if v != "" {
		n, _ := strconv.Atoi(v)
		// The v marker reads by context: after a sub-series letter it is a
		// version (800-22Cv1), after a digit a volume (800-60v2, pt1v2).
		if part == "" && endsWithLetter(num) {
			if id.version != nil {
				return malformed(input, "duplicate version qualifier")
			}
			id.version = &n
		} else {
			if id.volume != nil {
				return malformed(input, "duplicate volume qualifier")
			}
			id.volume = &n
		}
	}
	if rev != "" {
		if id.revision != nil {
			return malformed(input, "duplicate revision qualifier")
		}
		n, _ := strconv.Atoi(rev)
		id.revision = &n
	}
	if ed != "" {
		if id.edition != nil {
			return malformed(input, "duplicate edition qualifier")
		}
		n, _ := strconv.Atoi(ed)
		id.edition = &n
	}
	return nil
}

// assignClause applies one human-form qualifier clause. A repeated
// qualifier is a grammar violation, not a silent overwrite.
func (id *Identifier) assignClause(input, marker, value string) *ParseError {
	n, _ := strconv.Atoi(value)
	switch strings.ToLower(marker) {
	case "part", "pt":
		if id.part != "" {
			return malformed(input, "duplicate part qualifier")
		}
		id.part = value
	case "volume", "vol":
		if id.volume != nil {
			return malformed(input, "duplicate volume qualifier")
		}
		id.volume = &n
	case "version", "ver":
		if id.version != nil {
			return malformed(input, "duplicate version qualifier")
		}
		id.version = &n
	case "revision", "rev":
		if id.revision != nil {
			return malformed(input, "duplicate revision qualifier")
		}
		id.revision = &n
	case "edition", "ed":
		if id.edition != nil {
			return malformed(input, "duplicate edition qualifier")
		}
		id.edition = &n
	}
	return nil
}
