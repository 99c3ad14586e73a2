package pubid

import "strings"

// Stage is a draft-maturity code, meaningful only before final
// publication. The zero value means the identifier denotes a final
// (non-draft) publication.
type Stage string

const (
	// StageIPD is an initial public draft.
	StageIPD Stage = "IPD"

	// StagePPD is a preliminary public draft.
	StagePPD Stage = "PPD"

	// StageFPD is a final public draft.
	StageFPD Stage = "FPD"
)

// stageTitles holds the capitalized phrase each stage renders as in the
// long and abbreviated styles.
var stageTitles = map[Stage]string{
	StageIPD: "Initial Public Draft",
	StagePPD: "Preliminary Public Draft",
	StageFPD: "Final Public Draft",
}

// ValidStages returns all valid draft stages.
func ValidStages() []Stage {
	return []Stage{StageIPD, StagePPD, StageFPD}
}

// IsValid returns true if this is a recognized stage code.
func (s Stage) IsValid() bool {
	_, ok := stageTitles[s]
	return ok
}

// Code returns the short stage code ("IPD").
func (s Stage) Code() string {
	return string(s)
}

// Title returns the capitalized stage phrase ("Initial Public Draft").
// Returns empty string for the zero or an invalid stage.
func (s Stage) Title() string {
	return stageTitles[s]
}

// String returns the string representation of the stage.
func (s Stage) String() string {
	return string(s)
}

// parseStageCode matches a bare stage code token, case-insensitively.
func parseStageCode(token string) (Stage, bool) {
	s := Stage(strings.ToUpper(strings.TrimSpace(token)))
	if s.IsValid() {
		return s, true
	}
	return "", false
}

// matchStageTitle matches a stage phrase at the start of the given word
// sequence and returns the stage and the words consumed.
func matchStageTitle(fields []string) (Stage, int, bool) {
	for _, s := range ValidStages() {
		words := strings.Fields(s.Title())
		if len(words) > len(fields) {
			continue
		}
		ok := true
		for i, w := range words {
			if !strings.EqualFold(fields[i], w) {
				ok = false
				break
			}
		}
		if ok {
			return s, len(words), true
		}
	}
	return "", 0, false
}
