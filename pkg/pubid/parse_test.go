package pubid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mico/nist-pubid/pkg/series"
)

func TestParse(t *testing.T) {
	t.Run("short form with revision", func(t *testing.T) {
		id, err := Parse("NIST SP 800-53r5")
		require.NoError(t, err)
		assert.Equal(t, "NIST.SP.800-53r5", id.Format(StyleMR))
	})

	t.Run("machine-readable form renders long", func(t *testing.T) {
		id, err := Parse("NIST.SP.800-53r5")
		require.NoError(t, err)
		assert.Equal(t,
			"National Institute of Standards and Technology Special Publication 800-53, Revision 5",
			id.Format(StyleLong))
	})

	t.Run("predecessor organization renders abbreviated", func(t *testing.T) {
		id, err := Parse("NBS SP 800-53r5")
		require.NoError(t, err)
		assert.Equal(t, "Natl. Bur. Stand. Spec. Publ. 800-53, Rev. 5", id.Format(StyleAbbrev))
	})

	t.Run("update suffix", func(t *testing.T) {
		id, err := Parse("NIST SP 800-53r4/Upd 3:2015")
		require.NoError(t, err)
		assert.Equal(t, "NIST.SP.800-53r4.u3-2015", id.Format(StyleMR))
	})

	t.Run("unknown series", func(t *testing.T) {
		_, err := Parse("NIST WRONG-SERIE 800-11")
		assert.ErrorIs(t, err, ErrUnknownSeries)
	})

	t.Run("malformed docnumber", func(t *testing.T) {
		_, err := Parse("NIST SP WRONG-CODE")
		assert.ErrorIs(t, err, ErrMalformedDocNumber)
	})

	t.Run("mutating revision changes the rendered suffix", func(t *testing.T) {
		id, err := Parse("NIST SP 800-53r5")
		require.NoError(t, err)
		id.SetRevision(6)
		assert.Equal(t, "NIST.SP.800-53r6", id.Format(StyleMR))
	})
}

func TestParse_Styles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		// want is the expected short form of the parsed identifier.
		want string
	}{
		{"long form", "National Institute of Standards and Technology Special Publication 800-53, Revision 5", "NIST SP 800-53r5"},
		{"abbreviated form", "Natl. Inst. Stand. Technol. Spec. Publ. 800-53, Rev. 5", "NIST SP 800-53r5"},
		{"short form", "NIST SP 800-53r5", "NIST SP 800-53r5"},
		{"machine-readable form", "NIST.SP.800-53r5", "NIST SP 800-53r5"},
		{"long form with part", "National Institute of Standards and Technology Special Publication 800-57, Part 1, Revision 4", "NIST SP 800-57pt1r4"},
		{"long form with edition", "National Institute of Standards and Technology Federal Information Processing Standards Publication 140-3 Edition 2", "NIST FIPS 140-3e2"},
		{"long form with volume", "National Bureau of Standards Handbook 44, Volume 2", "NBS HB 44v2"},
		{"abbreviated form with version", "Natl. Inst. Stand. Technol. Spec. Publ. 800-22C, Ver. 1", "NIST SP 800-22Cv1"},
		{"addendum prefix", "Addendum to National Institute of Standards and Technology Special Publication 800-38A", "NIST SP 800-38A Addendum"},
		{"abbreviated addendum prefix", "Add. 2 to Natl. Inst. Stand. Technol. Spec. Publ. 800-38A", "NIST SP 800-38A Addendum 2"},
		{"trailing addendum word", "NIST SP 800-38A Addendum", "NIST SP 800-38A Addendum"},
		{"machine-readable addendum", "NIST.SP.800-38A.add-1", "NIST SP 800-38A Addendum"},
		{"machine-readable update", "NIST.SP.800-53r4.u3-2015", "NIST SP 800-53r4/Upd 3:2015"},
		{"update with full date", "NIST SP 800-63B/Upd 1:2021-04-25", "NIST SP 800-63B/Upd 1:2021-04-25"},
		{"translation short", "NIST SP 800-53r5(esp)", "NIST SP 800-53r5(esp)"},
		{"translation long", "National Institute of Standards and Technology Special Publication 800-53, Revision 5 (ESP)", "NIST SP 800-53r5(esp)"},
		{"translation machine-readable", "NIST.SP.800-53r5(esp)", "NIST SP 800-53r5(esp)"},
		{"stage on short code", "NIST SP(IPD) 800-186", "NIST SP(IPD) 800-186"},
		{"stage on bare series code", "SP(IPD) 800-186", "NIST SP(IPD) 800-186"},
		{"stage on legacy compound code", "NISTIR(IPD) 8115", "NIST IR(IPD) 8115"},
		{"stage token machine-readable", "NIST.SP.IPD.800-186", "NIST SP(IPD) 800-186"},
		{"stage phrase long form", "National Institute of Standards and Technology Special Publication Final Public Draft 800-186", "NIST SP(FPD) 800-186"},
		{"embedded organization title", "NIST Cybersecurity White Paper 29", "NIST CSWP 29"},
		{"case-insensitive qualifier markers", "NIST SP 800-53, revision 5", "NIST SP 800-53r5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.Format(StyleShort))
		})
	}
}

func TestParse_LegacyNormalization(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		pub       series.Publisher
		wantShort string
		wantMR    string
	}{
		{"NISTIR without publisher token", "NISTIR 8115", series.PublisherNIST, "NIST IR 8115", "NIST.IR.8115"},
		{"NISTIR with publisher token", "NIST NISTIR 8115", series.PublisherNIST, "NIST IR 8115", "NIST.IR.8115"},
		{"NBSIR", "NBSIR 73-123", series.PublisherNBS, "NBS IR 73-123", "NBS.IR.73-123"},
		{"FIPS PUB defaults to the current organization", "FIPS PUB 140-3", series.PublisherNIST, "NIST FIPS 140-3", "NIST.FIPS.140-3"},
		{"FIPS PUB with explicit publisher", "NBS FIPS PUB 140-3", series.PublisherNBS, "NBS FIPS 140-3", "NBS.FIPS.140-3"},
		{"machine-readable legacy spelling", "NIST.FIPS.PUB.140-3", series.PublisherNIST, "NIST FIPS 140-3", "NIST.FIPS.140-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.pub, id.Publisher())
			assert.Equal(t, tt.wantShort, id.Format(StyleShort))
			assert.Equal(t, tt.wantMR, id.Format(StyleMR))

			// Normalization is idempotent: the canonical spelling parses
			// back to an equal identifier.
			again, err := Parse(id.Format(StyleShort))
			require.NoError(t, err)
			assert.True(t, id.Equal(again))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{"empty input", "", ErrUnknownSeries},
		{"whitespace only", "   ", ErrUnknownSeries},
		{"unknown publisher", "ISO SP 800-53", ErrUnknownSeries},
		{"unknown series", "NIST WRONG-SERIE 800-11", ErrUnknownSeries},
		{"series not valid for publisher", "NIST MN 5", ErrUnknownSeries},
		{"legacy code with wrong publisher", "NBS NISTIR 8115", ErrUnknownSeries},
		{"missing docnumber short", "NIST SP", ErrMalformedDocNumber},
		{"missing docnumber machine-readable", "NIST.SP", ErrMalformedDocNumber},
		{"letter-led docnumber", "NIST SP WRONG-CODE", ErrMalformedDocNumber},
		{"unrecognized trailing token", "NIST.SP.800-53.bogus-1", ErrMalformedDocNumber},
		{"unrecognized qualifier text", "NIST SP 800-53 extra words", ErrMalformedDocNumber},
		{"duplicate revision", "NIST SP 800-53r5, Revision 6", ErrMalformedDocNumber},
		{"duplicate machine-readable update", "NIST.SP.800-53.u1-2015.u2-2016", ErrMalformedDocNumber},
		{"duplicate machine-readable addendum", "NIST.SP.800-38A.add-1.add-2", ErrMalformedDocNumber},
		{"addendum prefix and trailing word", "Addendum to NIST SP 800-38A Addendum", ErrMalformedDocNumber},
		{"revision and edition together", "NIST SP 800-53, Revision 5 Edition 2", ErrMalformedDocNumber},
		{"bad update date", "NIST SP 800-53/Upd 1:someday", ErrMalformedDocNumber},
		{"trailing dash docnumber", "NIST SP 800-r5", ErrMalformedDocNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var perr *ParseError
			if errors.As(err, &perr) {
				assert.Equal(t, tt.input, perr.Input())
			}
		})
	}
}

func TestParse_QualifierIsolation(t *testing.T) {
	// Mutating the revision must change only the revision-dependent
	// substrings in every style.
	id, err := Parse("NIST SP 800-53r5")
	require.NoError(t, err)

	before := map[Style]string{}
	for _, s := range ValidStyles() {
		before[s] = id.Format(s)
	}

	id.SetRevision(6)
	assert.Equal(t, "National Institute of Standards and Technology Special Publication 800-53, Revision 6", id.Format(StyleLong))
	assert.Equal(t, "Natl. Inst. Stand. Technol. Spec. Publ. 800-53, Rev. 6", id.Format(StyleAbbrev))
	assert.Equal(t, "NIST SP 800-53r6", id.Format(StyleShort))
	assert.Equal(t, "NIST.SP.800-53r6", id.Format(StyleMR))

	id.SetRevision(5)
	for _, s := range ValidStyles() {
		assert.Equal(t, before[s], id.Format(s), "style %s must restore byte-identically", s)
	}
}
