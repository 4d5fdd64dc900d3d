package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	issued := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		template string
		seq      int
		want     string
	}{
		{"default romanian format", "FCT-{YYYY}-{SEQ6}", 42, "FCT-2025-000042"},
		{"short year and date", "{YY}{MM}{DD}-{SEQ}", 7, "250307-7"},
		{"padding wider than seq", "{SEQ3}", 1, "001"},
		{"seq overflowing the pad", "{SEQ3}", 12345, "12345"},
		{"plain text kept", "SERIA-A/{SEQ}", 9, "SERIA-A/9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Number(tc.template, issued, tc.seq)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNumber_Errors(t *testing.T) {
	issued := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	_, err := Number("", issued, 1)
	assert.Error(t, err)

	_, err = Number("FCT-{SEQ}", issued, 0)
	assert.Error(t, err)

	_, err = Number("FCT-{BOGUS}", issued, 1)
	assert.Error(t, err)
}
