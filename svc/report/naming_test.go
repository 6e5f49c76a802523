package report_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/deckmail/svc/report"
)

var fixedNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	id := report.CorrelationID(fixedNow, "a@b.com")
	assert.Regexp(t, regexp.MustCompile(`^20250101120000-\d{1,4}$`), id)
	assert.Equal(t, id, report.CorrelationID(fixedNow, "a@b.com"), "stable for the same recipient")
	assert.Equal(t, id, report.CorrelationID(fixedNow, "  A@B.com "), "case and whitespace insensitive")
	assert.NotEqual(t, id, report.CorrelationID(fixedNow.Add(time.Second), "a@b.com"))
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Acme", want: "Acme_ID.pptx"},
		{name: "spaces", in: "Philips  EQ ", want: "Philips_EQ_ID.pptx"},
		{name: "accents", in: "Café Zürich", want: "Cafe_Zurich_ID.pptx"},
		{name: "path separators", in: "../etc/passwd", want: "etc_passwd_ID.pptx"},
		{name: "punctuation dropped", in: "A&B (EU)", want: "AB_EU_ID.pptx"},
		{name: "nothing usable", in: "***", want: "report_ID.pptx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, report.Filename(tt.in, "ID"))
		})
	}
}
