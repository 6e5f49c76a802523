package report

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

const (
	correlationLayout = "20060102150405"
	hashBuckets       = 10000
	fallbackName      = "report"
)

// CorrelationID derives the run identifier from the start time and the
// recipient: YYYYMMDDHHMMSS-N with N in [0, 10000). The same recipient always
// hashes to the same N, so ids only collide within one second.
func CorrelationID(now time.Time, email string) string {
	h := xxhash.Sum64String(strings.ToLower(strings.TrimSpace(email)))
	return fmt.Sprintf("%s-%d", now.Format(correlationLayout), h%hashBuckets)
}

// Filename returns "<name>_<id>.pptx" with name reduced to ASCII letters,
// digits, '-' and '_'. Accents are stripped, whitespace becomes '_'.
func Filename(businessName, correlationID string) string {
	return sanitize(businessName) + "_" + correlationID + ".pptx"
}

func sanitize(name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range norm.NFKD.String(strings.TrimSpace(name)) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'):
			b.WriteRune(r)
			underscore = false
		case unicode.IsSpace(r) || r == '_' || r == '.' || r == '/':
			if !underscore && b.Len() > 0 {
				b.WriteByte('_')
				underscore = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "_")
	if out == "" {
		return fallbackName
	}
	return out
}
