package summary

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel is the only bullet produced for blank or unparseable input.
const Sentinel = "No summary provided"

var (
	inlineSpaceRegex = regexp.MustCompile(`[ \t]+`)
	blankLinesRegex  = regexp.MustCompile(`\n\s*\n+`)
	markerRegex      = regexp.MustCompile(`\d+\.\s`)
	leadingMarker    = regexp.MustCompile(`^\d+\.\s*`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// bulletGlyphs are trimmed from both ends of a line in line mode.
const bulletGlyphs = "-• "

// Parse splits free-form summary text into an ordered list of bullets.
// The result is never empty and no bullet is blank.
func Parse(text string) []string {
	clean := Normalize(text)
	if clean == "" {
		return []string{Sentinel}
	}

	var bullets []string
	switch {
	case len(markerStarts(clean)) > 0:
		bullets = splitNumbered(clean)
	case strings.Contains(clean, "\n"):
		bullets = splitLines(clean)
	default:
		bullets = splitSentences(clean)
	}

	if len(bullets) == 0 {
		return []string{Sentinel}
	}
	return bullets
}

// Normalize trims the text, collapses runs of spaces and tabs into one space
// and folds consecutive blank lines into a single line break.
func Normalize(text string) string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return ""
	}
	clean = inlineSpaceRegex.ReplaceAllString(clean, " ")
	clean = blankLinesRegex.ReplaceAllString(clean, "\n")
	return strings.TrimSpace(clean)
}

// markerStarts returns byte offsets of every "N. " marker that sits at the
// beginning of the text or right after a whitespace character.
func markerStarts(text string) []int {
	var starts []int
	for _, loc := range markerRegex.FindAllStringIndex(text, -1) {
		i := loc[0]
		if i == 0 {
			starts = append(starts, i)
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		if unicode.IsSpace(prev) {
			starts = append(starts, i)
		}
	}
	return starts
}

func splitNumbered(text string) []string {
	starts := markerStarts(text)
	bounds := make([]int, 0, len(starts)+2)
	if starts[0] != 0 {
		bounds = append(bounds, 0)
	}
	bounds = append(bounds, starts...)
	bounds = append(bounds, len(text))

	bullets := make([]string, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		part := strings.TrimSpace(text[bounds[i]:bounds[i+1]])
		if part == "" {
			continue
		}
		part = strings.TrimSpace(leadingMarker.ReplaceAllString(part, ""))
		if part != "" {
			bullets = append(bullets, part)
		}
	}
	return bullets
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		b := strings.TrimSpace(strings.Trim(line, bulletGlyphs))
		if b != "" {
			bullets = append(bullets, b)
		}
	}
	return bullets
}

// splitSentences breaks text on whitespace that follows '.', '!' or '?'.
// The punctuation stays with its sentence.
func splitSentences(text string) []string {
	var bullets []string
	last := 0
	for _, loc := range whitespaceRegex.FindAllStringIndex(text, -1) {
		if loc[0] == 0 {
			continue
		}
		switch text[loc[0]-1] {
		case '.', '!', '?':
			if s := strings.TrimSpace(text[last:loc[0]]); s != "" {
				bullets = append(bullets, s)
			}
			last = loc[1]
		}
	}
	if s := strings.TrimSpace(text[last:]); s != "" {
		bullets = append(bullets, s)
	}
	return bullets
}
