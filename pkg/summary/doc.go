// Package summary turns free-form business summary text into an ordered list
// of bullet strings for the summary slide.
//
// Parsing is heuristic and never fails. Rules are tried in priority order:
//
//  1. Numbered markers ("1. ", "2. ", ...) at the start of the text or after
//     whitespace split the text into items; the markers are removed.
//  2. Otherwise, multi-line text yields one bullet per non-empty line with
//     leading "-" and "•" glyphs stripped.
//  3. Otherwise, the text is split into sentences on '.', '!' or '?'
//     followed by whitespace.
//
// Blank input, or input that produces no bullets, yields the single Sentinel
// bullet.
//
// # Usage
//
//	bullets := summary.Parse("1. Revenue up\n2. Costs down")
//	// []string{"Revenue up", "Costs down"}
package summary
