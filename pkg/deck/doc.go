// Package deck lays out and renders the four-slide analysis presentation.
//
// Layout and rendering are separate steps. Build produces a declarative Spec
// (slide kinds, text, styles, table cells) without touching any document
// library, so the structure can be asserted in tests. Render turns a Spec into
// PPTX bytes in memory using GoPPT.
//
// # Slides
//
//   - Title: "<business name> - Analysis", large bold accent text, centred.
//   - Summary: "SUMMARY" heading and one paragraph per bullet on white.
//   - Data: "DATA" heading and a grid built from the rows. Emitted only when
//     rows are present. Column order comes from the keys of the first row.
//   - Closing: "THANK YOU", centred.
//
// # Usage
//
//	b := deck.NewBuilder()
//	art, err := b.Generate("Acme", bullets, rows)
//	if errors.Is(err, deck.ErrGeneration) {
//	    // the deck could not be produced
//	}
//
// Pass deck.WithoutStyling() to get a plain deck with the same slides and no
// forced backgrounds, fills or colours.
package deck
