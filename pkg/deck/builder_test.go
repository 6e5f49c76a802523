package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deckmail/pkg/deck"
	"github.com/dmitrymomot/deckmail/pkg/table"
)

func acmeRows() []table.Row {
	return []table.Row{
		table.NewRow("Market", "CEE", "YTD", "+45%"),
		table.NewRow("Market", "RCA", "YTD", "-12%"),
		table.NewRow("Market", "DACH", "YTD", "+3%"),
	}
}

func TestBuild_SlideOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows []table.Row
		want []deck.Kind
	}{
		{
			name: "with data",
			rows: acmeRows(),
			want: []deck.Kind{deck.TitleSlide, deck.BulletSlide, deck.TableSlide, deck.ClosingSlide},
		},
		{
			name: "without data",
			rows: nil,
			want: []deck.Kind{deck.TitleSlide, deck.BulletSlide, deck.ClosingSlide},
		},
		{
			name: "empty data",
			rows: []table.Row{},
			want: []deck.Kind{deck.TitleSlide, deck.BulletSlide, deck.ClosingSlide},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec, err := deck.Build("Acme", []string{"one"}, tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Kinds())
		})
	}
}

func TestBuild_TitleAndClosing(t *testing.T) {
	t.Parallel()

	spec, err := deck.Build("Acme", []string{"one"}, nil)
	require.NoError(t, err)

	title := spec.Slides[0]
	assert.Equal(t, "Acme - Analysis", spec.Title)
	assert.Equal(t, []string{"Acme - Analysis"}, title.Heading.Paragraphs)
	assert.Equal(t, deck.FontDisplay, title.Heading.Style.Size)
	assert.True(t, title.Heading.Style.Bold)
	assert.Equal(t, deck.ColorAccent, title.Heading.Style.Color)
	assert.Equal(t, deck.AlignCenter, title.Heading.Style.Align)
	assert.Empty(t, title.Background, "title keeps the template background")

	closing := spec.Slides[len(spec.Slides)-1]
	assert.Equal(t, []string{deck.ClosingText}, closing.Heading.Paragraphs)
	assert.Equal(t, deck.AlignCenter, closing.Heading.Style.Align)
	assert.Empty(t, closing.Background)
}

func TestBuild_SummarySlide(t *testing.T) {
	t.Parallel()

	bullets := []string{"Revenue grew", "Costs fell"}
	spec, err := deck.Build("Acme", bullets, nil)
	require.NoError(t, err)

	s := spec.Slides[1]
	assert.Equal(t, deck.ColorWhite, s.Background)
	assert.Equal(t, []string{deck.SummaryHeading}, s.Heading.Paragraphs)
	assert.Equal(t, deck.FontHeading, s.Heading.Style.Size)
	assert.Equal(t, deck.AlignLeft, s.Heading.Style.Align)
	require.NotNil(t, s.Body)
	assert.Equal(t, bullets, s.Body.Paragraphs)
	assert.Equal(t, deck.FontBody, s.Body.Style.Size)
	assert.Equal(t, 8, s.Body.Spacing)

	bullets[0] = "mutated"
	assert.Equal(t, "Revenue grew", s.Body.Paragraphs[0], "bullets are copied")
}

func TestBuild_TableSlide(t *testing.T) {
	t.Parallel()

	spec, err := deck.Build("Acme", []string{"one"}, acmeRows())
	require.NoError(t, err)

	s := spec.Slides[2]
	require.Equal(t, deck.TableSlide, s.Kind)
	require.NotNil(t, s.Table)
	g := s.Table

	assert.Equal(t, deck.ColorWhite, s.Background)
	assert.Equal(t, []string{deck.DataHeading}, s.Heading.Paragraphs)
	assert.Equal(t, []string{"Market", "YTD"}, g.Columns)
	assert.InDelta(t, 4.5, g.ColumnWidth, 1e-9)
	require.Len(t, g.Rows, 3)

	t.Run("header", func(t *testing.T) {
		t.Parallel()
		require.Len(t, g.Header, 2)
		assert.Equal(t, "Market", g.Header[0].Text)
		assert.Equal(t, "YTD", g.Header[1].Text)
		for _, c := range g.Header {
			assert.True(t, c.Style.Bold)
			assert.Equal(t, deck.ColorWhite, c.Style.Color)
			assert.Equal(t, deck.ColorHeaderFill, c.Fill)
			assert.Equal(t, deck.FontCell, c.Style.Size)
		}
	})

	t.Run("negative values are red", func(t *testing.T) {
		t.Parallel()
		assert.False(t, g.Rows[0][1].Negative)
		assert.Empty(t, g.Rows[0][1].Style.Color)
		assert.True(t, g.Rows[1][1].Negative)
		assert.Equal(t, deck.ColorNegative, g.Rows[1][1].Style.Color)
		assert.False(t, g.Rows[1][0].Negative)
	})

	t.Run("every second data row is striped", func(t *testing.T) {
		t.Parallel()
		for _, c := range g.Rows[0] {
			assert.Empty(t, c.Fill)
		}
		for _, c := range g.Rows[1] {
			assert.Equal(t, deck.ColorStripe, c.Fill)
		}
		for _, c := range g.Rows[2] {
			assert.Empty(t, c.Fill)
		}
	})

	t.Run("cells are centred", func(t *testing.T) {
		t.Parallel()
		for _, row := range g.Rows {
			for _, c := range row {
				assert.Equal(t, deck.AlignCenter, c.Style.Align)
				assert.Equal(t, deck.FontCell, c.Style.Size)
			}
		}
	})
}

func TestBuild_MissingAndExtraKeys(t *testing.T) {
	t.Parallel()

	rows := []table.Row{
		table.NewRow("Market", "CEE", "YTD", "+45%"),
		table.NewRow("Market", "RCA", "Extra", "x"),
	}
	spec, err := deck.Build("Acme", nil, rows)
	require.NoError(t, err)

	g := spec.Slides[2].Table
	require.NotNil(t, g)
	assert.Equal(t, []string{"Market", "YTD"}, g.Columns)
	require.Len(t, g.Rows[1], 2)
	assert.Equal(t, "RCA", g.Rows[1][0].Text)
	assert.Equal(t, "", g.Rows[1][1].Text)
}

func TestBuild_EmptySchema(t *testing.T) {
	t.Parallel()

	_, err := deck.Build("Acme", []string{"one"}, []table.Row{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, deck.ErrGeneration)
	assert.ErrorIs(t, err, deck.ErrEmptySchema)
	assert.ErrorIs(t, err, table.ErrEmptySchema)
}

func TestBuild_WithoutStyling(t *testing.T) {
	t.Parallel()

	styled, err := deck.Build("Acme", []string{"one", "two"}, acmeRows())
	require.NoError(t, err)
	plain, err := deck.Build("Acme", []string{"one", "two"}, acmeRows(), deck.WithoutStyling())
	require.NoError(t, err)

	assert.Equal(t, styled.Kinds(), plain.Kinds())
	for _, s := range plain.Slides {
		assert.Empty(t, s.Background, s.Kind.String())
		assert.Equal(t, deck.TextStyle{}, s.Heading.Style, s.Kind.String())
	}
	assert.Zero(t, plain.Slides[1].Body.Spacing)

	g := plain.Slides[2].Table
	require.NotNil(t, g)
	for _, c := range g.Header {
		assert.Empty(t, c.Fill)
	}
	assert.Empty(t, g.Rows[1][1].Style.Color)
	assert.True(t, g.Rows[1][1].Negative, "negativity is still detected")

	again, err := deck.Build("Acme", []string{"one"}, nil, deck.WithStyling(false), deck.WithStyling(true))
	require.NoError(t, err)
	assert.Equal(t, deck.ColorWhite, again.Slides[1].Background)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "title", deck.TitleSlide.String())
	assert.Equal(t, "bullets", deck.BulletSlide.String())
	assert.Equal(t, "table", deck.TableSlide.String())
	assert.Equal(t, "closing", deck.ClosingSlide.String())
	assert.Equal(t, "unknown", deck.Kind(42).String())
}
