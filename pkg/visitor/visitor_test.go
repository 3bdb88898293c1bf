package visitor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/visitor"
)

func sampleReport() *visitor.Report {
	return visitor.NewReport(
		&visitor.Text{Content: "Quarterly results are in"},
		&visitor.Image{Path: "charts/revenue.png", Width: 1200, Height: 800},
		&visitor.Table{
			Headers: []string{"Region", "Revenue"},
			Rows: [][]string{
				{"EMEA", "1.2M"},
				{"APAC", "0.9M"},
			},
		},
	)
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	wc := &visitor.WordCount{}
	require.NoError(t, sampleReport().Accept(wc))

	// 4 from prose, 2 from headers, 4 from cells; images count nothing.
	assert.Equal(t, 10, wc.Words)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	p := &visitor.PlainText{}
	require.NoError(t, sampleReport().Accept(p))

	want := "Quarterly results are in\n" +
		"[image: charts/revenue.png 1200x800]\n" +
		"Region | Revenue\n" +
		"EMEA | 1.2M\n" +
		"APAC | 0.9M\n"
	assert.Equal(t, want, p.String())
}

func TestImageAudit(t *testing.T) {
	t.Parallel()

	report := visitor.NewReport(
		&visitor.Image{Path: "small.png", Width: 100, Height: 100},
		&visitor.Text{Content: "filler"},
		&visitor.Image{Path: "huge.png", Width: 4000, Height: 3000},
	)

	audit := &visitor.ImageAudit{MaxArea: 1_000_000}
	require.NoError(t, report.Accept(audit))
	assert.Equal(t, []string{"huge.png"}, audit.Oversized)
}

// failingVisitor errors on tables to exercise walk termination.
type failingVisitor struct {
	visitor.NopVisitor
	visited int
	err     error
}

func (f *failingVisitor) VisitText(*visitor.Text) error {
	f.visited++
	return nil
}

func (f *failingVisitor) VisitTable(*visitor.Table) error {
	return f.err
}

func TestAccept(t *testing.T) {
	t.Parallel()

	t.Run("element error stops the walk", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("bad table")
		report := visitor.NewReport(
			&visitor.Text{Content: "one"},
			&visitor.Table{},
			&visitor.Text{Content: "never visited"},
		)

		fv := &failingVisitor{err: boom}
		assert.ErrorIs(t, report.Accept(fv), boom)
		assert.Equal(t, 1, fv.visited)
	})

	t.Run("nil visitor rejected", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, sampleReport().Accept(nil), visitor.ErrNilVisitor)
		txt := &visitor.Text{Content: "x"}
		assert.ErrorIs(t, txt.Accept(nil), visitor.ErrNilVisitor)
	})

	t.Run("nil elements dropped", func(t *testing.T) {
		t.Parallel()

		report := visitor.NewReport(nil, &visitor.Text{Content: "only"}, nil)
		assert.Equal(t, 1, report.Len())
	})

	t.Run("double dispatch reaches the concrete method", func(t *testing.T) {
		t.Parallel()

		// Accept on the interface value still lands in VisitImage.
		var e visitor.Element = &visitor.Image{Path: "p.png", Width: 10, Height: 10}
		audit := &visitor.ImageAudit{MaxArea: 1}
		require.NoError(t, e.Accept(audit))
		assert.Equal(t, []string{"p.png"}, audit.Oversized)
	})
}
