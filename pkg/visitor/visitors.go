package visitor

import (
	"fmt"
	"strings"
)

// WordCount tallies words across text content and table cells. Images
// count as zero words.
type WordCount struct {
	Words int
}

func (w *WordCount) VisitText(t *Text) error {
	w.Words += len(strings.Fields(t.Content))
	return nil
}

func (w *WordCount) VisitImage(*Image) error { return nil }

func (w *WordCount) VisitTable(tbl *Table) error {
	for _, h := range tbl.Headers {
		w.Words += len(strings.Fields(h))
	}
	for _, row := range tbl.Rows {
		for _, cell := range row {
			w.Words += len(strings.Fields(cell))
		}
	}
	return nil
}

// PlainText renders a report as plain text: prose as-is, images as a
// bracketed placeholder, tables as pipe-separated rows.
type PlainText struct {
	b strings.Builder
}

func (p *PlainText) VisitText(t *Text) error {
	p.b.WriteString(t.Content)
	p.b.WriteByte('\n')
	return nil
}

func (p *PlainText) VisitImage(img *Image) error {
	fmt.Fprintf(&p.b, "[image: %s %dx%d]\n", img.Path, img.Width, img.Height)
	return nil
}

func (p *PlainText) VisitTable(tbl *Table) error {
	p.b.WriteString(strings.Join(tbl.Headers, " | "))
	p.b.WriteByte('\n')
	for _, row := range tbl.Rows {
		p.b.WriteString(strings.Join(row, " | "))
		p.b.WriteByte('\n')
	}
	return nil
}

// String returns the rendered output accumulated so far.
func (p *PlainText) String() string { return p.b.String() }

// ImageAudit collects image paths larger than the given pixel area. Embeds
// NopVisitor so only the image method is implemented.
type ImageAudit struct {
	NopVisitor
	MaxArea   int
	Oversized []string
}

func (a *ImageAudit) VisitImage(img *Image) error {
	if img.Width*img.Height > a.MaxArea {
		a.Oversized = append(a.Oversized, img.Path)
	}
	return nil
}
