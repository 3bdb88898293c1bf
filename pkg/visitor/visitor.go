package visitor

import "errors"

// ErrNilVisitor is returned by Accept when passed a nil visitor.
var ErrNilVisitor = errors.New("visitor: nil visitor")

// Visitor declares one method per concrete element kind. Implementations
// add an operation over the report structure without touching the element
// types.
type Visitor interface {
	VisitText(t *Text) error
	VisitImage(img *Image) error
	VisitTable(tbl *Table) error
}

// Element is a report node that routes a visitor to the method for its own
// concrete type.
type Element interface {
	Accept(v Visitor) error
}

// Text is a paragraph of prose.
type Text struct {
	Content string
}

func (t *Text) Accept(v Visitor) error {
	if v == nil {
		return ErrNilVisitor
	}
	return v.VisitText(t)
}

// Image is a referenced picture with pixel dimensions.
type Image struct {
	Path   string
	Width  int
	Height int
}

func (img *Image) Accept(v Visitor) error {
	if v == nil {
		return ErrNilVisitor
	}
	return v.VisitImage(img)
}

// Table is tabular data with a header row.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (tbl *Table) Accept(v Visitor) error {
	if v == nil {
		return ErrNilVisitor
	}
	return v.VisitTable(tbl)
}

// Report is an ordered sequence of elements.
type Report struct {
	elements []Element
}

// NewReport creates a report from elements, dropping nils.
func NewReport(elements ...Element) *Report {
	r := &Report{}
	r.Add(elements...)
	return r
}

// Add appends elements to the report, dropping nils.
func (r *Report) Add(elements ...Element) {
	for _, e := range elements {
		if e != nil {
			r.elements = append(r.elements, e)
		}
	}
}

// Len returns the number of elements.
func (r *Report) Len() int { return len(r.elements) }

// Accept walks the report in order, dispatching each element to v. The
// first element error stops the walk.
func (r *Report) Accept(v Visitor) error {
	if v == nil {
		return ErrNilVisitor
	}
	for _, e := range r.elements {
		if err := e.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// NopVisitor visits every element kind and does nothing. Embed it to build
// visitors that only override the kinds they care about.
type NopVisitor struct{}

func (NopVisitor) VisitText(*Text) error   { return nil }
func (NopVisitor) VisitImage(*Image) error { return nil }
func (NopVisitor) VisitTable(*Table) error { return nil }
