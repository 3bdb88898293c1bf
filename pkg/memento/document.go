package memento

import "maps"

// DocState is the snapshot payload for Document. Its fields are unexported,
// so callers can name the type but never read or edit a captured state.
type DocState struct {
	body string
	tags map[string]string
}

// Document is a text document that snapshots itself. Its Save and Restore
// deep-copy the tag map so a held memento is immune to later edits.
type Document struct {
	body string
	tags map[string]string
}

// NewDocument creates a document with an empty body and no tags.
func NewDocument() *Document {
	return &Document{tags: make(map[string]string)}
}

// Write replaces the document body.
func (d *Document) Write(body string) {
	d.body = body
}

// Append adds text to the document body.
func (d *Document) Append(text string) {
	d.body += text
}

// Tag sets a metadata tag.
func (d *Document) Tag(key, value string) {
	d.tags[key] = value
}

// Body returns the current body text.
func (d *Document) Body() string { return d.body }

// Tags returns a copy of the document's tags.
func (d *Document) Tags() map[string]string {
	return maps.Clone(d.tags)
}

// Save captures the document's state.
func (d *Document) Save() Memento[DocState] {
	return Capture(DocState{
		body: d.body,
		tags: maps.Clone(d.tags),
	})
}

// Restore rewinds the document to a previously saved state.
func (d *Document) Restore(m Memento[DocState]) {
	s := m.State()
	d.body = s.body
	d.tags = maps.Clone(s.tags)
	if d.tags == nil {
		d.tags = make(map[string]string)
	}
}
