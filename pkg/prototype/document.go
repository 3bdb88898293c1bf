package prototype

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Document is the worked prototype example: a tenant-facing document template
// with nested mutable state that a correct Clone must deep-copy.
type Document struct {
	ID        uuid.UUID
	Title     string
	Metadata  map[string]string
	Sections  []Section
	CreatedAt time.Time
}

// Section is a titled block of document content.
type Section struct {
	Heading string
	Body    string
}

// NewDocument creates a document template with the given title.
func NewDocument(title string) *Document {
	return &Document{
		ID:        uuid.New(),
		Title:     title,
		Metadata:  make(map[string]string),
		CreatedAt: time.Now().UTC(),
	}
}

// Clone returns an independent deep copy with a fresh identity: new ID, new
// creation time, copied metadata map and sections slice. The clone and the
// original share no mutable state.
func (d *Document) Clone() *Document {
	return &Document{
		ID:        uuid.New(),
		Title:     d.Title,
		Metadata:  maps.Clone(d.Metadata),
		Sections:  append([]Section(nil), d.Sections...),
		CreatedAt: time.Now().UTC(),
	}
}
