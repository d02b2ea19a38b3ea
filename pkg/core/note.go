// Note is the central entity of the domain.
package core

import "time"

// Default field values applied when a note is created without them.
const (
	DefaultTitle    = "Untitled"
	DefaultCategory = "text"

	// DraftTitle is the sentinel title given to auto-saved drafts that
	// have no title yet. Publishing rewrites it to DefaultTitle.
	DraftTitle = "Draft"
)

// Note represents a single note in the collection.
// JSON tags match the persisted layout, so collections written by older
// versions (lacking e.g. tags or category) still load; missing fields
// simply stay at their zero value until the note is next written.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Pinned      bool      `json:"pinned"`
	IsDraft     bool      `json:"isDraft"`
	Deleted     bool      `json:"deleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Active reports whether the note appears in the main list.
func (n Note) Active() bool {
	return !n.Deleted && !n.IsDraft
}

// NotePatch is a partial note used for upserts. Nil fields are left
// untouched on update; on creation they receive defaults.
// Tags is a slice rather than a pointer: a nil slice means "not supplied",
// an empty non-nil slice clears the tags.
type NotePatch struct {
	ID          string
	Title       *string
	Description *string
	Content     *string
	Category    *string
	Tags        []string
	Pinned      *bool
	IsDraft     *bool
	Deleted     *bool
}

// Apply overlays the patch onto an existing note, field by field.
// Identity and timestamps are never touched here; the store owns those.
func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	if p.Tags != nil {
		n.Tags = append([]string(nil), p.Tags...)
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
	if p.IsDraft != nil {
		n.IsDraft = *p.IsDraft
	}
	if p.Deleted != nil {
		n.Deleted = *p.Deleted
	}
}

// String is a convenience for building pointer fields in patches.
func String(s string) *string { return &s }

// Bool is a convenience for building pointer fields in patches.
func Bool(b bool) *bool { return &b }
