package domain

import (
	"regexp"
	"strings"
	"time"
)

// Status represents the lifecycle state of a post.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusInReview  Status = "IN_REVIEW"
	StatusPublished Status = "PUBLISHED"
	StatusRejected  Status = "REJECTED"
)

// Statuses contains all valid post statuses.
var Statuses = []Status{StatusDraft, StatusInReview, StatusPublished, StatusRejected}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// ParseStatus converts a raw string into a Status.
// The second return value is false for unknown values.
func ParseStatus(raw string) (Status, bool) {
	if !IsValidStatus(raw) {
		return "", false
	}
	return Status(raw), true
}

// Post represents a post entity in the system.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Status    Status    `json:"status"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostUpdate carries author-editable fields for an edit.
// Nil fields are left unchanged.
type PostUpdate struct {
	Title   *string
	Content *string
}

var slugInvalidRunes = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped. The slug is always recomputed from the title,
// never stored independently of it.
func Slugify(title string) string {
	slug := slugInvalidRunes.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
