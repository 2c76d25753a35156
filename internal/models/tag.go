package models

import "carteira/internal/aggregation"

// Tag is a free-form label. Transactions keep a copy of the tag as it was
// when they were written, so renaming a tag never rewrites history.
type Tag struct {
	Base
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Color  string `json:"color"`
}

// Snapshot returns the embedded form of the tag.
func (t Tag) Snapshot() aggregation.TagRef {
	return aggregation.TagRef{ID: t.ID, Name: t.Name, Color: t.Color}
}
