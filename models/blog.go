package models

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Blog is an admin-authored article. The slug is derived from the title
// on save; views is a best-effort counter with no atomicity guarantee.
type Blog struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"not null"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Content     string          `json:"content,omitempty"`
	AuthorName  string          `json:"authorName"`
	AuthorID    uint            `json:"authorId" gorm:"index"`
	Published   bool            `json:"published" gorm:"default:false"`
	Tags        json.RawMessage `json:"tags" gorm:"type:json"`
	Slug        string          `json:"slug" gorm:"uniqueIndex"`
	Views       int64           `json:"views" gorm:"default:0"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9 -]`)
var slugSpaces = regexp.MustCompile(`\s+`)
var slugHyphens = regexp.MustCompile(`-+`)

// Slugify converts a title into its URL-friendly form
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BeforeSave keeps the slug in sync with the title
func (b *Blog) BeforeSave(tx *gorm.DB) error {
	if b.Title != "" {
		b.Slug = Slugify(b.Title)
	}
	return nil
}
