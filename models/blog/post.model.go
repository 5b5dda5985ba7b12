package blog

import (
	"time"

	"gorm.io/gorm"
)

// Post is a blog article authored by an instructor or admin
type Post struct {
	gorm.Model
	Title        string     `json:"title"`
	Slug         string     `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt      string     `json:"excerpt"`
	Content      string     `json:"content" gorm:"type:text"`
	AuthorID     uint       `json:"author_id" gorm:"index;not null"`
	Category     string     `json:"category" gorm:"index"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Views        uint       `json:"views" gorm:"default:0"`
	IsPublished  bool       `json:"is_published" gorm:"default:false"`
	PublishedAt  *time.Time `json:"published_at"`
	IsDeleted    bool       `gorm:"default:false"`
}
